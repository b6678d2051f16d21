package entity

import "github.com/google/uuid"

// Magazine represents a publication that articles appear in.
// Name and category are mutable through validated setters; a rejected value
// leaves the previous one in place.
type Magazine struct {
	ID       uuid.UUID
	name     string
	category string
}

// NewMagazine creates a Magazine after validating name and category
// with the same rules as SetName and SetCategory.
func NewMagazine(name, category string) (*Magazine, error) {
	m := &Magazine{ID: uuid.New()}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetCategory(category); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the magazine's current name.
func (m *Magazine) Name() string {
	return m.name
}

// SetName replaces the name if it is between 2 and 16 characters.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// Category returns the magazine's current category.
func (m *Magazine) Category() string {
	return m.category
}

// SetCategory replaces the category if it is not empty.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.category = category
	return nil
}

func (m *Magazine) String() string {
	return "Magazine(" + m.name + ", " + m.category + ")"
}
