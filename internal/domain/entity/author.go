// Package entity defines the core domain entities and validation logic for the catalog.
// It contains Author, Magazine and Article along with their validation rules and
// the two kinds of domain error.
package entity

import "github.com/google/uuid"

// Author represents a writer of articles.
// The name is fixed at construction; relationships to articles and magazines are
// derived by scanning an article registry, not stored here.
type Author struct {
	// ID labels the author in logs. Identity is the pointer.
	ID   uuid.UUID
	name string
}

// NewAuthor creates an Author after validating its name.
// Returns a ValidationError of kind ErrInvalidValue if the name is empty.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{ID: uuid.New(), name: name}, nil
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name
}

func (a *Author) String() string {
	return "Author(" + a.name + ")"
}
