package entity

import (
	"fmt"

	"magazine-catalog/internal/utils/text"
)

// Length bounds, measured in Unicode characters.
const (
	MinAuthorNameLength   = 1
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
	MinCategoryLength     = 1
	MinTitleLength        = 5
	MaxTitleLength        = 50
)

// ValidateAuthorName checks that an author name is not empty.
func ValidateAuthorName(name string) error {
	if text.CountRunes(name) < MinAuthorNameLength {
		return NewValueError("author", "name", "must be longer than 0 characters")
	}
	return nil
}

// ValidateMagazineName checks that a magazine name is between 2 and 16 characters.
func ValidateMagazineName(name string) error {
	if !text.WithinLength(name, MinMagazineNameLength, MaxMagazineNameLength) {
		return NewValueError("magazine", "name",
			fmt.Sprintf("must be between %d and %d characters", MinMagazineNameLength, MaxMagazineNameLength))
	}
	return nil
}

// ValidateCategory checks that a magazine category is not empty.
func ValidateCategory(category string) error {
	if text.CountRunes(category) < MinCategoryLength {
		return NewValueError("magazine", "category", "must be longer than 0 characters")
	}
	return nil
}

// ValidateTitle checks that an article title is between 5 and 50 characters.
func ValidateTitle(title string) error {
	if !text.WithinLength(title, MinTitleLength, MaxTitleLength) {
		return NewValueError("article", "title",
			fmt.Sprintf("must be between %d and %d characters", MinTitleLength, MaxTitleLength))
	}
	return nil
}
