package entity

import "github.com/google/uuid"

// Article represents a piece written by one Author and published in one Magazine.
// The title is immutable; author and magazine references may be reassigned
// through validated setters. References are shared, not owned.
type Article struct {
	ID       uuid.UUID
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle creates an Article after validating title, author and magazine, in that order.
// A title outside 5..50 characters yields ErrInvalidValue; a nil author or magazine
// yields ErrTypeMismatch.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	a := &Article{ID: uuid.New(), title: title}
	if err := a.SetAuthor(author); err != nil {
		return nil, err
	}
	if err := a.SetMagazine(magazine); err != nil {
		return nil, err
	}
	return a, nil
}

// Title returns the article's title.
func (a *Article) Title() string {
	return a.title
}

// Author returns the article's current author.
func (a *Article) Author() *Author {
	return a.author
}

// SetAuthor reassigns the article to another author.
func (a *Article) SetAuthor(author *Author) error {
	if author == nil {
		return NewTypeError("article", "author", "must be of type Author")
	}
	a.author = author
	return nil
}

// Magazine returns the magazine the article currently belongs to.
func (a *Article) Magazine() *Magazine {
	return a.magazine
}

// SetMagazine moves the article to another magazine.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if magazine == nil {
		return NewTypeError("article", "magazine", "must be of type Magazine")
	}
	a.magazine = magazine
	return nil
}

func (a *Article) String() string {
	return "Article(" + a.title + ")"
}
