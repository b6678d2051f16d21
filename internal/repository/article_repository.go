// Package repository declares the registries the catalog use cases depend on.
// Registries are append-only and ordered: iteration order is registration order.
package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

type ArticleRepository interface {
	// Append registers an article at the end of the registry.
	Append(ctx context.Context, article *entity.Article) error
	// List returns a snapshot of every registered article in registration order.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByAuthor returns, in registration order, the articles whose current author is author.
	ListByAuthor(ctx context.Context, author *entity.Author) ([]*entity.Article, error)
	// ListByMagazine returns, in registration order, the articles whose current magazine is magazine.
	ListByMagazine(ctx context.Context, magazine *entity.Magazine) ([]*entity.Article, error)
	Count(ctx context.Context) (int, error)
}
