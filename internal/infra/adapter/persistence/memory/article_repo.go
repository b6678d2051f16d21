// Package memory provides in-process implementations of the repository interfaces.
// Each registry is an append-only slice guarded by a RWMutex; entries are never removed.
package memory

import (
	"context"
	"errors"
	"sync"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// ErrNilEntity is returned when Append is called with a nil entity.
var ErrNilEntity = errors.New("nil entity")

// ArticleRepo implements the ArticleRepository interface in memory.
type ArticleRepo struct {
	mu       sync.RWMutex
	articles []*entity.Article
}

// NewArticleRepo creates an empty article registry.
func NewArticleRepo() repository.ArticleRepository {
	return &ArticleRepo{}
}

// Append adds the article to the end of the registry.
func (repo *ArticleRepo) Append(_ context.Context, article *entity.Article) error {
	if article == nil {
		return ErrNilEntity
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.articles = append(repo.articles, article)
	return nil
}

// List returns a copy of the registry in registration order.
func (repo *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]*entity.Article, len(repo.articles))
	copy(out, repo.articles)
	return out, nil
}

// ListByAuthor scans the registry for articles currently attributed to author.
func (repo *ArticleRepo) ListByAuthor(_ context.Context, author *entity.Author) ([]*entity.Article, error) {
	return repo.filter(func(a *entity.Article) bool { return a.Author() == author }), nil
}

// ListByMagazine scans the registry for articles currently published in magazine.
func (repo *ArticleRepo) ListByMagazine(_ context.Context, magazine *entity.Magazine) ([]*entity.Article, error) {
	return repo.filter(func(a *entity.Article) bool { return a.Magazine() == magazine }), nil
}

// Count returns the number of registered articles.
func (repo *ArticleRepo) Count(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.articles), nil
}

func (repo *ArticleRepo) filter(keep func(*entity.Article) bool) []*entity.Article {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]*entity.Article, 0)
	for _, a := range repo.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
