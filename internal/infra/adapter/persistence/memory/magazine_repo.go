package memory

import (
	"context"
	"sync"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// MagazineRepo implements the MagazineRepository interface in memory.
type MagazineRepo struct {
	mu        sync.RWMutex
	magazines []*entity.Magazine
}

// NewMagazineRepo creates an empty magazine registry.
func NewMagazineRepo() repository.MagazineRepository {
	return &MagazineRepo{}
}

// Append adds the magazine to the end of the registry.
func (repo *MagazineRepo) Append(_ context.Context, magazine *entity.Magazine) error {
	if magazine == nil {
		return ErrNilEntity
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.magazines = append(repo.magazines, magazine)
	return nil
}

// List returns a copy of the registry in registration order.
func (repo *MagazineRepo) List(_ context.Context) ([]*entity.Magazine, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]*entity.Magazine, len(repo.magazines))
	copy(out, repo.magazines)
	return out, nil
}

// Count returns the number of registered magazines.
func (repo *MagazineRepo) Count(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.magazines), nil
}
