package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

type MagazineRepository interface {
	Append(ctx context.Context, magazine *entity.Magazine) error
	List(ctx context.Context) ([]*entity.Magazine, error)
	Count(ctx context.Context) (int, error)
}
