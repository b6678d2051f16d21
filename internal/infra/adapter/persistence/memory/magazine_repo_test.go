package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/domain/entity"
)

func TestMagazineRepo_AppendListCount(t *testing.T) {
	ctx := context.Background()
	repo := NewMagazineRepo()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	byteMag := mustMagazine(t, "Byte", "Tech")
	wired := mustMagazine(t, "Wired", "Culture")
	require.NoError(t, repo.Append(ctx, byteMag))
	require.NoError(t, repo.Append(ctx, wired))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Magazine{byteMag, wired}, got)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMagazineRepo_AppendNil(t *testing.T) {
	repo := NewMagazineRepo()
	assert.ErrorIs(t, repo.Append(context.Background(), nil), ErrNilEntity)
}
