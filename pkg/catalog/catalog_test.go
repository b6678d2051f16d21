package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/pkg/catalog"
)

func TestCatalog_Scenarios(t *testing.T) {
	ctx := context.Background()
	c := catalog.New()

	ada, err := c.NewAuthor(ctx, "Ada")
	require.NoError(t, err)
	byteMag, err := c.NewMagazine(ctx, "Byte", "Tech")
	require.NoError(t, err)

	art, err := c.NewArticle(ctx, ada, byteMag, "Intro to Systems")
	require.NoError(t, err)

	byAda, err := c.Articles(ctx, ada)
	require.NoError(t, err)
	assert.Equal(t, []*catalog.Article{art}, byAda)

	_, err = c.NewArticle(ctx, ada, byteMag, "Hi")
	assert.True(t, errors.Is(err, catalog.ErrInvalidValue))

	_, err = c.NewMagazine(ctx, "A", "Tech")
	var ve *catalog.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	grace, err := c.NewAuthor(ctx, "Grace")
	require.NoError(t, err)
	for _, title := range []string{"Part two", "Part three"} {
		_, err := c.AddArticle(ctx, ada, byteMag, title)
		require.NoError(t, err)
	}
	_, err = c.AddArticle(ctx, grace, byteMag, "Guest column")
	require.NoError(t, err)

	contributing, err := c.ContributingAuthors(ctx, byteMag)
	require.NoError(t, err)
	assert.Equal(t, []*catalog.Author{ada}, contributing)

	top, err := c.TopPublisher(ctx)
	require.NoError(t, err)
	assert.Same(t, byteMag, top)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Stats{Articles: 4, Magazines: 1}, stats)
}

func TestCatalog_IndependentInstances(t *testing.T) {
	ctx := context.Background()
	first := catalog.New()
	second := catalog.New()

	ada, err := first.NewAuthor(ctx, "Ada")
	require.NoError(t, err)
	byteMag, err := first.NewMagazine(ctx, "Byte", "Tech")
	require.NoError(t, err)
	_, err = first.NewArticle(ctx, ada, byteMag, "Intro to Systems")
	require.NoError(t, err)

	top, err := second.TopPublisher(ctx)
	require.NoError(t, err)
	assert.Nil(t, top)

	all, err := second.AllMagazines(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCatalog_QueriesAndMutation(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(catalog.WithName("queries"))
	assert.Equal(t, "queries", c.Name())

	ada, err := c.NewAuthor(ctx, "Ada")
	require.NoError(t, err)
	byteMag, err := c.NewMagazine(ctx, "Byte", "Tech")
	require.NoError(t, err)
	vogue, err := c.NewMagazine(ctx, "Vogue", "Fashion")
	require.NoError(t, err)

	titles, err := c.ArticleTitles(ctx, byteMag)
	require.NoError(t, err)
	assert.Nil(t, titles)
	areas, err := c.TopicAreas(ctx, ada)
	require.NoError(t, err)
	assert.Nil(t, areas)

	art, err := c.NewArticle(ctx, ada, byteMag, "Intro to Systems")
	require.NoError(t, err)

	require.NoError(t, c.ReassignMagazine(ctx, art, vogue))
	inVogue, err := c.MagazineArticles(ctx, vogue)
	require.NoError(t, err)
	assert.Equal(t, []*catalog.Article{art}, inVogue)

	mags, err := c.Magazines(ctx, ada)
	require.NoError(t, err)
	assert.Equal(t, []*catalog.Magazine{vogue}, mags)

	areas, err = c.TopicAreas(ctx, ada)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fashion"}, areas)

	contributors, err := c.Contributors(ctx, vogue)
	require.NoError(t, err)
	assert.Equal(t, []*catalog.Author{ada}, contributors)

	grace, err := c.NewAuthor(ctx, "Grace")
	require.NoError(t, err)
	require.NoError(t, c.ReassignAuthor(ctx, art, grace))
	byAda, err := c.Articles(ctx, ada)
	require.NoError(t, err)
	assert.Empty(t, byAda)

	require.NoError(t, c.RenameMagazine(ctx, vogue, "Vogue Paris"))
	assert.ErrorIs(t, c.RenameMagazine(ctx, vogue, "V"), catalog.ErrInvalidValue)
	require.NoError(t, c.RecategorizeMagazine(ctx, vogue, "Style"))
	assert.ErrorIs(t, c.RecategorizeMagazine(ctx, vogue, ""), catalog.ErrInvalidValue)
	assert.Equal(t, "Vogue Paris", vogue.Name())
	assert.Equal(t, "Style", vogue.Category())

	all, err := c.AllArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = c.AddArticle(ctx, ada, nil, "Intro to Systems")
	assert.ErrorIs(t, err, catalog.ErrInvalidValue)
	_, err = c.NewArticle(ctx, nil, byteMag, "Intro to Systems")
	assert.ErrorIs(t, err, catalog.ErrTypeMismatch)
}

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := catalog.LoadConfig()
	require.NoError(t, err)
	cfg.Name = "from-config"
	cfg.MetricsEnabled = true

	c := catalog.NewFromConfig(cfg)
	assert.Equal(t, "from-config", c.Name())

	_, err = c.NewMagazine(ctx, "Byte", "Tech")
	require.NoError(t, err)
	_, err = c.NewMagazine(ctx, "Wired", "Tech")
	require.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.MagazinesTotal.WithLabelValues("from-config")))
}

func TestCatalog_DefaultNamesAreUnique(t *testing.T) {
	ctx := context.Background()
	first := catalog.New(catalog.WithMetrics(true))
	second := catalog.New(catalog.WithMetrics(true))
	require.NotEqual(t, first.Name(), second.Name())

	_, err := first.NewMagazine(ctx, "Byte", "Tech")
	require.NoError(t, err)
	_, err = second.NewMagazine(ctx, "Wired", "Tech")
	require.NoError(t, err)
	_, err = second.NewMagazine(ctx, "Vogue", "Fashion")
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.MagazinesTotal.WithLabelValues(first.Name())))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.MagazinesTotal.WithLabelValues(second.Name())))
}

func TestCatalog_NilMutationTargets(t *testing.T) {
	ctx := context.Background()
	c := catalog.New()

	assert.ErrorIs(t, c.RenameMagazine(ctx, nil, "Byte"), catalog.ErrTypeMismatch)
	assert.ErrorIs(t, c.RecategorizeMagazine(ctx, nil, "Tech"), catalog.ErrTypeMismatch)
	assert.ErrorIs(t, c.ReassignAuthor(ctx, nil, nil), catalog.ErrTypeMismatch)
	assert.ErrorIs(t, c.ReassignMagazine(ctx, nil, nil), catalog.ErrTypeMismatch)
}
