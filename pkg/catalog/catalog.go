// Package catalog is the embedding API of the author / magazine / article model.
//
// A Catalog owns the article and magazine registries. Create entities through it so
// they are registered, then ask it relationship and aggregate questions:
//
//	c := catalog.New()
//	ada, _ := c.NewAuthor(ctx, "Ada")
//	byteMag, _ := c.NewMagazine(ctx, "Byte", "Tech")
//	_, _ = c.NewArticle(ctx, ada, byteMag, "Intro to Systems")
//	top, _ := c.TopPublisher(ctx) // byteMag
//
// Validation failures are *ValidationError values matching ErrTypeMismatch or
// ErrInvalidValue with errors.Is. Catalogs are independent of each other and safe
// for concurrent registration; mutating a single entity from several goroutines
// needs external coordination.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	catUC "magazine-catalog/internal/usecase/catalog"
)

type (
	Author          = entity.Author
	Magazine        = entity.Magazine
	Article         = entity.Article
	ValidationError = entity.ValidationError
	Stats           = catUC.Stats
	Config          = config.Config
)

// Error kinds.
var (
	ErrTypeMismatch = entity.ErrTypeMismatch
	ErrInvalidValue = entity.ErrInvalidValue
)

// unnamed numbers catalogs created without WithName.
var unnamed atomic.Int64

// Catalog is a caller-owned set of registries plus the queries over them.
type Catalog struct {
	name string
	svc  *catUC.Service
}

type options struct {
	name    string
	logger  *slog.Logger
	metrics bool
}

// Option configures a Catalog.
type Option func(*options)

// WithName labels the catalog in metrics. Metrics-enabled catalogs sharing a
// name share their registry gauges, so each needs its own name. Without this
// option a catalog is named "catalog-N" with N unique in the process.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger. Without it the logger carried by each call's
// context is used, falling back to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics enables Prometheus recording on the default registry.
func WithMetrics(enabled bool) Option {
	return func(o *options) { o.metrics = enabled }
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = fmt.Sprintf("catalog-%d", unnamed.Add(1))
	}

	var recorder catUC.Recorder = metrics.NewNoOpRecorder()
	if o.metrics {
		recorder = metrics.NewPrometheusRecorder(o.name)
	}

	return &Catalog{
		name: o.name,
		svc:  catUC.NewService(memory.NewArticleRepo(), memory.NewMagazineRepo(), recorder, o.logger),
	}
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	return config.Load()
}

// NewFromConfig creates an empty catalog configured by cfg.
func NewFromConfig(cfg *Config) *Catalog {
	return New(
		WithName(cfg.Name),
		WithLogger(logging.New(cfg.LogFormat, cfg.LogLevel, os.Stdout)),
		WithMetrics(cfg.MetricsEnabled),
	)
}

// Name returns the catalog's label.
func (c *Catalog) Name() string {
	return c.name
}

// NewAuthor validates and returns an author.
func (c *Catalog) NewAuthor(ctx context.Context, name string) (*Author, error) {
	return c.svc.CreateAuthor(ctx, name)
}

// NewMagazine validates a magazine and registers it.
func (c *Catalog) NewMagazine(ctx context.Context, name, category string) (*Magazine, error) {
	return c.svc.CreateMagazine(ctx, name, category)
}

// NewArticle validates an article and registers it.
func (c *Catalog) NewArticle(ctx context.Context, author *Author, magazine *Magazine, title string) (*Article, error) {
	return c.svc.CreateArticle(ctx, author, magazine, title)
}

// AddArticle creates and registers an article by author in magazine.
// A nil magazine is an ErrInvalidValue.
func (c *Catalog) AddArticle(ctx context.Context, author *Author, magazine *Magazine, title string) (*Article, error) {
	return c.svc.AddArticle(ctx, author, magazine, title)
}

// RenameMagazine sets a magazine name; the old name stays on failure.
func (c *Catalog) RenameMagazine(ctx context.Context, magazine *Magazine, name string) error {
	return c.svc.RenameMagazine(ctx, magazine, name)
}

// RecategorizeMagazine sets a magazine category; the old category stays on failure.
func (c *Catalog) RecategorizeMagazine(ctx context.Context, magazine *Magazine, category string) error {
	return c.svc.RecategorizeMagazine(ctx, magazine, category)
}

// ReassignAuthor points article at another author.
func (c *Catalog) ReassignAuthor(ctx context.Context, article *Article, author *Author) error {
	return c.svc.ReassignAuthor(ctx, article, author)
}

// ReassignMagazine moves article to another magazine.
func (c *Catalog) ReassignMagazine(ctx context.Context, article *Article, magazine *Magazine) error {
	return c.svc.ReassignMagazine(ctx, article, magazine)
}

// Articles returns the author's articles in registration order.
func (c *Catalog) Articles(ctx context.Context, author *Author) ([]*Article, error) {
	return c.svc.AuthorArticles(ctx, author)
}

// Magazines returns the distinct magazines the author wrote for.
func (c *Catalog) Magazines(ctx context.Context, author *Author) ([]*Magazine, error) {
	return c.svc.AuthorMagazines(ctx, author)
}

// TopicAreas returns the author's distinct categories, or nil without articles.
func (c *Catalog) TopicAreas(ctx context.Context, author *Author) ([]string, error) {
	return c.svc.TopicAreas(ctx, author)
}

// MagazineArticles returns the magazine's articles in registration order.
func (c *Catalog) MagazineArticles(ctx context.Context, magazine *Magazine) ([]*Article, error) {
	return c.svc.MagazineArticles(ctx, magazine)
}

// Contributors returns the distinct authors published in the magazine.
func (c *Catalog) Contributors(ctx context.Context, magazine *Magazine) ([]*Author, error) {
	return c.svc.Contributors(ctx, magazine)
}

// ArticleTitles returns the magazine's titles, or nil without articles.
func (c *Catalog) ArticleTitles(ctx context.Context, magazine *Magazine) ([]string, error) {
	return c.svc.ArticleTitles(ctx, magazine)
}

// ContributingAuthors returns authors with more than two articles in the magazine, or nil.
func (c *Catalog) ContributingAuthors(ctx context.Context, magazine *Magazine) ([]*Author, error) {
	return c.svc.ContributingAuthors(ctx, magazine)
}

// TopPublisher returns the magazine with the most articles, or nil.
func (c *Catalog) TopPublisher(ctx context.Context) (*Magazine, error) {
	return c.svc.TopPublisher(ctx)
}

// AllArticles returns every registered article in registration order.
func (c *Catalog) AllArticles(ctx context.Context) ([]*Article, error) {
	return c.svc.AllArticles(ctx)
}

// AllMagazines returns every registered magazine in registration order.
func (c *Catalog) AllMagazines(ctx context.Context) ([]*Magazine, error) {
	return c.svc.AllMagazines(ctx)
}

// Stats returns the registry sizes.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	return c.svc.Stats(ctx)
}
