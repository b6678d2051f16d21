// Package catalog provides the use cases of the author / magazine / article model.
// It registers entities into append-only registries and answers relationship and
// aggregate queries by scanning those registries.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/repository"
)

// contributingThreshold is the article count an author must exceed to be a
// contributing author of a magazine.
const contributingThreshold = 2

// Recorder receives catalog events for metrics collection.
type Recorder interface {
	SetArticles(count int)
	SetMagazines(count int)
	ValidationFailed(entity, field, kind string)
	QueryObserved(query string, duration time.Duration)
}

// Service provides catalog use cases.
// It handles validation and queries and delegates storage to the registries.
type Service struct {
	Articles  repository.ArticleRepository
	Magazines repository.MagazineRepository
	Metrics   Recorder
	Logger    *slog.Logger
}

// Stats summarises registry sizes.
type Stats struct {
	Articles  int
	Magazines int
}

// NewService creates a Service. A nil recorder disables metrics and a nil logger
// falls back to the logger carried by each call's context.
func NewService(articles repository.ArticleRepository, magazines repository.MagazineRepository, recorder Recorder, logger *slog.Logger) *Service {
	if recorder == nil {
		recorder = metrics.NewNoOpRecorder()
	}
	return &Service{
		Articles:  articles,
		Magazines: magazines,
		Metrics:   recorder,
		Logger:    logger,
	}
}

/* ───────── construction ───────── */

// CreateAuthor validates and returns a new Author.
// Authors have no registry; they become visible through the articles that reference them.
func (s *Service) CreateAuthor(ctx context.Context, name string) (*entity.Author, error) {
	author, err := entity.NewAuthor(name)
	if err != nil {
		return nil, s.reject(ctx, err)
	}
	return author, nil
}

// CreateMagazine validates a new Magazine and appends it to the magazine registry.
// Nothing is registered when validation fails.
func (s *Service) CreateMagazine(ctx context.Context, name, category string) (*entity.Magazine, error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.create_magazine")
	defer span.End()

	magazine, err := entity.NewMagazine(name, category)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, s.reject(ctx, err)
	}

	if err := s.Magazines.Append(ctx, magazine); err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("register magazine: %w", err)
	}
	s.refreshMagazineCount(ctx)

	logging.WithEntity(s.logger(ctx), "magazine", magazine.ID.String()).Debug("magazine registered",
		slog.String("name", magazine.Name()),
		slog.String("category", magazine.Category()))
	return magazine, nil
}

// CreateArticle validates a new Article and appends it to the article registry.
// Validation order is title, author, magazine; nothing is registered on failure.
func (s *Service) CreateArticle(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.create_article", attribute.String("title", title))
	defer span.End()

	article, err := entity.NewArticle(author, magazine, title)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, s.reject(ctx, err)
	}

	if err := s.Articles.Append(ctx, article); err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("register article: %w", err)
	}
	s.refreshArticleCount(ctx)

	logging.WithEntity(s.logger(ctx), "article", article.ID.String()).Debug("article registered",
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()))
	return article, nil
}

// AddArticle creates and registers an article written by author in magazine.
// A nil magazine is rejected with ErrInvalidValue before the article is built;
// the article's own validation errors propagate unchanged.
func (s *Service) AddArticle(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	if magazine == nil {
		return nil, s.reject(ctx, entity.NewValueError("author", "magazine", "must be of type Magazine"))
	}
	return s.CreateArticle(ctx, author, magazine, title)
}

/* ───────── validated mutation ───────── */

// RenameMagazine sets a magazine's name, keeping the previous name on failure.
func (s *Service) RenameMagazine(ctx context.Context, magazine *entity.Magazine, name string) error {
	if magazine == nil {
		return s.reject(ctx, entity.NewTypeError("magazine", "name", "target must be of type Magazine"))
	}
	return s.reject(ctx, magazine.SetName(name))
}

// RecategorizeMagazine sets a magazine's category, keeping the previous one on failure.
func (s *Service) RecategorizeMagazine(ctx context.Context, magazine *entity.Magazine, category string) error {
	if magazine == nil {
		return s.reject(ctx, entity.NewTypeError("magazine", "category", "target must be of type Magazine"))
	}
	return s.reject(ctx, magazine.SetCategory(category))
}

// ReassignAuthor points an article at another author. Registry order is unchanged.
func (s *Service) ReassignAuthor(ctx context.Context, article *entity.Article, author *entity.Author) error {
	if article == nil {
		return s.reject(ctx, entity.NewTypeError("article", "author", "target must be of type Article"))
	}
	return s.reject(ctx, article.SetAuthor(author))
}

// ReassignMagazine moves an article to another magazine. Registry order is unchanged.
func (s *Service) ReassignMagazine(ctx context.Context, article *entity.Article, magazine *entity.Magazine) error {
	if article == nil {
		return s.reject(ctx, entity.NewTypeError("article", "magazine", "target must be of type Article"))
	}
	return s.reject(ctx, article.SetMagazine(magazine))
}

/* ───────── author queries ───────── */

// AuthorArticles returns the author's articles in registration order.
func (s *Service) AuthorArticles(ctx context.Context, author *entity.Author) ([]*entity.Article, error) {
	articles, err := s.Articles.ListByAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return articles, nil
}

// AuthorMagazines returns the distinct magazines the author has written for, first-seen order.
func (s *Service) AuthorMagazines(ctx context.Context, author *entity.Author) ([]*entity.Magazine, error) {
	articles, err := s.AuthorArticles(ctx, author)
	if err != nil {
		return nil, err
	}
	return distinctMagazines(articles), nil
}

// TopicAreas returns the distinct categories of the magazines the author has written for.
// It returns nil when the author has no articles; a non-nil result is never empty.
func (s *Service) TopicAreas(ctx context.Context, author *entity.Author) ([]string, error) {
	defer s.observe("topic_areas", time.Now())

	magazines, err := s.AuthorMagazines(ctx, author)
	if err != nil {
		return nil, err
	}
	if len(magazines) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(magazines))
	areas := make([]string, 0, len(magazines))
	for _, m := range magazines {
		category := m.Category()
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		areas = append(areas, category)
	}
	return areas, nil
}

/* ───────── magazine queries ───────── */

// MagazineArticles returns the magazine's articles in registration order.
func (s *Service) MagazineArticles(ctx context.Context, magazine *entity.Magazine) ([]*entity.Article, error) {
	articles, err := s.Articles.ListByMagazine(ctx, magazine)
	if err != nil {
		return nil, fmt.Errorf("list articles by magazine: %w", err)
	}
	return articles, nil
}

// Contributors returns the distinct authors published in the magazine, first-seen order.
func (s *Service) Contributors(ctx context.Context, magazine *entity.Magazine) ([]*entity.Author, error) {
	articles, err := s.MagazineArticles(ctx, magazine)
	if err != nil {
		return nil, err
	}
	authors, _ := countAuthors(articles)
	return authors, nil
}

// ArticleTitles returns the titles of the magazine's articles in registration order,
// or nil when the magazine has no articles.
func (s *Service) ArticleTitles(ctx context.Context, magazine *entity.Magazine) ([]string, error) {
	articles, err := s.MagazineArticles(ctx, magazine)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}

	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title())
	}
	return titles, nil
}

// ContributingAuthors returns the authors with more than two articles in the magazine,
// first-seen order, or nil when no author qualifies.
func (s *Service) ContributingAuthors(ctx context.Context, magazine *entity.Magazine) ([]*entity.Author, error) {
	defer s.observe("contributing_authors", time.Now())

	articles, err := s.MagazineArticles(ctx, magazine)
	if err != nil {
		return nil, err
	}

	authors, counts := countAuthors(articles)
	var result []*entity.Author
	for _, a := range authors {
		if counts[a] > contributingThreshold {
			result = append(result, a)
		}
	}
	return result, nil
}

// TopPublisher returns the registered magazine with the most articles.
// Ties go to the magazine registered first. It returns nil when no magazine is
// registered or none has an article.
func (s *Service) TopPublisher(ctx context.Context) (*entity.Magazine, error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.top_publisher")
	defer span.End()
	defer s.observe("top_publisher", time.Now())

	magazines, err := s.Magazines.List(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	if len(magazines) == 0 {
		return nil, nil
	}

	articles, err := s.Articles.List(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("list articles: %w", err)
	}
	counts := make(map[*entity.Magazine]int, len(magazines))
	for _, a := range articles {
		counts[a.Magazine()]++
	}

	top := magazines[0]
	for _, m := range magazines[1:] {
		if counts[m] > counts[top] {
			top = m
		}
	}
	if counts[top] == 0 {
		return nil, nil
	}

	span.SetAttributes(attribute.String("magazine", top.Name()), attribute.Int("articles", counts[top]))
	return top, nil
}

/* ───────── registry views ───────── */

// AllArticles returns every registered article in registration order.
func (s *Service) AllArticles(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// AllMagazines returns every registered magazine in registration order.
func (s *Service) AllMagazines(ctx context.Context) ([]*entity.Magazine, error) {
	magazines, err := s.Magazines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return magazines, nil
}

// Stats returns the current registry sizes.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	articles, err := s.Articles.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count articles: %w", err)
	}
	magazines, err := s.Magazines.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count magazines: %w", err)
	}
	return Stats{Articles: articles, Magazines: magazines}, nil
}

/* ───────── helpers ───────── */

// reject records a validation failure and returns err unchanged. A nil err passes through.
func (s *Service) reject(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		s.recorder().ValidationFailed(ve.Entity, ve.Field, ve.KindName())
		logging.WithFields(s.logger(ctx), map[string]interface{}{
			"entity": ve.Entity,
			"field":  ve.Field,
			"kind":   ve.KindName(),
			"error":  ve.Message,
		}).Warn("rejected invalid input")
	}
	return err
}

func (s *Service) refreshArticleCount(ctx context.Context) {
	if n, err := s.Articles.Count(ctx); err == nil {
		s.recorder().SetArticles(n)
	}
}

func (s *Service) refreshMagazineCount(ctx context.Context) {
	if n, err := s.Magazines.Count(ctx); err == nil {
		s.recorder().SetMagazines(n)
	}
}

func (s *Service) observe(query string, start time.Time) {
	s.recorder().QueryObserved(query, time.Since(start))
}

func (s *Service) recorder() Recorder {
	if s.Metrics == nil {
		return metrics.NewNoOpRecorder()
	}
	return s.Metrics
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.FromContext(ctx)
}

func distinctMagazines(articles []*entity.Article) []*entity.Magazine {
	seen := make(map[*entity.Magazine]struct{}, len(articles))
	out := make([]*entity.Magazine, 0, len(articles))
	for _, a := range articles {
		m := a.Magazine()
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// countAuthors returns the distinct authors of articles in first-seen order together
// with the number of articles per author. Authors are compared by identity.
func countAuthors(articles []*entity.Article) ([]*entity.Author, map[*entity.Author]int) {
	counts := make(map[*entity.Author]int, len(articles))
	authors := make([]*entity.Author, 0, len(articles))
	for _, a := range articles {
		author := a.Author()
		if counts[author] == 0 {
			authors = append(authors, author)
		}
		counts[author]++
	}
	return authors, counts
}
