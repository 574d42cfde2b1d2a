package services

import (
	"context"
	"slices"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"youngeru/internal/models/db_models"
	"youngeru/internal/models/request_models"
	"youngeru/internal/models/response_models"
	"youngeru/internal/repositories"
	"youngeru/internal/seed"
	"youngeru/pkg/utils"
)

const (
	similarLimit   = 4
	evidencePrefix = "Evidence "
)

type LibraryServiceInterface interface {
	ListItems(ctx context.Context, query request_models.LibraryQuery) ([]response_models.LibraryItemResponse, error)
	GetItem(ctx context.Context, slug string) (*response_models.LibraryItemResponse, error)
	SimilarItems(ctx context.Context, slug string) ([]response_models.LibraryItemResponse, error)
	Seed(ctx context.Context, entries []seed.LibraryEntry) (int, error)
}

type LibraryService struct {
	repo     repositories.LibraryRepositoryInterface
	embedder utils.EmbeddingClientInterface
	log      *zap.Logger
}

// NewLibraryService accepts a nil embedder; items are then stored without
// embeddings and have no similar items.
func NewLibraryService(repo repositories.LibraryRepositoryInterface, embedder utils.EmbeddingClientInterface, log *zap.Logger) LibraryServiceInterface {
	return &LibraryService{repo: repo, embedder: embedder, log: log}
}

func (l *LibraryService) ListItems(ctx context.Context, query request_models.LibraryQuery) ([]response_models.LibraryItemResponse, error) {
	items, err := l.repo.ListItems(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	items = FilterLibrary(items, query.Search, ParseFilters(query.Filters))

	out := make([]response_models.LibraryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toLibrarySummary(&items[i]))
	}
	return out, nil
}

func (l *LibraryService) GetItem(ctx context.Context, slug string) (*response_models.LibraryItemResponse, error) {
	item, err := l.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrLibraryItemNotFound
	}
	resp := toLibraryDetail(item)
	return &resp, nil
}

// SimilarItems ranks other items by cosine distance to the item's
// embedding. It is empty when the item has none.
func (l *LibraryService) SimilarItems(ctx context.Context, slug string) ([]response_models.LibraryItemResponse, error) {
	item, err := l.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrLibraryItemNotFound
	}
	out := []response_models.LibraryItemResponse{}
	if item.Embedding == nil {
		return out, nil
	}

	similar, err := l.repo.Similar(ctx, *item.Embedding, item.ID.String(), similarLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for i := range similar {
		out = append(out, toLibrarySummary(&similar[i]))
	}
	return out, nil
}

// Seed upserts the entries by slug and returns how many were written.
func (l *LibraryService) Seed(ctx context.Context, entries []seed.LibraryEntry) (int, error) {
	n := 0
	for _, e := range entries {
		item := &db_models.LibraryItem{
			Slug:          e.Slug,
			Title:         e.Title,
			Category:      e.Category,
			EvidenceLevel: e.EvidenceLevel,
			Summary:       e.Summary,
			HowToTake:     e.HowToTake,
			Guardrails:    e.Guardrails,
			Tags:          pq.StringArray(e.Tags),
		}
		if l.embedder != nil {
			vec, err := l.embedder.GetEmbedding(ctx, embeddingText(e))
			if err != nil {
				l.log.Warn("embed library item", zap.String("slug", e.Slug), zap.Error(err))
			} else {
				item.Embedding = &vec
			}
		}
		if err := l.repo.Upsert(ctx, item); err != nil {
			return n, err
		}
		n++
	}
	l.log.Info("library seeded", zap.Int("items", n), zap.Bool("embedded", l.embedder != nil))
	return n, nil
}

// ParseFilters splits a comma separated filter list, dropping blanks.
func ParseFilters(raw string) []string {
	var out []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// FilterLibrary keeps items matching the search term and any of the
// filters. "Evidence X" filters match the evidence level; other filters
// match a tag or the category exactly.
func FilterLibrary(items []db_models.LibraryItem, search string, filters []string) []db_models.LibraryItem {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]db_models.LibraryItem, 0, len(items))
	for _, it := range items {
		if term != "" && !matchesSearch(it, term) {
			continue
		}
		if len(filters) > 0 && !slices.ContainsFunc(filters, func(f string) bool { return matchesFilter(it, f) }) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSearch(it db_models.LibraryItem, term string) bool {
	if strings.Contains(strings.ToLower(it.Title), term) || strings.Contains(strings.ToLower(it.Summary), term) {
		return true
	}
	return slices.ContainsFunc(it.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), term)
	})
}

func matchesFilter(it db_models.LibraryItem, filter string) bool {
	if level, ok := strings.CutPrefix(filter, evidencePrefix); ok {
		return it.EvidenceLevel == level
	}
	return slices.Contains(it.Tags, filter) || it.Category == filter
}

func embeddingText(e seed.LibraryEntry) string {
	return strings.Join([]string{e.Title, e.Category, e.Summary, strings.Join(e.Tags, " ")}, "\n")
}

func toLibrarySummary(it *db_models.LibraryItem) response_models.LibraryItemResponse {
	tags := []string(it.Tags)
	if tags == nil {
		tags = []string{}
	}
	return response_models.LibraryItemResponse{
		Slug:          it.Slug,
		Title:         it.Title,
		Category:      it.Category,
		EvidenceLevel: it.EvidenceLevel,
		Summary:       it.Summary,
		Tags:          tags,
		UpdatedAt:     it.UpdatedAt,
	}
}

func toLibraryDetail(it *db_models.LibraryItem) response_models.LibraryItemResponse {
	resp := toLibrarySummary(it)
	resp.HowToTake = it.HowToTake
	resp.Guardrails = it.Guardrails
	return resp
}
