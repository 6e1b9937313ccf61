package services

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"milano-insights/internal/geo"
	"milano-insights/internal/models"
	"milano-insights/internal/repositories"
)

var (
	pureNumericRegex = regexp.MustCompile(`^\d+$`)
	parenIDRegex     = regexp.MustCompile(`\((\d+)\)`)
)

// indexEntry is one neighborhood prepared for matching: the normalized
// name and its search tokens are computed once at index build time.
type indexEntry struct {
	ID         int
	Name       string
	Label      string
	Normalized string
	Tokens     []string
}

// resolverIndex is an immutable snapshot. Readers grab the current
// snapshot once per resolution; rebuilds swap in a whole new one.
type resolverIndex struct {
	entries []indexEntry
	byID    map[int]indexEntry
}

var emptyIndex = &resolverIndex{byID: map[int]indexEntry{}}

// ResolverService maps free-text neighborhood references to NIL ids
// using an in-memory index over the dimension view.
type ResolverService struct {
	repo    repositories.NeighborhoodRepositoryInterface
	metrics MetricsRecorderInterface
	index   atomic.Pointer[resolverIndex]
}

// NewResolverService creates a resolver with an empty index. Call
// ReloadIndex to populate it; resolution before that matches nothing.
func NewResolverService(repo repositories.NeighborhoodRepositoryInterface, metrics MetricsRecorderInterface) *ResolverService {
	s := &ResolverService{repo: repo, metrics: metrics}
	s.index.Store(emptyIndex)
	return s
}

// ReloadIndex rebuilds the index from the store. On store failure the
// empty index is installed so resolution fails closed rather than
// serving stale entries.
func (s *ResolverService) ReloadIndex() (int, error) {
	neighborhoods, err := s.repo.ListAll()
	if err != nil {
		slog.Warn("NIL index unavailable", "error", err.Error())
		s.index.Store(emptyIndex)
		s.metrics.RecordIndexRebuild(0)
		return 0, fmt.Errorf("failed to load neighborhood index: %w", err)
	}

	idx := &resolverIndex{
		entries: make([]indexEntry, 0, len(neighborhoods)),
		byID:    make(map[int]indexEntry, len(neighborhoods)),
	}
	for _, n := range neighborhoods {
		entry := indexEntry{
			ID:         n.ID,
			Name:       n.Name,
			Label:      n.Label,
			Normalized: geo.NormalizeSearchValue(n.Name),
			Tokens:     geo.Tokenize(n.Name),
		}
		idx.entries = append(idx.entries, entry)
		idx.byID[entry.ID] = entry
	}

	s.index.Store(idx)
	s.metrics.RecordIndexRebuild(len(idx.entries))
	slog.Info("NIL index rebuilt", "entries", len(idx.entries))
	return len(idx.entries), nil
}

// Size returns the entry count of the current index
func (s *ResolverService) Size() int {
	return len(s.index.Load().entries)
}

// Resolve maps input to a neighborhood. Purely numeric input and
// "Name (123)" labels short-circuit to an id lookup with confidence 1.
// Everything else is scored against the index: exact normalized
// equality is worth 3, each query token found as a substring of the
// entry's normalized name is worth 1. Ties go to the shorter name.
func (s *ResolverService) Resolve(input string) (*models.ResolvedMatch, bool) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return nil, false
	}

	idx := s.index.Load()

	if pureNumericRegex.MatchString(raw) {
		if id, err := strconv.Atoi(raw); err == nil {
			if entry, ok := idx.byID[id]; ok {
				return s.idMatch(entry), true
			}
		}
	}

	if m := parenIDRegex.FindStringSubmatch(raw); m != nil {
		if id, err := strconv.Atoi(m[1]); err == nil {
			if entry, ok := idx.byID[id]; ok {
				return s.idMatch(entry), true
			}
		}
	}

	queryTokens := geo.Tokenize(raw)
	normalizedQuery := geo.NormalizeSearchValue(raw)

	var best *indexEntry
	bestScore := 0
	for i := range idx.entries {
		entry := &idx.entries[i]
		score := 0
		if normalizedQuery != "" && entry.Normalized == normalizedQuery {
			score += 3
		}
		for _, token := range queryTokens {
			if strings.Contains(entry.Normalized, token) {
				score++
			}
		}

		if best == nil || score > bestScore ||
			(score == bestScore && len(entry.Normalized) < len(best.Normalized)) {
			best = entry
			bestScore = score
		}
	}

	if best == nil || bestScore == 0 {
		s.metrics.RecordResolutionMiss()
		return nil, false
	}

	confidence := 0.5
	if len(queryTokens) > 0 {
		confidence = math.Min(1, float64(bestScore)/float64(len(queryTokens)))
		confidence = math.Round(confidence*100) / 100
	}

	s.metrics.RecordResolution(models.MatchTypeFuzzy)
	return &models.ResolvedMatch{
		ID:         best.ID,
		Name:       best.Name,
		Label:      best.Label,
		MatchType:  models.MatchTypeFuzzy,
		Confidence: confidence,
	}, true
}

func (s *ResolverService) idMatch(entry indexEntry) *models.ResolvedMatch {
	s.metrics.RecordResolution(models.MatchTypeID)
	return &models.ResolvedMatch{
		ID:         entry.ID,
		Name:       entry.Name,
		Label:      entry.Label,
		MatchType:  models.MatchTypeID,
		Confidence: 1,
	}
}
