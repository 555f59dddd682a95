// Package store implements the two client-side state stores: the content
// cache over the remote API and the locally-owned user data.
package store

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/hmaged/mushaf/internal/entities"
	"github.com/hmaged/mushaf/internal/format"
)

// ContentClient is the remote API surface the content store depends on.
type ContentClient interface {
	GetSurahs(ctx context.Context) ([]entities.Surah, error)
	GetSurah(ctx context.Context, number int) (*entities.SurahDetail, error)
	SearchVerses(ctx context.Context, query string, surahNumber int) ([]entities.SearchResult, int, error)
	GetRandomAyah(ctx context.Context) (*entities.RandomAyah, error)
}

// SnapshotStore persists opaque store state between sessions.
type SnapshotStore interface {
	LoadSnapshot(name string) ([]byte, error)
	SaveSnapshot(name string, data []byte) error
}

const contentSnapshotName = "content-store"

// minQueryLength is the shortest trimmed query that triggers a remote
// search; anything shorter just clears the result set.
const minQueryLength = 2

// ContentStore caches remote Quran content: the surah list (for the whole
// session), the currently open surah and the latest search results.
//
// Overlapping remote calls are not sequenced: when two fetches race, the
// one that completes last wins, regardless of issue order. There is no
// cancellation of in-flight calls.
type ContentStore struct {
	client    ContentClient
	snapshots SnapshotStore
	logger    *zap.Logger
	listeners listenerSet

	mu            sync.Mutex
	surahs        []entities.Surah
	currentSurah  *entities.SurahDetail
	searchResults []entities.SearchResult
	loading       bool
	searching     bool
	lastError     string
	searchQuery   string
	searchCount   int
}

// contentSnapshot is the persisted subset of the store's state. Loading
// flags, errors and search state are deliberately transient.
type contentSnapshot struct {
	Surahs []entities.Surah `json:"surahs"`
}

// NewContentStore creates a content store and restores the persisted surah
// list, if any. snapshots may be nil to disable persistence.
func NewContentStore(client ContentClient, snapshots SnapshotStore, logger *zap.Logger) *ContentStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ContentStore{
		client:    client,
		snapshots: snapshots,
		logger:    logger,
	}
	s.restore()
	return s
}

func (s *ContentStore) restore() {
	if s.snapshots == nil {
		return
	}
	data, err := s.snapshots.LoadSnapshot(contentSnapshotName)
	if err != nil {
		s.logger.Warn("could not load content snapshot", zap.Error(err))
		return
	}
	if len(data) == 0 {
		return
	}
	var snap contentSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("discarding corrupt content snapshot", zap.Error(err))
		return
	}
	s.surahs = snap.Surahs
}

// persistSurahs mirrors the surah list to local storage. Best effort: a
// failed write is logged and otherwise ignored.
func (s *ContentStore) persistSurahs(surahs []entities.Surah) {
	if s.snapshots == nil {
		return
	}
	data, err := json.Marshal(contentSnapshot{Surahs: surahs})
	if err != nil {
		s.logger.Warn("could not encode content snapshot", zap.Error(err))
		return
	}
	if err := s.snapshots.SaveSnapshot(contentSnapshotName, data); err != nil {
		s.logger.Warn("could not save content snapshot", zap.Error(err))
	}
}

// LoadSurahList fetches the surah list. Once the list is populated (by a
// fetch or a restored snapshot) the call is a no-op for the rest of the
// session; there is no expiry.
func (s *ContentStore) LoadSurahList(ctx context.Context) error {
	s.mu.Lock()
	if len(s.surahs) > 0 {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
	s.listeners.broadcast()

	surahs, err := s.client.GetSurahs(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
		s.mu.Unlock()
		s.listeners.broadcast()
		s.logger.Warn("surah list fetch failed", zap.Error(err))
		return err
	}
	s.surahs = surahs
	s.lastError = ""
	s.mu.Unlock()
	s.listeners.broadcast()

	s.persistSurahs(surahs)
	return nil
}

// LoadSurah fetches one surah with its verses and replaces the current
// surah wholesale. Every call hits the remote API; surah details are not
// cached.
func (s *ContentStore) LoadSurah(ctx context.Context, number int) error {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
	s.listeners.broadcast()

	detail, err := s.client.GetSurah(ctx, number)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.currentSurah = nil
		s.lastError = err.Error()
		s.mu.Unlock()
		s.listeners.broadcast()
		s.logger.Warn("surah fetch failed", zap.Int("surah", number), zap.Error(err))
		return err
	}
	s.currentSurah = detail
	s.lastError = ""
	s.mu.Unlock()
	s.listeners.broadcast()
	return nil
}

// Search queries verse text, optionally scoped to one surah (surahNumber 0
// searches the whole text). Queries shorter than two characters after
// trimming clear the result set without a remote call.
func (s *ContentStore) Search(ctx context.Context, query string, surahNumber int) error {
	query = format.SanitizeQuery(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		s.mu.Lock()
		s.searchResults = nil
		s.searchQuery = ""
		s.searchCount = 0
		s.mu.Unlock()
		s.listeners.broadcast()
		return nil
	}

	s.mu.Lock()
	s.searching = true
	s.lastError = ""
	s.searchQuery = query
	s.mu.Unlock()
	s.listeners.broadcast()

	matches, count, err := s.client.SearchVerses(ctx, query, surahNumber)

	s.mu.Lock()
	s.searching = false
	if err != nil {
		s.searchResults = nil
		s.searchCount = 0
		s.lastError = err.Error()
		s.mu.Unlock()
		s.listeners.broadcast()
		s.logger.Warn("search failed", zap.String("query", query), zap.Error(err))
		return err
	}
	s.searchResults = matches
	s.searchCount = count
	s.mu.Unlock()
	s.listeners.broadcast()
	return nil
}

// ClearSearch resets all search state. Always succeeds, synchronously.
func (s *ContentStore) ClearSearch() {
	s.mu.Lock()
	s.searchResults = nil
	s.searchQuery = ""
	s.searchCount = 0
	s.searching = false
	s.mu.Unlock()
	s.listeners.broadcast()
}

// RandomAyah fetches one random verse. The result is returned directly and
// not retained as store state.
func (s *ContentStore) RandomAyah(ctx context.Context) (*entities.RandomAyah, error) {
	return s.client.GetRandomAyah(ctx)
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function.
func (s *ContentStore) Subscribe(fn func()) func() {
	return s.listeners.subscribe(fn)
}

// Surahs returns the cached surah list in canonical order.
func (s *ContentStore) Surahs() []entities.Surah {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.surahs)
}

// CurrentSurah returns the currently open surah, or nil. The returned
// value is read-only.
func (s *ContentStore) CurrentSurah() *entities.SurahDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentSurah
}

// SearchResults returns the latest result set in API relevance order.
func (s *ContentStore) SearchResults() []entities.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.searchResults)
}

// IsLoading reports whether a surah list or surah detail fetch is in
// flight.
func (s *ContentStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsSearching reports whether a search is in flight.
func (s *ContentStore) IsSearching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searching
}

// LastError returns the human-readable message of the most recent failed
// operation, or "" after a success.
func (s *ContentStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// SearchQuery returns the query of the latest executed search.
func (s *ContentStore) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// SearchCount returns the API-reported total match count of the latest
// search.
func (s *ContentStore) SearchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchCount
}
