package store

import (
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hmaged/mushaf/internal/entities"
)

const userSnapshotName = "user-store"

// UserDataStore owns all user-created data: bookmarks, per-surah reading
// progress and display preferences. Mutations are synchronous; each one is
// mirrored to local storage with a best-effort write. The in-memory state
// is the source of truth.
type UserDataStore struct {
	snapshots SnapshotStore
	logger    *zap.Logger
	listeners listenerSet

	mu        sync.Mutex
	bookmarks []entities.Bookmark
	progress  []entities.ReadingProgress
	prefs     entities.UserPreferences
}

// userSnapshot is the persisted full state of the store.
type userSnapshot struct {
	Bookmarks       []entities.Bookmark        `json:"bookmarks"`
	ReadingProgress []entities.ReadingProgress `json:"readingProgress"`
	Preferences     entities.UserPreferences   `json:"preferences"`
}

// NewUserDataStore creates a user data store and restores persisted state,
// if any. snapshots may be nil to disable persistence.
func NewUserDataStore(snapshots SnapshotStore, logger *zap.Logger) *UserDataStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &UserDataStore{
		snapshots: snapshots,
		logger:    logger,
		prefs:     entities.DefaultPreferences(),
	}
	s.restore()
	return s
}

func (s *UserDataStore) restore() {
	if s.snapshots == nil {
		return
	}
	data, err := s.snapshots.LoadSnapshot(userSnapshotName)
	if err != nil {
		s.logger.Warn("could not load user snapshot", zap.Error(err))
		return
	}
	if len(data) == 0 {
		return
	}
	var snap userSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("discarding corrupt user snapshot", zap.Error(err))
		return
	}
	s.bookmarks = snap.Bookmarks
	s.progress = snap.ReadingProgress
	s.prefs = snap.Preferences
}

// snapshotLocked serializes the current state. Callers must hold s.mu.
func (s *UserDataStore) snapshotLocked() []byte {
	data, err := json.Marshal(userSnapshot{
		Bookmarks:       s.bookmarks,
		ReadingProgress: s.progress,
		Preferences:     s.prefs,
	})
	if err != nil {
		s.logger.Warn("could not encode user snapshot", zap.Error(err))
		return nil
	}
	return data
}

// persist mirrors serialized state to local storage. Best effort: a failed
// write is logged and never surfaced to the caller.
func (s *UserDataStore) persist(data []byte) {
	if s.snapshots == nil || data == nil {
		return
	}
	if err := s.snapshots.SaveSnapshot(userSnapshotName, data); err != nil {
		s.logger.Warn("could not save user snapshot", zap.Error(err))
	}
}

// AddBookmark bookmarks a verse with an optional note. If the verse is
// already bookmarked the call is a silent no-op.
func (s *UserDataStore) AddBookmark(surahNumber, ayahNumber int, note string) {
	s.mu.Lock()
	if s.findBookmarkLocked(surahNumber, ayahNumber) >= 0 {
		s.mu.Unlock()
		return
	}
	s.bookmarks = append(s.bookmarks, entities.Bookmark{
		ID:          uuid.NewString(),
		SurahNumber: surahNumber,
		AyahNumber:  ayahNumber,
		Note:        note,
		CreatedAt:   time.Now(),
	})
	data := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(data)
	s.listeners.broadcast()
}

// RemoveBookmark deletes the bookmark with the given id. Unknown ids are a
// silent no-op.
func (s *UserDataStore) RemoveBookmark(id string) {
	s.mu.Lock()
	kept := slices.DeleteFunc(slices.Clone(s.bookmarks), func(b entities.Bookmark) bool {
		return b.ID == id
	})
	if len(kept) == len(s.bookmarks) {
		s.mu.Unlock()
		return
	}
	s.bookmarks = kept
	data := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(data)
	s.listeners.broadcast()
}

// UpdateBookmark replaces the note of the bookmark with the given id,
// preserving its identity, target verse and creation time. Unknown ids are
// a silent no-op.
func (s *UserDataStore) UpdateBookmark(id, note string) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.bookmarks, func(b entities.Bookmark) bool {
		return b.ID == id
	})
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.bookmarks[idx].Note = note
	data := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(data)
	s.listeners.broadcast()
}

// IsBookmarked reports whether the verse is bookmarked.
func (s *UserDataStore) IsBookmarked(surahNumber, ayahNumber int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findBookmarkLocked(surahNumber, ayahNumber) >= 0
}

// GetBookmark returns the bookmark for the verse, if any.
func (s *UserDataStore) GetBookmark(surahNumber, ayahNumber int) (entities.Bookmark, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.findBookmarkLocked(surahNumber, ayahNumber)
	if idx < 0 {
		return entities.Bookmark{}, false
	}
	return s.bookmarks[idx], true
}

// Bookmarks returns all bookmarks in creation order.
func (s *UserDataStore) Bookmarks() []entities.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookmarks)
}

func (s *UserDataStore) findBookmarkLocked(surahNumber, ayahNumber int) int {
	return slices.IndexFunc(s.bookmarks, func(b entities.Bookmark) bool {
		return b.SurahNumber == surahNumber && b.AyahNumber == ayahNumber
	})
}

// UpdateProgress records ayahNumber as the last-visited verse of the
// surah. Upsert semantics: exactly one progress entry exists per surah.
func (s *UserDataStore) UpdateProgress(surahNumber, ayahNumber int) {
	s.mu.Lock()
	entry := entities.ReadingProgress{
		SurahNumber: surahNumber,
		AyahNumber:  ayahNumber,
		LastReadAt:  time.Now(),
	}
	idx := slices.IndexFunc(s.progress, func(p entities.ReadingProgress) bool {
		return p.SurahNumber == surahNumber
	})
	if idx >= 0 {
		s.progress[idx] = entry
	} else {
		s.progress = append(s.progress, entry)
	}
	data := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(data)
	s.listeners.broadcast()
}

// GetProgress returns the reading progress for the surah, if any.
func (s *UserDataStore) GetProgress(surahNumber int) (entities.ReadingProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.progress, func(p entities.ReadingProgress) bool {
		return p.SurahNumber == surahNumber
	})
	if idx < 0 {
		return entities.ReadingProgress{}, false
	}
	return s.progress[idx], true
}

// Progress returns all reading progress entries.
func (s *UserDataStore) Progress() []entities.ReadingProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.progress)
}

// Preferences returns the current display preferences.
func (s *UserDataStore) Preferences() entities.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// UpdatePreferences merges the non-nil fields of update into the current
// preferences; all other fields keep their prior values.
func (s *UserDataStore) UpdatePreferences(update entities.PreferencesUpdate) {
	s.mu.Lock()
	if update.FontSize != nil {
		s.prefs.FontSize = *update.FontSize
	}
	if update.Theme != nil {
		s.prefs.Theme = *update.Theme
	}
	if update.Language != nil {
		s.prefs.Language = *update.Language
	}
	if update.ShowTranslation != nil {
		s.prefs.ShowTranslation = *update.ShowTranslation
	}
	if update.AutoScroll != nil {
		s.prefs.AutoScroll = *update.AutoScroll
	}
	if update.PreferredReciter != nil {
		s.prefs.PreferredReciter = *update.PreferredReciter
	}
	data := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(data)
	s.listeners.broadcast()
}

// ResetPreferences replaces the preferences wholesale with the fixed
// default record.
func (s *UserDataStore) ResetPreferences() {
	s.mu.Lock()
	s.prefs = entities.DefaultPreferences()
	data := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(data)
	s.listeners.broadcast()
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function.
func (s *UserDataStore) Subscribe(fn func()) func() {
	return s.listeners.subscribe(fn)
}
