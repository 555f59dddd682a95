package entities

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Bookmark is a user-created pointer to one verse. At most one bookmark
// exists per (surah, ayah) pair; ID and CreatedAt never change after
// creation.
type Bookmark struct {
	ID          string    `json:"id"`
	SurahNumber int       `json:"surahNumber"`
	AyahNumber  int       `json:"ayahNumber"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReadingProgress records the last-visited verse of a surah. Exactly one
// entry exists per surah; updates overwrite in place.
type ReadingProgress struct {
	SurahNumber int       `json:"surahNumber"`
	AyahNumber  int       `json:"ayahNumber"`
	LastReadAt  time.Time `json:"lastReadAt"`
}

// UserPreferences is the singleton display configuration record.
type UserPreferences struct {
	FontSize         int      `json:"fontSize"`
	Theme            Theme    `json:"theme"`
	Language         Language `json:"language"`
	ShowTranslation  bool     `json:"showTranslation"`
	AutoScroll       bool     `json:"autoScroll"`
	PreferredReciter string   `json:"preferredReciter,omitempty"`
}

// DefaultReciter is the edition identifier preselected for audio playback.
const DefaultReciter = "ar.alafasy"

// DefaultPreferences returns the fixed default preferences record.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		FontSize:         18,
		Theme:            ThemeLight,
		Language:         LanguageEnglish,
		ShowTranslation:  true,
		AutoScroll:       false,
		PreferredReciter: DefaultReciter,
	}
}

// PreferencesUpdate is a partial preferences change. Nil fields keep their
// prior values.
type PreferencesUpdate struct {
	FontSize         *int
	Theme            *Theme
	Language         *Language
	ShowTranslation  *bool
	AutoScroll       *bool
	PreferredReciter *string
}
