package entities

import (
	"encoding/json"
	"fmt"
)

type RevelationType string

const (
	RevelationMeccan  RevelationType = "Meccan"
	RevelationMedinan RevelationType = "Medinan"
)

// SurahCount is the number of surahs in the Quran.
const SurahCount = 114

// Surah is one chapter of the Quran. Immutable once fetched from the API.
type Surah struct {
	Number                 int            `json:"number"`
	Name                   string         `json:"name"` // Arabic-script title
	EnglishName            string         `json:"englishName"`
	EnglishNameTranslation string         `json:"englishNameTranslation"`
	NumberOfAyahs          int            `json:"numberOfAyahs"`
	RevelationType         RevelationType `json:"revelationType"`
}

// Sajda marks a verse of prostration. The API encodes it as either a bare
// false or an object with id/recommended/obligatory fields.
type Sajda struct {
	Required    bool `json:"-"`
	ID          int  `json:"id,omitempty"`
	Recommended bool `json:"recommended,omitempty"`
	Obligatory  bool `json:"obligatory,omitempty"`
}

func (s *Sajda) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*s = Sajda{Required: flag}
		return nil
	}

	var obj struct {
		ID          int  `json:"id"`
		Recommended bool `json:"recommended"`
		Obligatory  bool `json:"obligatory"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode sajda: %w", err)
	}
	*s = Sajda{Required: true, ID: obj.ID, Recommended: obj.Recommended, Obligatory: obj.Obligatory}
	return nil
}

func (s Sajda) MarshalJSON() ([]byte, error) {
	if !s.Required {
		return []byte("false"), nil
	}
	type plain Sajda
	return json.Marshal(plain(s))
}

// Ayah is one verse. Number is the global ordinal across the whole text,
// NumberInSurah the 1-based position within its surah.
type Ayah struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
	Juz           int    `json:"juz"`
	Manzil        int    `json:"manzil"`
	Page          int    `json:"page"`
	Ruku          int    `json:"ruku"`
	HizbQuarter   int    `json:"hizbQuarter"`
	Sajda         Sajda  `json:"sajda"`
}

// SurahDetail is a surah together with its full ordered verse list.
type SurahDetail struct {
	Surah
	Ayahs []Ayah `json:"ayahs"`
}

// SurahRef is the abbreviated surah summary embedded in search results.
type SurahRef struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
}

// AyahRef is the abbreviated verse summary embedded in search results.
type AyahRef struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
}

// SearchResult pairs a matched verse with its surah. Result sets are owned
// by the last search only and replaced wholesale by the next one.
type SearchResult struct {
	Surah      SurahRef `json:"surah"`
	Ayah       AyahRef  `json:"ayah"`
	MatchScore float64  `json:"matchScore"`
}

// RandomAyah is a single verse with its parent surah summary embedded,
// as returned by the random-verse endpoint.
type RandomAyah struct {
	Ayah
	Surah Surah `json:"surah"`
}

// IsValidSurahNumber reports whether n is a valid surah number.
func IsValidSurahNumber(n int) bool {
	return n >= 1 && n <= SurahCount
}
