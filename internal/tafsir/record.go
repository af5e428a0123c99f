// Package tafsir defines the records produced by an extraction run and the
// errors that cause a single ayah to be skipped.
package tafsir

import (
	"time"

	"github.com/brogergvhs/tafsird/internal/quran"
)

const TimestampLayout = "2006-01-02 15:04:05"

// Record is the commentary of one author on one ayah. Field order is the
// column order of the JSON and CSV outputs.
type Record struct {
	SurahNumber      int    `json:"surah_number"`
	SurahNameArabic  string `json:"surah_name_arabic"`
	SurahNameEnglish string `json:"surah_name_english"`
	AyahNumber       int    `json:"ayah_number"`
	Author           string `json:"tafsir_author"`
	AuthorName       string `json:"tafsir_author_name"`
	Text             string `json:"tafsir_text"`
	URL              string `json:"url"`
	ExtractedAt      string `json:"extraction_timestamp"`
}

func NewRecord(s quran.Surah, ayah int, author, authorName, text, url string, at time.Time) Record {
	return Record{
		SurahNumber:      s.Number,
		SurahNameArabic:  s.NameArabic,
		SurahNameEnglish: s.NameEnglish,
		AyahNumber:       ayah,
		Author:           author,
		AuthorName:       authorName,
		Text:             text,
		URL:              url,
		ExtractedAt:      at.Format(TimestampLayout),
	}
}

func (r Record) Ref() quran.AyahRef {
	return quran.AyahRef{Surah: r.SurahNumber, Ayah: r.AyahNumber}
}

// Outcome is the result for one ayah: a record, or the reason it was
// skipped.
type Outcome struct {
	Ref    quran.AyahRef
	Record Record
	Err    error
}

func (o Outcome) Skipped() bool {
	return o.Err != nil
}

// Records keeps the successful outcomes, in order.
func Records(outcomes []Outcome) []Record {
	out := make([]Record, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.Skipped() {
			out = append(out, o.Record)
		}
	}
	return out
}

func CountSkipped(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Skipped() {
			n++
		}
	}
	return n
}
