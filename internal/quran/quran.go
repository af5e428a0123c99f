// Package quran holds the canonical surah table and validates the surah and
// ayah numbers a user asks for.
package quran

import (
	"fmt"
)

const (
	SurahCount = 114
	AyahCount  = 6236
)

type Revelation string

const (
	Makkah  Revelation = "Makkah"
	Madinah Revelation = "Madinah"
)

type Surah struct {
	Number      int
	NameArabic  string
	NameEnglish string
	Ayahs       int
	Revelation  Revelation
}

func (s Surah) String() string {
	return fmt.Sprintf("%d. %s (%s)", s.Number, s.NameEnglish, s.NameArabic)
}

// AyahRef points at one ayah. Build it with NewAyahRef so the numbers are
// known to exist.
type AyahRef struct {
	Surah int
	Ayah  int
}

func (r AyahRef) String() string {
	return fmt.Sprintf("%d:%d", r.Surah, r.Ayah)
}

// InputError reports a surah or ayah number outside the canonical range.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func Lookup(n int) (Surah, error) {
	if n < 1 || n > SurahCount {
		return Surah{}, &InputError{
			Field:  "surah",
			Value:  fmt.Sprint(n),
			Reason: fmt.Sprintf("must be between 1 and %d", SurahCount),
		}
	}
	return table[n-1], nil
}

func All() []Surah {
	out := make([]Surah, SurahCount)
	copy(out, table[:])
	return out
}

func NewAyahRef(surah, ayah int) (AyahRef, error) {
	s, err := Lookup(surah)
	if err != nil {
		return AyahRef{}, err
	}
	if err := s.CheckAyah(ayah); err != nil {
		return AyahRef{}, err
	}
	return AyahRef{Surah: surah, Ayah: ayah}, nil
}

func (s Surah) CheckAyah(ayah int) error {
	if ayah < 1 || ayah > s.Ayahs {
		return &InputError{
			Field:  "ayah",
			Value:  fmt.Sprint(ayah),
			Reason: fmt.Sprintf("surah %d has ayahs 1-%d", s.Number, s.Ayahs),
		}
	}
	return nil
}

// Refs lists the ayahs first..last of the surah in canonical order.
func (s Surah) Refs(first, last int) ([]AyahRef, error) {
	if err := s.CheckAyah(first); err != nil {
		return nil, err
	}
	if err := s.CheckAyah(last); err != nil {
		return nil, err
	}
	if first > last {
		return nil, &InputError{
			Field:  "ayah range",
			Value:  fmt.Sprintf("%d-%d", first, last),
			Reason: "start is after end",
		}
	}

	out := make([]AyahRef, 0, last-first+1)
	for a := first; a <= last; a++ {
		out = append(out, AyahRef{Surah: s.Number, Ayah: a})
	}
	return out, nil
}
