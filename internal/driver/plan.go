package driver

import (
	"fmt"
	"strings"

	"github.com/brogergvhs/tafsird/internal/providers"
	"github.com/brogergvhs/tafsird/internal/quran"
)

type Mode string

const (
	ModeAyah  Mode = "ayah"
	ModeSurah Mode = "surah"
	ModeRange Mode = "range"
	ModeList  Mode = "list"
	ModeAll   Mode = "all"
)

var Modes = []Mode{ModeAyah, ModeSurah, ModeRange, ModeList, ModeAll}

func (m Mode) Description() string {
	switch m {
	case ModeAyah:
		return "Extract single ayah"
	case ModeSurah:
		return "Extract entire surah"
	case ModeRange:
		return "Extract a range of surahs"
	case ModeList:
		return "Extract a list of surahs"
	case ModeAll:
		return "Extract the whole Quran (114 surahs)"
	}
	return string(m)
}

func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", &quran.InputError{Field: "mode", Value: s, Reason: "use ayah, surah, range, list or all"}
}

// Request is everything needed to run one extraction, independent of how it
// was gathered.
type Request struct {
	Author string
	Mode   Mode

	Surah int
	Ayah  int

	From int
	To   int

	Surahs []int
}

// Job is one surah's worth of work. It produces at most one output per sink.
type Job struct {
	Surah     quran.Surah
	FirstAyah int
	LastAyah  int
}

func (j Job) Ayahs() int {
	return j.LastAyah - j.FirstAyah + 1
}

func (j Job) String() string {
	if j.FirstAyah == 1 && j.LastAyah == j.Surah.Ayahs {
		return fmt.Sprintf("surah %d (%s, %d ayahs)", j.Surah.Number, j.Surah.NameEnglish, j.Surah.Ayahs)
	}
	if j.FirstAyah == j.LastAyah {
		return fmt.Sprintf("surah %d (%s) ayah %d", j.Surah.Number, j.Surah.NameEnglish, j.FirstAyah)
	}
	return fmt.Sprintf("surah %d (%s) ayahs %d-%d", j.Surah.Number, j.Surah.NameEnglish, j.FirstAyah, j.LastAyah)
}

// Plan validates req and expands it into per-surah jobs in ascending surah
// order. Nothing is fetched, so bad input fails before any network traffic.
func Plan(req Request) (providers.Profile, []Job, error) {
	profile, err := providers.Lookup(req.Author)
	if err != nil {
		return providers.Profile{}, nil, err
	}

	var nums []int
	switch req.Mode {
	case ModeAyah:
		ref, err := quran.NewAyahRef(req.Surah, req.Ayah)
		if err != nil {
			return providers.Profile{}, nil, err
		}
		s, _ := quran.Lookup(ref.Surah)
		return profile, []Job{{Surah: s, FirstAyah: ref.Ayah, LastAyah: ref.Ayah}}, nil

	case ModeSurah:
		nums = []int{req.Surah}

	case ModeRange:
		if _, err := quran.Lookup(req.From); err != nil {
			return providers.Profile{}, nil, err
		}
		if _, err := quran.Lookup(req.To); err != nil {
			return providers.Profile{}, nil, err
		}
		if req.From > req.To {
			return providers.Profile{}, nil, &quran.InputError{
				Field:  "range",
				Value:  fmt.Sprintf("%d-%d", req.From, req.To),
				Reason: "start is after end",
			}
		}
		for n := req.From; n <= req.To; n++ {
			nums = append(nums, n)
		}

	case ModeList:
		if len(req.Surahs) == 0 {
			return providers.Profile{}, nil, &quran.InputError{Field: "list", Reason: "no surah numbers"}
		}
		parts := make([]string, len(req.Surahs))
		for i, n := range req.Surahs {
			parts[i] = fmt.Sprint(n)
		}
		nums, err = quran.ParseList(strings.Join(parts, ","))
		if err != nil {
			return providers.Profile{}, nil, err
		}

	case ModeAll:
		for n := 1; n <= quran.SurahCount; n++ {
			nums = append(nums, n)
		}

	default:
		_, err := ParseMode(string(req.Mode))
		return providers.Profile{}, nil, err
	}

	jobs := make([]Job, 0, len(nums))
	for _, n := range nums {
		s, err := quran.Lookup(n)
		if err != nil {
			return providers.Profile{}, nil, err
		}
		jobs = append(jobs, Job{Surah: s, FirstAyah: 1, LastAyah: s.Ayahs})
	}

	return profile, jobs, nil
}
