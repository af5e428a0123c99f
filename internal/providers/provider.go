package providers

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/brogergvhs/tafsird/internal/quran"
	"github.com/brogergvhs/tafsird/internal/tafsir"
)

const (
	DefaultBaseURL  = "https://tafsir.app"
	DefaultAuthor   = "alrazi"
	defaultTemplate = "{base}/{author}/{surah}/{ayah}"
	defaultSelector = "#preloaded-text"
)

// Profile describes where one author's commentary lives and how to find it
// in the page. Adding an author is adding a row to profiles.
type Profile struct {
	Key         string
	Name        string
	URLTemplate string
	Selector    string
}

var profiles = []Profile{
	{Key: "alaloosi", Name: "Al-Alusi"},
	{Key: "alrazi", Name: "Al-Razi"},
	{Key: "ibn-katheer", Name: "Ibn Katheer"},
	{Key: "tabari", Name: "At-Tabari"},
	{Key: "qurtubi", Name: "Al-Qurtubi"},
	{Key: "ibn-aashoor", Name: "Ibn Ashur"},
	{Key: "iraab-daas", Name: "Iraab ul Quran"},
}

func withDefaults(p Profile) Profile {
	if p.URLTemplate == "" {
		p.URLTemplate = defaultTemplate
	}
	if p.Selector == "" {
		p.Selector = defaultSelector
	}
	return p
}

func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = withDefaults(p)
	}
	return out
}

func Keys() []string {
	keys := make([]string, len(profiles))
	for i, p := range profiles {
		keys[i] = p.Key
	}
	return keys
}

func Lookup(key string) (Profile, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, p := range profiles {
		if p.Key == key {
			return withDefaults(p), nil
		}
	}

	known := Keys()
	sort.Strings(known)
	return Profile{}, &quran.InputError{
		Field:  "author",
		Value:  key,
		Reason: "available: " + strings.Join(known, ", "),
	}
}

// URL expands the profile template for one ayah. An empty base falls back to
// DefaultBaseURL.
func (p Profile) URL(base string, ref quran.AyahRef) string {
	if base == "" {
		base = DefaultBaseURL
	}
	r := strings.NewReplacer(
		"{base}", strings.TrimRight(base, "/"),
		"{author}", p.Key,
		"{surah}", strconv.Itoa(ref.Surah),
		"{ayah}", strconv.Itoa(ref.Ayah),
	)
	return r.Replace(p.URLTemplate)
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Key)
}

type Scraper interface {
	GetTafsir(ctx context.Context, p Profile, ref quran.AyahRef) (tafsir.Record, error)
}
