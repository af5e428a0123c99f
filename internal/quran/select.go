package quran

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseRange reads a surah range such as "2-5". A single number selects one
// surah.
func ParseRange(rng string) (int, int, error) {
	rng = strings.TrimSpace(rng)
	if rng == "" {
		return 0, 0, &InputError{Field: "range", Reason: "empty"}
	}

	parts := strings.Split(rng, "-")
	if len(parts) == 1 {
		n, err := ParseSurah(parts[0])
		return n, n, err
	}
	if len(parts) != 2 {
		return 0, 0, &InputError{Field: "range", Value: rng, Reason: "expected <from>-<to>"}
	}

	start, err := ParseSurah(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseSurah(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, &InputError{Field: "range", Value: rng, Reason: "start is after end"}
	}

	return start, end, nil
}

// ParseList reads a comma separated surah list such as "1,18,36". The
// result is ascending with duplicates removed.
func ParseList(list string) ([]int, error) {
	seen := map[int]bool{}
	var out []int

	for p := range strings.SplitSeq(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := ParseSurah(p)
		if err != nil {
			return nil, err
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}

	if len(out) == 0 {
		return nil, &InputError{Field: "list", Value: list, Reason: "no surah numbers"}
	}

	sort.Ints(out)
	return out, nil
}

func ParseSurah(s string) (int, error) {
	n, err := atoi(s)
	if err != nil {
		return 0, &InputError{Field: "surah", Value: strings.TrimSpace(s), Reason: "not a number"}
	}
	if _, err := Lookup(n); err != nil {
		return 0, err
	}
	return n, nil
}

func ParseAyah(surah int, s string) (int, error) {
	sur, err := Lookup(surah)
	if err != nil {
		return 0, err
	}
	n, err := atoi(s)
	if err != nil {
		return 0, &InputError{Field: "ayah", Value: strings.TrimSpace(s), Reason: "not a number"}
	}
	if err := sur.CheckAyah(n); err != nil {
		return 0, err
	}
	return n, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("atoi: %w", err)
	}
	return n, nil
}
