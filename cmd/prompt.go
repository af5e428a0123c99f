package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/brogergvhs/tafsird/internal/driver"
	"github.com/brogergvhs/tafsird/internal/providers"
	"github.com/brogergvhs/tafsird/internal/quran"

	"github.com/manifoldco/promptui"
)

// promptRequest fills the parts of req that were not given as flags.
func promptRequest(req *driver.Request, defaultAuthor string) error {
	if req.Author == "" {
		author, err := selectAuthor(defaultAuthor)
		if err != nil {
			return err
		}
		req.Author = author
	}

	if req.Mode == "" {
		mode, err := selectMode()
		if err != nil {
			return err
		}
		req.Mode = mode
	}

	var err error
	switch req.Mode {
	case driver.ModeAyah:
		if req.Surah == 0 {
			if req.Surah, err = promptSurah("Surah number (1-114)"); err != nil {
				return err
			}
		}
		if req.Ayah == 0 {
			if req.Ayah, err = promptAyah(req.Surah); err != nil {
				return err
			}
		}

	case driver.ModeSurah:
		if req.Surah == 0 {
			req.Surah, err = promptSurah("Surah number (1-114)")
		}

	case driver.ModeRange:
		if req.From == 0 {
			if req.From, err = promptSurah("Start surah number"); err != nil {
				return err
			}
		}
		if req.To == 0 {
			req.To, err = promptSurah("End surah number")
		}

	case driver.ModeList:
		if len(req.Surahs) == 0 {
			req.Surahs, err = promptList()
		}
	}

	return err
}

func selectAuthor(def string) (string, error) {
	profiles := providers.Profiles()

	cursor := 0
	for i, p := range profiles {
		if p.Key == def {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:     "Select tafsir author",
		Items:     profiles,
		CursorPos: cursor,
		Size:      len(profiles),
		Templates: &promptui.SelectTemplates{
			Active:   `▸ {{ .Name | cyan }} ({{ .Key }})`,
			Inactive: `  {{ .Name }} ({{ .Key }})`,
			Selected: `Author: {{ .Name | green }}`,
		},
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled")
	}

	return profiles[idx].Key, nil
}

func selectMode() (driver.Mode, error) {
	items := make([]string, len(driver.Modes))
	for i, m := range driver.Modes {
		items[i] = m.Description()
	}

	prompt := promptui.Select{
		Label: "Extraction option",
		Items: items,
		Size:  len(items),
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled")
	}

	return driver.Modes[idx], nil
}

func promptSurah(label string) (int, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			_, err := quran.ParseSurah(s)
			return err
		},
	}

	s, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("input cancelled")
	}

	return quran.ParseSurah(s)
}

func promptAyah(surah int) (int, error) {
	s, err := quran.Lookup(surah)
	if err != nil {
		return 0, err
	}

	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Ayah number (1-%d)", s.Ayahs),
		Validate: func(in string) error {
			_, err := quran.ParseAyah(surah, in)
			return err
		},
	}

	in, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("input cancelled")
	}

	return quran.ParseAyah(surah, in)
}

func promptList() ([]int, error) {
	prompt := promptui.Prompt{
		Label: "Surah numbers (comma separated)",
		Validate: func(s string) error {
			_, err := quran.ParseList(s)
			return err
		},
	}

	s, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("input cancelled")
	}

	return quran.ParseList(s)
}

func confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func surahsLabel(n int) string {
	if n == 1 {
		return "1 surah"
	}
	return strconv.Itoa(n) + " surahs"
}
