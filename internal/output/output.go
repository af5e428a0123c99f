// Package output persists one surah's records per author. Every sink
// overwrites what an earlier run wrote for the same (author, surah).
package output

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/brogergvhs/tafsird/internal/tafsir"
	"github.com/brogergvhs/tafsird/internal/util"
)

type Sink interface {
	Name() string
	// Write stores records for (author, surah) and returns where they went.
	Write(ctx context.Context, author string, surah int, records []tafsir.Record) (string, error)
}

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Path is <dir>/<author>/<surah>.<ext>.
func Path(dir, author string, surah int, ext string) string {
	return filepath.Join(dir, author, strconv.Itoa(surah)+"."+ext)
}

// NewSinks builds file sinks for the requested formats.
func NewSinks(dir string, formats []string) ([]Sink, error) {
	var out []Sink
	seen := map[string]bool{}
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true

		switch f {
		case FormatJSON:
			out = append(out, JSONSink{Dir: dir})
		case FormatCSV:
			out = append(out, CSVSink{Dir: dir})
		default:
			return nil, fmt.Errorf("unknown output format %q (use json, csv)", f)
		}
	}
	return out, nil
}

type JSONSink struct {
	Dir string
}

func (JSONSink) Name() string { return FormatJSON }

func (s JSONSink) Write(_ context.Context, author string, surah int, records []tafsir.Record) (string, error) {
	path := Path(s.Dir, author, surah, FormatJSON)
	if records == nil {
		records = []tafsir.Record{}
	}

	err := util.WriteFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	})
	if err != nil {
		return "", fmt.Errorf("write json: %w", err)
	}
	return path, nil
}

func ReadJSON(path string) ([]tafsir.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var out []tafsir.Record
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

var csvHeader = []string{
	"surah_number",
	"surah_name_arabic",
	"surah_name_english",
	"ayah_number",
	"tafsir_author",
	"tafsir_author_name",
	"tafsir_text",
	"url",
	"extraction_timestamp",
}

type CSVSink struct {
	Dir string
}

func (CSVSink) Name() string { return FormatCSV }

func (s CSVSink) Write(_ context.Context, author string, surah int, records []tafsir.Record) (string, error) {
	path := Path(s.Dir, author, surah, FormatCSV)

	err := util.WriteFileAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
		for _, r := range records {
			if err := cw.Write(csvRow(r)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return path, nil
}

func csvRow(r tafsir.Record) []string {
	return []string{
		strconv.Itoa(r.SurahNumber),
		r.SurahNameArabic,
		r.SurahNameEnglish,
		strconv.Itoa(r.AyahNumber),
		r.Author,
		r.AuthorName,
		r.Text,
		r.URL,
		r.ExtractedAt,
	}
}

func ReadCSV(path string) ([]tafsir.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("decode %s: missing header", path)
	}

	out := make([]tafsir.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("decode %s: row %d has %d fields", path, i+2, len(row))
		}
		surah, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("decode %s: row %d: %w", path, i+2, err)
		}
		ayah, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("decode %s: row %d: %w", path, i+2, err)
		}
		out = append(out, tafsir.Record{
			SurahNumber:      surah,
			SurahNameArabic:  row[1],
			SurahNameEnglish: row[2],
			AyahNumber:       ayah,
			Author:           row[4],
			AuthorName:       row[5],
			Text:             row[6],
			URL:              row[7],
			ExtractedAt:      row[8],
		})
	}
	return out, nil
}
