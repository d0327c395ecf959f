package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

// LevelRow is one row of the level table.
type LevelRow struct {
	Number     int    `csv:"number"`
	Name       string `csv:"name"`
	Background string `csv:"background"`
	Palette    string `csv:"palette"` // Color names separated by '|'
}

// Colors splits the palette column into color names.
func (r LevelRow) Colors() []string {
	var out []string
	for _, c := range strings.Split(r.Palette, "|") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// LoadLevels reads the level table from customPath, or the embedded table when
// customPath is empty. Rows come back sorted by level number.
func LoadLevels(customPath string) ([]LevelRow, error) {
	data := defaultLevelsCSV
	source := "embedded levels.csv"
	if customPath != "" {
		var err error
		data, err = os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read level table %s: %w", customPath, err)
		}
		source = customPath
	}

	rows, err := ParseLevels(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level table %s: %w", source, err)
	}
	return rows, nil
}

// ParseLevels decodes and validates a level table.
// Level numbers must run from 1 without gaps.
func ParseLevels(data []byte) ([]LevelRow, error) {
	var rows []LevelRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("level table is empty")
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Number < rows[j].Number })
	for i, r := range rows {
		if r.Number != i+1 {
			return nil, fmt.Errorf("level numbers must be contiguous from 1, found %d at position %d", r.Number, i+1)
		}
		if len(r.Colors()) == 0 {
			return nil, fmt.Errorf("level %d has an empty palette", r.Number)
		}
	}
	return rows, nil
}
