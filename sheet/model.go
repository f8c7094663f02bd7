// Package sheet renders declarative workbook layouts to xlsx files.
//
// A layout is a list of sections (a title row followed by label/value rows)
// and tables (a header row followed by data rows) placed at fixed
// coordinates. Value cells either hold a literal or a formula template in
// which {key} stands for the cell of the field with that key on the same
// sheet.
package sheet

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptyWorkbook    = errors.New("workbook has no sheets")
	ErrUnknownReference = errors.New("unknown cell reference")
	ErrDuplicateKey     = errors.New("duplicate cell key")
)

type Style int

const (
	// StylePlain renders bold titles and labels only.
	StylePlain Style = iota
	// StyleHighlighted fills titles yellow and borders value cells.
	StyleHighlighted
	// StyleBoxed merges titles over three columns on a blue band and fills
	// value cells light yellow.
	StyleBoxed
)

// Field is one value cell. Exactly one of Value or Formula is rendered;
// Formula wins when both are set. Formula has no leading '='.
type Field struct {
	Key     string
	Label   string
	Value   any
	Formula string
}

// Section is a titled column of label/value pairs. Row and Col (1-based)
// locate the title; labels go below it in Col and values in Col+1.
type Section struct {
	Title  string
	Row    int
	Col    int
	Style  Style
	Fields []Field
}

// LastRow is the row of the last field, or the title row when empty.
func (s Section) LastRow() int {
	return s.Row + len(s.Fields)
}

// Table is a grid with a header row. The title, when set, takes the row
// above the headers.
type Table struct {
	Title   string
	Row     int
	Col     int
	Style   Style
	Headers []string
	Rows    [][]Field
}

func (t Table) headerRow() int {
	if t.Title == "" {
		return t.Row
	}
	return t.Row + 1
}

// LastRow is the row of the last data row.
func (t Table) LastRow() int {
	return t.headerRow() + len(t.Rows)
}

type Sheet struct {
	Name     string
	Sections []Section
	Tables   []Table
}

type Workbook struct {
	Sheets []Sheet
}

// Addresses maps every field key of the sheet to its cell name.
func (s Sheet) Addresses() (map[string]string, error) {
	addrs := make(map[string]string)
	add := func(key string, col, row int) error {
		if key == "" {
			return nil
		}
		if _, ok := addrs[key]; ok {
			return fmt.Errorf("%w: %q on sheet %q", ErrDuplicateKey, key, s.Name)
		}
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		addrs[key] = cell
		return nil
	}

	for _, sec := range s.Sections {
		for i, field := range sec.Fields {
			if err := add(field.Key, sec.Col+1, sec.Row+1+i); err != nil {
				return nil, err
			}
		}
	}
	for _, tbl := range s.Tables {
		for r, row := range tbl.Rows {
			for c, field := range row {
				if err := add(field.Key, tbl.Col+c, tbl.headerRow()+1+r); err != nil {
					return nil, err
				}
			}
		}
	}
	return addrs, nil
}

var referencePattern = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// resolve replaces every {key} in formula by its cell name.
func resolve(formula string, addrs map[string]string) (string, error) {
	var missing string
	out := referencePattern.ReplaceAllStringFunc(formula, func(match string) string {
		key := match[1 : len(match)-1]
		cell, ok := addrs[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return match
		}
		return cell
	})
	if missing != "" {
		return "", fmt.Errorf("%w: %q in %q", ErrUnknownReference, missing, formula)
	}
	return out, nil
}
