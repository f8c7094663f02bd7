package sheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const DefaultColumnWidth = 20.0

type Options struct {
	ColumnWidth float64
}

func (o Options) columnWidth() float64 {
	if o.ColumnWidth <= 0 {
		return DefaultColumnWidth
	}
	return o.ColumnWidth
}

// Render builds an in-memory workbook. The caller closes the returned file.
func Render(wb Workbook, opts Options) (*excelize.File, error) {
	if len(wb.Sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	f := excelize.NewFile()
	styles, err := newStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create styles: %w", err)
	}

	for i, sh := range wb.Sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sh.Name)
		} else {
			_, err = f.NewSheet(sh.Name)
		}
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", sh.Name, err)
		}
		if err := renderSheet(f, styles, sh, opts.columnWidth()); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("render sheet %q: %w", sh.Name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Save renders wb and writes it to path, replacing any existing file.
func Save(wb Workbook, path string, opts Options) error {
	f, err := Render(wb, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

type sheetWriter struct {
	f      *excelize.File
	name   string
	addrs  map[string]string
	maxCol int
}

func renderSheet(f *excelize.File, styles map[Style]styleSet, sh Sheet, width float64) error {
	addrs, err := sh.Addresses()
	if err != nil {
		return err
	}
	w := &sheetWriter{f: f, name: sh.Name, addrs: addrs}

	for _, sec := range sh.Sections {
		if err := w.section(styles[sec.Style], sec); err != nil {
			return err
		}
	}
	for _, tbl := range sh.Tables {
		if err := w.table(styles[tbl.Style], tbl); err != nil {
			return err
		}
	}

	if w.maxCol == 0 {
		return nil
	}
	last, err := excelize.ColumnNumberToName(w.maxCol)
	if err != nil {
		return err
	}
	return f.SetColWidth(sh.Name, "A", last, width)
}

func (w *sheetWriter) section(st styleSet, sec Section) error {
	if err := w.title(st, sec.Title, sec.Col, sec.Row); err != nil {
		return err
	}
	for i, field := range sec.Fields {
		row := sec.Row + 1 + i
		if err := w.put(sec.Col, row, field.Label, st.label); err != nil {
			return err
		}
		if err := w.field(sec.Col+1, row, field, st.value); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) table(st styleSet, tbl Table) error {
	if tbl.Title != "" {
		if err := w.title(st, tbl.Title, tbl.Col, tbl.Row); err != nil {
			return err
		}
	}
	header := tbl.headerRow()
	for c, h := range tbl.Headers {
		if err := w.put(tbl.Col+c, header, h, st.header); err != nil {
			return err
		}
	}
	for r, row := range tbl.Rows {
		for c, field := range row {
			if err := w.field(tbl.Col+c, header+1+r, field, st.value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *sheetWriter) title(st styleSet, title string, col, row int) error {
	if err := w.put(col, row, title, st.title); err != nil {
		return err
	}
	if !st.merge {
		return nil
	}
	start, _ := excelize.CoordinatesToCellName(col, row)
	end, err := excelize.CoordinatesToCellName(col+2, row)
	if err != nil {
		return err
	}
	w.track(col + 2)
	if err := w.f.MergeCell(w.name, start, end); err != nil {
		return err
	}
	return w.f.SetCellStyle(w.name, start, end, st.title)
}

func (w *sheetWriter) put(col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	w.track(col)
	if err := w.f.SetCellValue(w.name, cell, value); err != nil {
		return err
	}
	return w.f.SetCellStyle(w.name, cell, cell, style)
}

func (w *sheetWriter) field(col, row int, field Field, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	w.track(col)

	switch {
	case field.Formula != "":
		formula, err := resolve(field.Formula, w.addrs)
		if err != nil {
			return err
		}
		if err := w.f.SetCellFormula(w.name, cell, formula); err != nil {
			return err
		}
	default:
		if value, ok := cellValue(field.Value); ok {
			if err := w.f.SetCellValue(w.name, cell, value); err != nil {
				return err
			}
		}
	}
	return w.f.SetCellStyle(w.name, cell, cell, style)
}

func (w *sheetWriter) track(col int) {
	if col > w.maxCol {
		w.maxCol = col
	}
}

// cellValue converts decimals to float64; nil values leave the cell blank.
func cellValue(v any) (any, bool) {
	switch value := v.(type) {
	case nil:
		return nil, false
	case decimal.Decimal:
		return value.InexactFloat64(), true
	case *decimal.Decimal:
		if value == nil {
			return nil, false
		}
		return value.InexactFloat64(), true
	default:
		return value, true
	}
}
