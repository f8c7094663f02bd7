package sheet

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testSheet() Sheet {
	return Sheet{
		Name: "Test",
		Sections: []Section{{
			Title: "BLOCK",
			Row:   2,
			Col:   1,
			Style: StyleBoxed,
			Fields: []Field{
				{Key: "a", Label: "A", Value: decimal.NewFromInt(2)},
				{Key: "b", Label: "B", Value: 3},
				{Key: "sum", Label: "Sum", Formula: "{a}+{b}"},
			},
		}},
		Tables: []Table{{
			Title:   "TABLE",
			Row:     7,
			Col:     4,
			Headers: []string{"X", "Y"},
			Rows: [][]Field{
				{{Key: "x_1", Value: 1}, {Key: "y_1", Formula: "{x_1}*{sum}"}},
				{{Key: "x_2", Value: 2}, {Key: "y_2", Value: (*decimal.Decimal)(nil)}},
			},
		}},
	}
}

func TestAddresses(t *testing.T) {
	addrs, err := testSheet().Addresses()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"a":   "B3",
		"b":   "B4",
		"sum": "B5",
		"x_1": "D9",
		"y_1": "E9",
		"x_2": "D10",
		"y_2": "E10",
	}, addrs)
}

func TestAddresses_DuplicateKey(t *testing.T) {
	sh := testSheet()
	sh.Tables[0].Rows[1][0].Key = "a"

	_, err := sh.Addresses()
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestResolve(t *testing.T) {
	addrs := map[string]string{"price": "B2", "pct": "B3"}

	got, err := resolve("{price}*{pct}/100+{price}", addrs)
	require.NoError(t, err)
	assert.Equal(t, "B2*B3/100+B2", got)

	got, err = resolve("SUM(B2:B3)", addrs)
	require.NoError(t, err)
	assert.Equal(t, "SUM(B2:B3)", got)

	_, err = resolve("{price}-{missing}", addrs)
	assert.ErrorIs(t, err, ErrUnknownReference)
}

func TestSectionAndTableRows(t *testing.T) {
	sh := testSheet()
	assert.Equal(t, 5, sh.Sections[0].LastRow())
	assert.Equal(t, 10, sh.Tables[0].LastRow())
	assert.Equal(t, 4, Table{Row: 4}.LastRow())
}

func TestBelow(t *testing.T) {
	assert.Equal(t, 20, below(20, 10, 15))
	assert.Equal(t, 24, below(20, 22, 15))
}

func TestRender(t *testing.T) {
	f, err := Render(Workbook{Sheets: []Sheet{testSheet()}}, Options{})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Test"}, f.GetSheetList())

	v, err := f.GetCellValue("Test", "A2")
	require.NoError(t, err)
	assert.Equal(t, "BLOCK", v)

	formula, err := f.GetCellFormula("Test", "B5")
	require.NoError(t, err)
	assert.Equal(t, "B3+B4", formula)

	formula, err = f.GetCellFormula("Test", "E9")
	require.NoError(t, err)
	assert.Equal(t, "D9*B5", formula)

	v, err = f.CalcCellValue("Test", "E9", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "5", v)

	v, err = f.GetCellValue("Test", "E10")
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = f.GetCellValue("Test", "D8")
	require.NoError(t, err)
	assert.Equal(t, "X", v)

	merged, err := f.GetMergeCells("Test")
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "A2", merged[0].GetStartAxis())
	assert.Equal(t, "C2", merged[0].GetEndAxis())

	width, err := f.GetColWidth("Test", "E")
	require.NoError(t, err)
	assert.Equal(t, DefaultColumnWidth, width)
}

func TestRender_Errors(t *testing.T) {
	_, err := Render(Workbook{}, Options{})
	assert.ErrorIs(t, err, ErrEmptyWorkbook)

	sh := testSheet()
	sh.Sections[0].Fields[2].Formula = "{a}+{nope}"
	_, err = Render(Workbook{Sheets: []Sheet{sh}}, Options{})
	assert.ErrorIs(t, err, ErrUnknownReference)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.xlsx")
	require.NoError(t, Save(Workbook{Sheets: []Sheet{testSheet()}}, path, Options{ColumnWidth: 12}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	width, err := f.GetColWidth("Test", "A")
	require.NoError(t, err)
	assert.Equal(t, 12.0, width)
}
