package sheet

import "github.com/xuri/excelize/v2"

const (
	headerBlue  = "4F81BD"
	lightYellow = "FFFF99"
	yellow      = "FFFF00"
)

// styleSet holds the excelize style IDs of one Style.
type styleSet struct {
	title  int
	label  int
	value  int
	header int
	merge  bool
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func newStyles(f *excelize.File) (map[Style]styleSet, error) {
	center := &excelize.Alignment{Horizontal: "center"}
	bold := &excelize.Font{Bold: true}

	defs := map[Style][4]*excelize.Style{
		StylePlain: {
			{Font: bold, Alignment: center},
			{Font: bold},
			{},
			{Font: bold},
		},
		StyleHighlighted: {
			{Font: bold, Alignment: center, Fill: solid(yellow)},
			{Font: bold, Alignment: center},
			{Border: thinBorder()},
			{Font: bold},
		},
		StyleBoxed: {
			{Font: &excelize.Font{Bold: true, Color: "FFFFFF"}, Alignment: center, Fill: solid(headerBlue)},
			{Font: bold, Alignment: center, Border: thinBorder()},
			{Alignment: center, Border: thinBorder(), Fill: solid(lightYellow)},
			{Font: bold},
		},
	}

	// Fixed order keeps style IDs stable across runs.
	out := make(map[Style]styleSet, len(defs))
	for _, style := range []Style{StylePlain, StyleHighlighted, StyleBoxed} {
		def := defs[style]
		var ids [4]int
		for i, s := range def {
			id, err := f.NewStyle(s)
			if err != nil {
				return nil, err
			}
			ids[i] = id
		}
		out[style] = styleSet{
			title:  ids[0],
			label:  ids[1],
			value:  ids[2],
			header: ids[3],
			merge:  style == StyleBoxed,
		}
	}
	return out, nil
}
