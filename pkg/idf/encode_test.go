package idf

import (
	"strings"
	"testing"
)

func TestEncodeBoardDocument(t *testing.T) {
	doc := &Document{
		Header: Header{
			FileType:  BoardFile,
			Source:    "exporter",
			Date:      "2023/11/07.16:37:12",
			Version:   1,
			BoardName: "sample",
			Units:     Millimeters,
		},
		Placements: []ComponentPlacement{{
			PackageName: "cs13_a",
			PartNumber:  "pn-cap",
			Designator:  Named("C1"),
			X:           1.5,
			Y:           15.25,
			Rotation:    90,
			Side:        Top,
			Status:      Placed,
		}},
		Sections: []Section{{
			Name: "BOARD_OUTLINE",
			Args: []string{"ECAD"},
			Records: [][]Value{
				{{Kind: FloatValue, Float: 0.15}},
				{{Kind: IntegerValue}, {Kind: FloatValue, Float: 63.5}},
			},
		}},
	}
	want := ".HEADER\n" +
		"BOARD_FILE 3.0 exporter 2023/11/07.16:37:12 1\n" +
		"sample MM\n" +
		".END_HEADER\n" +
		".BOARD_OUTLINE ECAD\n" +
		"  0.1500\n" +
		"  0 63.5000\n" +
		".END_BOARD_OUTLINE\n" +
		".PLACEMENT\n" +
		"cs13_a pn-cap C1\n" +
		"  1.5000 15.2500 0.0000 90.000 TOP PLACED\n" +
		".END_PLACEMENT\n"
	if got := doc.Encode(); got != want {
		t.Errorf("Encode() =\n%s\nwant:\n%s", got, want)
	}
}

// Placement rotation prints with three decimals, every other float with
// four.
func TestEncodeNumericPrecision(t *testing.T) {
	doc := &Document{
		Header: Header{FileType: BoardFile, Source: "s", Date: "d", BoardName: "b", Units: Millimeters},
		Placements: []ComponentPlacement{{
			PackageName: "p", PartNumber: "n", Designator: Named("C1"),
			X: 1.5, Rotation: 90, Side: Top, Status: Placed,
		}},
	}
	out := doc.Encode()
	if !strings.Contains(out, "90.000 ") {
		t.Errorf("rotation 90 should render as 90.000, got:\n%s", out)
	}
	if !strings.Contains(out, "1.5000 ") {
		t.Errorf("x 1.5 should render as 1.5000, got:\n%s", out)
	}
}

func TestEncodeEmptyStringsAreQuoted(t *testing.T) {
	doc := &Document{
		Header: Header{FileType: BoardFile, Source: "", Date: "d", BoardName: "b", Units: Millimeters},
		Placements: []ComponentPlacement{{
			PackageName: "", PartNumber: "pn", Designator: Named("C1"),
			Side: Top, Status: Placed,
		}},
	}
	out := doc.Encode()
	if !strings.Contains(out, `BOARD_FILE 3.0 "" d 0`) {
		t.Errorf("empty source should render as \"\", got:\n%s", out)
	}
	if !strings.Contains(out, `"" pn C1`) {
		t.Errorf("empty package name should render as \"\", got:\n%s", out)
	}
}

func TestEncodePanelFileHasNoPlacementBlock(t *testing.T) {
	doc := &Document{
		Header: Header{FileType: PanelFile, Source: "s", Date: "d", Version: 1, BoardName: "panel", Units: ThousandthsOfInch},
		Placements: []ComponentPlacement{{
			PackageName: "p", PartNumber: "n", Designator: Named("C1"), Side: Top, Status: Placed,
		}},
	}
	want := ".HEADER\nPANEL_FILE 3.0 s d 1\npanel THOU\n.END_HEADER\n"
	if got := doc.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeLibraryFile(t *testing.T) {
	doc := &Document{
		Header: Header{FileType: LibraryFile, Source: "lib", Date: "d", Version: 1},
		Components: []ComponentDefinition{
			{
				GeometryName: "cap_a", PartNumber: "pn-a", Units: ThousandthsOfInch, Height: 150,
				Outline: []Point{
					{Label: CounterClockwise, X: -55, Y: 55},
					{Label: Clockwise, X: 55, Y: 55, Angle: 180},
				},
			},
			{GeometryName: "cap_b", PartNumber: "pn-b", Units: Millimeters, Height: 2.5},
		},
	}
	want := ".HEADER\n" +
		"LIBRARY_FILE 3.0 lib d 1\n" +
		".END_HEADER\n" +
		".ELECTRICAL\n" +
		"cap_a pn-a THOU 150.0000\n" +
		"0 -55.0000 55.0000 0.0000\n" +
		"1 55.0000 55.0000 180.0000\n" +
		".END_ELECTRICAL\n" +
		".ELECTRICAL\n" +
		"cap_b pn-b MM 2.5000\n" +
		".END_ELECTRICAL\n"
	if got := doc.Encode(); got != want {
		t.Errorf("Encode() =\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeDesignatorVariants(t *testing.T) {
	tests := []struct {
		designator Designator
		want       string
	}{
		{Named("C1"), "C1"},
		{Designator{Kind: NoRefDes}, "NOREFDES"},
		{Designator{Kind: BoardDesignator}, "BOARD"},
	}
	for _, tt := range tests {
		if got := tt.designator.String(); got != tt.want {
			t.Errorf("Designator.String() = %q, want %q", got, tt.want)
		}
	}
}
