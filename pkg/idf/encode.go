package idf

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode renders the document as canonical IDF 3.0 text: header first,
// then the uninterpreted sections, then the file type's trailing block.
// A board file gets one PLACEMENT block, a library file one ELECTRICAL
// block per component, a panel file nothing extra.
//
// The layout is canonical rather than byte-preserving: floats print with
// four decimal digits (placement rotation with three) and generic records
// get a fixed two-space indent regardless of how the input was formatted.
func (d *Document) Encode() string {
	var b strings.Builder
	d.Header.encode(&b)
	for _, s := range d.Sections {
		s.encode(&b)
	}
	switch d.Header.FileType {
	case BoardFile:
		b.WriteString(".PLACEMENT\n")
		for _, p := range d.Placements {
			p.encode(&b)
		}
		b.WriteString(".END_PLACEMENT\n")
	case PanelFile:
	case LibraryFile:
		for _, c := range d.Components {
			c.encode(&b)
		}
	}
	return b.String()
}

func (h Header) encode(b *strings.Builder) {
	fmt.Fprintf(b, ".HEADER\n%s 3.0 %s %s %d\n",
		h.FileType, formatString(h.Source), formatString(h.Date), h.Version)
	if h.FileType == BoardFile || h.FileType == PanelFile {
		fmt.Fprintf(b, "%s %s\n", formatString(h.BoardName), h.Units)
	}
	b.WriteString(".END_HEADER\n")
}

func (s Section) encode(b *strings.Builder) {
	b.WriteByte('.')
	b.WriteString(s.Name)
	for _, arg := range s.Args {
		b.WriteByte(' ')
		b.WriteString(formatString(arg))
	}
	b.WriteByte('\n')
	for _, rec := range s.Records {
		b.WriteByte(' ')
		for _, v := range rec {
			b.WriteByte(' ')
			b.WriteString(v.String())
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(b, ".END_%s\n", s.Name)
}

func (p ComponentPlacement) encode(b *strings.Builder) {
	fmt.Fprintf(b, "%s %s %s\n  %.4f %.4f %.4f %.3f %s %s\n",
		formatString(p.PackageName), formatString(p.PartNumber), formatString(p.Designator.String()),
		p.X, p.Y, p.Z, p.Rotation, p.Side, p.Status)
}

func (c ComponentDefinition) encode(b *strings.Builder) {
	fmt.Fprintf(b, ".ELECTRICAL\n%s %s %s %.4f\n",
		formatString(c.GeometryName), formatString(c.PartNumber), c.Units, c.Height)
	for _, p := range c.Outline {
		label := 1
		if p.Label == CounterClockwise {
			label = 0
		}
		fmt.Fprintf(b, "%d %.4f %.4f %.4f\n", label, p.X, p.Y, p.Angle)
	}
	b.WriteString(".END_ELECTRICAL\n")
}

// String renders one generic-section value in canonical form.
func (v Value) String() string {
	switch v.Kind {
	case IntegerValue:
		return strconv.FormatInt(v.Int, 10)
	case FloatValue:
		return strconv.FormatFloat(v.Float, 'f', 4, 64)
	default:
		return formatString(v.Str)
	}
}

// formatString prints strings unescaped; only the empty string needs a
// quoted form so the field does not vanish from the record.
func formatString(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
