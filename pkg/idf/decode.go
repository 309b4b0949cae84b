package idf

import (
	"fmt"
	"strconv"
)

// decodeDocument walks the parse tree: header first, then one section at a
// time until the end of input. PLACEMENT and ELECTRICAL get typed
// decoders, everything else is captured generically.
func decodeDocument(file *idfFile) (*Document, error) {
	if len(file.Sections) == 0 {
		return nil, ErrMissingHeader
	}
	for _, sec := range file.Sections {
		if sec.endName() != sec.name() {
			return nil, &GrammarError{
				Pos:     sec.EndPos,
				Message: fmt.Sprintf("section %s terminated by %s", sec.Header, sec.End),
			}
		}
	}

	header, err := decodeHeader(file.Sections[0])
	if err != nil {
		return nil, err
	}

	doc := &Document{Header: header}
	var components []ComponentDefinition
	for _, sec := range file.Sections[1:] {
		switch sec.name() {
		case "PLACEMENT":
			placements, err := decodePlacementSection(sec)
			if err != nil {
				return nil, err
			}
			doc.Placements = append(doc.Placements, placements...)
		case "ELECTRICAL":
			component, err := decodeComponentDefinition(sec)
			if err != nil {
				return nil, err
			}
			components = append(components, component)
		default:
			section, err := decodeGenericSection(sec)
			if err != nil {
				return nil, err
			}
			doc.Sections = append(doc.Sections, section)
		}
	}

	// Component geometries only mean something in a library file.
	if doc.Header.FileType == LibraryFile {
		doc.Components = components
	}
	return doc, nil
}

// decodeHeader interprets the leading HEADER section. Record 0 carries
// file type, the 3.0 version literal, source, date and file version;
// board and panel files require a second record with board name and unit.
func decodeHeader(sec *rawSection) (Header, error) {
	if sec.name() != "HEADER" {
		return Header{}, ErrMissingHeader
	}
	if len(sec.Records) == 0 {
		return Header{}, fmt.Errorf("%s: empty HEADER section: %w", sec.Pos, ErrMalformedRecord)
	}

	rec := sec.Records[0]
	fileType, err := fieldStr(rec, 0)
	if err != nil {
		return Header{}, err
	}
	var h Header
	switch fileType {
	case "BOARD_FILE":
		h.FileType = BoardFile
	case "PANEL_FILE":
		h.FileType = PanelFile
	case "LIBRARY_FILE":
		h.FileType = LibraryFile
	default:
		return Header{}, fmt.Errorf("%s: %q: %w", rec.Pos, fileType, ErrWrongFileType)
	}

	version, err := fieldStr(rec, 1)
	if err != nil {
		return Header{}, err
	}
	if version != "3.0" {
		return Header{}, fmt.Errorf("%s: got %q: %w", rec.Values[1].Pos, version, ErrUnsupportedVersion)
	}

	if h.Source, err = fieldStr(rec, 2); err != nil {
		return Header{}, err
	}
	if h.Date, err = fieldStr(rec, 3); err != nil {
		return Header{}, err
	}
	if h.Version, err = fieldUint32(rec, 4); err != nil {
		return Header{}, err
	}

	if h.FileType == BoardFile || h.FileType == PanelFile {
		if len(sec.Records) < 2 {
			return Header{}, fmt.Errorf("%s: missing board name record: %w", sec.Pos, ErrMalformedRecord)
		}
		rec := sec.Records[1]
		if h.BoardName, err = fieldStr(rec, 0); err != nil {
			return Header{}, err
		}
		if h.Units, err = fieldUnit(rec, 1); err != nil {
			return Header{}, err
		}
	}
	return h, nil
}

// decodePlacementSection pairs up the section's records: each component is
// one identity line followed by one geometry line. An unpaired trailing
// record is fatal.
func decodePlacementSection(sec *rawSection) ([]ComponentPlacement, error) {
	if len(sec.Records)%2 != 0 {
		return nil, fmt.Errorf("%s: %w", sec.Pos, ErrMalformedPlacementSection)
	}
	placements := make([]ComponentPlacement, 0, len(sec.Records)/2)
	for i := 0; i < len(sec.Records); i += 2 {
		p, err := decodePlacement(sec.Records[i], sec.Records[i+1])
		if err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}
	return placements, nil
}

func decodePlacement(identity, geometry *rawRecord) (ComponentPlacement, error) {
	var p ComponentPlacement
	var err error
	if p.PackageName, err = fieldStr(identity, 0); err != nil {
		return p, err
	}
	if p.PartNumber, err = fieldStr(identity, 1); err != nil {
		return p, err
	}
	designator, err := fieldStr(identity, 2)
	if err != nil {
		return p, err
	}
	switch designator {
	case "NOREFDES":
		p.Designator = Designator{Kind: NoRefDes}
	case "BOARD":
		p.Designator = Designator{Kind: BoardDesignator}
	default:
		p.Designator = Named(designator)
	}

	if p.X, err = fieldFloat(geometry, 0); err != nil {
		return p, err
	}
	if p.Y, err = fieldFloat(geometry, 1); err != nil {
		return p, err
	}
	if p.Z, err = fieldFloat(geometry, 2); err != nil {
		return p, err
	}
	if p.Rotation, err = fieldFloat(geometry, 3); err != nil {
		return p, err
	}

	side, err := fieldStr(geometry, 4)
	if err != nil {
		return p, err
	}
	switch side {
	case "TOP":
		p.Side = Top
	case "BOTTOM":
		p.Side = Bottom
	default:
		return p, fmt.Errorf("%s: %q: %w", geometry.Values[4].Pos, side, ErrWrongSide)
	}

	status, err := fieldStr(geometry, 5)
	if err != nil {
		return p, err
	}
	switch status {
	case "PLACED":
		p.Status = Placed
	case "UNPLACED":
		p.Status = Unplaced
	case "MCAD":
		p.Status = McadAuthority
	case "ECAD":
		p.Status = EcadAuthority
	default:
		return p, fmt.Errorf("%s: %q: %w", geometry.Values[5].Pos, status, ErrWrongStatus)
	}
	return p, nil
}

// decodeComponentDefinition interprets one ELECTRICAL section: a header
// record, then outline points until the terminator. PROP rows are
// property annotations, not geometry, and are skipped.
func decodeComponentDefinition(sec *rawSection) (ComponentDefinition, error) {
	var c ComponentDefinition
	if len(sec.Records) == 0 {
		return c, fmt.Errorf("%s: empty ELECTRICAL section: %w", sec.Pos, ErrMalformedRecord)
	}

	rec := sec.Records[0]
	var err error
	if c.GeometryName, err = fieldStr(rec, 0); err != nil {
		return c, err
	}
	if c.PartNumber, err = fieldStr(rec, 1); err != nil {
		return c, err
	}
	if c.Units, err = fieldUnit(rec, 2); err != nil {
		return c, err
	}
	if c.Height, err = fieldFloat(rec, 3); err != nil {
		return c, err
	}

	for _, rec := range sec.Records[1:] {
		if rec.Values[0].text() == "PROP" {
			continue
		}
		label, err := fieldInt(rec, 0)
		if err != nil {
			return c, err
		}
		point := Point{Label: Clockwise}
		if label == 0 {
			point.Label = CounterClockwise
		}
		if point.X, err = fieldFloat(rec, 1); err != nil {
			return c, err
		}
		if point.Y, err = fieldFloat(rec, 2); err != nil {
			return c, err
		}
		if point.Angle, err = fieldFloat(rec, 3); err != nil {
			return c, err
		}
		c.Outline = append(c.Outline, point)
	}
	return c, nil
}

// decodeGenericSection captures an uninterpreted section token for token.
// Quoted strings keep their quotes so re-encoding is lossless.
func decodeGenericSection(sec *rawSection) (Section, error) {
	s := Section{Name: sec.name()}
	for _, arg := range sec.Args {
		s.Args = append(s.Args, arg.text())
	}
	for _, rec := range sec.Records {
		row := make([]Value, 0, len(rec.Values))
		for _, v := range rec.Values {
			switch {
			case v.Integer != nil:
				n, err := strconv.ParseInt(*v.Integer, 10, 64)
				if err != nil {
					return s, &NumericError{Pos: v.Pos, Token: *v.Integer, Err: err}
				}
				row = append(row, Value{Kind: IntegerValue, Int: n})
			case v.Float != nil:
				f, err := strconv.ParseFloat(*v.Float, 64)
				if err != nil {
					return s, &NumericError{Pos: v.Pos, Token: *v.Float, Err: err}
				}
				row = append(row, Value{Kind: FloatValue, Float: f})
			default:
				row = append(row, Value{Kind: StringValue, Str: v.text()})
			}
		}
		s.Records = append(s.Records, row)
	}
	return s, nil
}

// Field accessors shared by the typed decoders. A missing field is a
// structural error; a numeric token that fails conversion is a
// NumericError.

func field(rec *rawRecord, i int) (*rawValue, error) {
	if i >= len(rec.Values) {
		return nil, fmt.Errorf("%s: record needs at least %d fields, got %d: %w",
			rec.Pos, i+1, len(rec.Values), ErrMalformedRecord)
	}
	return rec.Values[i], nil
}

func fieldStr(rec *rawRecord, i int) (string, error) {
	v, err := field(rec, i)
	if err != nil {
		return "", err
	}
	return v.str(), nil
}

// fieldFloat accepts float and integer tokens alike: exporters routinely
// write 0 where a coordinate or rotation is whole.
func fieldFloat(rec *rawRecord, i int) (float64, error) {
	v, err := field(rec, i)
	if err != nil {
		return 0, err
	}
	if !v.isNumber() {
		return 0, fmt.Errorf("%s: expected a number, got %q: %w", v.Pos, v.text(), ErrMalformedRecord)
	}
	f, err := strconv.ParseFloat(v.text(), 64)
	if err != nil {
		return 0, &NumericError{Pos: v.Pos, Token: v.text(), Err: err}
	}
	return f, nil
}

func fieldInt(rec *rawRecord, i int) (int64, error) {
	v, err := field(rec, i)
	if err != nil {
		return 0, err
	}
	if v.Integer == nil {
		return 0, fmt.Errorf("%s: expected an integer, got %q: %w", v.Pos, v.text(), ErrMalformedRecord)
	}
	n, err := strconv.ParseInt(*v.Integer, 10, 64)
	if err != nil {
		return 0, &NumericError{Pos: v.Pos, Token: *v.Integer, Err: err}
	}
	return n, nil
}

func fieldUint32(rec *rawRecord, i int) (uint32, error) {
	v, err := field(rec, i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v.text(), 10, 32)
	if err != nil {
		return 0, &NumericError{Pos: v.Pos, Token: v.text(), Err: err}
	}
	return uint32(n), nil
}

func fieldUnit(rec *rawRecord, i int) (Unit, error) {
	tok, err := fieldStr(rec, i)
	if err != nil {
		return 0, err
	}
	switch tok {
	case "MM":
		return Millimeters, nil
	case "THOU":
		return ThousandthsOfInch, nil
	}
	return 0, fmt.Errorf("%s: %q: %w", rec.Values[i].Pos, tok, ErrWrongUnit)
}
