// Package idf decodes and encodes IDF 3.0 board interchange documents,
// the text format used to move board outlines, component placement and
// component geometry between ECAD and MCAD tools.
//
// Decoding turns a complete document into a Document model; encoding
// renders a model back to canonical IDF 3.0 text. Both directions are
// pure: no I/O, no retained state between calls.
package idf

import "strings"

// Document is the in-memory form of one IDF 3.0 file. Field order in the
// slices is document order and is preserved by the encoder.
type Document struct {
	Header Header

	// Placements holds the contents of the PLACEMENT section. Meaningful
	// for board files; panel and library files leave it empty.
	Placements []ComponentPlacement

	// Components holds the ELECTRICAL component geometries of a library
	// file, accumulated across all ELECTRICAL sections in document order.
	// Empty for board and panel files.
	Components []ComponentDefinition

	// Sections holds every section the decoder does not interpret,
	// captured verbatim.
	Sections []Section
}

// Header is the mandatory HEADER section.
type Header struct {
	FileType FileType
	Source   string
	Date     string
	Version  uint32

	// BoardName and Units come from the second header record and are only
	// present for board and panel files.
	BoardName string
	Units     Unit
}

// FileType identifies the kind of IDF document.
type FileType int

const (
	BoardFile FileType = iota
	PanelFile
	LibraryFile
)

func (t FileType) String() string {
	switch t {
	case BoardFile:
		return "BOARD_FILE"
	case PanelFile:
		return "PANEL_FILE"
	case LibraryFile:
		return "LIBRARY_FILE"
	}
	return "UNKNOWN"
}

// Unit is the measurement unit declared in a header or component record.
type Unit int

const (
	Millimeters Unit = iota
	ThousandthsOfInch
)

func (u Unit) String() string {
	if u == ThousandthsOfInch {
		return "THOU"
	}
	return "MM"
}

// ComponentPlacement is one placed component, decoded from a pair of
// PLACEMENT records: the identity line and the geometry line.
type ComponentPlacement struct {
	PackageName string
	PartNumber  string
	Designator  Designator
	X           float64
	Y           float64
	Z           float64
	Rotation    float64
	Side        BoardSide
	Status      PlacementStatus
}

// Designator is a component reference designator. Kind distinguishes the
// NOREFDES and BOARD pseudo-designators from a real name.
type Designator struct {
	Kind DesignatorKind
	Name string
}

type DesignatorKind int

const (
	NamedDesignator DesignatorKind = iota
	NoRefDes
	BoardDesignator
)

// Named builds an ordinary named designator.
func Named(name string) Designator {
	return Designator{Kind: NamedDesignator, Name: name}
}

func (d Designator) String() string {
	switch d.Kind {
	case NoRefDes:
		return "NOREFDES"
	case BoardDesignator:
		return "BOARD"
	}
	return d.Name
}

// IsTestPoint reports whether the designator names a test point.
// Only named designators with the TP prefix qualify.
func (d Designator) IsTestPoint() bool {
	return d.Kind == NamedDesignator && strings.HasPrefix(d.Name, "TP")
}

// BoardSide is the placement face.
type BoardSide int

const (
	Top BoardSide = iota
	Bottom
)

func (s BoardSide) String() string {
	if s == Bottom {
		return "BOTTOM"
	}
	return "TOP"
}

// PlacementStatus is the placement authority flag.
type PlacementStatus int

const (
	Placed PlacementStatus = iota
	Unplaced
	McadAuthority
	EcadAuthority
)

func (s PlacementStatus) String() string {
	switch s {
	case Unplaced:
		return "UNPLACED"
	case McadAuthority:
		return "MCAD"
	case EcadAuthority:
		return "ECAD"
	}
	return "PLACED"
}

// ComponentDefinition is one ELECTRICAL component geometry from a
// library file.
type ComponentDefinition struct {
	GeometryName string
	PartNumber   string
	Units        Unit
	Height       float64
	Outline      []Point
}

// Point is one outline vertex.
type Point struct {
	Label LoopLabel
	X     float64
	Y     float64
	Angle float64
}

// LoopLabel is the outline winding direction. Label 0 in the file means
// counter-clockwise, anything else clockwise.
type LoopLabel int

const (
	CounterClockwise LoopLabel = iota
	Clockwise
)

// Section is an uninterpreted section, stored token for token so that
// re-encoding reproduces it.
type Section struct {
	// Name is the section name without the leading dot, e.g. BOARD_OUTLINE.
	Name string
	// Args are the tokens following the name on the header line,
	// e.g. ECAD in ".BOARD_OUTLINE ECAD".
	Args []string
	// Records are the section body lines.
	Records [][]Value
}

// Value is one token of a generic section record.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
}

type ValueKind int

const (
	IntegerValue ValueKind = iota
	FloatValue
	StringValue
)
