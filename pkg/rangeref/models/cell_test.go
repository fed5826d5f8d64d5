package models

import "testing"

func TestColumnName(t *testing.T) {
	tests := []struct {
		col      int
		expected string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		result := ColumnName(tt.col)
		if result != tt.expected {
			t.Errorf("ColumnName(%d) = %q, expected %q", tt.col, result, tt.expected)
		}
	}
}

func TestEndpointString(t *testing.T) {
	tests := []struct {
		ep       Endpoint
		expected string
	}{
		{Endpoint{Ref: CellRef{Cell: Cell{Row: 0, Col: 0}}}, "A0"},
		{Endpoint{Ref: CellRef{Cell: Cell{Row: 12, Col: 27}}, Flags: FixCol}, "$AB12"},
		{Endpoint{Ref: CellRef{Cell: Cell{Row: 3, Col: 1}}, Flags: FixRow}, "B$3"},
		{Endpoint{Ref: CellRef{Cell: Cell{Row: 9, Col: 2}}, Flags: FixRow | FixCol}, "$C$9"},
	}

	for _, tt := range tests {
		result := tt.ep.String()
		if result != tt.expected {
			t.Errorf("Endpoint%+v.String() = %q, expected %q", tt.ep, result, tt.expected)
		}
	}
}

func TestNamedRangeDefinition(t *testing.T) {
	r := &NamedRange{
		Name:  "totals",
		Left:  Endpoint{Ref: CellRef{Cell: Cell{Row: 1, Col: 0}}, Flags: FixRow},
		Right: Endpoint{Ref: CellRef{Cell: Cell{Row: 4, Col: 2}}},
	}
	if got := r.Definition(); got != "A$1" {
		t.Errorf("single cell Definition() = %q, expected %q", got, "A$1")
	}

	r.IsRange = true
	if got := r.Definition(); got != "A$1:C4" {
		t.Errorf("range Definition() = %q, expected %q", got, "A$1:C4")
	}
}

func TestMarkRangeHasMark(t *testing.T) {
	r := &MarkRange{Marks: [2]byte{'a', 'b'}}
	if !r.HasMark('a') || !r.HasMark('b') {
		t.Errorf("HasMark should match both source marks")
	}
	if r.HasMark('c') {
		t.Errorf("HasMark('c') = true, expected false")
	}
}

func TestNormalize(t *testing.T) {
	ep := func(row, col int, flags AxisFlags) Endpoint {
		return Endpoint{Ref: CellRef{Cell: Cell{Row: row, Col: col}}, Flags: flags}
	}

	tests := []struct {
		name   string
		a, b   Endpoint
		lo, hi Endpoint
	}{
		{"ordered", ep(1, 1, FixRow), ep(5, 5, FixCol), ep(1, 1, FixRow), ep(5, 5, FixCol)},
		{"reversed", ep(5, 5, FixRow), ep(1, 1, FixCol), ep(1, 1, FixCol), ep(5, 5, FixRow)},
		{"rows only swapped", ep(7, 0, FixRow), ep(2, 3, FixCol), ep(2, 0, 0), ep(7, 3, FixRow|FixCol)},
		{"cols only swapped", ep(0, 9, FixCol), ep(4, 1, FixRow), ep(0, 1, 0), ep(4, 9, FixRow|FixCol)},
	}

	for _, tt := range tests {
		lo, hi := Normalize(tt.a, tt.b)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%s: Normalize = (%+v, %+v), expected (%+v, %+v)", tt.name, lo, hi, tt.lo, tt.hi)
		}
	}
}
