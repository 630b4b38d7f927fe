package chess

import (
	"reflect"
	"testing"
)

func TestEdgeValid(t *testing.T) {
	tests := []struct {
		edge  Edge
		valid bool
	}{
		{h(0, 0), true},
		{h(3, 2), true},
		{h(4, 0), false},
		{h(0, 3), false},
		{v(2, 3), true},
		{v(3, 0), false},
		{v(0, 4), false},
		{h(-1, 0), false},
		{v(0, -1), false},
		{NewEdge('x', 0, 0), false},
	}

	for _, tt := range tests {
		if got := tt.edge.Valid(3); got != tt.valid {
			t.Errorf("%v.Valid(3) = %v, want %v", tt.edge, got, tt.valid)
		}
	}
}

func TestEdgeNearBoxes(t *testing.T) {
	tests := []struct {
		edge Edge
		want []Box
	}{
		{h(0, 1), []Box{{0, 1}}},
		{h(1, 1), []Box{{0, 1}, {1, 1}}},
		{h(2, 0), []Box{{1, 0}}},
		{v(1, 0), []Box{{1, 0}}},
		{v(0, 1), []Box{{0, 0}, {0, 1}}},
		{v(0, 2), []Box{{0, 1}}},
	}

	for _, tt := range tests {
		if got := tt.edge.NearBoxes(2); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%v.NearBoxes(2) = %v, want %v", tt.edge, got, tt.want)
		}
	}
}

func TestEdgesCount(t *testing.T) {
	for n := MinBoardSize; n <= MaxBoardSize; n++ {
		edges := Edges(n)
		if len(edges) != 2*n*(n+1) {
			t.Fatalf("Edges(%d) has %d edges, want %d", n, len(edges), 2*n*(n+1))
		}
		seen := make(map[Edge]struct{}, len(edges))
		for _, e := range edges {
			if !e.Valid(n) {
				t.Fatalf("Edges(%d) returned invalid edge %v", n, e)
			}
			if _, c := seen[e]; c {
				t.Fatalf("Edges(%d) repeated %v", n, e)
			}
			seen[e] = struct{}{}
		}
	}
}

func TestBoxEdgesBorderTheBox(t *testing.T) {
	for _, box := range Boxes(3) {
		for _, e := range box.Edges() {
			found := false
			for _, near := range e.NearBoxes(3) {
				if near == box {
					found = true
				}
			}
			if !found {
				t.Errorf("edge %v of box %v does not border it", e, box)
			}
		}
	}
}

func TestParseEdgeType(t *testing.T) {
	for s, want := range map[string]EdgeType{"h": Horizontal, "H": Horizontal, "vertical": Vertical, "v": Vertical} {
		got, err := ParseEdgeType(s)
		if err != nil || got != want {
			t.Errorf("ParseEdgeType(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseEdgeType("d"); err == nil {
		t.Error("expected error for unknown edge type")
	}
}
