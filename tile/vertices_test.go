package tile

import "testing"

func TestVertexTableShape(t *testing.T) {
	locations := []string{
		"topLeft", "top", "topRight",
		"left", "right",
		"bottomLeft", "bottom", "bottomRight",
	}

	for _, loc := range locations {
		entry, ok := vertexTypeNames[loc]
		if !ok {
			t.Fatalf("missing vertex table entry for %q", loc)
		}
		if len(entry) != 16 {
			t.Errorf("%s: got %d types, want 16", loc, len(entry))
		}
		for _, name := range entry {
			if _, ok := ResolveType(name); !ok {
				t.Errorf("%s: unknown shape name %q", loc, name)
			}
		}
	}
}

func TestResolveTypeNamesSingleLocation(t *testing.T) {
	got := ResolveTypeNames("topRight")
	if len(got) != 16 {
		t.Fatalf("got %d types, want 16", len(got))
	}

	want := map[string]bool{
		"FULL":                  true,
		"HALF_TOP":              true,
		"HALF_RIGHT":            true,
		"HALF_BOTTOM_LEFT":      false,
		"QUARTER_LEFT_TOP_HIGH": true,
		"QUARTER_LEFT_TOP_LOW":  false,
	}
	for name, member := range want {
		if contains(got, name) != member {
			t.Errorf("topRight contains %s = %v, want %v", name, !member, member)
		}
	}
}

func TestResolveTypeNamesIntersection(t *testing.T) {
	got := ResolveTypeNames("topLeft", "topRight")

	want := []string{
		"FULL", "HALF_TOP", "HALF_TOP_LEFT", "HALF_TOP_RIGHT",
		"QUARTER_LEFT_TOP_HIGH", "QUARTER_RIGHT_TOP_HIGH",
		"QUARTER_TOP_LEFT_LOW", "QUARTER_TOP_LEFT_HIGH",
		"QUARTER_TOP_RIGHT_LOW", "QUARTER_TOP_RIGHT_HIGH",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d types %v, want %d", len(got), got, len(want))
	}
	for _, name := range want {
		if !contains(got, name) {
			t.Errorf("missing %s", name)
		}
	}
}

func TestResolveTypeNamesOrderIndependentMembership(t *testing.T) {
	a := ResolveTypeNames("left", "bottomLeft")
	b := ResolveTypeNames("bottomLeft", "left")

	if len(a) != len(b) {
		t.Fatalf("asymmetric sizes: %d vs %d", len(a), len(b))
	}
	for _, name := range a {
		if !contains(b, name) {
			t.Errorf("%s missing from reversed intersection", name)
		}
	}
}

func TestResolveTypeNamesUnknownLocation(t *testing.T) {
	if got := ResolveTypeNames("middle"); got != nil {
		t.Errorf("unknown location: got %v, want nil", got)
	}
	if got := ResolveTypeNames("topLeft", "middle"); got != nil {
		t.Errorf("unknown location in intersection: got %v, want nil", got)
	}
}

func TestResolveTypeNamesNoLocations(t *testing.T) {
	if got := ResolveTypeNames(); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestResolveTypeSet(t *testing.T) {
	got := ResolveTypeSet("bottom", "bottomLeft")
	names := ResolveTypeNames("bottom", "bottomLeft")

	if len(got) != len(names) {
		t.Fatalf("got %d codes for %d names", len(got), len(names))
	}
	for i, code := range got {
		if code.String() != names[i] {
			t.Errorf("code %d: got %s, want %s", i, code, names[i])
		}
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
