package clipboard

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

type cells map[models.Coord]string

func (c cells) Read(at models.Coord) models.Cell {
	return models.Cell{At: at, Value: c[at], Type: models.TypeText}
}

func values(updates []models.Update) []string {
	out := make([]string, len(updates))
	for i, u := range updates {
		out[i] = u.Value
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Block
	}{
		{"a", Block{{"a"}}},
		{"a\tb\nc\td", Block{{"a", "b"}, {"c", "d"}}},
		{"a\tb\r\nc\td\r\n", Block{{"a", "b"}, {"c", "d"}}},
		{"a\tb\nc", Block{{"a", "b"}, {"c"}}},
		{"\n", Block{{""}}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Parse(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, input := range []string{"", "a\xffb"} {
		if _, err := Parse(input); !errors.Is(err, ErrMalformedBlock) {
			t.Errorf("Parse(%q) error = %v, expected ErrMalformedBlock", input, err)
		}
	}
}

func TestSerializeRectangle(t *testing.T) {
	src := cells{models.At(1, 1): "a", models.At(1, 2): "b", models.At(2, 1): "c"}
	sel := models.AreaBetween(models.At(2, 2), models.At(1, 1)).Coords()

	got := Serialize(src, sel)
	want := Block{{"a", "b"}, {"c", ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Serialize = %q, expected %q", got, want)
	}
	if got.String() != "a\tb\nc\t" {
		t.Errorf("String() = %q", got.String())
	}
}

func TestSerializeScatteredFlattensInSelectionOrder(t *testing.T) {
	src := cells{models.At(0, 0): "x", models.At(3, 3): "y", models.At(1, 5): "z"}
	sel := []models.Coord{models.At(3, 3), models.At(0, 0), models.At(1, 5), models.At(0, 0)}

	got := Serialize(src, sel)
	want := Block{{"y", "x", "z"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Serialize = %q, expected %q", got, want)
	}
}

func TestSerializeEmptySelection(t *testing.T) {
	if got := Serialize(cells{}, nil); got != nil {
		t.Errorf("Serialize(nil) = %q, expected nil", got)
	}
}

func TestExpandBroadcast(t *testing.T) {
	targets := []models.Coord{models.At(0, 0), models.At(4, 2), models.At(1, 1)}
	got := Expand(Block{{"v"}}, targets)
	if len(got) != 3 {
		t.Fatalf("expected 3 updates, got %d", len(got))
	}
	for _, u := range got {
		if u.Value != "v" {
			t.Errorf("update %v = %q, expected v", u.At, u.Value)
		}
	}
}

func TestExpandStructured(t *testing.T) {
	targets := models.AreaBetween(models.At(5, 5), models.At(6, 6)).Coords()
	got := Expand(Block{{"a", "b"}, {"c", "d"}}, targets)
	if want := []string{"a", "b", "c", "d"}; !reflect.DeepEqual(values(got), want) {
		t.Errorf("values = %v, expected %v", values(got), want)
	}
	for i, u := range got {
		if u.At != targets[i] {
			t.Errorf("update %d at %v, expected %v", i, u.At, targets[i])
		}
	}
}

func TestExpandStructuredOrdersTargetsRowMajor(t *testing.T) {
	targets := []models.Coord{models.At(1, 1), models.At(0, 0), models.At(1, 0), models.At(0, 1)}
	got := Expand(Block{{"a", "b"}, {"c", "d"}}, targets)
	want := []models.Update{
		{At: models.At(0, 0), Value: "a"},
		{At: models.At(0, 1), Value: "b"},
		{At: models.At(1, 0), Value: "c"},
		{At: models.At(1, 1), Value: "d"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %+v, expected %+v", got, want)
	}
}

func TestExpandBeyondBlock(t *testing.T) {
	targets := models.Area{R1: 0, C1: 0, R2: 0, C2: 5}.Coords()
	got := Expand(Block{{"a", "b", "c"}, {"d"}}, targets)
	want := []string{"a", "b", "c", "d", "", ""}
	if !reflect.DeepEqual(values(got), want) {
		t.Errorf("values = %q, expected %q", values(got), want)
	}
}

func TestExpandEmpty(t *testing.T) {
	if got := Expand(nil, []models.Coord{models.At(0, 0)}); got != nil {
		t.Errorf("Expand(nil) = %v", got)
	}
	if got := Expand(Block{{"a"}}, nil); got != nil {
		t.Errorf("Expand without targets = %v", got)
	}
}
