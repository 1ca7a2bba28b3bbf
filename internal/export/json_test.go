package export

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"ShapeBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeFormat(t *testing.T) {
	doc := state.Document{
		Name: "My Painting",
		Shapes: []state.Shape{
			{ID: 1700000000000, Type: state.Circle, X: 75, Y: 75, Color: "#4ecdc4"},
		},
	}
	data, err := Serialize(doc)
	require.NoError(t, err)

	want := `{
  "name": "My Painting",
  "shapes": [
    {
      "id": 1700000000000,
      "type": "circle",
      "x": 75,
      "y": 75,
      "color": "#4ecdc4"
    }
  ]
}`
	assert.Equal(t, want, string(data))

	again, err := Serialize(doc)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestSerializeEmptyDocument(t *testing.T) {
	data, err := Serialize(state.Document{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"","shapes":[]}`, string(data))

	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "", doc.Name)
	assert.Empty(t, doc.Shapes)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	names := []string{"My Painting", "", "tabs\tand  spaces", "ünïcødé ✓", `quote " and \ slash`}

	for i := 0; i < 50; i++ {
		doc := state.Document{Name: names[i%len(names)], Shapes: []state.Shape{}}
		n := rng.Intn(20)
		for j := 0; j < n; j++ {
			doc.Shapes = append(doc.Shapes, state.Shape{
				ID:    rng.Int63(),
				Type:  state.ShapeTypes[rng.Intn(len(state.ShapeTypes))],
				X:     rng.Float64() * 750,
				Y:     rng.Float64() * 550,
				Color: state.Palette[rng.Intn(len(state.Palette))],
			})
		}

		data, err := Serialize(doc)
		require.NoError(t, err)
		got, err := Parse(data)
		require.NoError(t, err)
		require.Equal(t, doc, got)
	}
}

func TestRoundTripFromBoard(t *testing.T) {
	b := state.NewBoard(state.DefaultName)
	b.Place(state.Drop{Type: state.Square, Color: "#ff6b6b", X: 10.5, Y: 20.25, CanvasWidth: 800, CanvasHeight: 600})
	b.Place(state.Drop{Type: state.Trapezoid, Color: "#45b7d1", X: 400, Y: 300, CanvasWidth: 800, CanvasHeight: 600})

	data, err := Serialize(b.Document())
	require.NoError(t, err)
	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, b.Document(), got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		missing string
	}{
		{"not json", `not json`, ""},
		{"missing name", `{"shapes":[]}`, "name"},
		{"null name", `{"name":null,"shapes":[]}`, "name"},
		{"missing shapes", `{"name":"x"}`, "shapes"},
		{"null shapes", `{"name":"x","shapes":null}`, "shapes"},
		{"truncated", `{"name":"x","shapes":[`, ""},
		{"wrong name type", `{"name":5,"shapes":[]}`, ""},
		{"array", `[]`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.missing, perr.Missing)
			assert.Contains(t, err.Error(), "invalid file format")
		})
	}
}

func TestParseDoesNotValidateShapes(t *testing.T) {
	doc, err := Parse([]byte(`{"name":"odd","shapes":[{"id":3,"type":"hexagon","x":-500,"y":99999,"color":"plaid"},{}],"extra":true}`))
	require.NoError(t, err)
	assert.Equal(t, "odd", doc.Name)
	require.Len(t, doc.Shapes, 2)
	assert.Equal(t, state.Shape{ID: 3, Type: "hexagon", X: -500, Y: 99999, Color: "plaid"}, doc.Shapes[0])
	assert.Equal(t, state.Shape{}, doc.Shapes[1])
}

func TestFilename(t *testing.T) {
	tests := map[string]string{
		"My Painting":     "My_Painting.json",
		"a   b\t\nc":      "a_b_c.json",
		" leading":        "_leading.json",
		"trailing  ":      "trailing_.json",
		"":                ".json",
		"no-spaces":       "no-spaces.json",
		"nbsp\u00a0here":  "nbsp_here.json",
		"ideo\u3000space": "ideo_space.json",
	}
	for in, want := range tests {
		assert.Equal(t, want, JSONFilename(in), in)
	}
	assert.Equal(t, "My_Painting.pdf", Filename("My Painting", ".pdf"))
}

func TestSerializeRejectsNaN(t *testing.T) {
	_, err := Serialize(state.Document{Name: "nan", Shapes: []state.Shape{{X: nan()}}})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nan"))
}
