package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeCards() []Card {
	return []Card{
		{ID: "a", Kind: KindConcept, Title: "A", Difficulty: DifficultyBeginner},
		{ID: "b", Kind: KindDiagram, Title: "B", Difficulty: DifficultyIntermediate},
		{ID: "c", Kind: KindExample, Title: "C", Difficulty: DifficultyAdvanced},
	}
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDeck))
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	cards := threeCards()
	cards[2].ID = "a"
	_, err := New(cards)
	assert.ErrorIs(t, err, ErrInvalidDeck)
}

func TestNew_RejectsMissingID(t *testing.T) {
	_, err := New([]Card{{Title: "no id"}})
	assert.ErrorIs(t, err, ErrInvalidDeck)
}

func TestNew_CopiesInput(t *testing.T) {
	cards := threeCards()
	cards[0].Tags = []string{"x"}
	d, err := New(cards)
	require.NoError(t, err)

	cards[0].Title = "changed"
	cards[0].Tags[0] = "changed"

	c, err := d.Current()
	require.NoError(t, err)
	assert.Equal(t, "A", c.Title)
	assert.Equal(t, []string{"x"}, c.Tags)
}

func TestAdvance_ThroughDeck(t *testing.T) {
	d, err := New(threeCards())
	require.NoError(t, err)

	var seen []string
	for !d.Exhausted() {
		c, err := d.Current()
		require.NoError(t, err)
		seen = append(seen, c.ID)
		require.NoError(t, d.Advance())
	}

	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.Equal(t, 3, d.Cursor())
	assert.Equal(t, 0, d.Remaining())

	_, err = d.Current()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestAdvance_OnExhaustedLeavesCursor(t *testing.T) {
	d, err := New(threeCards()[:1])
	require.NoError(t, err)
	require.NoError(t, d.Advance())

	err = d.Advance()
	assert.ErrorIs(t, err, ErrAlreadyExhausted)
	assert.Equal(t, 1, d.Cursor())
}

func TestProgressFraction(t *testing.T) {
	d, err := New(threeCards())
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3, d.ProgressFraction(), 1e-9)
	require.NoError(t, d.Advance())
	assert.InDelta(t, 2.0/3, d.ProgressFraction(), 1e-9)
	require.NoError(t, d.Advance())
	assert.InDelta(t, 1.0, d.ProgressFraction(), 1e-9)
	require.NoError(t, d.Advance())
	assert.InDelta(t, 1.0, d.ProgressFraction(), 1e-9)
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"strips hash", []string{"#AI", "#ML"}, []string{"AI", "ML"}},
		{"dedupes keeping order", []string{"b", "#a", "b", "a"}, []string{"b", "a"}},
		{"drops empty", []string{"", " # ", "x"}, []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestParseKindAndDifficulty(t *testing.T) {
	k, err := ParseKind(" Analogy ")
	require.NoError(t, err)
	assert.Equal(t, KindAnalogy, k)

	_, err = ParseKind("poem")
	assert.Error(t, err)

	d, err := ParseDifficulty("ADVANCED")
	require.NoError(t, err)
	assert.Equal(t, DifficultyAdvanced, d)

	_, err = ParseDifficulty("expert")
	assert.Error(t, err)
}
