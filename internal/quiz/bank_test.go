package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBank_Geometry(t *testing.T) {
	b, err := LoadBank("geometry")
	require.NoError(t, err)

	assert.Equal(t, "geometry", b.ID)
	require.Len(t, b.Questions, 7)
	assert.Equal(t, "1. Which is a valid criterion for triangle similarity?", b.Questions[0].Prompt)
	assert.Equal(t, []string{"SSA", "AAA", "ASA (for similarity)"}, b.Questions[0].Options)
	assert.Equal(t, "AAA", b.Questions[0].Answer)
	assert.Equal(t, "180°", b.Questions[2].Answer)
	assert.Equal(t, "No", b.Questions[6].Answer)
}

func TestLoadBank_Normal(t *testing.T) {
	b, err := LoadBank("normal")
	require.NoError(t, err)
	assert.Len(t, b.Questions, 6)
	for i, q := range b.Questions {
		assert.GreaterOrEqual(t, q.AnswerIndex(), 0, "question %d", i)
	}
}

func TestLoadBank_Unknown(t *testing.T) {
	_, err := LoadBank("calculus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBank))
}

func TestBanks_Order(t *testing.T) {
	banks, err := Banks()
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "geometry", banks[0].ID)
	assert.Equal(t, "normal", banks[1].ID)
}

func TestParseBank_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "questions: [unclosed"},
		{"missing questions", "id: x\ntitle: X\n"},
		{"single option", "id: x\ntitle: X\nquestions:\n  - prompt: p\n    options: [a]\n    answer: a\n"},
		{"empty prompt", "id: x\ntitle: X\nquestions:\n  - prompt: \"\"\n    options: [a, b]\n    answer: a\n"},
		{"unknown field", "id: x\ntitle: X\nquestions:\n  - prompt: p\n    options: [a, b]\n    answer: a\n    hint: h\n"},
		{"answer not an option", "id: x\ntitle: X\nquestions:\n  - prompt: p\n    options: [a, b]\n    answer: c\n"},
		{"duplicate option", "id: x\ntitle: X\nquestions:\n  - prompt: p\n    options: [a, a]\n    answer: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.yaml))
			require.Error(t, err)
			var bankErr *BankError
			assert.True(t, errors.As(err, &bankErr), "got %T", err)
		})
	}
}

func TestParseBank_Valid(t *testing.T) {
	b, err := ParseBank([]byte("id: demo\ntitle: Demo\nquestions:\n  - prompt: \"2 + 2?\"\n    options: [\"3\", \"4\"]\n    answer: \"4\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "demo", b.ID)
	assert.Equal(t, 1, b.Questions[0].AnswerIndex())
}
