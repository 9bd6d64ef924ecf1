package service

import (
	"testing"

	"github.com/lshigami/Percula/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parserPayload struct {
	Questions []struct {
		QuestionText string `json:"question_text"`
	} `json:"questions"`
}

func TestDecodeCompletion(t *testing.T) {
	wellFormed := `{"questions":[{"question_text":"What is a goroutine?"},{"question_text":"Explain channels."}]}`

	tests := []struct {
		name        string
		raw         string
		wantOutcome ParseOutcome
		wantErr     bool
		wantCount   int
	}{
		{
			name:        "strict JSON",
			raw:         wellFormed,
			wantOutcome: ParseOutcomeStrict,
			wantCount:   2,
		},
		{
			name:        "json code fence",
			raw:         "```json\n" + wellFormed + "\n```",
			wantOutcome: ParseOutcomeRecovered,
			wantCount:   2,
		},
		{
			name:        "bare code fence",
			raw:         "```\n" + wellFormed + "\n```",
			wantOutcome: ParseOutcomeRecovered,
			wantCount:   2,
		},
		{
			name:        "json wrapped in prose",
			raw:         "Sure! Here are your interview questions:\n\n" + wellFormed + "\n\nGood luck!",
			wantOutcome: ParseOutcomeRecovered,
			wantCount:   2,
		},
		{
			name:        "plain prose",
			raw:         "I cannot produce questions for this request.",
			wantOutcome: ParseOutcomeFailed,
			wantErr:     true,
		},
		{
			name:        "empty",
			raw:         "   \n  ",
			wantOutcome: ParseOutcomeFailed,
			wantErr:     true,
		},
		{
			name:        "truncated JSON",
			raw:         `{"questions":[{"question_text":"What`,
			wantOutcome: ParseOutcomeFailed,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload parserPayload
			outcome, err := decodeCompletion(tt.raw, &payload)

			assert.Equal(t, tt.wantOutcome, outcome)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, payload.Questions, tt.wantCount)
			assert.Equal(t, "What is a goroutine?", payload.Questions[0].QuestionText)
		})
	}
}

func TestOutermostJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"object in prose", `before {"a":1} after`, `{"a":1}`},
		{"array in prose", `x [1,2,3] y`, `[1,2,3]`},
		{"no json", "just words", ""},
		{"opener without closer", `broken {"a":1`, ""},
		{"nested braces", `note {"a":{"b":2}} end`, `{"a":{"b":2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outermostJSONBlock(tt.in))
		})
	}
}

func TestRecoverStringFields(t *testing.T) {
	raw := `garbage "question_text": "First?" noise
	"question_text": "Second with \"quotes\"?" trailing`

	got := recoverStringFields(raw, questionTextRe)
	require.Len(t, got, 2)
	assert.Equal(t, "First?", got[0])
	assert.Equal(t, `Second with "quotes"?`, got[1])

	assert.Empty(t, recoverStringFields("no fields at all", questionTextRe))
}

func TestDecodeQuestionsFallbacks(t *testing.T) {
	t.Run("bare array accepted", func(t *testing.T) {
		raw := `[{"question_text":"Only one?","question_type":"technical","difficulty_level":"easy"}]`
		questions, outcome, err := decodeQuestions(raw)
		require.NoError(t, err)
		assert.Equal(t, ParseOutcomeRecovered, outcome)
		require.Len(t, questions, 1)
		assert.Equal(t, "Only one?", questions[0].QuestionText)
	})

	t.Run("regex recovery from mangled output", func(t *testing.T) {
		raw := `{"questions": [{"question_text": "Recovered?"}, {"question_text": "Also recovered?"},`
		questions, outcome, err := decodeQuestions(raw)
		require.NoError(t, err)
		assert.Equal(t, ParseOutcomeRecovered, outcome)
		require.Len(t, questions, 2)
		assert.Equal(t, "Recovered?", questions[0].QuestionText)
	})

	t.Run("nothing usable", func(t *testing.T) {
		_, _, err := decodeQuestions("the model refused")
		require.Error(t, err)
		assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
	})
}

func TestRecoverAnswer(t *testing.T) {
	t.Run("field recovery", func(t *testing.T) {
		answer, outcome := recoverAnswer(`broken json "answer_text": "Use a worker pool." tail`)
		assert.Equal(t, ParseOutcomeRecovered, outcome)
		assert.Equal(t, "Use a worker pool.", answer.AnswerText)
	})

	t.Run("plain prose is a usable answer", func(t *testing.T) {
		answer, outcome := recoverAnswer("I would start by describing the team context.")
		assert.Equal(t, ParseOutcomeRecovered, outcome)
		assert.Contains(t, answer.AnswerText, "team context")
	})

	t.Run("mangled json fragment is not", func(t *testing.T) {
		answer, outcome := recoverAnswer(`{"key_points": ["a",`)
		assert.Equal(t, ParseOutcomeFailed, outcome)
		assert.Empty(t, answer.AnswerText)
	})
}
