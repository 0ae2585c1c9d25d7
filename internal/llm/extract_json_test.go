package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain object",
			input: `{"score":{"product_rating":"7"}}`,
			want:  `{"score":{"product_rating":"7"}}`,
		},
		{
			name:  "object with preamble",
			input: "Вот результат анализа:\n{\"score\":{}}\nНадеюсь, это поможет.",
			want:  `{"score":{}}`,
		},
		{
			name:  "markdown fence",
			input: "```json\n{\"problems\":[]}\n```",
			want:  `{"problems":[]}`,
		},
		{
			name:  "array",
			input: "result: [1,2,3]",
			want:  "[1,2,3]",
		},
		{
			name:  "no json at all",
			input: "не удалось выполнить анализ",
			want:  "не удалось выполнить анализ",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.input))
		})
	}
}

func TestParseVerdict(t *testing.T) {
	raw := "Анализ готов:\n" + `{
		"problems": [{"name": "Хрупкий корпус", "severity": "высокая", "frequency_estimate": 25}],
		"emotional_profile": {"overall_mood": "негативный", "frustration_level": 8},
		"score": {"product_rating": 4.5, "risk_level": "высокий"}
	}`

	v, err := parseVerdict(raw)
	require.NoError(t, err)

	require.Len(t, v.Problems, 1)
	assert.Equal(t, "Хрупкий корпус", v.Problems[0].Name)
	// Bare numbers decode into their string form.
	assert.Equal(t, "25", string(v.Problems[0].FrequencyEstimate))
	assert.Equal(t, "8", string(v.Emotional.FrustrationLevel))
	assert.Equal(t, "4.5", string(v.Score.ProductRating))
	assert.Equal(t, "высокий", v.Score.RiskLevel)
}

func TestParseVerdictErrors(t *testing.T) {
	_, err := parseVerdict("   ")
	require.ErrorIs(t, err, ErrEmptyResponse)

	_, err = parseVerdict("модель вернула прозу без структуры")
	require.Error(t, err)
}
