package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticlePattern(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"bare article", "348518462", "348518462"},
		{"article in sentence", "проверь пожалуйста 21676342 срочно", "21676342"},
		{"too short", "12345", ""},
		{"digits inside word", "abc123456def", ""},
		{"first of several", "348518462 и 21676342", "348518462"},
		{"no digits", "что за товар?", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, articlePattern.FindString(tc.text))
		})
	}
}
