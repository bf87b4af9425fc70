package tokenauth_test

import (
	"testing"

	tokenauth "github.com/goliatone/go-tokenauth"
	"github.com/stretchr/testify/assert"
)

func TestForHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "a perfectly normal title",
			want:  "a perfectly normal title",
		},
		{
			name:  "script tag escaped",
			input: `<script>alert("xss")</script>`,
			want:  `&lt;script&gt;alert(&#34;xss&#34;)&lt;/script&gt;`,
		},
		{
			name:  "attribute breakout escaped",
			input: `" onmouseover="steal()`,
			want:  `&#34; onmouseover=&#34;steal()`,
		},
		{
			name:  "ampersand escaped",
			input: "fish & chips",
			want:  "fish &amp; chips",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenauth.ForHTML(tt.input))
		})
	}
}
