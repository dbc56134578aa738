package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanInline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "hello world", "hello world"},
		{"bold", "**bold**", "bold"},
		{"italic", "*italic*", "italic"},
		{"bold before italic", "**bold** and *italic*", "bold and italic"},
		{"link keeps label", "[GitHub](https://github.com/janedoe)", "GitHub"},
		{"empty link label", "[](https://example.com)", ""},
		{"bold wrapping spaces", "**  **", ""},
		{"mixed", "**Senior** *Engineer* at [Acme](https://acme.example)", "Senior Engineer at Acme"},
		{"trims whitespace", "  padded  ", "padded"},
		{"empty", "", ""},
		{"unbalanced markers survive", "**half bold", "**half bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanInline(tt.input))
		})
	}
}
