package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanMarkdownFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fence", "# Jane Doe\n### Skills", "# Jane Doe\n### Skills"},
		{"markdown fence", "```markdown\n# Jane Doe\n```", "# Jane Doe"},
		{"bare fence", "```\n# Jane Doe\n```", "# Jane Doe"},
		{"fence with surrounding whitespace", "  ```md\n# Jane\n```  ", "# Jane"},
		{"heading is not a language tag", "```\n# A heading with spaces\n```", "# A heading with spaces"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanMarkdownFence(tt.input))
		})
	}
}

type stubClient struct {
	response string
	prompt   string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	s.prompt = prompt
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

func TestGenerateResumeMarkdown(t *testing.T) {
	stub := &stubClient{response: "```markdown\n# Jane Doe\n### Skills\n- Go\n```"}

	out, err := GenerateResumeMarkdown(context.Background(), stub, "my resume", "the job")
	require.NoError(t, err)
	assert.Equal(t, "# Jane Doe\n### Skills\n- Go", out)
	assert.Contains(t, stub.prompt, "my resume")
	assert.Contains(t, stub.prompt, "the job")
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), nil, "")
	require.Error(t, err)
}

func TestConfigModelFallback(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierLite: "lite-model"}}
	assert.Equal(t, "lite-model", cfg.Model(TierAdvanced))
	assert.Equal(t, "", (&Config{}).Model(TierStandard))
}
