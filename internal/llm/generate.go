package llm

import (
	"context"
	"strings"

	"github.com/jonathan/resume-studio/internal/prompts"
)

// GenerateResumeMarkdown asks the model to rewrite a candidate's resume
// text as resume-shaped Markdown optimized for a job description. The
// returned Markdown is unvalidated; the markdown parser downstream is the
// component responsible for making sense of it.
func GenerateResumeMarkdown(ctx context.Context, client Client, resumeText, jobDescription string) (string, error) {
	prompt := prompts.Format(prompts.MustGet("generation.json", "optimize-resume"), map[string]string{
		"ResumeText":     resumeText,
		"JobDescription": jobDescription,
	})

	out, err := client.GenerateContent(ctx, prompt, TierStandard)
	if err != nil {
		return "", err
	}
	return CleanMarkdownFence(out), nil
}

// CleanMarkdownFence strips a wrapping ```markdown ... ``` code fence.
// Models often fence their whole answer even when told not to.
func CleanMarkdownFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		// A short, spaceless first line is a language tag, not content.
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
