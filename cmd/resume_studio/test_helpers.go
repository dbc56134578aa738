package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_studio binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_studio"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeSampleResume writes a well-formed Markdown resume into dir and
// returns its path.
func writeSampleResume(t *testing.T, dir string) string {
	t.Helper()
	const resume = `# Jane Doe
## Senior Software Engineer
jane@example.com | +1 (555) 123-4567

### Experience
Software Engineer at Acme Corp | 2020 - Present
- Built distributed systems in Go

### Skills
**Languages:** Go, Python
`
	path := filepath.Join(dir, "resume.md")
	if err := os.WriteFile(path, []byte(resume), 0644); err != nil {
		t.Fatalf("failed to write sample resume: %v", err)
	}
	return path
}
