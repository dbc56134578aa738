package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_MissingInFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "render")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"in\" not set")
}

func TestRenderCommand_WritesHTML(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	inputFile := writeSampleResume(t, tmpDir)
	outputFile := filepath.Join(tmpDir, "resume.html")

	cmd := exec.Command(binaryPath, "render", "--in", inputFile, "--out", outputFile, "--template", "modern")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	html, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Jane Doe")
	assert.Contains(t, string(html), "<html")
}

func TestRenderCommand_UnknownTemplate(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	inputFile := writeSampleResume(t, tmpDir)

	cmd := exec.Command(binaryPath, "render", "--in", inputFile, "--template", "nope")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown template")
}

func TestRenderCommand_AllTemplates(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	inputFile := writeSampleResume(t, tmpDir)
	outDir := filepath.Join(tmpDir, "rendered")

	cmd := exec.Command(binaryPath, "render", "--in", inputFile, "--all", "--out-dir", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	for _, name := range []string{"classic", "modern", "functional"} {
		html, err := os.ReadFile(filepath.Join(outDir, name+".html"))
		require.NoError(t, err)
		assert.Contains(t, string(html), "Jane Doe")
	}
}

func TestRenderCommand_UnparsableResume(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "empty.md")
	require.NoError(t, os.WriteFile(inputFile, []byte("   \n"), 0644))

	cmd := exec.Command(binaryPath, "render", "--in", inputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "could not be parsed")
}
