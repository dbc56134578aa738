// Package prompts loads externalized LLM prompt templates, stored as
// JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt by filename (e.g. "generation.json") and key.
func Get(filename, key string) (string, error) {
	file, err := loadFile(filename)
	if err != nil {
		return "", err
	}
	prompt, ok := file[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet retrieves a prompt, panicking if the file or key is missing.
// Prompt files are embedded, so a failure here is a build defect.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces {{.Key}} placeholders with values from data.
func Format(template string, data map[string]string) string {
	for key, value := range data {
		template = strings.ReplaceAll(template, "{{."+key+"}}", value)
	}
	return template
}

func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	file, ok := cache[filename]
	cacheMu.RUnlock()
	if ok {
		return file, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("prompt file %s not found: %w", filename, err)
	}
	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("prompt file %s is not valid JSON: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = parsed
	cacheMu.Unlock()
	return parsed, nil
}
