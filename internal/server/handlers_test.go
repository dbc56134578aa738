package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/types"
)

const testResume = `# Jane Doe
## Senior Software Engineer
jane@example.com | +1 (555) 123-4567

### Experience
Software Engineer at Acme Corp | 2020 - Present
- Built distributed systems in Go

### Skills
**Languages:** Go, Python
`

// testServer builds a Server with just enough wiring for the stateless
// document handlers. No database connection is made.
func testServer(t *testing.T) *Server {
	t.Helper()
	return &Server{logger: zerolog.Nop()}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleParse(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s.handleParse, types.ParseRequest{Markdown: testResume})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Document)
	assert.True(t, resp.Document.IsValid)
	assert.Equal(t, "Jane Doe", resp.Document.Header.Name)
	assert.Len(t, resp.Document.Sections, 2)
}

func TestHandleParse_InvalidResumeStillOK(t *testing.T) {
	s := testServer(t)

	// Garbage input is not an HTTP error; diagnostics ride on the document.
	rec := postJSON(t, s.handleParse, types.ParseRequest{Markdown: "just some text with no headings"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Document)
	assert.False(t, resp.Document.IsValid)
	assert.NotEmpty(t, resp.Document.Errors)
}

func TestHandleParse_MissingMarkdown(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s.handleParse, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParse_BadJSON(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.handleParse(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParse_PayloadTooLarge(t *testing.T) {
	s := testServer(t)

	big := "# Jane\n### Experience\n" + strings.Repeat("x", maxMarkdownLength)
	rec := postJSON(t, s.handleParse, types.ParseRequest{Markdown: big})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleRender(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s.handleRender, types.RenderRequest{Markdown: testResume, Template: "modern"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.HTML, "Jane Doe")
	assert.Contains(t, resp.HTML, "<html")
}

func TestHandleRender_DefaultTemplate(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s.handleRender, types.RenderRequest{Markdown: testResume})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleRender_UnknownTemplate(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s.handleRender, types.RenderRequest{Markdown: testResume, Template: "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRender_InvalidResume(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s.handleRender, types.RenderRequest{Markdown: "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleGenerate_NotConfigured(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s.handleGenerate, types.GenerateRequest{
		ResumeText:     "some resume",
		JobDescription: "some job",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

type stubLLM struct {
	output string
	err    error
}

func (s *stubLLM) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.output, s.err
}

func (s *stubLLM) Close() error { return nil }

func TestHandleGenerate(t *testing.T) {
	s := testServer(t)
	s.llmClient = &stubLLM{output: "```markdown\n" + testResume + "```"}

	rec := postJSON(t, s.handleGenerate, types.GenerateRequest{
		ResumeText:     "some resume",
		JobDescription: "some job",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Markdown, "```", "fences are stripped")
	require.NotNil(t, resp.Document)
	assert.Equal(t, "Jane Doe", resp.Document.Header.Name)
}

func TestHandleGenerate_MissingFields(t *testing.T) {
	s := testServer(t)
	s.llmClient = &stubLLM{output: "irrelevant"}

	rec := postJSON(t, s.handleGenerate, types.GenerateRequest{ResumeText: "only resume"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListTemplates(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	rec := httptest.NewRecorder()
	s.handleListTemplates(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"classic", "functional", "modern"}, resp["templates"])
}
