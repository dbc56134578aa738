package export

import (
	"context"
	"testing"

	"github.com/jonathan/resume-studio/internal/markdown"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPDFUnknownTemplate(t *testing.T) {
	doc := markdown.Parse("# Jane\n### Summary\nHi.")

	_, err := ToPDF(context.Background(), doc, Options{Template: "nonexistent"})
	require.Error(t, err)

	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	var tmplErr *rendering.TemplateError
	assert.ErrorAs(t, err, &tmplErr, "template error should be wrapped")
}
