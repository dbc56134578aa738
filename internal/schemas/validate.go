// Package schemas provides JSON Schema validation for serialized resume
// documents. The schema is embedded so validation works the same from the
// CLI, the server, and tests regardless of working directory.
package schemas

import (
	"fmt"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_document.schema.json
var resumeDocumentSchema []byte

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateResumeDocument validates serialized ResumeDocument JSON against
// the embedded schema. A nil return means the document conforms.
func ValidateResumeDocument(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeDocumentSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "schema validation could not run", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, res := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   res.Field(),
			Message: res.Description(),
		})
	}
	return ve
}
