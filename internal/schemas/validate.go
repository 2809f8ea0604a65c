// Package schemas provides JSON Schema validation for project records.
package schemas

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed project.schema.json
var projectSchema string

// ProjectSchemaPath is the repository-relative path of the project schema.
const ProjectSchemaPath = "schemas/project.schema.json"

// ProjectSchema returns the embedded project schema document.
func ProjectSchema() string {
	return projectSchema
}

// ResolveSchemaPath locates a schema override. Absolute paths are used as
// given. Relative paths are tried from the working directory and up to two
// parents so that commands run from cmd/ or a package directory still find
// the repository's schemas/ folder.
func ResolveSchemaPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("schema file not found: %s", path)
		}
		return path, nil
	}

	for _, prefix := range []string{".", "..", filepath.Join("..", "..")} {
		candidate, err := filepath.Abs(filepath.Join(prefix, path))
		if err != nil {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("schema file not found: %s", path)
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) String() string {
	return fe.Field + ": " + fe.Message
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Validator checks documents against one compiled schema. It is safe for
// concurrent use.
type Validator struct {
	source string
	schema *gojsonschema.Schema
}

// NewProjectValidator compiles the project schema. With an empty path the
// embedded schema is used, otherwise the file ResolveSchemaPath finds.
func NewProjectValidator(path string) (*Validator, error) {
	if path == "" {
		return compile("(embedded project schema)", gojsonschema.NewStringLoader(projectSchema))
	}

	absPath, err := ResolveSchemaPath(path)
	if err != nil {
		return nil, err
	}
	return compile(absPath, gojsonschema.NewReferenceLoader("file://"+filepath.ToSlash(absPath)))
}

func compile(source string, loader gojsonschema.JSONLoader) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    source,
			Message: "schema compilation failed",
			Cause:   err,
		}
	}
	return &Validator{source: source, schema: schema}, nil
}

// Validate checks a raw JSON document. It returns a *ValidationError when the
// document does not match, or a *SchemaLoadError when it cannot be parsed.
func (v *Validator) Validate(document []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &SchemaLoadError{
			Path:    v.source,
			Message: "document could not be loaded",
			Cause:   err,
		}
	}
	return resultError(result)
}

// Warnings validates document and flattens any problems into advisory
// messages. A valid document yields nil.
func (v *Validator) Warnings(document []byte) []string {
	return Warnings(v.Validate(document))
}

// Warnings flattens a validation error into advisory messages.
func Warnings(err error) []string {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*ValidationError); ok {
		out := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			out = append(out, fe.String())
		}
		return out
	}
	return []string{err.Error()}
}

func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
