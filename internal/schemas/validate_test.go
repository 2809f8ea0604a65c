package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProject = `{
	"title": "Automatisk fakturatolkning",
	"areas": ["Ekonomi"],
	"budgetDetails": {"budgetAmount": 500000, "fundingSource": "Egen budget"},
	"costData": {"costEntries": [
		{"costType": "Konsult", "costUnit": "hours", "hoursDetails": {"hours": 40, "hourlyRate": 800}}
	]},
	"effectsData": {"effectEntries": [
		{
			"valueDimension": "Tidsbesparing",
			"hasQuantitative": true,
			"quantitativeDetails": {
				"effectType": "financial",
				"financialDetails": {
					"valueUnit": "hours",
					"hoursDetails": {"affectedPeople": 5, "timePerPerson": 2, "hourlyRate": 500, "timescale": "per_week"}
				}
			}
		},
		{
			"valueDimension": "Kvalitet",
			"hasQualitative": true,
			"qualitativeDetails": {"factor": "Felfrekvens", "currentRating": 4, "targetRating": 8}
		}
	]},
	"leadershipDetails": {"projectLeader": "Anna Andersson", "contactEmail": "anna@example.se"}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestProjectValidator_ValidDocument(t *testing.T) {
	v, err := NewProjectValidator("")
	require.NoError(t, err)

	assert.NoError(t, v.Validate([]byte(validProject)))
	assert.Nil(t, v.Warnings([]byte(validProject)))
}

func TestProjectValidator_WrongShapes(t *testing.T) {
	v, err := NewProjectValidator("")
	require.NoError(t, err)

	doc := `{
		"title": "Test",
		"costData": {"costEntries": [{"costUnit": "weekly", "fixedDetails": {"fixedAmount": "lots"}}]},
		"effectsData": {"effectEntries": [
			{"hasQualitative": true, "qualitativeDetails": {"factor": "x", "currentRating": 0, "targetRating": 12}}
		]}
	}`

	err = v.Validate([]byte(doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.GreaterOrEqual(t, len(validationErr.Errors), 4)

	warnings := v.Warnings([]byte(doc))
	assert.Len(t, warnings, len(validationErr.Errors))
	assert.Contains(t, warnings[0], ":")
}

func TestProjectValidator_MissingTitle(t *testing.T) {
	v, err := NewProjectValidator("")
	require.NoError(t, err)

	err = v.Validate([]byte(`{"intro": "utan titel"}`))
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestProjectValidator_MalformedDocument(t *testing.T) {
	v, err := NewProjectValidator("")
	require.NoError(t, err)

	err = v.Validate([]byte(`{ invalid json }`))
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "malformed documents are load errors, got %T", err)
	assert.Len(t, Warnings(err), 1)
}

func TestNewProjectValidator_FromFile(t *testing.T) {
	path := writeFile(t, "project.schema.json", ProjectSchema())

	v, err := NewProjectValidator(path)
	require.NoError(t, err)
	assert.NoError(t, v.Validate([]byte(validProject)))
}

func TestNewProjectValidator_MissingFile(t *testing.T) {
	_, err := NewProjectValidator("/nonexistent/project.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestNewProjectValidator_InvalidSchema(t *testing.T) {
	path := writeFile(t, "broken.schema.json", `{"type": 42}`)

	_, err := NewProjectValidator(path)
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}

func TestProjectValidator_NestedFieldPath(t *testing.T) {
	v, err := NewProjectValidator("")
	require.NoError(t, err)

	err = v.Validate([]byte(`{"title": "x", "budgetDetails": {"budgetAmount": -5}}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "budgetDetails.budgetAmount", validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "title", Message: "is required"},
			{Field: "budgetDetails.budgetAmount", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "title")
	assert.Contains(t, errorMsg, "budgetDetails.budgetAmount")
}

func TestWarnings_Nil(t *testing.T) {
	assert.Nil(t, Warnings(nil))
}

func TestResolveSchemaPath(t *testing.T) {
	path, err := ResolveSchemaPath(ProjectSchemaPath)
	require.NoError(t, err, "schema should resolve from the package directory")
	assert.True(t, filepath.IsAbs(path))

	_, err = ResolveSchemaPath("schemas/nonexistent.schema.json")
	assert.ErrorContains(t, err, "schema file not found")

	_, err = ResolveSchemaPath("/nonexistent/project.schema.json")
	assert.ErrorContains(t, err, "schema file not found")
}

func TestNewProjectValidator_RelativePath(t *testing.T) {
	v, err := NewProjectValidator(ProjectSchemaPath)
	require.NoError(t, err)
	assert.NoError(t, v.Validate([]byte(validProject)))
}
