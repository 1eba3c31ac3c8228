package catalog

import (
	"encoding/json"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/oguzhan/career-compass/internal/types"
)

//go:embed field_profiles.schema.json
var catalogSchema string

var validate = validator.New()

// catalogFile is the on-disk shape of an authored catalog.
type catalogFile struct {
	Fields []types.FieldProfile `json:"fields"`
}

// SchemaError represents a catalog file failing JSON Schema validation.
type SchemaError struct {
	Path   string
	Errors []string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("catalog %s failed schema validation:\n", e.Path))
	for i, msg := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, msg))
	}
	return sb.String()
}

// Load reads a caller-authored catalog JSON file, validates it against the
// embedded JSON Schema and struct rules, and returns the profiles. A file
// that fails validation is a load error; an entry that merely has an empty
// ideal vector loads fine and is skipped later by the ranker.
func Load(path string) ([]types.FieldProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if err := validateSchema(path, data); err != nil {
		return nil, err
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	seen := make(map[string]bool, len(file.Fields))
	for i := range file.Fields {
		profile := &file.Fields[i]
		if err := validate.Struct(profile); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s) is invalid: %w", i, profile.ID, err)
		}
		if seen[profile.ID] {
			return nil, fmt.Errorf("catalog entry %d duplicates field id %q", i, profile.ID)
		}
		seen[profile.ID] = true
	}

	return file.Fields, nil
}

func validateSchema(path string, data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate catalog %s: %w", path, err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Path: path, Errors: make([]string, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return schemaErr
}
