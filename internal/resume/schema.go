package resume

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var (
	schemaOnce     sync.Once
	resumeSchema   *gojsonschema.Schema
	documentSchema *gojsonschema.Schema
	schemaErr      error
)

func loadSchemas() {
	schemaOnce.Do(func() {
		resumeSchema, schemaErr = compileSchema("schemas/resume.schema.json")
		if schemaErr != nil {
			return
		}
		documentSchema, schemaErr = compileSchema("schemas/document.schema.json")
	})
}

func compileSchema(name string) (*gojsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return schema, nil
}

// ValidateResumeJSON validates a single-résumé payload, such as an upload
// result or a PUT body.
func ValidateResumeJSON(data []byte) error {
	loadSchemas()
	if schemaErr != nil {
		return schemaErr
	}
	return validate(resumeSchema, data)
}

// ValidateDocumentJSON validates a versioned document payload.
func ValidateDocumentJSON(data []byte) error {
	loadSchemas()
	if schemaErr != nil {
		return schemaErr
	}
	return validate(documentSchema, data)
}

func validate(schema *gojsonschema.Schema, data []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
