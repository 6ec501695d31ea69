package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/VanSingco/realstate-api/internal/contracts/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Registry keys for the contracts this service validates against.
const (
	PropertyRecordType    = "PropertyRecord"
	PropertyRecordVersion = "1.0.0"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Register every schema as a resource first so they can reference each
	// other through `$ref`.
	err := fs.WalkDir(schemas.SchemasFS, "records", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, err := schemas.SchemasFS.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Second pass compiles and registers each schema under its contract key.
	err = fs.WalkDir(schemas.SchemasFS, "records", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, err := compiler.Compile(path)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
				return nil
			}

			key := generateKeyFromPath(path)
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath turns a path such as "records/property/v1.json" into a
// registry key such as "PropertyRecord/1.0.0".
func generateKeyFromPath(path string) string {
	trimmedPath := strings.TrimPrefix(path, "records/")
	trimmedPath = strings.TrimSuffix(trimmedPath, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)

	recordNameParts := strings.Split(parts[0], "-")
	var recordNameBuilder strings.Builder
	for _, p := range recordNameParts {
		recordNameBuilder.WriteString(caser.String(p))
	}
	recordNameBuilder.WriteString("Record")
	recordName := recordNameBuilder.String()

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", recordName, version)
}

// ValidateRecord checks a raw row against the registered contract for the
// given record type and version.
func ValidateRecord(recordType, recordVersion string, body []byte) error {
	key := fmt.Sprintf("%s/%s", recordType, recordVersion)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for record '%s' version '%s' not found", recordType, recordVersion)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("record body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}
