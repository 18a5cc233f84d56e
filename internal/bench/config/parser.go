package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "suite.schema.json"

// LoadConfig reads, schema-checks and validates a suite file.
func LoadConfig(path string) (*SuiteConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return ParseConfig(data, path)
}

// ParseConfig parses suite data. The format is chosen by the filename
// extension: .json is JSON, anything else YAML.
func ParseConfig(data []byte, filename string) (*SuiteConfig, error) {
	isJSON := strings.EqualFold(filepath.Ext(filename), ".json")

	if err := validateSchema(data, isJSON); err != nil {
		return nil, err
	}

	var config SuiteConfig
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// validateSchema checks the raw document against suiteSchema. YAML input is
// converted to its JSON form first.
func validateSchema(data []byte, isJSON bool) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(suiteSchema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	doc := data
	if !isJSON {
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("error parsing config file: %w", err)
		}
		if doc, err = json.Marshal(raw); err != nil {
			return fmt.Errorf("error converting config file: %w", err)
		}
	}

	var instance interface{}
	if err := json.Unmarshal(doc, &instance); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		errs := &ValidationErrors{}
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			collectSchemaErrors(ve, errs)
		}
		if !errs.HasErrors() {
			errs.Add("", err.Error())
		}
		return errs
	}
	return nil
}

// collectSchemaErrors flattens the leaf causes of a schema failure.
func collectSchemaErrors(ve *jsonschema.ValidationError, errs *ValidationErrors) {
	if len(ve.Causes) == 0 {
		errs.Add(instanceField(ve.InstanceLocation), ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, errs)
	}
}

// instanceField converts a JSON pointer such as /benchmarks/0/size into the
// dotted form used by Validate (benchmarks[0].size).
func instanceField(pointer string) string {
	var sb strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		if part == "" {
			continue
		}
		if isIndex(part) {
			sb.WriteString("[" + part + "]")
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func isIndex(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
