package config

// suiteSchema is the JSON Schema every suite file must satisfy before its
// semantic validation runs.
const suiteSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "bigo benchmark suite",
  "type": "object",
  "required": ["benchmarks"],
  "additionalProperties": false,
  "properties": {
    "name": { "type": "string" },
    "description": { "type": "string" },
    "settings": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "repeat": { "type": "integer", "minimum": 0 },
        "warmup": { "type": "integer", "minimum": 0 },
        "verify": { "type": "boolean" },
        "threshold": { "type": ["string", "integer"] },
        "seed": { "type": "integer" }
      }
    },
    "benchmarks": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["workload"],
        "additionalProperties": false,
        "properties": {
          "name": { "type": "string" },
          "workload": { "type": "string", "minLength": 1 },
          "size": { "type": "integer", "minimum": 0 },
          "seed": { "type": "integer" },
          "variants": {
            "type": "array",
            "minItems": 1,
            "items": { "type": "string", "minLength": 1 }
          }
        }
      }
    }
  }
}`
