package bombe

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// CrackRequest describes a single-rotor-order crack job, loadable from a
// JSON file via --config the same way the Enigma machine loads its own
// settings (spec §4.6, §6).
type CrackRequest struct {
	Ciphertext string `json:"ciphertext"`
	Crib       string `json:"crib"`
	Check      bool   `json:"check"`
}

// FarmRequest describes a full 60-rotor-order crack job.
type FarmRequest struct {
	Ciphertext string `json:"ciphertext"`
	Crib       string `json:"crib"`
	Check      bool   `json:"check"`
}

const crackRequestSchemaDoc = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["ciphertext", "crib"],
	"properties": {
		"ciphertext": {"type": "string", "pattern": "^[a-zA-Z]+$"},
		"crib": {"type": "string", "pattern": "^[a-zA-Z]+$"},
		"check": {"type": "boolean"}
	}
}`

var crackRequestSchema = compileSchema("crack-request.json", crackRequestSchemaDoc)

func compileSchema(resource, doc string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resource, bytes.NewReader([]byte(doc))); err != nil {
		panic(fmt.Sprintf("bombe: invalid embedded schema %s: %v", resource, err))
	}
	schema, err := compiler.Compile(resource)
	if err != nil {
		panic(fmt.Sprintf("bombe: embedded schema %s failed to compile: %v", resource, err))
	}
	return schema
}

// ValidateCrackRequest validates raw JSON against the crack-job schema
// (ciphertext/crib present, letters only) before the caller attempts to
// unmarshal it, catching a malformed job file with a useful error
// instead of an opaque decode failure or, worse, a silent empty Menu.
func ValidateCrackRequest(data []byte) error {
	return validateAgainst(crackRequestSchema, data)
}

// ValidateFarmRequest validates a farm-crack job document. It shares the
// crack-request schema: a farm job differs from a single-order crack
// job only in which entry point consumes it (Farm rather than
// Bombe.Sweep), not in shape.
func ValidateFarmRequest(data []byte) error {
	return validateAgainst(crackRequestSchema, data)
}

func validateAgainst(schema *jsonschema.Schema, data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &InvalidInputError{Reason: "not valid JSON: " + err.Error()}
	}
	if err := schema.Validate(doc); err != nil {
		return &InvalidInputError{Reason: "job document failed schema validation: " + err.Error()}
	}
	return nil
}

// LoadCrackRequest validates and decodes a crack-job JSON document.
func LoadCrackRequest(data []byte) (CrackRequest, error) {
	var req CrackRequest
	if err := ValidateCrackRequest(data); err != nil {
		return req, err
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, &InvalidInputError{Reason: "failed to decode crack request: " + err.Error()}
	}
	return req, nil
}

// LoadFarmRequest validates and decodes a farm-crack-job JSON document.
func LoadFarmRequest(data []byte) (FarmRequest, error) {
	var req FarmRequest
	if err := ValidateFarmRequest(data); err != nil {
		return req, err
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, &InvalidInputError{Reason: "failed to decode farm request: " + err.Error()}
	}
	return req, nil
}
