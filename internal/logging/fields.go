// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Parse fields.
	FieldLanguage = "language"
	FieldBytes    = "bytes"
	FieldNodes    = "nodes"
	FieldErrors   = "errors"

	// Grammar fields.
	FieldSymbol     = "symbol"
	FieldSymbols    = "symbols"
	FieldNamed      = "named"
	FieldAbiVersion = "abi_version"

	// Configuration fields.
	FieldConfig   = "config"
	FieldLogLevel = "log_level"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
