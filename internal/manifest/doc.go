// Package manifest handles parsing, editing, and validation of composer.json
// manifests. Documents are held as insertion-ordered objects so a rewrite
// keeps the author's key order, and the encoder produces the same indented,
// slash-preserving layout Composer itself writes. Schema validation runs
// against the embedded schema/composer.schema.json.
package manifest
