// Package manifest reads and validates the project's package.json. Only the
// identity fields (name, version, description, author) are modeled; they are
// copied verbatim into the scaffold template and the pipeline asset paths.
package manifest
