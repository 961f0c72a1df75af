// Package builtin embeds the default schemas shipped with the tool. They
// form the lowest-precedence resolution tier and are always available.
package builtin

import (
	"embed"
	"io/fs"
)

//go:embed schemas
var schemaFS embed.FS

// Schemas returns the embedded schema tree, rooted so each top-level
// directory is one schema (e.g. spec-driven/schema.yaml).
func Schemas() fs.FS {
	sub, err := fs.Sub(schemaFS, "schemas")
	if err != nil {
		// The embedded tree always contains the schemas directory.
		panic(err)
	}
	return sub
}
