// Package schema embeds the YAML data-model schemas that pkg/datamodel is
// generated from.
package schema

import "embed"

// FS holds every *.yaml schema file.
//
//go:embed *.yaml
var FS embed.FS
