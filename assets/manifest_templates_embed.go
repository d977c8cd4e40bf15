// Where: assets/manifest_templates_embed.go
// What: Embed starter manifest templates for the init command.
// Why: Ship the scaffold inside the binary so init works anywhere.
package assets

import "embed"

//go:embed templates/*.tmpl
var TemplatesFS embed.FS
