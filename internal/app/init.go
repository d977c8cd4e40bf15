// Where: internal/app/init.go
// What: Init command handler.
// Why: Scaffold a deploy.yml so new projects start from a valid manifest.
package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/taskdeck/djdeploy/assets"
	"github.com/taskdeck/djdeploy/internal/manifest"
	"github.com/taskdeck/djdeploy/internal/ui"
)

type manifestTemplateData struct {
	ProjectName string
	Python      string
	Settings    string
}

// runInit executes the 'init' command: render the starter manifest into the
// project directory, prompting before overwriting an existing one.
func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	dir := projectDir(cli, deps)
	if dir == "" {
		return exitWithError(out, fmt.Errorf("project directory not set"))
	}

	path := manifest.Path(dir)
	if _, err := os.Stat(path); err == nil && !cli.Init.Force {
		if deps.Confirm == nil {
			return exitWithError(out, fmt.Errorf("%s already exists (use --force to overwrite)", path))
		}
		ok, err := deps.Confirm(fmt.Sprintf("Overwrite %s?", path))
		if err != nil {
			return exitWithError(out, err)
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return 1
		}
	}

	data := manifestTemplateData{
		ProjectName: filepath.Base(dir),
		Python:      "python3",
	}
	rendered, err := renderManifestTemplate(data)
	if err != nil {
		return exitWithError(out, err)
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Success(fmt.Sprintf("Wrote %s", path))
	console.ItemPlain("Next: review the manifest, then run `djdeploy check`")
	return 0
}

func renderManifestTemplate(data manifestTemplateData) (string, error) {
	tmpl, err := template.New("deploy.yml.tmpl").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(assets.TemplatesFS, "templates/deploy.yml.tmpl")
	if err != nil {
		return "", fmt.Errorf("parse manifest template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render manifest template: %w", err)
	}
	return buf.String(), nil
}
