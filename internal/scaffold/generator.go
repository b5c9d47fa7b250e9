package scaffold

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"go.uber.org/zap"

	"github.com/pyplay-labs/pyplay/internal/manifest"
)

// TemplateDir is the folder, relative to the project root, that receives the
// generated files before they are copied over the root.
const TemplateDir = ".template"

//go:embed all:templates
var templatesFS embed.FS

// Generator produces the project files described by a Template.
type Generator interface {
	Generate(ctx context.Context, t *Template) error
}

// EmbeddedGenerator renders the embedded file set into <t.Path>/.template/.
// Files ending in .tmpl are executed as text/template with the suffix
// stripped; other files are written as they are.
type EmbeddedGenerator struct {
	// FS overrides the embedded templates. Its root holds the file set.
	FS  fs.FS
	Log *zap.Logger

	// Files lists the generated paths, relative to the template folder, after
	// a successful Generate.
	Files []string
}

// devToolchain is appended to the template's dev-time dependencies in the
// generated package.json.
var devToolchain = []Dependency{
	{"typescript", "^4.7.4"},
	{"ts-loader", "^9.3.1"},
	{"webpack", "^5.74.0"},
	{"webpack-cli", "^4.10.0"},
	{"webpack-dev-server", "^4.10.0"},
	{"html-webpack-plugin", "^5.5.0"},
	{"mini-css-extract-plugin", "^2.6.1"},
	{"css-loader", "^6.7.1"},
	{"source-map-loader", "^4.0.0"},
	{"webpack-bundle-analyzer", "^4.6.1"},
	{"del-cli", "^5.0.0"},
	{"jest", "^28.1.3"},
	{"ts-jest", "^28.0.8"},
	{"@types/jest", "^28.1.6"},
	{"typedoc", "^0.23.10"},
	{"prettier", "^2.7.1"},
	{"eslint", "^8.22.0"},
}

// renderData is what the file templates see.
type renderData struct {
	*Template
	AssetID         string
	APIVersion      string
	Year            int
	DevDependencies []Dependency
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	},
	// global is the window symbol under which a bundle exposes a package.
	"global": func(name string) string {
		if name == "lodash" {
			return "window['_']"
		}
		return fmt.Sprintf("window['%s']", name)
	},
}

// Generate renders every template file into the project's template folder.
func (g *EmbeddedGenerator) Generate(ctx context.Context, t *Template) error {
	log := g.Log
	if log == nil {
		log = zap.NewNop()
	}

	src := g.FS
	if src == nil {
		sub, err := fs.Sub(templatesFS, "templates")
		if err != nil {
			return fmt.Errorf("opening embedded templates: %w", err)
		}
		src = sub
	}

	apiVersion, err := manifest.APIVersion(t.Version)
	if err != nil {
		return fmt.Errorf("deriving API version: %w", err)
	}

	data := &renderData{
		Template:        t,
		AssetID:         manifest.AssetID(t.Name),
		APIVersion:      apiVersion,
		Year:            time.Now().Year(),
		DevDependencies: append(append([]Dependency{}, t.Dependencies.DevTime...), devToolchain...),
	}

	outRoot := filepath.Join(t.Path, TemplateDir)
	g.Files = nil

	return fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		raw, err := fs.ReadFile(src, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		outName := p
		content := raw
		if strings.HasSuffix(p, ".tmpl") {
			outName = strings.TrimSuffix(p, ".tmpl")
			content, err = render(p, raw, data)
			if err != nil {
				return err
			}
		}

		outPath := filepath.Join(outRoot, filepath.FromSlash(outName))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		log.Debug("generated template file", zap.String("file", outName))
		g.Files = append(g.Files, outName)
		return nil
	})
}

func render(name string, raw []byte, data *renderData) ([]byte, error) {
	tmpl, err := template.New(path.Base(name)).Funcs(funcs).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
