package scaffold

import (
	"github.com/pyplay-labs/pyplay/internal/manifest"
)

// PackageType is the kind of package a template describes.
type PackageType string

// PackageTypeApplication marks a standalone browser application.
const PackageTypeApplication PackageType = "application"

// EntryFile is the bundle entry point of the main module.
const EntryFile = "./index.ts"

// DevServerPort is the port the webpack dev server listens on.
const DevServerPort = 3012

// Dependency is an external package with its version constraint.
type Dependency struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// Template describes the project to scaffold. It is built once per run and
// not modified afterwards.
type Template struct {
	Path             string          `json:"path" yaml:"path"`
	Type             PackageType     `json:"type" yaml:"type"`
	Name             string          `json:"name" yaml:"name"`
	Version          string          `json:"version" yaml:"version"`
	ShortDescription string          `json:"shortDescription" yaml:"shortDescription"`
	Author           manifest.Person `json:"author" yaml:"author"`
	Dependencies     Dependencies    `json:"dependencies" yaml:"dependencies"`
	UserGuide        bool            `json:"userGuide" yaml:"userGuide"`
	Bundles          Bundles         `json:"bundles" yaml:"bundles"`
	DevServer        DevServer       `json:"devServer" yaml:"devServer"`
}

// Dependencies splits externals between load time and development time.
type Dependencies struct {
	RunTime RunTimeDeps  `json:"runTime" yaml:"runTime"`
	DevTime []Dependency `json:"devTime" yaml:"devTime"`
}

// RunTimeDeps lists the packages fetched from the CDN when the app loads.
type RunTimeDeps struct {
	Externals []Dependency `json:"externals" yaml:"externals"`
}

// Bundles describes the bundles produced by the build.
type Bundles struct {
	MainModule MainModule `json:"mainModule" yaml:"mainModule"`
}

// MainModule is the main bundle: its entry file and the externals it loads.
type MainModule struct {
	EntryFile        string   `json:"entryFile" yaml:"entryFile"`
	LoadDependencies []string `json:"loadDependencies" yaml:"loadDependencies"`
}

// DevServer holds the dev server settings.
type DevServer struct {
	Port int `json:"port" yaml:"port"`
}

// LoadDependencies returns the externals loaded by the application at
// startup, in declaration order.
func LoadDependencies() []Dependency {
	return []Dependency{
		{"@youwol/fv-code-mirror-editors", "^0.2.2"},
		{"@youwol/os-core", "^0.1.5"},
		{"@youwol/fv-tabs", "^0.2.1"},
		{"@youwol/os-top-banner", "^0.1.1"},
		{"@youwol/cdn-client", "^1.0.9"},
		{"@youwol/http-clients", "^2.0.1"},
		{"@youwol/flux-view", "^1.0.3"},
		{"@youwol/fv-context-menu", "^0.1.1"},
		{"@youwol/fv-tree", "^0.2.3"},
		{"lodash", "^4.17.15"},
		{"rxjs", "^6.5.5"},
		{"@youwol/logging", "^0.1.0"},
		{"uuid", "^8.3.2"},
		{"@youwol/cdn-pyodide-loader", "^0.1.2"},
	}
}

// DevDependencies returns the development-only dependencies. Both are needed
// by typedoc.
func DevDependencies() []Dependency {
	return []Dependency{
		{"@types/lz-string", "^1.3.34"},
		{"lz-string", "^1.4.4"},
	}
}

// NewTemplate builds the application template for the project in dir. The
// identity fields are copied from m unchanged.
func NewTemplate(dir string, m *manifest.PackageManifest) *Template {
	externals := LoadDependencies()

	return &Template{
		Path:             dir,
		Type:             PackageTypeApplication,
		Name:             m.Name,
		Version:          m.Version,
		ShortDescription: m.Description,
		Author:           m.Author,
		Dependencies: Dependencies{
			RunTime: RunTimeDeps{Externals: externals},
			DevTime: DevDependencies(),
		},
		UserGuide: true,
		Bundles: Bundles{
			MainModule: MainModule{
				EntryFile:        EntryFile,
				LoadDependencies: names(externals),
			},
		},
		DevServer: DevServer{Port: DevServerPort},
	}
}

func names(deps []Dependency) []string {
	out := make([]string, len(deps))
	for i, d := range deps {
		out[i] = d.Name
	}
	return out
}
