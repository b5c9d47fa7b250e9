package pipeline

import (
	"fmt"
	"strings"

	"github.com/pyplay-labs/pyplay/internal/branding"
	"github.com/pyplay-labs/pyplay/internal/manifest"
)

// DefaultBackgroundSize is applied by Icon when no size is given.
const DefaultBackgroundSize = "cover"

// Icon file names under the package assets folder.
const (
	AppIconFile  = "python_playground_app.svg"
	FileIconFile = "python_playground_file.svg"
)

const dropShadow = "drop-shadow(rgb(0, 0, 0) 1px 3px 5px)"

// fileMatcher selects the playground documents among the user's assets.
const fileMatcher = `return (asset) => {
                            return asset.kind == 'data' && asset.name.endsWith('.pyplay.json')
                        }`

// Icon returns the descriptor of a square icon filled with iconPath. bgSize
// defaults to DefaultBackgroundSize; only its first value is used. Inputs are
// taken as they are.
func Icon(sizePx, borderRadius, iconPath string, bgSize ...string) Descriptor {
	size := DefaultBackgroundSize
	if len(bgSize) > 0 {
		size = bgSize[0]
	}
	return Descriptor{
		Style: Style{
			"width":               sizePx,
			"height":              sizePx,
			"background-image":    iconPath,
			"background-size":     size,
			"background-repeat":   "no-repeat",
			"background-position": "center center",
			"filter":              dropShadow,
			"border-radius":       borderRadius,
		},
	}
}

// NewConfig returns the application's pipeline configuration. appIcon and
// fileIcon are CSS image references, typically built with AssetURL.
func NewConfig(appIcon, fileIcon string) *Config {
	return &Config{
		Target: BrowserApp{
			DisplayName: branding.DisplayName(),
			Execution: Execution{
				Standalone: true,
				Parametrized: []OpenWith{
					{
						Match:      fileMatcher,
						Parameters: map[string]string{"id": "rawId"},
					},
				},
			},
			Links: []Link{
				{Name: "doc", URL: "dist/docs/index.html"},
				{Name: "coverage", URL: "coverage/lcov-report/index.html"},
				{Name: "bundle-analysis", URL: "dist/bundle-analysis.html"},
			},
			Graphics: Graphics{
				AppIcon:  Icon("100%", "15%", appIcon),
				FileIcon: Icon("100%", "15%", fileIcon, "contain"),
				Background: Descriptor{
					Class: "h-100 w-100",
					Style: Style{
						"opacity":             0.3,
						"background-image":    appIcon,
						"background-size":     "cover",
						"background-repeat":   "no-repeat",
						"background-position": "center center",
						"filter":              dropShadow,
					},
				},
			},
		},
		Publish: PublishConfig{
			PackagedFolders: []string{"assets"},
		},
	}
}

// AssetsDir returns the URL path of the assets folder of a published package
// version.
func AssetsDir(name, version string) string {
	return fmt.Sprintf("/api/assets-gateway/raw/package/%s/%s/assets", manifest.AssetID(name), version)
}

// AssetURL returns the CSS url() reference of file inside assetsDir.
func AssetURL(assetsDir, file string) string {
	return fmt.Sprintf("url('%s/%s')", strings.TrimSuffix(assetsDir, "/"), file)
}
