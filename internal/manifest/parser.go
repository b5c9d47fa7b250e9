package manifest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the package.json found in dir.
func Load(dir string) (*PackageManifest, error) {
	return ParseFile(filepath.Join(dir, FileName))
}

// ParseFile reads a package.json file and returns its identity fields.
func ParseFile(path string) (*PackageManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse decodes package.json content. path is only used in error messages.
func Parse(data []byte, path string) (*PackageManifest, error) {
	var m PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// AssetID returns the identifier under which the CDN serves a package: the
// standard base64 encoding of its name.
func AssetID(name string) string {
	return base64.StdEncoding.EncodeToString([]byte(name))
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
