package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// StubFile is the generated source stub, relative to both the template folder
// and the project root.
var StubFile = filepath.Join("src", "auto-generated.ts")

// RootFiles are copied from the template folder to the project root on every
// run, replacing what is there.
var RootFiles = []string{
	"README.md",
	".gitignore",
	".npmignore",
	".prettierignore",
	"LICENSE",
	"package.json",
	"tsconfig.json",
	"webpack.config.ts",
	".eslintignore",
}

// CopyTemplateFiles copies the source stub, then each of RootFiles, from
// <dir>/.template/ into dir. Existing files are overwritten. The first failing
// copy stops the sequence; files copied before it stay in place.
func CopyTemplateFiles(dir string) ([]string, error) {
	templateRoot := filepath.Join(dir, TemplateDir)

	files := append([]string{StubFile}, RootFiles...)
	copied := make([]string, 0, len(files))
	for _, name := range files {
		src := filepath.Join(templateRoot, name)
		dst := filepath.Join(dir, name)
		if err := copyFile(src, dst); err != nil {
			return copied, fmt.Errorf("copying %s to %s: %w", src, dst, err)
		}
		copied = append(copied, name)
	}
	return copied, nil
}

// copyFile copies a single file from src to dst, preserving permissions and
// creating the destination directory when needed.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	// WriteFile keeps the mode of an existing file; set it explicitly.
	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		return err
	}
	return os.Chmod(dst, srcInfo.Mode().Perm())
}
