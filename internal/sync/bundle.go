package sync

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// BundleClient reads generated files from a locally staged export bundle:
// one directory per project id, mirroring the srcDir layout. The platform
// transport that populates the bundle is outside this tool; anything that
// can place files in the bundle directory works as a source.
type BundleClient struct {
	// Dir is the bundle root, relative to the project root or absolute.
	Dir string
}

// Fetch returns every file under Dir/projectID, with paths relative to that
// directory. A missing project directory is an error: syncing a project
// with no staged bundle means the export step was skipped.
func (c BundleClient) Fetch(_ context.Context, projectID string) ([]GeneratedFile, error) {
	projectDir := filepath.Join(c.Dir, projectID)
	if _, err := os.Stat(projectDir); err != nil {
		return nil, fmt.Errorf("no staged bundle for project %s at %s: %w", projectID, projectDir, err)
	}

	var files []GeneratedFile
	err := filepath.WalkDir(projectDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(projectDir, path)
		if err != nil {
			return err
		}
		files = append(files, GeneratedFile{
			Path:    filepath.ToSlash(rel),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle for project %s: %w", projectID, err)
	}
	return files, nil
}
