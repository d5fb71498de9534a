package manifest

import (
	"os"
	"path/filepath"

	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/jsonfile"
)

// FileName is the manifest file looked up in the project root.
const FileName = "package.json"

// Accessor loads and saves the manifest of one project root.
type Accessor struct {
	// Root is the project directory containing package.json.
	Root string
}

// NewAccessor creates an Accessor for the given project root.
func NewAccessor(root string) *Accessor {
	return &Accessor{Root: root}
}

// Path returns the manifest path.
func (a *Accessor) Path() string {
	return filepath.Join(a.Root, FileName)
}

// Load reads and parses the manifest. A missing or malformed manifest is a
// precondition failure reported as an ErrManifest error.
func (a *Accessor) Load() (*Document, error) {
	path := a.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, lkerrors.ManifestNotFound(path)
		}
		return nil, lkerrors.Wrap(err, lkerrors.ErrManifest, "failed to read manifest").
			WithDetails("path", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, lkerrors.ManifestParseError(path, err)
	}
	return doc, nil
}

// Save replaces the manifest on disk with the full contents of doc.
func (a *Accessor) Save(doc *Document) error {
	path := a.Path()

	data, err := doc.Bytes()
	if err != nil {
		return lkerrors.ManifestWriteError(path, err)
	}
	if err := os.WriteFile(path, data, jsonfile.FileMode); err != nil {
		return lkerrors.ManifestWriteError(path, err)
	}
	return nil
}
