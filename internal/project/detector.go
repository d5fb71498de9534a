// Package project detects Node project roots and the package manager that
// owns them.
package project

import (
	"os"
	"path/filepath"
)

// ProjectInfo contains information about a detected project.
type ProjectInfo struct {
	// Path is the absolute path to the project directory.
	Path string `json:"path"`
	// Name is the directory name.
	Name string `json:"name"`
	// IsGitRepo indicates whether the directory has a .git directory.
	IsGitRepo bool `json:"is_git_repo"`
	// HasManifest indicates whether package.json exists.
	HasManifest bool `json:"has_manifest"`
	// LockManager is the package manager implied by the first lockfile found.
	LockManager PackageManager `json:"lock_manager,omitempty"`
	// Markers are the markers found, in marker order.
	Markers []string `json:"markers,omitempty"`
}

// ProjectMarker represents a file or directory that identifies a project.
type ProjectMarker struct {
	// Name is the file or directory name to look for.
	Name string
	// IsDir indicates whether this is a directory marker.
	IsDir bool
	// Manager is the package manager a lockfile marker implies.
	Manager PackageManager
}

// DefaultMarkers are the project markers checked during detection.
var DefaultMarkers = []ProjectMarker{
	{Name: ".git", IsDir: true},
	{Name: "package.json"},
	// Lockfiles, most specific first
	{Name: "pnpm-lock.yaml", Manager: PNPM},
	{Name: "yarn.lock", Manager: Yarn},
	{Name: "package-lock.json", Manager: NPM},
}

// Detector detects project directories.
type Detector struct {
	// Markers are the project markers to check.
	Markers []ProjectMarker
}

// NewDetector creates a new Detector with default markers.
func NewDetector() *Detector {
	return &Detector{
		Markers: DefaultMarkers,
	}
}

// Detect inspects dir. It fails only when dir cannot be resolved or is not
// a directory; a directory without markers yields an empty ProjectInfo.
func (d *Detector) Detect(dir string) (*ProjectInfo, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, os.ErrNotExist
	}

	project := &ProjectInfo{
		Path:    absPath,
		Name:    filepath.Base(absPath),
		Markers: []string{},
	}

	for _, marker := range d.Markers {
		if !checkMarker(absPath, marker) {
			continue
		}
		project.Markers = append(project.Markers, marker.Name)
		switch {
		case marker.Name == ".git":
			project.IsGitRepo = true
		case marker.Name == "package.json":
			project.HasManifest = true
		case marker.Manager != "" && project.LockManager == "":
			project.LockManager = marker.Manager
		}
	}

	return project, nil
}

// IsNodeProject returns true if dir contains a package.json.
func (d *Detector) IsNodeProject(dir string) bool {
	project, err := d.Detect(dir)
	return err == nil && project.HasManifest
}

func checkMarker(dir string, marker ProjectMarker) bool {
	info, err := os.Stat(filepath.Join(dir, marker.Name))
	if err != nil {
		return false
	}
	return info.IsDir() == marker.IsDir
}

// IsHomeDirectory returns true if the directory is the user's home directory.
func IsHomeDirectory(dir string) bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absHome, err := filepath.Abs(home)
	if err != nil {
		return false
	}
	return absDir == absHome
}
