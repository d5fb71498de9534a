package project

import (
	"fmt"
	"strings"

	"github.com/wexinc/lintkit/internal/policy"
)

// PackageManager names a Node package manager.
type PackageManager string

const (
	// Auto defers to lockfile detection.
	Auto PackageManager = "auto"
	// NPM is npm.
	NPM PackageManager = "npm"
	// Yarn is yarn (classic or berry).
	Yarn PackageManager = "yarn"
	// PNPM is pnpm.
	PNPM PackageManager = "pnpm"
)

// ParsePackageManager validates a configured name. Empty means Auto.
func ParsePackageManager(s string) (PackageManager, error) {
	switch pm := PackageManager(strings.ToLower(strings.TrimSpace(s))); pm {
	case "":
		return Auto, nil
	case Auto, NPM, Yarn, PNPM:
		return pm, nil
	default:
		return "", fmt.Errorf("unknown package manager %q (want auto, npm, yarn or pnpm)", s)
	}
}

// Resolve picks the package manager to use. An explicit choice wins, then
// the lockfile found by detection, then npm.
func Resolve(configured PackageManager, info *ProjectInfo) PackageManager {
	if configured != "" && configured != Auto {
		return configured
	}
	if info != nil && info.LockManager != "" {
		return info.LockManager
	}
	return NPM
}

// InstallCommand returns the shell command installing pkgs with the given kind.
// Peer installs go through install-peerdeps, one package per command.
func (pm PackageManager) InstallCommand(kind policy.InstallKind, pkgs []string) string {
	var parts []string
	switch kind {
	case policy.InstallPeers:
		parts = []string{"npx", "install-peerdeps", "--dev"}
		switch pm {
		case Yarn:
			parts = append(parts, "--yarn")
		case PNPM:
			parts = append(parts, "--pnpm")
		}
	default:
		parts = pm.addCommand(kind == policy.InstallDev)
	}
	return strings.Join(append(parts, pkgs...), " ")
}

func (pm PackageManager) addCommand(dev bool) []string {
	switch pm {
	case Yarn:
		if dev {
			return []string{"yarn", "add", "--dev"}
		}
		return []string{"yarn", "add"}
	case PNPM:
		if dev {
			return []string{"pnpm", "add", "--save-dev"}
		}
		return []string{"pnpm", "add"}
	default:
		if dev {
			return []string{"npm", "install", "--save-dev"}
		}
		return []string{"npm", "install"}
	}
}
