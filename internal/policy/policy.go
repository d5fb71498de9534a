// Package policy maps a (framework, preset) selection to a Recipe: the
// packages to install and the static policy documents to write.
package policy

import (
	"fmt"
	"strconv"
	"strings"
)

// Framework identifies the front-end stack of the project.
type Framework string

const (
	// FrameworkJavaScript is plain JavaScript.
	FrameworkJavaScript Framework = "javascript"
	// FrameworkReact is React.
	FrameworkReact Framework = "react"
	// FrameworkVue is Vue 3.
	FrameworkVue Framework = "vue"
)

// Frameworks lists frameworks in menu order.
var Frameworks = []Framework{FrameworkJavaScript, FrameworkReact, FrameworkVue}

// Label returns the menu label.
func (f Framework) Label() string {
	switch f {
	case FrameworkJavaScript:
		return "JavaScript"
	case FrameworkReact:
		return "React"
	case FrameworkVue:
		return "Vue"
	default:
		return string(f)
	}
}

// Preset identifies a lint/format strategy.
type Preset string

const (
	// PresetPrettier is ESLint plus Prettier.
	PresetPrettier Preset = "prettier"
	// PresetAirbnb is the Airbnb style guide.
	PresetAirbnb Preset = "airbnb"
	// PresetStandard is JavaScript Standard Style.
	PresetStandard Preset = "standard"
	// PresetRecommended is ESLint's error-prevention rules only.
	PresetRecommended Preset = "recommended"
)

// Presets lists presets in menu order.
var Presets = []Preset{PresetPrettier, PresetAirbnb, PresetStandard, PresetRecommended}

// Label returns the menu label.
func (p Preset) Label() string {
	switch p {
	case PresetPrettier:
		return "ESLint + Prettier config"
	case PresetAirbnb:
		return "ESLint + Airbnb config"
	case PresetStandard:
		return "ESLint + standard config"
	case PresetRecommended:
		return "ESLint with error prevention only"
	default:
		return string(p)
	}
}

// FrameworkLabels returns the framework menu entries.
func FrameworkLabels() []string {
	labels := make([]string, len(Frameworks))
	for i, f := range Frameworks {
		labels[i] = f.Label()
	}
	return labels
}

// PresetLabels returns the preset menu entries.
func PresetLabels() []string {
	labels := make([]string, len(Presets))
	for i, p := range Presets {
		labels[i] = p.Label()
	}
	return labels
}

// ParseFramework accepts an id ("react"), a label ("React") or a 1-based
// menu number ("2").
func ParseFramework(s string) (Framework, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(Frameworks) {
			return Frameworks[n-1], nil
		}
		return "", fmt.Errorf("framework number %d out of range 1-%d", n, len(Frameworks))
	}
	for _, f := range Frameworks {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s, f.Label()) {
			return f, nil
		}
	}
	if strings.EqualFold(s, "js") || strings.EqualFold(s, "vanilla") {
		return FrameworkJavaScript, nil
	}
	return "", fmt.Errorf("unknown framework %q", s)
}

// ParsePreset accepts an id ("airbnb") or a 1-based menu number ("2").
func ParsePreset(s string) (Preset, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(Presets) {
			return Presets[n-1], nil
		}
		return "", fmt.Errorf("preset number %d out of range 1-%d", n, len(Presets))
	}
	for _, p := range Presets {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	if strings.EqualFold(s, "error-prevention") {
		return PresetRecommended, nil
	}
	return "", fmt.Errorf("unknown preset %q", s)
}

// Selection is a (framework, preset) pair.
type Selection struct {
	Framework Framework `json:"framework"`
	Preset    Preset    `json:"preset"`
}

// String returns "framework/preset".
func (s Selection) String() string {
	return string(s.Framework) + "/" + string(s.Preset)
}
