package policy

import "slices"

// Lookup returns the recipe for a selection. ok is false when the pair is
// not in the table; callers treat that as a notice, not an error. The
// returned recipe is a private copy.
func Lookup(framework Framework, preset Preset) (*Recipe, bool) {
	r, ok := recipes[Selection{Framework: framework, Preset: preset}]
	if !ok {
		return nil, false
	}
	return r.clone(), true
}

// Selections returns every supported selection in menu order.
func Selections() []Selection {
	var out []Selection
	for _, f := range Frameworks {
		for _, p := range Presets {
			if _, ok := recipes[Selection{Framework: f, Preset: p}]; ok {
				out = append(out, Selection{Framework: f, Preset: p})
			}
		}
	}
	return out
}

// Packages returns every package the recipe installs, in install order.
func (r *Recipe) Packages() []string {
	var out []string
	for _, in := range r.Installs {
		out = append(out, in.Packages...)
	}
	return out
}

// WithMigrationSupport appends MigrationSupport unless the recipe already
// installs all of its packages.
func (r *Recipe) WithMigrationSupport() *Recipe {
	have := r.Packages()
	for _, pkg := range MigrationSupport.Packages {
		if !slices.Contains(have, pkg) {
			c := r.clone()
			c.Installs = append(c.Installs, Install{
				Kind:     MigrationSupport.Kind,
				Packages: slices.Clone(MigrationSupport.Packages),
			})
			return c
		}
	}
	return r
}
