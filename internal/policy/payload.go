package policy

import "slices"

// Env enables predefined global variables in the linter.
type Env struct {
	Browser bool `json:"browser"`
	ES2021  bool `json:"es2021"`
	Node    bool `json:"node"`
}

// ParserOptions configures the linter's parser.
type ParserOptions struct {
	EcmaVersion int    `json:"ecmaVersion"`
	SourceType  string `json:"sourceType"`
}

// LinterPolicy is a legacy-format ESLint configuration document.
type LinterPolicy struct {
	Env           Env               `json:"env"`
	Extends       []string          `json:"extends"`
	ParserOptions ParserOptions     `json:"parserOptions"`
	Plugins       []string          `json:"plugins,omitempty"`
	Rules         map[string]string `json:"rules"`
}

// FormatterPolicy is a Prettier configuration document.
type FormatterPolicy struct {
	Semi          bool   `json:"semi"`
	SingleQuote   bool   `json:"singleQuote"`
	TrailingComma string `json:"trailingComma"`
}

// Payload is the set of documents written for one selection.
type Payload struct {
	Linter          *LinterPolicy    `json:"linter"`
	LinterIgnore    []string         `json:"linter_ignore,omitempty"`
	Formatter       *FormatterPolicy `json:"formatter,omitempty"`
	FormatterIgnore []string         `json:"formatter_ignore,omitempty"`
}

// InstallKind selects how a group of packages is installed.
type InstallKind string

const (
	// InstallDev installs packages as development dependencies.
	InstallDev InstallKind = "dev"
	// InstallProd installs packages as regular dependencies.
	InstallProd InstallKind = "prod"
	// InstallPeers installs a package together with its peer dependencies.
	InstallPeers InstallKind = "peers"
)

// Install is one package-manager invocation.
type Install struct {
	Kind     InstallKind `json:"kind"`
	Packages []string    `json:"packages"`
}

// Recipe is everything needed to materialize one selection.
type Recipe struct {
	Selection Selection `json:"selection"`
	Installs  []Install `json:"installs"`
	Payload   Payload   `json:"payload"`
}

func (p *LinterPolicy) clone() *LinterPolicy {
	if p == nil {
		return nil
	}
	c := *p
	c.Extends = slices.Clone(p.Extends)
	c.Plugins = slices.Clone(p.Plugins)
	c.Rules = make(map[string]string, len(p.Rules))
	for k, v := range p.Rules {
		c.Rules[k] = v
	}
	return &c
}

func (p *FormatterPolicy) clone() *FormatterPolicy {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func (r *Recipe) clone() *Recipe {
	c := &Recipe{
		Selection: r.Selection,
		Installs:  make([]Install, len(r.Installs)),
		Payload: Payload{
			Linter:          r.Payload.Linter.clone(),
			LinterIgnore:    slices.Clone(r.Payload.LinterIgnore),
			Formatter:       r.Payload.Formatter.clone(),
			FormatterIgnore: slices.Clone(r.Payload.FormatterIgnore),
		},
	}
	for i, in := range r.Installs {
		c.Installs[i] = Install{Kind: in.Kind, Packages: slices.Clone(in.Packages)}
	}
	return c
}
