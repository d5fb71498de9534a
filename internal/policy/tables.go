package policy

// DefaultIgnores are the paths every generated policy ignores.
var DefaultIgnores = []string{"node_modules", "dist"}

// MigrationSupport are the packages a migrated flat config imports.
var MigrationSupport = Install{
	Kind:     InstallDev,
	Packages: []string{"globals", "@eslint/js", "@eslint/eslintrc"},
}

var defaultFormatter = FormatterPolicy{
	Semi:          true,
	SingleQuote:   true,
	TrailingComma: "es5",
}

func linter(extends, plugins []string, rules map[string]string) *LinterPolicy {
	if rules == nil {
		rules = map[string]string{}
	}
	return &LinterPolicy{
		Env:           Env{Browser: true, ES2021: true, Node: true},
		Extends:       extends,
		ParserOptions: ParserOptions{EcmaVersion: 12, SourceType: "module"},
		Plugins:       plugins,
		Rules:         rules,
	}
}

func lintOnly(p *LinterPolicy) Payload {
	return Payload{Linter: p, LinterIgnore: DefaultIgnores}
}

func withFormatter(p *LinterPolicy) Payload {
	f := defaultFormatter
	return Payload{
		Linter:          p,
		LinterIgnore:    DefaultIgnores,
		Formatter:       &f,
		FormatterIgnore: DefaultIgnores,
	}
}

func dev(pkgs ...string) Install { return Install{Kind: InstallDev, Packages: pkgs} }

func prod(pkgs ...string) Install { return Install{Kind: InstallProd, Packages: pkgs} }

func peers(pkg string) Install { return Install{Kind: InstallPeers, Packages: []string{pkg}} }

func installs(in ...Install) []Install { return in }

var prettierRules = map[string]string{"prettier/prettier": "error"}

var (
	reactPlugins = []string{"react", "react-hooks"}
	vuePlugins   = []string{"vue"}
)

// recipes is the full selection table. Lookup hands out deep copies.
var recipes = map[Selection]*Recipe{
	// JavaScript
	{FrameworkJavaScript, PresetPrettier}: {
		Installs: installs(dev("eslint", "prettier", "eslint-config-prettier", "eslint-plugin-prettier")),
		Payload:  withFormatter(linter([]string{"eslint:recommended", "plugin:prettier/recommended"}, nil, prettierRules)),
	},
	{FrameworkJavaScript, PresetAirbnb}: {
		Installs: installs(
			dev("eslint", "eslint-config-airbnb-base", "eslint-plugin-import"),
			prod("globals", "@eslint/js", "@eslint/eslintrc"),
		),
		Payload: lintOnly(linter([]string{"airbnb-base"}, nil, nil)),
	},
	{FrameworkJavaScript, PresetStandard}: {
		Installs: installs(dev("eslint", "eslint-config-standard", "eslint-plugin-import", "eslint-plugin-node", "eslint-plugin-promise")),
		Payload:  lintOnly(linter([]string{"standard"}, nil, nil)),
	},
	{FrameworkJavaScript, PresetRecommended}: {
		Installs: installs(dev("eslint")),
		Payload:  lintOnly(linter([]string{"eslint:recommended"}, nil, nil)),
	},

	// React
	{FrameworkReact, PresetPrettier}: {
		Installs: installs(dev("eslint", "prettier", "eslint-config-prettier", "eslint-plugin-prettier", "eslint-plugin-react", "eslint-plugin-react-hooks", "@eslint/compat")),
		Payload:  withFormatter(linter([]string{"eslint:recommended", "plugin:react/recommended", "plugin:prettier/recommended"}, reactPlugins, prettierRules)),
	},
	{FrameworkReact, PresetAirbnb}: {
		Installs: installs(
			peers("eslint-config-airbnb"),
			dev("eslint-plugin-import", "eslint-plugin-react", "eslint-plugin-react-hooks"),
		),
		Payload: lintOnly(linter([]string{"airbnb", "plugin:react/recommended"}, reactPlugins, nil)),
	},
	{FrameworkReact, PresetStandard}: {
		Installs: installs(dev("eslint", "eslint-config-standard", "eslint-plugin-import", "eslint-plugin-node", "eslint-plugin-promise", "eslint-plugin-react", "eslint-plugin-react-hooks", "@eslint/compat")),
		Payload:  lintOnly(linter([]string{"standard", "plugin:react/recommended"}, reactPlugins, nil)),
	},
	{FrameworkReact, PresetRecommended}: {
		Installs: installs(dev("eslint", "eslint-plugin-react", "eslint-plugin-react-hooks", "@eslint/compat")),
		Payload:  lintOnly(linter([]string{"eslint:recommended", "plugin:react/recommended"}, reactPlugins, nil)),
	},

	// Vue
	{FrameworkVue, PresetPrettier}: {
		Installs: installs(dev("eslint", "prettier", "eslint-config-prettier", "eslint-plugin-prettier", "eslint-plugin-vue")),
		Payload:  withFormatter(linter([]string{"eslint:recommended", "plugin:vue/vue3-recommended", "plugin:prettier/recommended"}, vuePlugins, prettierRules)),
	},
	{FrameworkVue, PresetAirbnb}: {
		Installs: installs(
			peers("eslint-config-airbnb-base"),
			dev("eslint-plugin-vue", "eslint-plugin-import"),
		),
		Payload: lintOnly(linter([]string{"airbnb-base", "plugin:vue/vue3-recommended"}, vuePlugins, nil)),
	},
	{FrameworkVue, PresetStandard}: {
		Installs: installs(dev("eslint", "eslint-config-standard", "eslint-plugin-vue", "eslint-plugin-import", "eslint-plugin-node", "eslint-plugin-promise")),
		Payload:  lintOnly(linter([]string{"standard", "plugin:vue/vue3-recommended"}, vuePlugins, nil)),
	},
	{FrameworkVue, PresetRecommended}: {
		Installs: installs(dev("eslint", "eslint-plugin-vue")),
		Payload:  lintOnly(linter([]string{"eslint:recommended", "plugin:vue/vue3-recommended"}, vuePlugins, nil)),
	},
}

func init() {
	for sel, r := range recipes {
		r.Selection = sel
	}
}
