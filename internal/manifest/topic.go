package manifest

// Topic groups everything that belongs to one tool family: the substring that
// identifies its packages, the manifest field it may embed its configuration
// in, and the config files it may leave in the project root.
type Topic struct {
	// Name is a human-readable label used in logs.
	Name string
	// Token is matched as a case-sensitive substring of package names.
	Token string
	// Field is the top-level manifest field holding embedded configuration.
	Field string
	// ConfigFiles are the candidate filenames in the project root.
	ConfigFiles []string
}

// LinterTopic covers ESLint.
var LinterTopic = Topic{
	Name:  "eslint",
	Token: "eslint",
	Field: "eslintConfig",
	ConfigFiles: []string{
		".eslintrc",
		".eslintrc.js",
		".eslintrc.cjs",
		".eslintrc.json",
		".eslintrc.yml",
		".eslintrc.yaml",
		".eslintignore",
		".eslint.config.js",
		"eslint.config.js",
		"eslint.config.cjs",
		"eslint.config.mjs",
	},
}

// FormatterTopic covers Prettier.
var FormatterTopic = Topic{
	Name:  "prettier",
	Token: "prettier",
	Field: "prettier",
	ConfigFiles: []string{
		".prettierrc",
		".prettierrc.js",
		".prettierrc.cjs",
		".prettierrc.mjs",
		".prettierrc.json",
		".prettierrc.json5",
		".prettierrc.yml",
		".prettierrc.yaml",
		".prettierrc.toml",
		"prettier.config.js",
		"prettier.config.cjs",
		"prettier.config.mjs",
		".prettierignore",
	},
}

// DefaultTopics is the clean-slate order: linter first, then formatter.
func DefaultTopics() []Topic {
	return []Topic{LinterTopic, FormatterTopic}
}
