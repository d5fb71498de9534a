package manifest

import (
	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/logging"
)

// Defaults for the script entry added to every cleaned manifest.
const (
	DefaultScriptName = "lint"
	DefaultScript     = "eslint ."
)

// PreprocessResult reports what a clean-slate pass changed.
type PreprocessResult struct {
	// RemovedDependencies lists pruned entries as "section/name".
	RemovedDependencies []string `json:"removed_dependencies,omitempty"`
	// RemovedFiles lists config files deleted from the project root.
	RemovedFiles []string `json:"removed_files,omitempty"`
	// RemovedFields lists top-level manifest fields that were dropped.
	RemovedFields []string `json:"removed_fields,omitempty"`
	// ScriptName and Script describe the script entry that was set.
	ScriptName string `json:"script_name"`
	Script     string `json:"script"`
}

// Changed reports whether anything besides the script entry was touched.
func (r *PreprocessResult) Changed() bool {
	return len(r.RemovedDependencies) > 0 || len(r.RemovedFiles) > 0 || len(r.RemovedFields) > 0
}

// Preprocessor clears previous linter/formatter setups out of a project.
type Preprocessor struct {
	Accessor   *Accessor
	Topics     []Topic
	ScriptName string
	Script     string
	Logger     *logging.Logger
}

// NewPreprocessor creates a Preprocessor for root using the default topics
// and the default lint script.
func NewPreprocessor(root string) *Preprocessor {
	return &Preprocessor{
		Accessor:   NewAccessor(root),
		Topics:     DefaultTopics(),
		ScriptName: DefaultScriptName,
		Script:     DefaultScript,
		Logger:     logging.Global(),
	}
}

// Preprocess runs the clean-slate pass:
//
//  1. load the manifest (fatal if missing or malformed, nothing is touched)
//  2. prune dependencies for every topic
//  3. delete every topic's config files
//  4. drop every topic's embedded manifest field
//  5. set the lint script
//  6. save the manifest once
//
// Running it twice yields the same manifest and file set as running it once.
func (p *Preprocessor) Preprocess() (*PreprocessResult, error) {
	log := p.Logger
	if log == nil {
		log = logging.Global()
	}
	log = log.With("root", p.Accessor.Root)

	doc, err := p.Accessor.Load()
	if err != nil {
		return nil, err
	}
	log.Debug("loaded manifest", "path", p.Accessor.Path())

	result := &PreprocessResult{
		ScriptName: p.ScriptName,
		Script:     p.Script,
	}

	for _, topic := range p.Topics {
		for _, name := range doc.PruneDependencies(topic.Token) {
			log.Info("removed dependency", "topic", topic.Name, "package", name)
			result.RemovedDependencies = append(result.RemovedDependencies, name)
		}
	}

	for _, topic := range p.Topics {
		removed, err := PruneConfigFiles(p.Accessor.Root, topic.ConfigFiles)
		for _, name := range removed {
			log.Info("deleted config file", "topic", topic.Name, "file", name)
		}
		result.RemovedFiles = append(result.RemovedFiles, removed...)
		if err != nil {
			return result, lkerrors.Wrap(err, lkerrors.ErrFilesystem, "failed to remove "+topic.Name+" config files")
		}
	}

	for _, topic := range p.Topics {
		if topic.Field == "" {
			continue
		}
		if doc.PruneField(topic.Field) {
			log.Info("removed manifest field", "topic", topic.Name, "field", topic.Field)
			result.RemovedFields = append(result.RemovedFields, topic.Field)
		}
	}

	if p.ScriptName != "" {
		doc.EnsureScript(p.ScriptName, p.Script)
		log.Debug("set script", "name", p.ScriptName, "command", p.Script)
	}

	if err := p.Accessor.Save(doc); err != nil {
		return result, err
	}
	return result, nil
}
