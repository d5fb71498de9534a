package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wexinc/lintkit/internal/artifact"
	lkerrors "github.com/wexinc/lintkit/internal/errors"
	"github.com/wexinc/lintkit/internal/installer"
	"github.com/wexinc/lintkit/internal/logging"
	"github.com/wexinc/lintkit/internal/manifest"
	"github.com/wexinc/lintkit/internal/policy"
	"github.com/wexinc/lintkit/internal/project"
)

type fixture struct {
	gen *Generator
	rec *installer.Recorder
	out *bytes.Buffer
	dir string
}

func newFixture(t *testing.T, manifestJSON string, migrate bool) *fixture {
	t.Helper()
	dir := t.TempDir()
	if manifestJSON != "" {
		if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(manifestJSON), 0644); err != nil {
			t.Fatal(err)
		}
	}

	rec := installer.NewRecorder()
	var out bytes.Buffer
	gen := New(dir, rec)
	gen.Out = &out
	gen.Logger = logging.NewNoop()
	gen.Preprocessor.Logger = logging.NewNoop()
	gen.Writer.Logger = logging.NewNoop()
	gen.Writer.Migrate.Enabled = migrate
	return &fixture{gen: gen, rec: rec, out: &out, dir: dir}
}

func (f *fixture) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func (f *fixture) manifest(t *testing.T) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.dir, manifest.FileName))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestGenerate_FullRun(t *testing.T) {
	f := newFixture(t, `{"name": "app", "devDependencies": {"eslint": "^8", "prettier": "^3", "react": "^18"}}`, false)
	if err := os.WriteFile(filepath.Join(f.dir, ".eslintrc.yml"), []byte("root: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := f.gen.Generate(context.Background(), policy.FrameworkReact, policy.PresetPrettier)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Skipped {
		t.Fatal("Generate() skipped a valid selection")
	}

	wantCommands := []string{
		"npm install --save-dev eslint prettier eslint-config-prettier eslint-plugin-prettier eslint-plugin-react eslint-plugin-react-hooks @eslint/compat",
	}
	if diff := cmp.Diff(wantCommands, f.rec.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantCommands, result.Commands); diff != "" {
		t.Errorf("result commands mismatch (-want +got):\n%s", diff)
	}

	wantManifest := map[string]any{
		"name":            "app",
		"devDependencies": map[string]any{"react": "^18"},
		"scripts":         map[string]any{"lint": "eslint ."},
	}
	if diff := cmp.Diff(wantManifest, f.manifest(t)); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}

	wantFiles := []string{".eslintignore", ".eslintrc.json", ".prettierignore", ".prettierrc.json", "package.json"}
	if diff := cmp.Diff(wantFiles, f.files(t)); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	if !cmp.Equal(result.Preprocess.RemovedFiles, []string{".eslintrc.yml"}) {
		t.Errorf("RemovedFiles = %v", result.Preprocess.RemovedFiles)
	}

	wantOut := MsgStart + "\n" + MsgDone + "\n"
	if f.out.String() != wantOut {
		t.Errorf("output = %q, want %q", f.out.String(), wantOut)
	}
}

func TestGenerate_InvalidSelection(t *testing.T) {
	original := `{"devDependencies": {"eslint": "^8"}, "eslintConfig": {"root": true}}`
	f := newFixture(t, original, true)
	if err := os.WriteFile(filepath.Join(f.dir, ".prettierrc"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	before := f.files(t)

	result, err := f.gen.Generate(context.Background(), policy.FrameworkReact, policy.Preset("google"))
	if err != nil {
		t.Fatalf("Generate() error = %v, want nil", err)
	}
	if !result.Skipped {
		t.Error("Skipped = false, want true")
	}
	if f.out.String() != MsgInvalidSelection+"\n" {
		t.Errorf("output = %q", f.out.String())
	}
	if len(f.rec.Commands()) != 0 {
		t.Errorf("commands = %v, want none", f.rec.Commands())
	}
	if diff := cmp.Diff(before, f.files(t)); diff != "" {
		t.Errorf("files changed (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(filepath.Join(f.dir, manifest.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("manifest rewritten: %s", data)
	}
}

func TestGenerate_MissingManifest(t *testing.T) {
	f := newFixture(t, "", false)

	_, err := f.gen.Generate(context.Background(), policy.FrameworkVue, policy.PresetStandard)
	if !errors.Is(err, lkerrors.ErrManifest) {
		t.Fatalf("Generate() error = %v, want ErrManifest", err)
	}
	if len(f.rec.Commands()) != 0 {
		t.Errorf("commands = %v, want none", f.rec.Commands())
	}
	if len(f.files(t)) != 0 {
		t.Errorf("files = %v, want none", f.files(t))
	}
	if f.out.Len() != 0 {
		t.Errorf("output = %q, want none", f.out.String())
	}
}

func TestGenerate_InstallFailureStops(t *testing.T) {
	f := newFixture(t, `{"name": "app"}`, false)
	f.gen.PackageManager = project.Yarn
	f.rec.Fail["npx install-peerdeps --dev --yarn eslint-config-airbnb"] = 1

	result, err := f.gen.Generate(context.Background(), policy.FrameworkReact, policy.PresetAirbnb)
	if !errors.Is(err, lkerrors.ErrCommand) {
		t.Fatalf("Generate() error = %v, want ErrCommand", err)
	}
	if len(f.rec.Commands()) != 1 {
		t.Errorf("commands = %v, want only the failing one", f.rec.Commands())
	}
	if len(result.Files) != 0 {
		t.Errorf("Files = %v, want none", result.Files)
	}
	if _, err := os.Stat(filepath.Join(f.dir, artifact.LinterFile)); !os.IsNotExist(err) {
		t.Error("linter policy should not be written after an install failure")
	}

	// Preprocessing is not rolled back.
	m := f.manifest(t)
	if _, ok := m["scripts"]; !ok {
		t.Error("manifest should keep the lint script written before the failure")
	}
}

func TestGenerate_MigrationAddsSupportPackages(t *testing.T) {
	f := newFixture(t, `{"name": "app"}`, true)
	f.gen.PackageManager = project.PNPM

	result, err := f.gen.Generate(context.Background(), policy.FrameworkVue, policy.PresetRecommended)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantCommands := []string{
		"pnpm add --save-dev eslint eslint-plugin-vue",
		"pnpm add --save-dev globals @eslint/js @eslint/eslintrc",
		"npx @eslint/migrate-config .eslintrc.json",
	}
	if diff := cmp.Diff(wantCommands, f.rec.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantCommands[:2], result.Commands); diff != "" {
		t.Errorf("result commands mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"package.json"}, f.files(t)); diff != "" {
		t.Errorf("legacy files should be gone after migration (-want +got):\n%s", diff)
	}
}

func TestGenerate_AllSelections(t *testing.T) {
	for _, sel := range policy.Selections() {
		t.Run(sel.String(), func(t *testing.T) {
			f := newFixture(t, `{"name": "app", "prettier": {"semi": false}}`, false)

			result, err := f.gen.Generate(context.Background(), sel.Framework, sel.Preset)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(result.Commands) == 0 {
				t.Error("no install commands run")
			}
			if _, ok := f.manifest(t)["prettier"]; ok {
				t.Error("embedded formatter field should be removed")
			}
			hasFormatter := sel.Preset == policy.PresetPrettier
			_, err = os.Stat(filepath.Join(f.dir, artifact.FormatterFile))
			if hasFormatter != (err == nil) {
				t.Errorf("formatter file present = %v, want %v", err == nil, hasFormatter)
			}
		})
	}
}
