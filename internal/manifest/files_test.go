package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestPruneConfigFiles_EverySubset(t *testing.T) {
	candidates := []string{".eslintrc", ".eslintrc.json", ".eslintignore"}

	for mask := 0; mask < 1<<len(candidates); mask++ {
		t.Run(fmt.Sprintf("subset-%03b", mask), func(t *testing.T) {
			dir := t.TempDir()

			var present []string
			for i, name := range candidates {
				if mask&(1<<i) == 0 {
					continue
				}
				present = append(present, name)
				if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
					t.Fatal(err)
				}
			}

			removed, err := PruneConfigFiles(dir, candidates)
			if err != nil {
				t.Fatalf("PruneConfigFiles() error = %v", err)
			}
			if len(removed) != len(present) {
				t.Errorf("removed %v, want %v", removed, present)
			}

			for _, name := range candidates {
				if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
					t.Errorf("%s still exists", name)
				}
			}
		})
	}
}

func TestPruneConfigFiles_LeavesOtherFiles(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "tsconfig.json")
	_ = os.WriteFile(keep, []byte("{}"), 0644)
	_ = os.WriteFile(filepath.Join(dir, ".prettierrc"), []byte("{}"), 0644)

	removed, err := PruneConfigFiles(dir, FormatterTopic.ConfigFiles)
	if err != nil {
		t.Fatalf("PruneConfigFiles() error = %v", err)
	}
	if len(removed) != 1 || removed[0] != ".prettierrc" {
		t.Errorf("removed = %v, want [.prettierrc]", removed)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Error("unrelated file was removed")
	}
}

func TestPruneConfigFiles_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".eslintrc"), 0755); err != nil {
		t.Fatal(err)
	}

	removed, err := PruneConfigFiles(dir, []string{".eslintrc"})
	if err != nil {
		t.Fatalf("PruneConfigFiles() error = %v", err)
	}
	if len(removed) != 0 {
		t.Errorf("removed = %v, want none", removed)
	}
	if info, err := os.Stat(filepath.Join(dir, ".eslintrc")); err != nil || !info.IsDir() {
		t.Error("directory should be left alone")
	}
}

func TestTopics(t *testing.T) {
	topics := DefaultTopics()
	if len(topics) != 2 {
		t.Fatalf("DefaultTopics() returned %d topics", len(topics))
	}
	if topics[0].Token != "eslint" || topics[1].Token != "prettier" {
		t.Errorf("topic order = %s, %s; want eslint, prettier", topics[0].Token, topics[1].Token)
	}
	if LinterTopic.Field != "eslintConfig" || FormatterTopic.Field != "prettier" {
		t.Error("unexpected embedded config fields")
	}
}
