package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigParseError(t *testing.T) {
	parseErr := errors.New("unexpected end of file")
	err := ConfigParseError("/path/.lintkit.yaml", parseErr)

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigParseError should return ErrConfig")
	}
	if !errors.Is(err.Cause, parseErr) {
		t.Error("Should wrap the parse error")
	}
	if !strings.Contains(err.Suggestion, "YAML") {
		t.Error("Suggestion should mention YAML syntax")
	}
}

func TestInvalidSelection(t *testing.T) {
	err := InvalidSelection("svelte", "airbnb")

	if !errors.Is(err, ErrSelection) {
		t.Error("InvalidSelection should return ErrSelection")
	}
	if err.Details["framework"] != "svelte" || err.Details["preset"] != "airbnb" {
		t.Errorf("unexpected details: %v", err.Details)
	}
	if !strings.Contains(err.Suggestion, "lintkit list") {
		t.Error("Suggestion should point at the list command")
	}
}

func TestManifestErrors(t *testing.T) {
	notFound := ManifestNotFound("/proj/package.json")
	if !errors.Is(notFound, ErrManifest) {
		t.Error("ManifestNotFound should return ErrManifest")
	}
	if notFound.Details["path"] != "/proj/package.json" {
		t.Error("Should include path in details")
	}

	cause := errors.New("invalid character")
	parse := ManifestParseError("/proj/package.json", cause)
	if !errors.Is(parse, ErrManifest) {
		t.Error("ManifestParseError should return ErrManifest")
	}
	if !errors.Is(parse, cause) {
		t.Error("ManifestParseError should wrap the cause")
	}

	write := ManifestWriteError("/proj/package.json", cause)
	if !errors.Is(write, ErrFilesystem) {
		t.Error("ManifestWriteError should return ErrFilesystem")
	}
}

func TestCommandFailed(t *testing.T) {
	cause := errors.New("exit status 1")
	err := CommandFailed("npm install --save-dev eslint", 1, cause)

	if !errors.Is(err, ErrCommand) {
		t.Error("CommandFailed should return ErrCommand")
	}
	if err.Details["command"] != "npm install --save-dev eslint" {
		t.Errorf("command detail = %q", err.Details["command"])
	}
	if err.Details["exit_code"] != "1" {
		t.Errorf("exit_code detail = %q", err.Details["exit_code"])
	}
	if !strings.Contains(err.Suggestion, "package.json are kept") {
		t.Error("Suggestion should mention that manifest changes are not rolled back")
	}
}
