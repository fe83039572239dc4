package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetVersionInfoDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	BuildTime = ""

	info := GetVersionInfo()
	if info == nil {
		t.Fatal("expected non-nil Info")
	}
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
	if info.BuildDate.IsZero() {
		t.Error("BuildDate should not be zero")
	}
}

func TestGetVersionInfoRelease(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.3"
	BuildTime = "2026-01-02T15:04:05Z"

	info := GetVersionInfo()
	if !info.IsRelease {
		t.Error("expected 1.2.3 to be a release")
	}
	if info.BuildDate.Year() != 2026 {
		t.Errorf("expected parsed build date, got %v", info.BuildDate)
	}
}

func TestGetShortVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.3"
	GitCommit = "abc1234"

	short := GetShortVersion()
	if !strings.HasPrefix(short, "1.2.3-abc1234") {
		t.Errorf("unexpected short version: %q", short)
	}
}
