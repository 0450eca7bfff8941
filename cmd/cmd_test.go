package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with a fresh config in a temp dir.
func runCLI(t *testing.T, args ...string) (output string, err error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	configPath := filepath.Join(dir, "config.json")
	cfg := `{"site": {"base_path": "/personal-sites"}, "export": {"output_dir": "` + filepath.ToSlash(filepath.Join(dir, "content")) + `"}}`
	err = os.WriteFile(configPath, []byte(cfg), 0600)
	if err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	// Flags are package globals; reset the ones tests touch.
	verbose = false
	profileSource = ""
	exportOutputDir = ""
	exportFormat = ""
	exportClean = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))

	err = rootCmd.Execute()
	output = buf.String()
	return output, err
}

func TestRouteCommand(t *testing.T) {
	out, err := runCLI(t, "route", "/personal-sites/zh-tw/speaking")
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}

	if !strings.Contains(out, "Locale:   zh-tw") {
		t.Errorf("Expected zh-tw locale, got:\n%s", out)
	}
	if !strings.Contains(out, "/personal-sites/speaking") {
		t.Errorf("Expected English alternate, got:\n%s", out)
	}
}

func TestValidateCommand(t *testing.T) {
	out, err := runCLI(t, "validate")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if !strings.Contains(out, "✓ Profile: Tygrus Tsai") {
		t.Errorf("Expected profile summary, got:\n%s", out)
	}
}

func TestValidateCommandBadProfile(t *testing.T) {
	_, err := runCLI(t, "validate", "--profile", "/nonexistent/profile.json")
	if err == nil {
		t.Error("Expected error for missing profile, got nil")
	}
}

func TestExportCommand(t *testing.T) {
	out, err := runCLI(t, "export", "--format", "yaml")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if !strings.Contains(out, "✓ Exported 3 files") {
		t.Errorf("Expected export summary, got:\n%s", out)
	}

	_, err = os.Stat(filepath.Join("content", "zh-tw.yaml"))
	if err != nil {
		t.Errorf("Expected zh-tw bundle: %v", err)
	}
}
