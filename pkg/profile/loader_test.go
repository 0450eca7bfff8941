package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikogura/portfolio/pkg/i18n"
)

func writeProfile(t *testing.T, name string, format Format, p Profile) (path string) {
	t.Helper()

	data, err := Encode(p, format)
	if err != nil {
		t.Fatalf("Failed to encode profile: %v", err)
	}

	path = filepath.Join(t.TempDir(), name)
	err = os.WriteFile(path, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeProfile(t, "profile.json", FormatJSON, Default())

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}

	if loaded.Name != "Tygrus Tsai" {
		t.Errorf("Expected name 'Tygrus Tsai', got '%s'", loaded.Name)
	}
	if loaded.Experience[0].Position[i18n.TraditionalChinese] != "資深資安工程師" {
		t.Errorf("Unexpected zh-tw position %q", loaded.Experience[0].Position[i18n.TraditionalChinese])
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeProfile(t, "profile.yml", FormatYAML, Default())

	loaded, err := Load(path, i18n.English, i18n.TraditionalChinese)
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}

	if len(loaded.Skills) != 5 {
		t.Errorf("Expected 5 skill categories, got %d", len(loaded.Skills))
	}
	if loaded.Speaking[0].Date != "2023-08-18" {
		t.Errorf("Expected talk date '2023-08-18', got '%s'", loaded.Speaking[0].Date)
	}
}

func TestLoadHandWrittenYAML(t *testing.T) {
	doc := `
name: Test User
title:
  en: Engineer
  zh-tw: 工程師
bio:
  en: Builds things.
  zh-tw: 打造東西。
location: Taipei
social:
  github: https://github.com/test
experience:
  - company: Test Corp
    position: {en: Engineer, zh-tw: 工程師}
    location: Taipei
    startDate: "2020-01"
    description:
      en: [Shipped things]
      zh-tw: [交付產品]
`
	path := filepath.Join(t.TempDir(), "profile.yaml")
	err := os.WriteFile(path, []byte(doc), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}

	if loaded.Experience[0].EndDate != "" {
		t.Errorf("Expected no end date, got %q", loaded.Experience[0].EndDate)
	}
	if loaded.Bio.Get(i18n.TraditionalChinese) != "打造東西。" {
		t.Errorf("Unexpected zh-tw bio %q", loaded.Bio.Get(i18n.TraditionalChinese))
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/profile.json")
	if err == nil {
		t.Error("Expected error loading nonexistent file, got nil")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.json")
	err := os.WriteFile(path, []byte("not valid json"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Error("Expected error loading invalid JSON, got nil")
	}
}

func TestLoadUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.json")
	err := os.WriteFile(path, []byte(`{"name": "x", "titel": {"en": "typo"}}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Error("Expected error for unknown field, got nil")
	}
}

func TestLoadFailsValidation(t *testing.T) {
	p := Default()
	delete(p.Bio, i18n.TraditionalChinese)
	path := writeProfile(t, "incomplete.json", FormatJSON, p)

	_, err := Load(path)
	if err == nil {
		t.Error("Expected validation error, got nil")
	}

	// Validating against English only accepts it.
	_, err = Load(path, i18n.English)
	if err != nil {
		t.Errorf("Expected English-only validation to pass, got %v", err)
	}
}

func TestLoadFromURL(t *testing.T) {
	data, err := Encode(Default(), FormatYAML)
	if err != nil {
		t.Fatalf("Failed to encode profile: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	loaded, err := LoadWithContext(context.Background(), server.URL+"/profile")
	if err != nil {
		t.Fatalf("Failed to load profile from URL: %v", err)
	}

	if loaded.Name != "Tygrus Tsai" {
		t.Errorf("Expected name 'Tygrus Tsai', got '%s'", loaded.Name)
	}
}

func TestLoadFromURL404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Load(server.URL + "/profile.json")
	if err == nil {
		t.Error("Expected error for 404 response, got nil")
	}
}

func TestLoadFromURLTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := LoadWithContext(ctx, server.URL)
	if err == nil {
		t.Error("Expected timeout error, got nil")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"profile.json": FormatJSON,
		"profile.YAML": FormatYAML,
		"profile.yml":  FormatYAML,
		"profile":      FormatJSON,
		"/api/profile": FormatJSON,
	}

	for input, want := range tests {
		if got := FormatFromPath(input); got != want {
			t.Errorf("FormatFromPath(%q): expected %s, got %s", input, want, got)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode([]byte("  \n"), FormatJSON)
	if err == nil {
		t.Error("Expected error decoding empty document, got nil")
	}

	_, err = Decode([]byte("{}"), Format("toml"))
	if err == nil {
		t.Error("Expected error for unsupported format, got nil")
	}
}
