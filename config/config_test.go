package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	m := &Manager{}
	if err := m.validate(DefaultConfig()); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "annual.yaml")
	contents := "general:\n  timezone: UTC\n  environment: dev\nproducers:\n  builtin: [easter]\nbundles:\n  - path: ./bundles/us.yaml\nsync:\n  repo_owner: tom65536\n  repo_name: annual\n  branch: main\nlogging:\n  level: debug\n  output: stdout\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	cfg, err := m.LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.Environment != "dev" {
		t.Fatalf("expected dev environment, got %s", cfg.General.Environment)
	}
	if len(cfg.Producers.Builtin) != 1 || cfg.Producers.Builtin[0] != "easter" {
		t.Fatalf("unexpected builtin producers: %v", cfg.Producers.Builtin)
	}
	if len(cfg.Bundles) != 1 || cfg.Bundles[0].Path != "./bundles/us.yaml" {
		t.Fatalf("unexpected bundles: %v", cfg.Bundles)
	}
	if cfg.Sync.RepoOwner != "tom65536" {
		t.Fatalf("unexpected sync repo owner: %s", cfg.Sync.RepoOwner)
	}
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	m := &Manager{}
	cfg := DefaultConfig()
	cfg.General.Environment = "nonsense"
	if err := m.validate(cfg); err == nil {
		t.Fatal("expected an error for an invalid environment")
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	m := &Manager{}
	cfg := DefaultConfig()
	cfg.Logging.Level = "nonsense"
	if err := m.validate(cfg); err == nil {
		t.Fatal("expected an error for an invalid log level")
	}
}

func TestValidateRejectsEmptyBundleRef(t *testing.T) {
	m := &Manager{}
	cfg := DefaultConfig()
	cfg.Bundles = []BundleRef{{}}
	if err := m.validate(cfg); err == nil {
		t.Fatal("expected an error for a bundle with neither path nor remote")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "annual.yaml")

	m := NewManager()
	cfg, err := m.Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg.General.Environment = "staging"

	if err := m.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewManager().LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.General.Environment != "staging" {
		t.Fatalf("round trip lost environment: %v", loaded)
	}
}

func TestRegistryBuildsFromBuiltinSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Producers.Builtin = []string{"easter", "fixtures"}

	r, err := cfg.Registry()
	if err != nil {
		t.Fatal(err)
	}
	result := r.Evaluate(2024)
	if _, ok := result["easter"].Get(); !ok {
		t.Fatal("expected easter to be registered")
	}
	if result["never"].IsPresent() {
		t.Fatal("expected never to be absent")
	}
}

func TestRegistryRejectsUnknownProducerSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Producers.Builtin = []string{"nonexistent"}
	if _, err := cfg.Registry(); err == nil {
		t.Fatal("expected an error for an unknown producer set")
	}
}

func TestLoadLocalBundle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "us.bundle")
	contents := "# comment\nindependence-day = \"4th of July\"\n\nflag-day = \"14th of June\"\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadLocalBundle(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d: %v", len(rules), rules)
	}
	if rules["independence-day"] != "4th of July" {
		t.Fatalf("unexpected rule: %q", rules["independence-day"])
	}
}

func TestLoadLocalBundleRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.bundle")
	if err := os.WriteFile(path, []byte("not-a-valid-line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLocalBundle(path); err == nil {
		t.Fatal("expected an error for a malformed bundle line")
	}
}
