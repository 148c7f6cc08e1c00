package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg.Practice.Words != nil || cfg.Log.Level != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `[practice]
words = 50
skip-menu = true
punct = true
caps-rate = 0.25
corpus = "/tmp/words.toml"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	p := cfg.Practice
	if p.Words == nil || *p.Words != 50 {
		t.Fatalf("expected words 50, got %v", p.Words)
	}
	if p.SkipMenu == nil || !*p.SkipMenu || p.Punct == nil || !*p.Punct {
		t.Fatalf("expected skip-menu and punct set")
	}
	if p.Caps != nil || p.Zen != nil {
		t.Fatalf("expected unset toggles to stay nil")
	}
	if p.CapsRate == nil || *p.CapsRate != 0.25 {
		t.Fatalf("expected caps-rate 0.25, got %v", p.CapsRate)
	}
	if p.Corpus == nil || *p.Corpus != "/tmp/words.toml" {
		t.Fatalf("unexpected corpus %v", p.Corpus)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("expected log level debug")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[practice\nwords = 1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(bad); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode error, got %v", err)
	}
	unknown := filepath.Join(dir, "unknown.toml")
	if err := os.WriteFile(unknown, []byte("[practice]\nwc = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(unknown); err == nil || !strings.Contains(err.Error(), "practice.wc") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "typefast", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultCorpusDir(); got != filepath.Join("/cfg", "typefast", "corpora") {
		t.Fatalf("unexpected corpus dir %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/state", "typefast", "typefast.log") {
		t.Fatalf("unexpected log path %s", got)
	}
}
