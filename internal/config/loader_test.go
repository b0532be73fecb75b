package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\ndata_dir: /tessdata\ndefault_language: fra\nmax_upload_bytes: 1024\nrequest_timeout_seconds: 30\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.DataDir != "/tessdata" || cfg.DefaultLanguage != "fra" || cfg.MaxUploadBytes != 1024 || cfg.RequestTimeoutSeconds != 30 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","data_dir":"/d","default_language":"deu","rate_limit_rps":2.5,"rate_limit_burst":7}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.DataDir != "/d" || cfg.DefaultLanguage != "deu" || cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 7 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\ndata_dir=\"/x\"\ncors_enabled=true\ncors_origins=[\"*\"]\ncors_max_age_seconds=300\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || cfg.DataDir != "/x" || !cfg.CORSEnabled || len(cfg.CORSOrigins) != 1 || cfg.CORSMaxAgeSeconds != 300 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("OCRD_ADDR", ":6060")
	t.Setenv("OCRD_DATA_DIR", "")
	t.Setenv("TESSDATA_PATH", "/usr/share/tessdata")
	t.Setenv("OCRD_DEFAULT_LANGUAGE", "spa")
	t.Setenv("OCRD_MAX_UPLOAD_BYTES", "2048")
	t.Setenv("OCRD_RATE_LIMIT_RPS", "1.5")
	cfg := FromEnv()
	if cfg.Addr != ":6060" || cfg.DataDir != "/usr/share/tessdata" || cfg.DefaultLanguage != "spa" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.MaxUploadBytes != 2048 || cfg.RateLimitRPS != 1.5 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestMergeAndDefaults(t *testing.T) {
	base := Config{Addr: ":1111", DefaultLanguage: "eng"}
	over := Config{Addr: ":2222", DataDir: "/d"}
	got := base.Merge(over).ApplyDefaults()
	if got.Addr != ":2222" {
		t.Fatalf("overlay addr should win: %+v", got)
	}
	if got.DataDir != "/d" || got.DefaultLanguage != "eng" {
		t.Fatalf("unexpected cfg: %+v", got)
	}
	if got.MaxUploadBytes != DefaultMaxUploadBytes || got.RequestTimeoutSeconds != DefaultTimeoutSeconds {
		t.Fatalf("defaults not applied: %+v", got)
	}
}
