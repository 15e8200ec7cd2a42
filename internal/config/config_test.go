package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SCHOLARMATCH_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "http://127.0.0.1:5000" {
		t.Errorf("server.url = %q, want %q", cfg.Server.URL, "http://127.0.0.1:5000")
	}
	if cfg.Server.Timeout != 8 {
		t.Errorf("server.timeout = %d, want 8", cfg.Server.Timeout)
	}
	if cfg.Recommend.TopN != 10 {
		t.Errorf("recommend.top_n = %d, want 10", cfg.Recommend.TopN)
	}
	if cfg.Student.ID != "" {
		t.Errorf("student.id = %q, want empty", cfg.Student.ID)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.File == "" {
		t.Error("log.file should have a default")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SCHOLARMATCH_CONFIG", "")
	t.Setenv("SCHOLARMATCH_SERVER_URL", "http://scholar.test:9000")
	t.Setenv("SCHOLARMATCH_STUDENT_ID", "STU0002")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "http://scholar.test:9000" {
		t.Errorf("server.url = %q, want env override", cfg.Server.URL)
	}
	if cfg.Student.ID != "STU0002" {
		t.Errorf("student.id = %q, want %q", cfg.Student.ID, "STU0002")
	}
}

func TestLoadClampsTopN(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SCHOLARMATCH_CONFIG", "")

	t.Setenv("SCHOLARMATCH_RECOMMEND_TOP_N", "500")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Recommend.TopN != 50 {
		t.Errorf("top_n = %d, want clamp to 50", cfg.Recommend.TopN)
	}

	t.Setenv("SCHOLARMATCH_RECOMMEND_TOP_N", "-3")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Recommend.TopN != 1 {
		t.Errorf("top_n = %d, want clamp to 1", cfg.Recommend.TopN)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("SCHOLARMATCH_CONFIG", path)

	cfg := Config{
		Server:    ServerConfig{URL: "http://127.0.0.1:10000", Timeout: 4},
		Recommend: RecommendConfig{TopN: 25},
		Student:   StudentConfig{ID: "STU0003"},
		Log:       LogConfig{File: "/tmp/sm.log", Level: "debug"},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Server.URL != cfg.Server.URL {
		t.Errorf("server.url = %q, want %q", got.Server.URL, cfg.Server.URL)
	}
	if got.Server.Timeout != cfg.Server.Timeout {
		t.Errorf("server.timeout = %d, want %d", got.Server.Timeout, cfg.Server.Timeout)
	}
	if got.Recommend.TopN != cfg.Recommend.TopN {
		t.Errorf("recommend.top_n = %d, want %d", got.Recommend.TopN, cfg.Recommend.TopN)
	}
	if got.Student.ID != cfg.Student.ID {
		t.Errorf("student.id = %q, want %q", got.Student.ID, cfg.Student.ID)
	}
	if got.Log.Level != cfg.Log.Level {
		t.Errorf("log.level = %q, want %q", got.Log.Level, cfg.Log.Level)
	}
}
