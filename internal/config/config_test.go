package config

import (
	"os"
	"path/filepath"
	"testing"

	"groupify/internal/model"
)

func TestLoadConfigFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, info, err := LoadConfigFrom(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if info.Found || info.PortSpecified {
		t.Fatalf("unexpected info: %+v", info)
	}
	if cfg.Server.Port != 20251 || cfg.Grouping.DefaultGroups != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DefaultMethod() != model.MethodFullBranchwise {
		t.Fatalf("DefaultMethod=%s", cfg.DefaultMethod())
	}
}

func TestLoadConfigFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[server]
port = 8088

[grouping]
default_groups = 5
default_method = "Branchwise Uniform"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, info, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if !info.Found || !info.PortSpecified {
		t.Fatalf("unexpected info: %+v", info)
	}
	if cfg.Server.Port != 8088 || cfg.Grouping.DefaultGroups != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DefaultMethod() != model.MethodBranchwiseUniform {
		t.Fatalf("DefaultMethod=%s", cfg.DefaultMethod())
	}
	// 未配置的字段保持默认值
	if cfg.Export.DownloadTTLMinutes != 10 {
		t.Fatalf("DownloadTTLMinutes=%d, want 10", cfg.Export.DownloadTTLMinutes)
	}
}

func TestLoadConfigFrom_EnvOverride(t *testing.T) {
	t.Setenv("GROUPIFY_PORT", "9099")
	t.Setenv("GROUPIFY_DEFAULT_METHOD", "mixed")

	cfg, info, err := LoadConfigFrom(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if cfg.Server.Port != 9099 || !info.PortSpecified {
		t.Fatalf("port override not applied: %d %+v", cfg.Server.Port, info)
	}
	if cfg.DefaultMethod() != model.MethodBranchwiseMixed {
		t.Fatalf("DefaultMethod=%s", cfg.DefaultMethod())
	}
}

func TestLoadConfigFrom_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad_toml.toml":   "[server\nport = 1",
		"bad_groups.toml": "[grouping]\ndefault_groups = 0\n",
		"bad_method.toml": "[grouping]\ndefault_method = \"random\"\n",
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, _, err := LoadConfigFrom(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := DefaultConfig()
	cfg.Server.Port = 7000

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, _, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if loaded.Server.Port != 7000 {
		t.Fatalf("Port=%d, want 7000", loaded.Server.Port)
	}
}
