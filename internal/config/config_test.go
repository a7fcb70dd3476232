package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := DefaultConfig()
	if diff := cmp.Diff(&want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", "history:\n  page_factor: 5\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.History.PageFactor != 5 {
		t.Errorf("PageFactor = %d, want 5", cfg.History.PageFactor)
	}
	if cfg.Git.Dir != "." {
		t.Errorf("Git.Dir = %q, want default .", cfg.Git.Dir)
	}
	if cfg.UI.NoDescription != "(no description)" {
		t.Errorf("NoDescription = %q, want default", cfg.UI.NoDescription)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", "history:\n  page_size: 5\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Errorf("Load() error = %v, want parse failure on unknown field", err)
	}
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", "# nothing configured yet\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := DefaultConfig()
	if diff := cmp.Diff(&want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLayered_LaterLayersWin(t *testing.T) {
	dir := t.TempDir()
	user := writeConfig(t, dir, "user.yaml", "git:\n  dir: /home/me/repo\nhistory:\n  page_factor: 3\n")
	project := writeConfig(t, dir, "project.yaml", "history:\n  page_factor: 7\n")

	cfg, err := LoadLayered(user, project)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}

	// Then: the project layer overrides page_factor but not git.dir
	if cfg.History.PageFactor != 7 {
		t.Errorf("PageFactor = %d, want 7", cfg.History.PageFactor)
	}
	if cfg.Git.Dir != "/home/me/repo" {
		t.Errorf("Git.Dir = %q, want /home/me/repo", cfg.Git.Dir)
	}
}

func TestLoadLayered_MissingLayersSkipped(t *testing.T) {
	dir := t.TempDir()
	project := writeConfig(t, dir, "project.yaml", "ui:\n  no_description: (nothing)\n")

	cfg, err := LoadLayered(filepath.Join(dir, "absent.yaml"), project)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}

	if cfg.UI.NoDescription != "(nothing)" {
		t.Errorf("NoDescription = %q, want (nothing)", cfg.UI.NoDescription)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults valid", func(*Config) {}, ""},
		{"empty dir", func(c *Config) { c.Git.Dir = "" }, "git.dir"},
		{"zero page factor", func(c *Config) { c.History.PageFactor = 0 }, "page_factor"},
		{"empty sentinel", func(c *Config) { c.UI.NoDescription = "" }, "no_description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("FIXPICK_DIR", "/elsewhere")
	t.Setenv("FIXPICK_PAGE_FACTOR", "4")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Git.Dir != "/elsewhere" {
		t.Errorf("Git.Dir = %q, want /elsewhere", cfg.Git.Dir)
	}
	if cfg.History.PageFactor != 4 {
		t.Errorf("PageFactor = %d, want 4", cfg.History.PageFactor)
	}
}

func TestApplyEnv_BadPageFactor(t *testing.T) {
	t.Setenv("FIXPICK_PAGE_FACTOR", "lots")

	cfg := DefaultConfig()
	err := cfg.ApplyEnv()
	if err == nil || !strings.Contains(err.Error(), "FIXPICK_PAGE_FACTOR") {
		t.Errorf("ApplyEnv() error = %v, want invalid page factor", err)
	}
}
