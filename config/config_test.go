package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/fidor/errors"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected base url %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
	if !strings.HasPrefix(cfg.UserAgent, "fidor-go/") {
		t.Errorf("expected default user agent, got %q", cfg.UserAgent)
	}
	if cfg.Logging.Level != "disabled" {
		t.Errorf("expected logging disabled, got %q", cfg.Logging.Level)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing token", mutate: func(c *Config) { c.AccessToken = "" }, wantErr: "access_token"},
		{name: "bad url", mutate: func(c *Config) { c.BaseURL = "not a url" }, wantErr: "base_url"},
		{name: "bad logging", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{AccessToken: "tok"}
			cfg.ApplyDefaults()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestMissingTokenIsInvalidInput(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if !errors.HasCode(cfg.Validate(), errors.ErrCodeInvalidInput) {
		t.Error("expected INVALID_INPUT error")
	}
}

func TestHTTPClient(t *testing.T) {
	cfg := Config{AccessToken: "tok", Headers: map[string]string{"X-Test": "1"}}
	cfg.ApplyDefaults()

	hc := cfg.HTTPClient()
	if hc.BaseURL != DefaultBaseURL {
		t.Errorf("expected base url, got %q", hc.BaseURL)
	}
	if hc.Auth == nil || hc.Auth.Token != "tok" {
		t.Errorf("expected bearer auth with token, got %+v", hc.Auth)
	}
	if hc.Headers["X-Test"] != "1" {
		t.Errorf("expected headers to be carried over, got %v", hc.Headers)
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fidor.yml")
	yamlContent := `
base_url: https://aps.fidor.de/sandbox
access_token: f859032a6ca0a4abb2be0583b8347937
timeout: 5s
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(WithConfigFile(configPath), WithoutSearch())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != SandboxBaseURL {
		t.Errorf("expected sandbox url, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.Timeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("expected console/debug logging, got %+v", cfg.Logging)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fidor.yml")
	if err := os.WriteFile(configPath, []byte("access_token: from-file\ntimeout: 5s\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("FIDOR_ACCESS_TOKEN", "from-env")
	t.Setenv("FIDOR_TIMEOUT", "12s")
	t.Setenv("FIDOR_LOGGING_LEVEL", "warn")

	cfg, err := Load(WithConfigFile(configPath), WithoutSearch())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AccessToken != "from-env" {
		t.Errorf("expected env token, got %q", cfg.AccessToken)
	}
	if cfg.Timeout != 12*time.Second {
		t.Errorf("expected 12s, got %v", cfg.Timeout)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected warn, got %q", cfg.Logging.Level)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("FIDOR_ACCESS_TOKEN=dotenv-token\n"), 0o644); err != nil {
		t.Fatalf("failed to write env: %v", err)
	}
	// godotenv writes into the process environment; restore it afterwards
	t.Setenv("FIDOR_ACCESS_TOKEN", "")
	os.Unsetenv("FIDOR_ACCESS_TOKEN")

	cfg, err := Load(WithEnvFile(envPath), WithoutSearch())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AccessToken != "dotenv-token" {
		t.Errorf("expected dotenv token, got %q", cfg.AccessToken)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(WithConfigFile("/nonexistent/fidor.yml"), WithoutSearch())
	if err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestLoadWithoutToken(t *testing.T) {
	t.Setenv("FIDOR_ACCESS_TOKEN", "")
	_, err := Load(WithoutSearch())
	if err == nil {
		t.Fatal("expected validation error without token")
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/fidor.yml": true,
		"./.env":             true,
	}}
	resolver := &Resolver{FileSystem: fs}

	files := resolver.ResolveFiles(LoaderConfig{})
	if files.ConfigFile != "./config/fidor.yml" {
		t.Errorf("expected ./config/fidor.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}

	files = resolver.ResolveFiles(LoaderConfig{SkipSearch: true})
	if files.ConfigFile != "" || files.EnvFile != "" {
		t.Errorf("expected no files with search disabled, got %+v", files)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/fidor.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithoutSearch()(&lc)

	if lc.FileSystem != fs {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/fidor.yml" || lc.EnvFile != "/path/to/.env" || !lc.SkipSearch {
		t.Errorf("unexpected loader config %+v", lc)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("LOGGING_NO_COLOR")
	want := []string{"logging_no_color", "logging.no.color", "logging.no_color"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := generateEnvKeyVariants("TIMEOUT"); !reflect.DeepEqual(got, []string{"timeout"}) {
		t.Errorf("expected [timeout], got %v", got)
	}
}
