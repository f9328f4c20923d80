package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		EnvConfigPath, EnvServerAddr, EnvRedisAddr, EnvRedisPassword,
		EnvRedisDB, EnvCacheBackend, EnvCacheDir, EnvSessionBackend,
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.Render.Width != 800 || cfg.Render.Height != 600 {
		t.Errorf("canvas = %vx%v, want 800x600", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Cache.Backend != CacheFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheFile)
	}
	if cfg.Session.Backend != SessionMemory {
		t.Errorf("Session.Backend = %q, want %q", cfg.Session.Backend, SessionMemory)
	}
}

func TestLoadFromEmptyPathUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, path, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom(\"\") error: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[render]
width = 1024
height = 768
formats = ["svg", "png"]

[server]
addr = ":9090"
read_timeout = "5s"

[cache]
backend = "redis"

[session]
backend = "redis"
ttl = "10m"
`)

	cfg, got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if cfg.Render.Width != 1024 || cfg.Render.Height != 768 {
		t.Errorf("canvas = %vx%v, want 1024x768", cfg.Render.Width, cfg.Render.Height)
	}
	if len(cfg.Render.Formats) != 2 {
		t.Errorf("Formats = %v, want [svg png]", cfg.Render.Formats)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout.Duration != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
	if cfg.Session.TTL.Duration != 10*time.Minute {
		t.Errorf("Session.TTL = %v, want 10m", cfg.Session.TTL)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want default", cfg.Redis.Addr)
	}
}

func TestLoadFromErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[render\nwidth = 1"},
		{"bad duration", "[server]\nread_timeout = \"soon\""},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"bad session", "[session]\nbackend = \"file\""},
		{"bad canvas", "[render]\nwidth = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := LoadFrom(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadFrom() should fail")
			}
		})
	}

	if _, _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFrom(missing) should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvServerAddr, "127.0.0.1:7000")
	t.Setenv(EnvRedisAddr, "redis:6379")
	t.Setenv(EnvRedisDB, "3")
	t.Setenv(EnvCacheBackend, CacheNone)

	path := writeConfig(t, "[server]\naddr = \":9090\"\n")
	cfg, _, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("Server.Addr = %q, env should win over file", cfg.Server.Addr)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 3 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}

	t.Setenv(EnvRedisDB, "x")
	if _, _, err := LoadFrom(""); err == nil {
		t.Error("non-numeric redis db should fail")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	clearEnv(t)
	out, err := Default().Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(out, "[render]") || !strings.Contains(out, `ttl = "2h0m0s"`) {
		t.Errorf("Encode() output unexpected:\n%s", out)
	}

	cfg, _, err := LoadFrom(writeConfig(t, out))
	if err != nil {
		t.Fatalf("re-load error: %v", err)
	}
	if cfg.Session.TTL.Duration != 2*time.Hour {
		t.Errorf("Session.TTL = %v after round trip", cfg.Session.TTL)
	}
}

func TestFindConfigPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))

	if got := FindConfigPath(); got != "" {
		t.Errorf("FindConfigPath() = %q, want empty", got)
	}

	xdg := filepath.Join(dir, "xdg", DirName, "config.toml")
	os.MkdirAll(filepath.Dir(xdg), 0755)
	os.WriteFile(xdg, nil, 0644)
	if got := FindConfigPath(); got != xdg {
		t.Errorf("FindConfigPath() = %q, want %q", got, xdg)
	}

	os.WriteFile(filepath.Join(dir, FileName), nil, 0644)
	if got := FindConfigPath(); filepath.Base(got) != FileName {
		t.Errorf("FindConfigPath() = %q, want working-directory file", got)
	}

	explicit := writeConfig(t, "")
	t.Setenv(EnvConfigPath, explicit)
	if got := FindConfigPath(); got != explicit {
		t.Errorf("FindConfigPath() = %q, want %q", got, explicit)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got, want := DefaultConfigPath(), filepath.Join("/tmp/xdg", DirName, "config.toml"); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
