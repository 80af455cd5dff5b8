package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/nikolasavic/hexblend/internal/color"
)

// withEnv replaces the environment lookup with vars for the test.
func withEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	orig := lookupEnvFn
	t.Cleanup(func() { lookupEnvFn = orig })
	lookupEnvFn = func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		s    Source
		want string
	}{
		{SourceDefault, "default"},
		{SourceEnvFile, "env-file"},
		{SourceEnv, "env"},
		{SourceFlag, "flag"},
		{SourcePrompt, "prompt"},
		{Source(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	withEnv(t, map[string]string{
		EnvEnvFile: filepath.Join(t.TempDir(), "missing.env"),
	})

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != DefaultOutput || cfg.OutputSource != SourceDefault {
		t.Errorf("Output = %q (%v), want %q (default)", cfg.Output, cfg.OutputSource, DefaultOutput)
	}
	if cfg.HasRatio {
		t.Errorf("HasRatio = true, want false")
	}
	if cfg.LogLevel != logrus.WarnLevel {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := writeEnvFile(t, "HEXBLEND_OUTPUT=chart.svg\nHEXBLEND_RATIO=0.25\nHEXBLEND_LOG_LEVEL=debug\n")
	withEnv(t, map[string]string{EnvEnvFile: path})

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := &Config{
		Output:         "chart.svg",
		OutputSource:   SourceEnvFile,
		Ratio:          0.25,
		HasRatio:       true,
		RatioSource:    SourceEnvFile,
		LogLevel:       logrus.DebugLevel,
		LogLevelSource: SourceEnvFile,
		EnvFile:        path,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "HEXBLEND_OUTPUT=file.svg\nHEXBLEND_RATIO=0.25\n")
	withEnv(t, map[string]string{
		EnvEnvFile: path,
		EnvOutput:  "env.svg",
	})

	cfg, err := Load(Overrides{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != "env.svg" || cfg.OutputSource != SourceEnv {
		t.Errorf("Output = %q (%v), want env.svg (env)", cfg.Output, cfg.OutputSource)
	}
	if cfg.Ratio != 0.25 || cfg.RatioSource != SourceEnvFile {
		t.Errorf("Ratio = %v (%v), want 0.25 (env-file)", cfg.Ratio, cfg.RatioSource)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"ratio out of range", map[string]string{EnvRatio: "1.5"}},
		{"ratio not a number", map[string]string{EnvRatio: "half"}},
		{"bad log level", map[string]string{EnvLogLevel: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.vars[EnvEnvFile] = filepath.Join(t.TempDir(), "missing.env")
			withEnv(t, tt.vars)
			if _, err := Load(Overrides{}); err == nil {
				t.Error("Load(): expected error")
			}
		})
	}
}

func TestLoadRatioErrorWraps(t *testing.T) {
	withEnv(t, map[string]string{
		EnvEnvFile: filepath.Join(t.TempDir(), "missing.env"),
		EnvRatio:   "-1",
	})
	_, err := Load(Overrides{})
	if !errors.Is(err, color.ErrInvalidRatio) {
		t.Errorf("Load() error = %v, want ErrInvalidRatio", err)
	}
}

func TestLoadEnvFileIsDirectory(t *testing.T) {
	withEnv(t, map[string]string{EnvEnvFile: t.TempDir()})
	if _, err := Load(Overrides{}); err == nil {
		t.Error("Load() with directory as env file: expected error")
	}
}

func TestSetRatio(t *testing.T) {
	cfg := &Config{}
	if err := cfg.SetRatio("1", SourceFlag); err != nil {
		t.Fatalf("SetRatio() error = %v", err)
	}
	if !cfg.HasRatio || cfg.Ratio != 1 || cfg.RatioSource != SourceFlag {
		t.Errorf("SetRatio() -> %+v", cfg)
	}
	if err := cfg.SetRatio("1.01", SourceFlag); !errors.Is(err, color.ErrInvalidRatio) {
		t.Errorf("SetRatio(1.01) error = %v, want ErrInvalidRatio", err)
	}
}

func TestLoadOverridesWin(t *testing.T) {
	path := writeEnvFile(t, "HEXBLEND_OUTPUT=file.svg\n")
	withEnv(t, map[string]string{
		EnvEnvFile:  path,
		EnvRatio:    "abc",
		EnvLogLevel: "loud",
	})

	cfg, err := Load(Overrides{Output: "flag.svg", Ratio: "0.5", LogLevel: "debug"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := &Config{
		Output:         "flag.svg",
		OutputSource:   SourceFlag,
		Ratio:          0.5,
		HasRatio:       true,
		RatioSource:    SourceFlag,
		LogLevel:       logrus.DebugLevel,
		LogLevelSource: SourceFlag,
		EnvFile:        path,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalidOverride(t *testing.T) {
	withEnv(t, map[string]string{
		EnvEnvFile: filepath.Join(t.TempDir(), "missing.env"),
		EnvRatio:   "0.5",
	})
	_, err := Load(Overrides{Ratio: "2"})
	if !errors.Is(err, color.ErrInvalidRatio) {
		t.Errorf("Load() error = %v, want ErrInvalidRatio", err)
	}
}
