package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    Config
		wantErr error
	}{
		{
			name: "CaseSensitiveByDefault",
			args: []string{"minigrep", "duct", "poem.txt"},
			want: Config{Query: "duct", Filename: "poem.txt", CaseSensitive: true},
		},
		{
			name: "ToggleSetDisablesCaseSensitivity",
			args: []string{"minigrep", "duct", "poem.txt"},
			env:  map[string]string{CaseInsensitiveEnv: "1"},
			want: Config{Query: "duct", Filename: "poem.txt", CaseSensitive: false},
		},
		{
			name: "EmptyToggleStillCounts",
			args: []string{"minigrep", "duct", "poem.txt"},
			env:  map[string]string{CaseInsensitiveEnv: ""},
			want: Config{Query: "duct", Filename: "poem.txt", CaseSensitive: false},
		},
		{
			name: "ToggleValueIsIgnored",
			args: []string{"minigrep", "duct", "poem.txt"},
			env:  map[string]string{CaseInsensitiveEnv: "false"},
			want: Config{Query: "duct", Filename: "poem.txt", CaseSensitive: false},
		},
		{
			name: "EmptyQueryIsValid",
			args: []string{"minigrep", "", "poem.txt"},
			want: Config{Query: "", Filename: "poem.txt", CaseSensitive: true},
		},
		{
			name: "ExtraArgumentsIgnored",
			args: []string{"minigrep", "duct", "poem.txt", "other.txt"},
			want: Config{Query: "duct", Filename: "poem.txt", CaseSensitive: true},
		},
		{
			name:    "MissingFilename",
			args:    []string{"minigrep", "duct"},
			wantErr: ErrMissingFilename,
		},
		{
			name:    "MissingQuery",
			args:    []string{"minigrep"},
			wantErr: ErrMissingQuery,
		},
		{
			name:    "NoArguments",
			args:    nil,
			wantErr: ErrMissingQuery,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := New(tc.args, MapLookup(tc.env))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			if got != tc.want {
				t.Fatalf("unexpected config: got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestNewNilLookupIsCaseSensitive(t *testing.T) {
	t.Parallel()

	cfg, err := New([]string{"minigrep", "q", "f"}, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !cfg.CaseSensitive {
		t.Fatalf("expected case-sensitive mode without an environment")
	}
}

func TestNewWithProcessEnvironment(t *testing.T) {
	t.Setenv(CaseInsensitiveEnv, "")

	cfg, err := New([]string{"minigrep", "q", "f"}, os.LookupEnv)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if cfg.CaseSensitive {
		t.Fatalf("expected case-insensitive mode when %s is set", CaseInsensitiveEnv)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Parallel()

	settings, err := LoadSettings(MapLookup(nil))
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if settings.LogLevel != defaultLogLevel {
		t.Fatalf("expected default log level %s, got %s", defaultLogLevel, settings.LogLevel)
	}
}

func TestLoadSettingsFromYAML(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, "log_level: debug\n")

	settings, err := LoadSettings(MapLookup(map[string]string{SettingsFileEnv: path}))
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if settings.LogLevel != "debug" {
		t.Fatalf("expected log level from YAML, got %s", settings.LogLevel)
	}
}

func TestLoadSettingsEnvOverridesYAML(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, "log_level: debug\n")
	env := map[string]string{
		SettingsFileEnv: path,
		LogLevelEnv:     " warn ",
	}

	settings, err := LoadSettings(MapLookup(env))
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if settings.LogLevel != "warn" {
		t.Fatalf("expected environment to win, got %s", settings.LogLevel)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "absent.yaml")
		if _, err := LoadSettings(MapLookup(map[string]string{SettingsFileEnv: path})); err == nil {
			t.Fatalf("expected error for missing settings file")
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()
		path := writeSettingsFile(t, "log_level: [unterminated\n")
		if _, err := LoadSettings(MapLookup(map[string]string{SettingsFileEnv: path})); err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadSettings(MapLookup(map[string]string{LogLevelEnv: "verbose"})); err == nil {
			t.Fatalf("expected error for unknown log level")
		}
	})
}

func writeSettingsFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "minigrep.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write settings file: %v", err)
	}
	return path
}
