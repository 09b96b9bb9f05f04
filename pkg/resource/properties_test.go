package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	return path
}

func TestLoadResolvesEnvironmentPlaceholders(t *testing.T) {
	t.Setenv("GO_NEWS_TEST_KEY", "secret-from-env")

	path := writeProperties(t, `
app:
  name: go-news
  weather:
    api-key: ${GO_NEWS_TEST_KEY:}
    base-url: ${GO_NEWS_TEST_MISSING:https://api.example.com}
    region: ${GO_NEWS_TEST_UNSET:}
    timeout: 3s
  server:
    port: 8080
`)

	if err := Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "plain value", key: "app.name", want: "go-news"},
		{name: "env value", key: "app.weather.api-key", want: "secret-from-env"},
		{name: "default value", key: "app.weather.base-url", want: "https://api.example.com"},
		{name: "empty default", key: "app.weather.region", want: ""},
		{name: "number", key: "app.server.port", want: "8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetString(tt.key); got != tt.want {
				t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if got := GetDuration("app.weather.timeout"); got != 3*time.Second {
		t.Errorf("GetDuration() = %v, want 3s", got)
	}
	if got := GetDurationOrDefault("app.weather.missing", time.Second); got != time.Second {
		t.Errorf("GetDurationOrDefault() = %v, want 1s", got)
	}
	if got := GetStringOrDefault("app.weather.region", "eu"); got != "eu" {
		t.Errorf("GetStringOrDefault() = %q, want eu", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestShippedApplicationProperties(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "key-from-env")
	t.Setenv("WEATHER_API_TIMEOUT", "3s")

	if err := Load("../../configs/application.yml"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{key: "app.weather.api-key", want: "key-from-env"},
		{key: "app.weather.base-url", want: "https://api.openweathermap.org/data/2.5"},
		{key: "app.weather.default-state", want: "il"},
		{key: "app.weather.default-city", want: "jerusalem"},
		{key: "app.content.base-url", want: "https://a.jfeed.com/v2"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetString(tt.key); got != tt.want {
				t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if got := GetDuration("app.weather.timeout"); got != 3*time.Second {
		t.Errorf("GetDuration(app.weather.timeout) = %v, want 3s", got)
	}
}
