package internal

import (
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestHTTPConfigPortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 8080}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 8080 should pass: %v", err)
	}
}

func TestSQLiteConfigRequiresPath(t *testing.T) {
	cfg := SQLiteConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty sqlite path should fail validation")
	}
}

func TestHTTPConfigAddress(t *testing.T) {
	cfg := HTTPConfig{Port: 9000}
	if got := cfg.Address(); got != ":9000" {
		t.Errorf("Address() = %q, want :9000", got)
	}
}
