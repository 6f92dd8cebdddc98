package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Graph.BaseURL != "https://graph.microsoft.com/v1.0" {
		t.Errorf("base url = %q", cfg.Graph.BaseURL)
	}
	if cfg.Graph.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Graph.Timeout)
	}
}
