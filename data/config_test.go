package data

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CARDKIT_PORT", "")
	t.Setenv("CARDKIT_MODE", "")
	t.Setenv("CARDKIT_DATA_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 || cfg.Mode != RunModeDev || cfg.DataDir != "" || cfg.LogFormat != "text" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CARDKIT_PORT", "9090")
	t.Setenv("CARDKIT_MODE", RunModeRelease)
	t.Setenv("CARDKIT_DATA_DIR", "/var/lib/cardkit")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 || cfg.Mode != RunModeRelease || cfg.DataDir != "/var/lib/cardkit" || cfg.LogFormat != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"port not a number": {"CARDKIT_PORT", "eighty"},
		"port out of range": {"CARDKIT_PORT", "70000"},
		"unknown mode":      {"CARDKIT_MODE", "staging"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CARDKIT_PORT", "")
			t.Setenv("CARDKIT_MODE", "")
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected an error for %s=%s", kv[0], kv[1])
			}
		})
	}
}
