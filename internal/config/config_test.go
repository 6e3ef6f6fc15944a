package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Driver: "redis",
			Addrs:  []string{"localhost:6379"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "redis",
			Addrs:  []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_Drivers(t *testing.T) {
	for _, driver := range []string{"redis", "valkey"} {
		t.Run(driver, func(t *testing.T) {
			cfg := Config{
				HTTP: HTTPConfig{Port: 8080},
				Database: DatabaseConfig{
					Driver: driver,
					Addrs:  []string{"localhost:6379"},
				},
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for driver %q: %v", driver, err)
			}
		})
	}

	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "postgres",
			Addrs:  []string{"localhost:5432"},
		},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != "redis" {
		t.Errorf("expected driver=redis, got %q", cfg.Database.Driver)
	}
	if cfg.Search.CandidateLimit != 500 {
		t.Errorf("expected CandidateLimit=500, got %d", cfg.Search.CandidateLimit)
	}
	if cfg.Search.DefaultPageSize != 20 {
		t.Errorf("expected DefaultPageSize=20, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Search.MaxPageSize)
	}
	if cfg.Assistant.SuggestionLimit != 10 {
		t.Errorf("expected SuggestionLimit=10, got %d", cfg.Assistant.SuggestionLimit)
	}
	if cfg.Assistant.TopCities != 3 {
		t.Errorf("expected TopCities=3, got %d", cfg.Assistant.TopCities)
	}
	if cfg.Assistant.DemoFallback {
		t.Error("demo fallback must default to off")
	}
	if cfg.Storage.KeyPrefix != "casamatch:" {
		t.Errorf("expected KeyPrefix='casamatch:', got %q", cfg.Storage.KeyPrefix)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:      HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database:  DatabaseConfig{Driver: "valkey", ReadinessTimeout: 15},
		Search:    SearchConfig{CandidateLimit: 250, DefaultPageSize: 50, MaxPageSize: 500},
		Assistant: AssistantConfig{SuggestionLimit: 5, TopCities: 2},
		Storage:   StorageConfig{KeyPrefix: "custom:"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Database.Driver != "valkey" {
		t.Errorf("expected driver=valkey, got %q", cfg.Database.Driver)
	}
	if cfg.Search.CandidateLimit != 250 {
		t.Errorf("expected CandidateLimit=250, got %d", cfg.Search.CandidateLimit)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Storage.KeyPrefix)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CASAMATCH_TEST_VAR", "hello")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"set variable", "value: ${CASAMATCH_TEST_VAR}", "value: hello"},
		{"unset variable", "value: ${CASAMATCH_UNSET_VAR}", "value: "},
		{"default used", "value: ${CASAMATCH_UNSET_VAR:-fallback}", "value: fallback"},
		{"default ignored when set", "value: ${CASAMATCH_TEST_VAR:-fallback}", "value: hello"},
		{"no variables", "value: plain", "value: plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(expandEnvVars([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.Database.Driver != "redis" {
		t.Errorf("expected redis driver by default, got %q", cfg.Database.Driver)
	}
	if len(cfg.Database.Addrs) != 1 {
		t.Errorf("expected one database addr, got %v", cfg.Database.Addrs)
	}
}
