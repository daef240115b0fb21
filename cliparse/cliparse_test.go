package cliparse

import "testing"

func TestParseFlags(t *testing.T) {
	// Isolate from the host environment
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("DATABASE_URL", "")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "defaults to sqlite with local file",
			args: []string{},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 3321 {
					t.Errorf("Port = %d, want 3321", cfg.Port)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
				}
				if cfg.DatabaseURL != "toolvote.db" {
					t.Errorf("DatabaseURL = %q, want toolvote.db", cfg.DatabaseURL)
				}
			},
		},
		{
			name: "explicit flags",
			args: []string{"-p", "8080", "-t", "postgres", "-d", "postgres://localhost/toolvote"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 8080 {
					t.Errorf("Port = %d, want 8080", cfg.Port)
				}
				if cfg.DriverName() != "postgres" {
					t.Errorf("DriverName = %q, want postgres", cfg.DriverName())
				}
			},
		},
		{
			name:    "postgres without URL fails",
			args:    []string{"-t", "postgres"},
			wantErr: true,
		},
		{
			name:    "unknown database type fails",
			args:    []string{"-t", "mysql"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags returned error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestParseFlags_EnvFallback(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("DATABASE_URL", "file:env.db")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags returned error: %v", err)
	}
	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Port)
	}
	if cfg.DatabaseURL != "file:env.db" {
		t.Errorf("DatabaseURL = %q, want file:env.db", cfg.DatabaseURL)
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if _, err := ParseFlags(nil); err == nil {
		t.Fatal("expected error for invalid PORT, got nil")
	}
}
