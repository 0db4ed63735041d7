package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid jsonfile backend config",
			config: Config{
				DataBackend:  "jsonfile",
				DataFilePath: filepath.Join(t.TempDir(), "budget_data.json"),
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: filepath.Join(t.TempDir(), "spendbook.db"),
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend: "memory",
			},
			wantErr: false,
		},
		{
			name: "invalid backend",
			config: Config{
				DataBackend: "cloud",
			},
			wantErr: true,
		},
		{
			name: "jsonfile backend without path",
			config: Config{
				DataBackend: "jsonfile",
			},
			wantErr: true,
		},
		{
			name: "sqlite backend without path",
			config: Config{
				DataBackend: "sqlite",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DataBackend != "jsonfile" {
		t.Fatalf("expected jsonfile default backend, got %s", cfg.DataBackend)
	}
	if cfg.DataFilePath != "./data/budget_data.json" {
		t.Fatalf("unexpected default data file: %s", cfg.DataFilePath)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected default log level: %s", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", "/tmp/other.db")

	cfg := Load()
	if cfg.DataBackend != "sqlite" || cfg.SQLiteDBPath != "/tmp/other.db" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestExportConfigured(t *testing.T) {
	cases := []struct {
		config Config
		want   bool
	}{
		{Config{}, false},
		{Config{GoogleSpreadsheetID: "sheet-id"}, false},
		{Config{GoogleSpreadsheetID: "sheet-id", GoogleServiceAccountFile: "sa.json"}, true},
		{Config{GoogleSpreadsheetID: "sheet-id", GoogleServiceAccountJSON: "{}"}, true},
	}
	for i, tc := range cases {
		if got := tc.config.ExportConfigured(); got != tc.want {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, got)
		}
	}
}
