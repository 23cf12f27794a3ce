package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/notagame/pkg/components"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
selectedEnemy: three
dropCountdownRange:
  min: 1000
  max: 5000
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.SelectedEnemyKind() != components.EnemyKindThree {
					t.Errorf("expected kind three, got %v", cfg.SelectedEnemyKind())
				}
				if cfg.DropCountdownRange.Min != 1000 || cfg.DropCountdownRange.Max != 5000 {
					t.Errorf("unexpected range %+v", cfg.DropCountdownRange)
				}
				if cfg.CellDuration != 50 {
					t.Errorf("expected default cellDuration 50, got %v", cfg.CellDuration)
				}
				if cfg.QueryTimeoutPolls != 180 {
					t.Errorf("expected default queryTimeoutPolls 180, got %d", cfg.QueryTimeoutPolls)
				}
			},
		},
		{
			name:        "unknown enemy",
			yamlContent: "selectedEnemy: five\n",
			wantErr:     true,
			errContains: "selectedEnemy",
		},
		{
			name: "inverted drop range",
			yamlContent: `
dropCountdownRange:
  min: 200
  max: 100
`,
			wantErr:     true,
			errContains: "dropCountdownRange",
		},
		{
			name:        "hide floor above ground",
			yamlContent: "hideFloor: 0.2\n",
			wantErr:     true,
			errContains: "hideFloor",
		},
		{
			name:        "malformed yaml",
			yamlContent: "cellDuration: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.QueryTimeoutPolls = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBundledGameConfig(t *testing.T) {
	cfg, err := LoadGameConfig("../../data/game.yaml")
	if err != nil {
		t.Fatalf("bundled config should load: %v", err)
	}
	if cfg.SelectedEnemyKind() != components.EnemyKindTwo {
		t.Errorf("expected kind two selected, got %v", cfg.SelectedEnemyKind())
	}
}
