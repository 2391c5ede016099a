package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.Screen.Width != 900 || cfg.Screen.Height != 600 {
		t.Errorf("expected screen 900x600, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Paddle.Width != 12 || cfg.Paddle.Height != 100 || cfg.Paddle.Speed != 6 {
		t.Errorf("unexpected paddle config: %+v", cfg.Paddle)
	}
	if cfg.Ball.Size != 16 || cfg.Ball.Speed != 5 {
		t.Errorf("unexpected ball config: %+v", cfg.Ball)
	}
	if cfg.Rules.WinningScore != 7 {
		t.Errorf("expected winning score 7, got %d", cfg.Rules.WinningScore)
	}
	if cfg.Screen.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Screen.FPS)
	}
	if cfg.AI.Speed >= cfg.Paddle.Speed {
		t.Errorf("ai speed %d must be below paddle speed %d", cfg.AI.Speed, cfg.Paddle.Speed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestGameConfigDerivedValues(t *testing.T) {
	cfg := DefaultGameConfig()

	if got := cfg.LeftPaddleX(); got != 30 {
		t.Errorf("LeftPaddleX = %d, want 30", got)
	}
	if got := cfg.RightPaddleX(); got != 858 {
		t.Errorf("RightPaddleX = %d, want 858", got)
	}
	if got := cfg.PaddleStartY(); got != 250 {
		t.Errorf("PaddleStartY = %d, want 250", got)
	}
	if got := cfg.ToggleDebounce(); got != 160*time.Millisecond {
		t.Errorf("ToggleDebounce = %v, want 160ms", got)
	}
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration = %v, want %v", got, time.Second/60)
	}
}

func TestParseGameConfig(t *testing.T) {
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
rules:
  winningScore: 3
keys:
  quit: [Q, Escape]
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Rules.WinningScore != 3 {
					t.Errorf("expected winning score 3, got %d", cfg.Rules.WinningScore)
				}
				if cfg.Screen.Width != 900 {
					t.Errorf("expected default width 900, got %d", cfg.Screen.Width)
				}
				if len(cfg.Keys.Quit) != 2 || cfg.Keys.Quit[0] != "Q" {
					t.Errorf("expected quit keys [Q Escape], got %v", cfg.Keys.Quit)
				}
				if len(cfg.Keys.Confirm) != 2 {
					t.Errorf("expected default confirm keys, got %v", cfg.Keys.Confirm)
				}
			},
		},
		{
			name:        "ai faster than player",
			yamlContent: "ai:\n  speed: 6\n",
			wantErr:     true,
			errContains: "ai speed",
		},
		{
			name:        "zero paddle height",
			yamlContent: "paddle:\n  height: 0\n",
			wantErr:     true,
			errContains: "paddle size",
		},
		{
			name:        "ball larger than screen",
			yamlContent: "ball:\n  size: 700\n",
			wantErr:     true,
			errContains: "ball size",
		},
		{
			name:        "winning score zero",
			yamlContent: "rules:\n  winningScore: 0\n",
			wantErr:     true,
			errContains: "winning score",
		},
		{
			name:        "inverted serve range",
			yamlContent: "ball:\n  serveMin: 0.9\n  serveMax: 0.5\n",
			wantErr:     true,
			errContains: "serve range",
		},
		{
			name:        "negative debounce",
			yamlContent: "rules:\n  toggleDebounceMs: -1\n",
			wantErr:     true,
			errContains: "debounce",
		},
		{
			name:        "empty key binding",
			yamlContent: "keys:\n  toggleAI: []\n",
			wantErr:     true,
			errContains: "toggleAI",
		},
		{
			name:        "malformed yaml",
			yamlContent: "screen: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
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
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")
	if err := os.WriteFile(path, []byte("screen:\n  width: 640\n  height: 480\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Screen.Width != 640 || cfg.Screen.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// TestShippedConfigMatchesDefaults data/pong.yaml 与默认值一致
func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig("../../data/pong.yaml")
	if err != nil {
		t.Skipf("shipped config not found: %v", err)
	}

	def := DefaultGameConfig()
	if cfg.Screen != def.Screen || cfg.Paddle != def.Paddle || cfg.Ball != def.Ball ||
		cfg.AI != def.AI || cfg.Rules != def.Rules {
		t.Errorf("shipped config differs from defaults:\n got %+v\nwant %+v", cfg, def)
	}
}
