package systems

import (
	"math"
	"strings"
	"testing"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/game"
)

func TestWorldToScreen(t *testing.T) {
	x, y := WorldToScreen(0, 0, testViewportWidth, testViewportHeight)
	if x != 640 || y != 360 {
		t.Errorf("Expected world origin at screen centre, got (%v, %v)", x, y)
	}
	// 地面在屏幕底部之上 footer 像素处
	gx, gy := LayoutToWorld(components.LayoutPosition{}, testViewportWidth, testViewportHeight, testFooterHeight)
	x, y = WorldToScreen(gx, gy, testViewportWidth, testViewportHeight)
	if x != 0 || y != 720-64 {
		t.Errorf("Expected ground left edge at (0, 656), got (%v, %v)", x, y)
	}
}

func TestHidingTint(t *testing.T) {
	tint := HidingTint(0)
	if tint[3] != 0.5 {
		t.Errorf("Expected half alpha, got %v", tint[3])
	}
	for i, c := range tint {
		if c < 0 || c > 1 {
			t.Errorf("Expected channel %d within [0,1], got %v", i, c)
		}
	}
	// 一个完整周期后颜色回到起点
	again := HidingTint(1)
	for i := range tint {
		if math.Abs(float64(tint[i]-again[i])) > 1e-5 {
			t.Errorf("Expected tint to repeat after a full cycle, channel %d: %v vs %v", i, tint[i], again[i])
		}
	}
}

func TestOverlayLines(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(gs *game.GameState)
		want    string
		notWant string
	}{
		{
			name:  "welcome",
			setup: func(gs *game.GameState) {},
			want:  "Press Enter to start",
		},
		{
			name: "help",
			setup: func(gs *game.GameState) {
				gs.Pause.ToggleHelp()
				gs.SyncUIPhase()
			},
			want: "1-4: switch character",
		},
		{
			name: "running shows selection and destroyed kinds",
			setup: func(gs *game.GameState) {
				gs.Pause.Start()
				gs.SyncUIPhase()
				gs.SetSelectedKind(components.EnemyKindTwo)
				gs.RecordDestroyed(components.EnemyKindThree)
				gs.RecordDestroyed(components.EnemyKindOne)
			},
			want:    "Destroyed: one, three",
			notWant: "Paused",
		},
		{
			name: "manual pause",
			setup: func(gs *game.GameState) {
				gs.Pause.Start()
				gs.Pause.TogglePause()
				gs.SyncUIPhase()
			},
			want: "Paused (P to resume)",
		},
		{
			name: "game over",
			setup: func(gs *game.GameState) {
				gs.Pause.SetGameOver()
				gs.SyncUIPhase()
			},
			want:    "Game over!",
			notWant: "FPS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := game.NewGameState(game.PauseWelcome)
			tt.setup(gs)
			text := strings.Join(OverlayLines(gs), "\n")
			if !strings.Contains(text, tt.want) {
				t.Errorf("Expected overlay to contain %q, got %q", tt.want, text)
			}
			if tt.notWant != "" && strings.Contains(text, tt.notWant) {
				t.Errorf("Expected overlay not to contain %q, got %q", tt.notWant, text)
			}
		})
	}
}

func TestDestroyedKindNames_Empty(t *testing.T) {
	gs := game.NewGameState(game.PauseRunning)
	if names := DestroyedKindNames(gs); len(names) != 0 {
		t.Errorf("Expected no destroyed kinds, got %v", names)
	}
}
