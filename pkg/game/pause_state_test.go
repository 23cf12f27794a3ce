package game

import "testing"

func TestPauseToggle(t *testing.T) {
	p := NewPauseState(PauseRunning)
	if !p.TogglePause() || p.Mode != PauseManuallyPaused {
		t.Fatalf("Expected manually paused, got %v", p.Mode)
	}
	if !p.TogglePause() || p.Mode != PauseRunning {
		t.Fatalf("Expected running, got %v", p.Mode)
	}

	p.Mode = PauseWelcome
	if p.TogglePause() {
		t.Error("pause key should be ignored on the welcome screen")
	}
}

func TestLostVisibilityNestsOnce(t *testing.T) {
	p := NewPauseState(PauseManuallyPaused)

	if !p.LoseVisibility(100) {
		t.Fatal("first visibility loss should apply")
	}
	if p.LoseVisibility(200) {
		t.Error("second visibility loss should be ignored")
	}
	if p.Previous != PauseManuallyPaused || p.LostAt != 100 {
		t.Errorf("previous state clobbered: %+v", p)
	}

	lost, ok := p.RestoreVisibility(350)
	if !ok || lost != 250 {
		t.Errorf("Expected 250ms lost, got %v, %v", lost, ok)
	}
	if p.Mode != PauseManuallyPaused {
		t.Errorf("Expected previous mode restored, got %v", p.Mode)
	}

	if _, ok := p.RestoreVisibility(400); ok {
		t.Error("restore without loss should be a no-op")
	}
}

func TestWelcomeHelpStart(t *testing.T) {
	p := NewPauseState(PauseWelcome)
	p.ToggleHelp()
	if p.Mode != PauseHelp {
		t.Fatalf("Expected help, got %v", p.Mode)
	}
	if !p.Start() || !p.IsRunning() {
		t.Fatalf("Expected running after start, got %v", p.Mode)
	}
	if p.Start() {
		t.Error("start while running should be a no-op")
	}
}

func TestSyncUIPhase(t *testing.T) {
	gs := NewGameState(PauseWelcome)
	if gs.UI.Phase != UIPhaseWelcome {
		t.Fatalf("Expected welcome UI, got %v", gs.UI.Phase)
	}
	gs.Pause.Start()
	gs.SyncUIPhase()
	if gs.UI.Phase != UIPhaseFooter {
		t.Errorf("Expected footer UI, got %v", gs.UI.Phase)
	}
	gs.Pause.LoseVisibility(0)
	gs.SyncUIPhase()
	if gs.UI.Phase != UIPhaseFooter {
		t.Errorf("visibility loss should keep the UI, got %v", gs.UI.Phase)
	}
}
