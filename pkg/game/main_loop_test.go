package game

import "testing"

type recordingPhases struct {
	begins  []float64
	updates int
	draws   []float64
	aborts  []bool
}

func (r *recordingPhases) Begin(time, delta float64) { r.begins = append(r.begins, delta) }
func (r *recordingPhases) Update(delta float64) { r.updates++ }
func (r *recordingPhases) Draw(interp float64) { r.draws = append(r.draws, interp) }
func (r *recordingPhases) End(fps float64, abort bool) {
	r.aborts = append(r.aborts, abort)
}

func TestMainLoopFixedSteps(t *testing.T) {
	phases := &recordingPhases{}
	loop := NewMainLoop(phases, 10, 240)

	loop.Tick(0)
	if phases.updates != 0 {
		t.Fatalf("first tick should not update, got %d", phases.updates)
	}

	loop.Tick(25)
	if phases.updates != 2 {
		t.Errorf("Expected 2 updates for 25ms at 10ms step, got %d", phases.updates)
	}
	if got := phases.draws[len(phases.draws)-1]; got != 0.5 {
		t.Errorf("Expected interpolation 0.5, got %v", got)
	}

	loop.Tick(30)
	if phases.updates != 3 {
		t.Errorf("leftover time should carry over, got %d updates", phases.updates)
	}
}

func TestMainLoopAbortsOnBacklog(t *testing.T) {
	phases := &recordingPhases{}
	loop := NewMainLoop(phases, 10, 5)

	loop.Tick(0)
	loop.Tick(1000)

	if phases.updates != 5 {
		t.Errorf("Expected updates capped at 5, got %d", phases.updates)
	}
	if !phases.aborts[len(phases.aborts)-1] {
		t.Error("Expected abort flag")
	}

	// 积压被丢弃，下一 tick 正常
	loop.Tick(1010)
	if phases.updates != 6 || phases.aborts[len(phases.aborts)-1] {
		t.Errorf("Expected recovery after abort, updates=%d", phases.updates)
	}
}

func TestMainLoopPauseBank(t *testing.T) {
	phases := &recordingPhases{}
	loop := NewMainLoop(phases, 10, 240)

	loop.Tick(0)
	loop.Tick(100)
	before := phases.updates

	// 失去可见性 5 秒
	loop.AddPausedTime(5000)
	loop.Tick(5110)

	if got := phases.updates - before; got != 1 {
		t.Errorf("paused time should not be replayed, got %d updates", got)
	}
	if got := phases.begins[len(phases.begins)-1]; got != 10 {
		t.Errorf("Expected begin delta 10, got %v", got)
	}
}
