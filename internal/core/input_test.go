package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // nil map must be usable

	if f.Has(ActionLeft) {
		t.Error("empty frame should not have Left")
	}

	f.Set(ActionLeft)
	f.Set(ActionSwap)
	if !f.Has(ActionLeft) || !f.Has(ActionSwap) {
		t.Error("frame should have Left and Swap after Set")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not have Right")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionSwap) {
		t.Error("frame should be empty after Clear")
	}
}

func TestActionString(t *testing.T) {
	if ActionSwap.String() != "Swap" {
		t.Errorf("ActionSwap.String() = %q", ActionSwap.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

func TestTickSeconds(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds() = %v, expected 1/60", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds() with zero rate = %v, expected fallback 1/60", got)
	}

	cfg.TickRate = 20
	if got := cfg.TickSeconds(); got != 0.05 {
		t.Errorf("TickSeconds() at 20fps = %v, expected 0.05", got)
	}
}
