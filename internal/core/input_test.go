package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero InputFrame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionPause)
	if !f.Has(ActionJump) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRestart) {
		t.Error("unset action should not be reported")
	}

	f.Set(ActionNone)
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be reported")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionPause:   "Pause",
		ActionRestart: "Restart",
		ActionBack:    "Back",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
