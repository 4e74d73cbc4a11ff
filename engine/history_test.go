package engine

import (
	"testing"
	"time"
)

func TestSelectionHistoryWindow(t *testing.T) {
	h := NewSelectionHistory(60 * time.Second)

	h.Record(ActionCoffee, testEpoch)
	h.Record(ActionCoffee, testEpoch.Add(30*time.Second))
	if h.Exceeds(ActionCoffee, 2) {
		t.Fatal("two selections must not exceed limit 2")
	}

	if n := h.Record(ActionCoffee, testEpoch.Add(60*time.Second)); n != 3 {
		t.Fatalf("Record returned %d, want 3 (60s boundary inclusive)", n)
	}
	if !h.Exceeds(ActionCoffee, 2) {
		t.Error("three selections inside the window must exceed limit 2")
	}

	if n := h.Record(ActionCoffee, testEpoch.Add(91*time.Second)); n != 2 {
		t.Errorf("Record after pruning returned %d, want 2", n)
	}
}

func TestSelectionHistoryKeysAreIndependent(t *testing.T) {
	h := NewSelectionHistory(60 * time.Second)

	h.Record(ActionCoffee, testEpoch)
	h.Record(ActionTofu, testEpoch)
	h.Record(ActionTofu, testEpoch)

	if h.Count(ActionCoffee) != 1 || h.Count(ActionTofu) != 2 || h.Count(ActionHug) != 0 {
		t.Errorf("counts = %d/%d/%d, want 1/2/0",
			h.Count(ActionCoffee), h.Count(ActionTofu), h.Count(ActionHug))
	}
}

func TestCooldowns(t *testing.T) {
	c := NewCooldowns(map[ActionID]time.Duration{ActionGoFestival: 120 * time.Second})

	if !c.Ready(ActionGoFestival, testEpoch) {
		t.Fatal("never used action must be ready")
	}
	if !c.Ready(ActionReadBook, testEpoch) {
		t.Fatal("unrestricted action must be ready")
	}

	c.MarkUsed(ActionGoFestival, testEpoch)
	c.MarkUsed(ActionReadBook, testEpoch)

	if c.Ready(ActionGoFestival, testEpoch.Add(119*time.Second)) {
		t.Error("festival ready inside cooldown")
	}
	if got := c.Remaining(ActionGoFestival, testEpoch.Add(100*time.Second)); got != 20*time.Second {
		t.Errorf("Remaining() = %v, want 20s", got)
	}
	if !c.Ready(ActionGoFestival, testEpoch.Add(120*time.Second)) {
		t.Error("festival not ready after cooldown")
	}
	if _, ok := c.LastUsed(ActionReadBook); ok {
		t.Error("unrestricted action must not track last use")
	}
}

func TestActionKeys(t *testing.T) {
	for id := ActionID(0); id < actionCount; id++ {
		if !id.Valid() || id.String() == "" {
			t.Errorf("action %d has no key", int(id))
		}
	}
	if ActionCoffee.String() != "food_Coffee" {
		t.Errorf("ActionCoffee key = %q", ActionCoffee.String())
	}
	if ActionID(-1).Valid() {
		t.Error("negative action must be invalid")
	}
}
