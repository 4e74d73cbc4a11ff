package modes

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-pet/constants"
	"github.com/lixenwraith/vi-pet/engine"
)

func TestDebouncer(t *testing.T) {
	tests := []struct {
		name    string
		offsets []time.Duration // press times relative to the epoch
		want    []bool
	}{
		{"first press", []time.Duration{0}, []bool{true}},
		{"too soon", []time.Duration{0, 100 * time.Millisecond}, []bool{true, false}},
		{"at interval", []time.Duration{0, 200 * time.Millisecond}, []bool{true, true}},
		{"rejected press does not refresh", []time.Duration{0, 150 * time.Millisecond, 200 * time.Millisecond}, []bool{true, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := engine.NewMockTimeProvider(testEpoch)
			d := NewDebouncer(clock, constants.DebounceInterval)
			for i, off := range tt.offsets {
				clock.SetTime(testEpoch.Add(off))
				if got := d.Accept(ButtonA); got != tt.want[i] {
					t.Errorf("press %d at %s: Accept() = %v, want %v", i, off, got, tt.want[i])
				}
			}
		})
	}
}

func TestDebouncerPerButton(t *testing.T) {
	clock := engine.NewMockTimeProvider(testEpoch)
	d := NewDebouncer(clock, constants.DebounceInterval)

	if !d.Accept(ButtonA) || !d.Accept(ButtonB) {
		t.Fatal("different buttons must not share debounce state")
	}
	if d.Accept(ButtonA) {
		t.Error("repeat of A at the same instant accepted")
	}
	if d.Accept(Button(9)) {
		t.Error("unknown button accepted")
	}
}

func TestButtonSet(t *testing.T) {
	s := NewButtonSet(ButtonA, ButtonX)
	if !s.Has(ButtonA) || !s.Has(ButtonX) || s.Has(ButtonB) || s.Has(ButtonY) {
		t.Errorf("unexpected membership for %08b", s)
	}
	if ButtonSet(0).Has(Button(-1)) || !ButtonSet(0).Empty() {
		t.Error("empty set misbehaves")
	}
}

func TestActionEffectTable(t *testing.T) {
	for id := engine.ActionID(0); int(id) < engine.ActionCount; id++ {
		e, ok := Effect(id)
		if !ok || e.Label == "" || len(e.Deltas) == 0 {
			t.Errorf("action %s has no effect entry", id)
		}
	}

	coffee := ActionEffects[engine.ActionCoffee].Increases()
	want := []engine.Stat{engine.StatHunger, engine.StatHappiness, engine.StatSleepiness}
	if len(coffee) != len(want) {
		t.Fatalf("coffee increases = %v, want %v", coffee, want)
	}
	for i := range want {
		if coffee[i] != want[i] {
			t.Errorf("coffee increases[%d] = %s, want %s", i, coffee[i], want[i])
		}
	}

	if _, ok := Effect(engine.ActionID(99)); ok {
		t.Error("unknown action has an effect")
	}

	solo := ActionEffects[engine.ActionPlayDeftones].Animations
	if len(solo) != len(engine.GuitarSet) {
		t.Fatalf("deftones steps = %d, want %d", len(solo), len(engine.GuitarSet))
	}
	for i, step := range solo {
		if step.Animation != engine.GuitarSet[i] || step.Repeats != 1 {
			t.Errorf("deftones step %d = %+v, want %s once", i, step, engine.GuitarSet[i])
		}
	}

	hug := ActionEffects[engine.ActionHug].Animations
	wantHug := []engine.AnimationID{engine.AnimLove1, engine.AnimLove2, engine.AnimLove1, engine.AnimLove2}
	if len(hug) != len(wantHug) {
		t.Fatalf("hug steps = %d, want %d", len(hug), len(wantHug))
	}
	for i, step := range hug {
		if step.Animation != wantHug[i] || step.Repeats != 1 {
			t.Errorf("hug step %d = %+v", i, step)
		}
	}
}
