package modes

import "github.com/lixenwraith/vi-pet/engine"

// AnimationStep is one entry of an action's animation sequence
type AnimationStep struct {
	Animation engine.AnimationID
	Repeats   int
}

// ActionEffect describes what confirming an action does to the pet
type ActionEffect struct {
	Label      string
	Deltas     []engine.StatDelta
	Animations []AnimationStep
}

// Increases returns the stats the action raises
func (e ActionEffect) Increases() []engine.Stat {
	var out []engine.Stat
	for _, d := range e.Deltas {
		if d.Delta > 0 {
			out = append(out, d.Stat)
		}
	}
	return out
}

// playOnce builds a sequence playing each animation one time
func playOnce(ids ...engine.AnimationID) []AnimationStep {
	steps := make([]AnimationStep, len(ids))
	for i, id := range ids {
		steps[i] = AnimationStep{Animation: id, Repeats: 1}
	}
	return steps
}

// ActionEffects is the effect table for every confirmable action
var ActionEffects = [engine.ActionCount]ActionEffect{
	engine.ActionCoffee: {
		Label: "Coffee",
		Deltas: []engine.StatDelta{
			{Stat: engine.StatHunger, Delta: 5},
			{Stat: engine.StatHappiness, Delta: 10},
			{Stat: engine.StatSleepiness, Delta: 5},
			{Stat: engine.StatHealth, Delta: -2},
		},
		Animations: []AnimationStep{{engine.AnimHappy2, 3}},
	},
	engine.ActionTofu: {
		Label: "Tofu",
		Deltas: []engine.StatDelta{
			{Stat: engine.StatHunger, Delta: 30},
			{Stat: engine.StatHappiness, Delta: 5},
			{Stat: engine.StatHealth, Delta: 5},
		},
		Animations: []AnimationStep{{engine.AnimEat, 1}},
	},
	engine.ActionMoscowMule: {
		Label: "Moscow Mule",
		Deltas: []engine.StatDelta{
			{Stat: engine.StatHunger, Delta: 10},
			{Stat: engine.StatHappiness, Delta: 20},
			{Stat: engine.StatHealth, Delta: -10},
		},
		Animations: []AnimationStep{{engine.AnimDrunk, 2}},
	},
	engine.ActionPlayDeftones: {
		Label:      "Play Deftones",
		Deltas:     []engine.StatDelta{{Stat: engine.StatHappiness, Delta: 20}},
		Animations: playOnce(engine.GuitarSet...),
	},
	engine.ActionReadBook: {
		Label:  "Read Book",
		Deltas: []engine.StatDelta{{Stat: engine.StatHappiness, Delta: 10}},
	},
	engine.ActionGoFestival: {
		Label:  "Go Festival",
		Deltas: []engine.StatDelta{{Stat: engine.StatHappiness, Delta: 50}},
	},
	engine.ActionHug: {
		Label: "A hug",
		Deltas: []engine.StatDelta{
			{Stat: engine.StatHealth, Delta: 10},
			{Stat: engine.StatHappiness, Delta: 15},
		},
		Animations: playOnce(engine.AnimLove1, engine.AnimLove2, engine.AnimLove1, engine.AnimLove2),
	},
	engine.ActionPainReliever: {
		Label:      "Ibuprofeno",
		Deltas:     []engine.StatDelta{{Stat: engine.StatHealth, Delta: 30}},
		Animations: []AnimationStep{{engine.AnimTalk, 2}},
	},
}

// Effect returns the table entry for id
func Effect(id engine.ActionID) (ActionEffect, bool) {
	if !id.Valid() {
		return ActionEffect{}, false
	}
	return ActionEffects[id], true
}
