package modes

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-pet/audio"
	"github.com/lixenwraith/vi-pet/constants"
	"github.com/lixenwraith/vi-pet/engine"
)

// Mode is the active menu screen
type Mode int

const (
	ModeMain Mode = iota
	ModeFood
	ModeEntertainment
	ModeHealth
	ModeSleep
	ModeStats
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeMain:
		return "main"
	case ModeFood:
		return "food"
	case ModeEntertainment:
		return "entertainment"
	case ModeHealth:
		return "health"
	case ModeSleep:
		return "sleep"
	case ModeStats:
		return "stats"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MainItem is an icon of the main screen, in cursor order
type MainItem int

const (
	MainFood MainItem = iota
	MainSleep
	MainClear
	MainStats
	MainEntertainment
	MainHealth
	mainItemCount
)

var mainIcons = [mainItemCount]string{
	MainFood:          "food",
	MainSleep:         "sleep",
	MainClear:         "clear",
	MainStats:         "meter",
	MainEntertainment: "game",
	MainHealth:        "health",
}

// Icon returns the asset name of the item, with the selected variant when highlighted
func (i MainItem) Icon(selected bool) string {
	if i < 0 || i >= mainItemCount {
		return ""
	}
	if selected {
		return mainIcons[i] + "_s.png"
	}
	return mainIcons[i] + ".png"
}

// IconNames lists every icon asset the main screen can draw
func IconNames() []string {
	names := make([]string, 0, 2*int(mainItemCount))
	for i := MainItem(0); i < mainItemCount; i++ {
		names = append(names, i.Icon(false), i.Icon(true))
	}
	return names
}

var menuActions = map[Mode][]engine.ActionID{
	ModeFood:          {engine.ActionCoffee, engine.ActionTofu, engine.ActionMoscowMule},
	ModeEntertainment: {engine.ActionPlayDeftones, engine.ActionReadBook, engine.ActionGoFestival},
	ModeHealth:        {engine.ActionHug, engine.ActionPainReliever},
}

var menuTitles = map[Mode]string{
	ModeFood:          constants.TitleFood,
	ModeEntertainment: constants.TitleEntertainment,
	ModeHealth:        constants.TitleHealth,
	ModeSleep:         constants.TitleSleep,
}

// Sleep menu labels
const (
	SleepOptionNap   = "A nap"
	SleepOptionSleep = "Go to sleep"
	SleepOptionWake  = "Wake up"
)

// Outcome classifies what a confirm did
type Outcome int

const (
	OutcomeNone        Outcome = iota
	OutcomeApplied             // Deltas applied, animations queued
	OutcomeRejected            // An increased stat was already over the limit
	OutcomeAnnoyed             // Applied, then the annoyed reaction fired
	OutcomeCoolingDown         // Cooldown gate closed; nothing happened
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeRejected:
		return "rejected"
	case OutcomeAnnoyed:
		return "annoyed"
	case OutcomeCoolingDown:
		return "cooling down"
	default:
		return "none"
	}
}

// ActionResult reports the last confirmed action
type ActionResult struct {
	Action  engine.ActionID
	Outcome Outcome
	Count   int // Selections of the action inside the trailing window
}

// MenuStateMachine routes debounced buttons through the menu tree
type MenuStateMachine struct {
	ctx      *engine.PetContext
	debounce *Debouncer
	mode     Mode
	cursors  [modeCount]int
	last     ActionResult
}

// NewMenuStateMachine starts on the main screen with every cursor at 0
func NewMenuStateMachine(ctx *engine.PetContext, debounce *Debouncer) *MenuStateMachine {
	if debounce == nil {
		debounce = NewDebouncer(ctx.Clock, constants.DebounceInterval)
	}
	return &MenuStateMachine{
		ctx:      ctx,
		debounce: debounce,
	}
}

// Mode returns the active screen
func (m *MenuStateMachine) Mode() Mode {
	return m.mode
}

// Cursor returns the remembered cursor of mode
func (m *MenuStateMachine) Cursor(mode Mode) int {
	if mode < 0 || mode >= modeCount {
		return 0
	}
	return m.cursors[mode]
}

// LastResult returns the outcome of the most recent action confirm
func (m *MenuStateMachine) LastResult() ActionResult {
	return m.last
}

// Title returns the heading drawn above a submenu's options
func (m *MenuStateMachine) Title(mode Mode) string {
	return menuTitles[mode]
}

// Options returns the labels of mode's selectable entries
func (m *MenuStateMachine) Options(mode Mode) []string {
	switch mode {
	case ModeFood, ModeEntertainment, ModeHealth:
		ids := menuActions[mode]
		labels := make([]string, len(ids))
		for i, id := range ids {
			labels[i] = ActionEffects[id].Label
		}
		return labels
	case ModeSleep:
		if m.ctx.Sleep.IsSleeping() {
			return []string{SleepOptionWake}
		}
		return []string{SleepOptionNap, SleepOptionSleep}
	default:
		return nil
	}
}

// OptionAvailable is false for an action still inside its cooldown
func (m *MenuStateMachine) OptionAvailable(mode Mode, index int) bool {
	ids := menuActions[mode]
	if index < 0 || index >= len(ids) {
		return true
	}
	return m.ctx.Cooldowns.Ready(ids[index], m.ctx.Clock.Now())
}

// HandledButtons returns the buttons mode consumes
// Unhandled buttons are never sampled and do not refresh debounce state
func (m *MenuStateMachine) HandledButtons(mode Mode) ButtonSet {
	switch mode {
	case ModeMain:
		return NewButtonSet(ButtonA, ButtonB, ButtonY)
	case ModeFood, ModeEntertainment, ModeHealth:
		return NewButtonSet(ButtonA, ButtonB, ButtonY, ButtonX)
	case ModeSleep:
		if m.ctx.Sleep.IsSleeping() {
			return NewButtonSet(ButtonY, ButtonX)
		}
		return NewButtonSet(ButtonA, ButtonB, ButtonY, ButtonX)
	case ModeStats:
		return NewButtonSet(ButtonX)
	default:
		return 0
	}
}

// Navigate processes one tick of button edges
func (m *MenuStateMachine) Navigate(pressed ButtonSet) {
	if pressed.Empty() {
		return
	}

	mode := m.mode
	handled := m.HandledButtons(mode)
	for _, b := range ButtonOrder {
		if !pressed.Has(b) || !handled.Has(b) {
			continue
		}
		if !m.debounce.Accept(b) {
			continue
		}
		m.press(mode, b)
	}
}

func (m *MenuStateMachine) press(mode Mode, b Button) {
	switch mode {
	case ModeMain:
		m.pressMain(b)
	case ModeFood, ModeEntertainment, ModeHealth:
		m.pressAction(mode, b)
	case ModeSleep:
		m.pressSleep(b)
	case ModeStats:
		if b == ButtonX {
			m.setMode(ModeMain)
		}
	}
}

func (m *MenuStateMachine) pressMain(b Button) {
	switch b {
	case ButtonA, ButtonB:
		m.moveCursor(ModeMain, int(mainItemCount), b)
	case ButtonY:
		switch MainItem(m.cursors[ModeMain]) {
		case MainFood:
			m.setMode(ModeFood)
		case MainSleep:
			m.setMode(ModeSleep)
		case MainClear:
			m.ctx.Ambient.ClearedByUser()
			m.ctx.PlaySound(audio.SoundConfirm)
		case MainStats:
			m.setMode(ModeStats)
		case MainEntertainment:
			m.setMode(ModeEntertainment)
		case MainHealth:
			m.setMode(ModeHealth)
		}
	}
}

func (m *MenuStateMachine) pressAction(mode Mode, b Button) {
	ids := menuActions[mode]
	switch b {
	case ButtonA, ButtonB:
		m.moveCursor(mode, len(ids), b)
	case ButtonY:
		id := ids[m.cursors[mode]]
		m.last = m.confirm(id)
		if m.last.Outcome != OutcomeCoolingDown {
			m.setMode(ModeMain)
		}
	case ButtonX:
		m.setMode(ModeMain)
	}
}

func (m *MenuStateMachine) pressSleep(b Button) {
	switch b {
	case ButtonA, ButtonB:
		m.moveCursor(ModeSleep, len(m.Options(ModeSleep)), b)
	case ButtonY:
		switch {
		case m.ctx.Sleep.IsSleeping():
			m.ctx.Sleep.WakeUp()
			m.ctx.PlaySound(audio.SoundWake)
		case m.cursors[ModeSleep] == 0:
			m.ctx.Sleep.StartSleep(true)
			m.ctx.PlaySound(audio.SoundConfirm)
		default:
			m.ctx.Sleep.StartSleep(false)
			m.ctx.PlaySound(audio.SoundConfirm)
		}
		m.setMode(ModeMain)
	case ButtonX:
		m.setMode(ModeMain)
	}
}

// confirm runs the action pipeline for id
func (m *MenuStateMachine) confirm(id engine.ActionID) ActionResult {
	now := m.ctx.Clock.Now()
	effect, ok := Effect(id)
	if !ok {
		log.Printf("confirm: unknown action %s", id)
		return ActionResult{Action: id}
	}

	if !m.ctx.Cooldowns.Ready(id, now) {
		log.Printf("action %s on cooldown, %s remaining", id, m.ctx.Cooldowns.Remaining(id, now))
		return ActionResult{Action: id, Outcome: OutcomeCoolingDown}
	}
	m.ctx.Cooldowns.MarkUsed(id, now)

	count := m.ctx.History.Record(id, now)
	result := ActionResult{Action: id, Count: count}

	if m.ctx.Stats.AnyOver(constants.StatOverLimit, effect.Increases()...) {
		log.Printf("action %s rejected, stat over limit", id)
		m.annoyed()
		result.Outcome = OutcomeRejected
		return result
	}

	m.ctx.Stats.Apply(effect.Deltas)
	for _, step := range effect.Animations {
		m.ctx.Animation.Enqueue(step.Animation, step.Repeats)
	}

	if m.ctx.Stats.AnyOverAll(constants.StatOverLimit) || m.ctx.History.Exceeds(id, constants.SelectionSpamLimit) {
		log.Printf("action %s applied, pet annoyed (count %d)", id, count)
		m.annoyed()
		result.Outcome = OutcomeAnnoyed
		return result
	}

	m.ctx.PlaySound(audio.SoundConfirm)
	result.Outcome = OutcomeApplied
	return result
}

func (m *MenuStateMachine) annoyed() {
	m.ctx.Animation.PlayImmediately(engine.AnimAnnoyed, constants.AnnoyedRepeats)
	m.ctx.PlaySound(audio.SoundAnnoyed)
}

func (m *MenuStateMachine) moveCursor(mode Mode, n int, b Button) {
	if n <= 0 {
		return
	}
	c := m.cursors[mode]
	if b == ButtonA {
		c = (c - 1 + n) % n
	} else {
		c = (c + 1) % n
	}
	m.cursors[mode] = c
	m.ctx.PlaySound(audio.SoundMove)
}

func (m *MenuStateMachine) setMode(mode Mode) {
	if mode == ModeSleep {
		// Option list shrinks to one entry while asleep
		if m.cursors[ModeSleep] >= len(m.Options(ModeSleep)) {
			m.cursors[ModeSleep] = 0
		}
	}
	log.Printf("menu %s -> %s", m.mode, mode)
	m.mode = mode
}
