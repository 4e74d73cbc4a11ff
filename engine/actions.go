package engine

import "fmt"

// ActionID identifies a confirmable submenu action
type ActionID int

const (
	ActionCoffee ActionID = iota
	ActionTofu
	ActionMoscowMule
	ActionPlayDeftones
	ActionReadBook
	ActionGoFestival
	ActionHug
	ActionPainReliever
	actionCount
)

// ActionCount is the number of defined actions
const ActionCount = int(actionCount)

var actionKeys = [actionCount]string{
	ActionCoffee:       "food_Coffee",
	ActionTofu:         "food_Tofu",
	ActionMoscowMule:   "food_Moscow Mule",
	ActionPlayDeftones: "entertainment_Play Deftones",
	ActionReadBook:     "entertainment_Read Book",
	ActionGoFestival:   "entertainment_Go Festival",
	ActionHug:          "health_A hug",
	ActionPainReliever: "health_Ibuprofeno",
}

// String returns the history key of the action
func (a ActionID) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionKeys[a]
}

// Valid reports whether a names a defined action
func (a ActionID) Valid() bool {
	return a >= 0 && a < actionCount
}
