// Package input turns terminal key events into held controls and discrete commands
package input

// Action is what a key binding does
type Action uint8

const (
	ActionNone Action = iota

	// Held controls, sampled every frame
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionRun
	ActionAttack
	ActionStrike

	// Discrete commands, delivered once per press
	ActionPause
	ActionConfirm
	ActionNewGame
	ActionContinue
	ActionToggleMute
	ActionQuit
	ActionDifficulty
	ActionCustomize
	ActionNextColor
	ActionNextAccessory

	// World selection, one per world in order
	ActionWorld1
	ActionWorld2
	ActionWorld3
	ActionWorld4
	ActionWorld5
	ActionWorld6

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:          "none",
	ActionLeft:          "left",
	ActionRight:         "right",
	ActionUp:            "up",
	ActionDown:          "down",
	ActionJump:          "jump",
	ActionRun:           "run",
	ActionAttack:        "attack",
	ActionStrike:        "strike",
	ActionPause:         "pause",
	ActionConfirm:       "confirm",
	ActionNewGame:       "new_game",
	ActionContinue:      "continue",
	ActionToggleMute:    "toggle_mute",
	ActionQuit:          "quit",
	ActionDifficulty:    "difficulty",
	ActionCustomize:     "customize",
	ActionNextColor:     "next_color",
	ActionNextAccessory: "next_accessory",
	ActionWorld1:        "world_1",
	ActionWorld2:        "world_2",
	ActionWorld3:        "world_3",
	ActionWorld4:        "world_4",
	ActionWorld5:        "world_5",
	ActionWorld6:        "world_6",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Held reports whether the action is a control sampled per frame
func (a Action) Held() bool {
	return a >= ActionLeft && a <= ActionStrike
}

// World returns the world number a selects
func (a Action) World() (int, bool) {
	if a < ActionWorld1 || a > ActionWorld6 {
		return 0, false
	}
	return int(a-ActionWorld1) + 1, true
}

// ParseAction resolves a keymap action name; "none" unbinds
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return ActionNone, false
}
