package asset

// DefaultFlowConfig is the scene flow graph: menu and customize screen, narrative screens, level play, pause and ending
const DefaultFlowConfig = `
initial = "Menu"

[states.Menu]
on_enter = [
    { action = "SetScene" },
    { action = "Log", message = "entered menu" },
]
transitions = [
    { trigger = "EventNewGame", target = "Intro" },
    { trigger = "EventContinue", target = "Playing", guard = "HasProgress" },
    { trigger = "EventContinue", target = "Intro" },
    { trigger = "EventCustomize", target = "Customize" },
]

[states.Customize]
on_enter = [
    { action = "SetScene" },
]
transitions = [
    { trigger = "EventStoryDone", target = "Menu" },
]

# --- NARRATIVE SCREENS ---

[states.Story]

[states.Intro]
parent = "Story"
on_enter = [
    { action = "SetScene" },
]
transitions = [
    { trigger = "EventStoryDone", target = "Playing" },
    { trigger = "Tick", target = "Playing", guard = "StateTimeExceeds", guard_args = { ms = 8000 } },
]

[states.WorldIntro]
parent = "Story"
on_enter = [
    { action = "SetScene" },
]
transitions = [
    { trigger = "EventStoryDone", target = "Playing" },
    { trigger = "Tick", target = "Playing", guard = "StateTimeExceeds", guard_args = { ms = 6000 } },
]

[states.Ending]
on_enter = [
    { action = "SetScene" },
    { action = "Log", message = "game finished" },
]
transitions = [
    { trigger = "EventStoryDone", target = "Menu" },
]

# --- LEVEL PLAY ---

# Entering Game builds the session for the saved current level; leaving it tears the session down
[states.Game]
on_enter = [
    { action = "StartLevel" },
]
on_exit = [
    { action = "StopLevel" },
]
transitions = [
    { trigger = "EventWorldTransition", target = "WorldIntro" },
    { trigger = "EventEnding", target = "Ending" },
    { trigger = "EventGameOver", target = "Menu" },
    { trigger = "EventQuitToMenu", target = "Menu" },
]

[states.Playing]
parent = "Game"
on_enter = [
    { action = "SetScene" },
]
on_update = [
    { action = "StepLevel" },
]
transitions = [
    { trigger = "EventPause", target = "Paused" },
]

[states.Paused]
parent = "Game"
on_enter = [
    { action = "SetScene" },
]
transitions = [
    { trigger = "EventResume", target = "Playing" },
    { trigger = "EventPause", target = "Playing" },
]
`
