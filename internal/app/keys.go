package app

// Key strings as bubbletea reports them through tea.KeyMsg.String().
// The engine dispatches on these so the UI layer stays a thin shell.
const (
	KeyQuit      = "q"
	KeyCtrlC     = "ctrl+c"
	KeyEsc       = "esc"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyVimLeft   = "h"
	KeyVimRight  = "l"
	KeyVimUp     = "k"
	KeyVimDown   = "j"
	KeyPageUp    = "pgup"
	KeyPageDown  = "pgdown"
	KeyHome      = "home"
	KeyEnd       = "end"
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
	KeyBack      = "b"
	KeyRefresh   = "r"
	KeyDetail    = "i"
	KeyHelp      = "?"
)

// Effect tells the UI shell what to do after a key was handled. State
// mutation happens inside HandleKey; effects cover the two things only the
// shell can do: stop the program and kick off an out-of-cycle poll.
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectRefresh
)
