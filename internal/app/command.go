package app

// CommandKind is a decoded keystroke or timer event.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdTick
	CmdRune
	CmdEscape
	CmdRestart
	CmdSkip
	CmdCycleWordCount
	CmdToggleCaps
	CmdTogglePunct
	CmdToggleZen
	CmdUp
	CmdDown
	CmdFirst
	CmdLast
	CmdDeselect
	CmdSelect
)

var commandNames = map[CommandKind]string{
	CmdNone:           "none",
	CmdTick:           "tick",
	CmdRune:           "rune",
	CmdEscape:         "escape",
	CmdRestart:        "restart",
	CmdSkip:           "skip",
	CmdCycleWordCount: "cycle-word-count",
	CmdToggleCaps:     "toggle-caps",
	CmdTogglePunct:    "toggle-punct",
	CmdToggleZen:      "toggle-zen",
	CmdUp:             "up",
	CmdDown:           "down",
	CmdFirst:          "first",
	CmdLast:           "last",
	CmdDeselect:       "deselect",
	CmdSelect:         "select",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is what the input layer hands the controller. Rune is set only
// for CmdRune; the space key arrives as wordsource.Boundary.
type Command struct {
	Kind CommandKind
	Rune rune
}

// Key builds a CmdRune command.
func Key(r rune) Command {
	return Command{Kind: CmdRune, Rune: r}
}

// Do builds a command without a payload.
func Do(kind CommandKind) Command {
	return Command{Kind: kind}
}
