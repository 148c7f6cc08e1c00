package app

// Page is the screen the controller is showing.
type Page int

const (
	PageMenu Page = iota
	PageTyping
	PagePause
)

func (p Page) String() string {
	switch p {
	case PageMenu:
		return "menu"
	case PageTyping:
		return "typing"
	case PagePause:
		return "pause"
	default:
		return "unknown"
	}
}

// MenuOption is an entry of the main menu.
type MenuOption int

const (
	MenuType MenuOption = iota
	MenuQuit
)

func (o MenuOption) String() string {
	switch o {
	case MenuType:
		return "Type"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

// PauseOption is an entry of the pause overlay.
type PauseOption int

const (
	PauseResume PauseOption = iota
	PauseQuit
)

func (o PauseOption) String() string {
	switch o {
	case PauseResume:
		return "Resume"
	case PauseQuit:
		return "Quit"
	default:
		return "?"
	}
}
