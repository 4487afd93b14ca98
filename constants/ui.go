package constants

// Program identity
const (
	AppName = "pangram"
	Version = "0.0.1"
)

// Pane titles
const (
	AlphabetTitle = "Press 'ESC' to quit"
	InputTitle    = "Start typing to check for a pangram"
)

// Layout
const (
	// AlphabetPaneHeight is border + one line of letters + border
	AlphabetPaneHeight = 3

	// MinInputPaneHeight keeps at least one text row visible
	MinInputPaneHeight = 3

	// BorderWidth is the total horizontal space taken by a pane's two borders
	BorderWidth = 2

	// MinScreenWidth keeps one text column inside the borders
	MinScreenWidth = BorderWidth + 1
)

// TooSmallMessage replaces the panes when the terminal cannot fit them
const TooSmallMessage = "Terminal too small"

// Color names, resolved through tcell.GetColor
const (
	DefaultIncompleteColor = "red"
	DefaultCompleteColor   = "green"
	DefaultTextColor       = "white"
	DefaultTitleColor      = "white"
)

// Help is printed for -h/--help
const Help = `
pangram: an interactive pangram checker.

usage: pangram [options]

options:
    -h, --help    Print help information
    -v, --version Print version information

A pangram is a series of words (ideally a sentence) that contains every letter in the alphabet. The most famous pangram is "The quick brown fox jumps over the lazy dog", but there are many more.
Run the program without any arguments to start the TUI, where you can type and check if you have written a pangram. Pressing the 'Escape' key quits the TUI. Holding the 'Control' key and pressing the letter 'c' also quits the TUI.
`
