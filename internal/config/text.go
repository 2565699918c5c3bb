package config

const Version = "1.1.0"

const HelpText = `  w=<n>          Sets field width to n
  h=<n>          Sets field height to n
  dim=<n>        Sets field width and height to n
  dim=<n>,<m>    Sets field width to n and height to m

  mc=<n>         Sets field mine count to n
  mp=<n>         Sets field mine count to n percent of cell count

  seed=<n>       Uses a fixed mine layout seed
  sound=<bool>   Plays a sound when the game ends
  log=<path>     Writes a rotated log to path
  loglevel=<l>   Sets the log level (panic, fatal, error, warn, info, debug, trace)

  --help         Display this information
  --keybinds     List all keybinds
  --version      Display the version
`

const KeybindsText = `  w / Up      Move cursor up
  s / Down    Move cursor down
  a / Left    Move cursor left
  d / Right   Move cursor right

  f           Flag / Unflag cell
  Space       Open cell
  Enter       Exit game after playing
  Ctrl + c    Exit game

  <any>       Update timer and redraw
`

const VersionText = "Minesweeper " + Version + "\n"

// Text returns what an informational flag prints.
func (i Info) Text() string {
	switch i {
	case InfoHelp:
		return HelpText
	case InfoKeybinds:
		return KeybindsText
	case InfoVersion:
		return VersionText
	default:
		return ""
	}
}
