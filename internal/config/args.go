package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

var decoder = schema.NewDecoder()

var errEmptyValue = errors.New("empty value")

// argument holds a single key=value pair; exactly one field is set after
// decoding.
type argument struct {
	Width       *int    `schema:"w"`
	Height      *int    `schema:"h"`
	Dim         *string `schema:"dim"`
	MineCount   *int    `schema:"mc"`
	MinePercent *int    `schema:"mp"`
	Seed        *uint64 `schema:"seed"`
	LogFile     *string `schema:"log"`
	LogLevel    *string `schema:"loglevel"`
	Sound       *bool   `schema:"sound"`
}

// Parse reads the command line arguments (without the program name).
//
// Arguments apply left to right, so a later mc= or mp= replaces an earlier
// one and dim= and w=/h= override each other. The first informational flag
// stops parsing.
func Parse(args []string) (Config, error) {
	var (
		cfg        = Default()
		usePercent = true
		mines      = DefaultMinePercent
	)

	for i, arg := range args {
		index := i + 1

		switch arg {
		case "--help":
			cfg.Info = InfoHelp
			return cfg, nil
		case "--keybinds":
			cfg.Info = InfoKeybinds
			return cfg, nil
		case "--version":
			cfg.Info = InfoVersion
			return cfg, nil
		}

		key, value, found := strings.Cut(arg, "=")
		if !found {
			return Config{}, ConfigError{Kind: UnknownFlag, Index: index, Arg: arg}
		}

		var a argument
		if err := decoder.Decode(&a, map[string][]string{key: {value}}); err != nil {
			return Config{}, decodeError(index, arg, err)
		}
		if value == "" {
			return Config{}, ConfigError{Kind: MalformedArgument, Index: index, Arg: arg, Err: errEmptyValue}
		}

		switch {
		case a.Width != nil:
			cfg.Width = *a.Width
		case a.Height != nil:
			cfg.Height = *a.Height
		case a.Dim != nil:
			w, h, err := parseDim(*a.Dim)
			if err != nil {
				return Config{}, ConfigError{Kind: MalformedArgument, Index: index, Arg: arg, Err: err}
			}
			cfg.Width, cfg.Height = w, h
		case a.MineCount != nil:
			usePercent, mines = false, *a.MineCount
		case a.MinePercent != nil:
			usePercent, mines = true, *a.MinePercent
		case a.Seed != nil:
			cfg.Seed = a.Seed
		case a.LogFile != nil:
			cfg.LogFile = *a.LogFile
		case a.LogLevel != nil:
			level, err := logrus.ParseLevel(*a.LogLevel)
			if err != nil {
				return Config{}, ConfigError{Kind: MalformedArgument, Index: index, Arg: arg, Err: err}
			}
			cfg.LogLevel = level
		case a.Sound != nil:
			cfg.Sound = *a.Sound
		}
	}

	cfg.Width = max(cfg.Width, 1)
	cfg.Height = max(cfg.Height, 1)

	if usePercent {
		mines = minesFromPercent(cfg.Width, cfg.Height, mines)
	}
	cfg.MineCount = max(0, min(mines, cfg.Width*cfg.Height))

	return cfg, nil
}

// parseDim accepts "n" for a square field or "n,m" for width and height.
func parseDim(s string) (w, h int, err error) {
	ws, hs, found := strings.Cut(s, ",")
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, err
	}
	if !found {
		return w, w, nil
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
