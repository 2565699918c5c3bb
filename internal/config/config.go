package config

import (
	"github.com/sirupsen/logrus"
)

const (
	DefaultWidth       = 20
	DefaultHeight      = 15
	DefaultMinePercent = 15
)

// Info is an informational flag that replaces playing a game.
type Info int

const (
	InfoNone Info = iota
	InfoHelp
	InfoKeybinds
	InfoVersion
)

type Config struct {
	Width     int
	Height    int
	MineCount int

	// Seed fixes the mine layout when set.
	Seed *uint64

	LogFile  string
	LogLevel logrus.Level
	Sound    bool

	Info Info
}

func Default() Config {
	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
	}

	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MineCount: minesFromPercent(DefaultWidth, DefaultHeight, DefaultMinePercent),
		LogLevel:  level,
	}
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"width":      c.Width,
		"height":     c.Height,
		"mine_count": c.MineCount,
		"log_file":   c.LogFile,
		"log_level":  c.LogLevel.String(),
		"sound":      c.Sound,
	}
	if c.Seed != nil {
		fields["seed"] = *c.Seed
	}
	return fields
}

// minesFromPercent rounds down; percent is clamped to [0, 100].
func minesFromPercent(width, height, percent int) int {
	percent = max(0, min(percent, 100))
	return width * height * percent / 100
}
