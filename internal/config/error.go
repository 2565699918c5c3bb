package config

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"
)

type ConfigErrorKind int

const (
	UnknownFlag ConfigErrorKind = iota
	UnknownArgument
	MalformedArgument
)

// ConfigError reports a command line argument that could not be used. Index
// counts from 1, the way the player typed them.
type ConfigError struct {
	Kind  ConfigErrorKind
	Index int
	Arg   string
	Err   error
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	switch e.Kind {
	case UnknownFlag:
		return fmt.Sprintf("flag %d: '%s' not recognized", e.Index, e.Arg)
	case UnknownArgument:
		return fmt.Sprintf("argument %d: '%s' not recognized", e.Index, e.Arg)
	default:
		if e.Err != nil {
			return fmt.Sprintf("argument %d: '%s' is malformed: %s", e.Index, e.Arg, e.Err)
		}
		return fmt.Sprintf("argument %d: '%s' is malformed", e.Index, e.Arg)
	}
}

func (e ConfigError) Unwrap() error {
	return e.Err
}

// decodeError turns a schema decoding failure into a [ConfigError].
func decodeError(index int, arg string, err error) ConfigError {
	var multi schema.MultiError
	if errors.As(err, &multi) {
		for _, e := range multi {
			err = e
			break
		}
	}

	var unknown schema.UnknownKeyError
	if errors.As(err, &unknown) {
		return ConfigError{Kind: UnknownArgument, Index: index, Arg: arg}
	}
	return ConfigError{Kind: MalformedArgument, Index: index, Arg: arg, Err: err}
}
