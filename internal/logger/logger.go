// Package logger builds the zerolog logger used across the service.
package logger

import (
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

func init() {
	// Wire zerolog to github.com/pkg/errors so .Stack() renders a stack even
	// when the error was created without one.
	type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}
	zerolog.ErrorMarshalFunc = func(err error) interface{} {
		if _, ok := err.(stackTracer); ok {
			return err
		}
		return pkgerrors.WithStack(err)
	}
}

// New returns a JSON logger tagged with the service name.
func New(serviceName string) zerolog.Logger {
	return newWith(os.Stdout, serviceName, false)
}

// NewPretty returns a human-readable console logger for local development.
func NewPretty(serviceName string) zerolog.Logger {
	return newWith(os.Stdout, serviceName, true)
}

func newWith(w io.Writer, serviceName string, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
