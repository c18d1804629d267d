package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the run identifier under "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Giver records the giver's name under "giver".
func Giver(name string) slog.Attr {
	return slog.String("giver", name)
}

// Email records an email address under "email".
func Email(addr string) slog.Attr {
	return slog.String("email", addr)
}

func Participants(n int) slog.Attr {
	return slog.Int("participants", n)
}

// Attempts records how many rejection-sampling draws were made.
func Attempts(n int) slog.Attr {
	return slog.Int("attempts", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Location records where a file or object lives under "location".
func Location(loc string) slog.Attr {
	return slog.String("location", loc)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
