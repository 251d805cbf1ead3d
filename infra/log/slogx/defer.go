package slogx

import (
	"log/slog"
)

// DeferValue implements slog.LogValuer, used to defer [args|attrs] evaluation.
// Helpful when you won't know whether Level is enabled before emit record(s).
// In other words: [slog.Value] on demand.
type DeferValue func() slog.Value

var _ slog.LogValuer = DeferValue(nil)

func (fn DeferValue) LogValue() slog.Value {
	if fn != nil {
		return fn()
	}
	return slog.Value{} // nil
}
