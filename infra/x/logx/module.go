package logx

import "log/slog"

// ModuleLogger returns [parent] scoped with the module name attribute.
// Debug-gated modules (see $ADMIN_LOG_DEBUG) keep the parent level as is;
// the gate is consulted by callers that emit expensive debug records.
func ModuleLogger(name string, parent *slog.Logger) *slog.Logger {
	if parent == nil {
		parent = slog.Default()
	}
	if name == "" {
		return parent
	}
	return parent.With(slog.String("module", name))
}
