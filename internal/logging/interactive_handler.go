package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/isseis/go-setuid-probe/internal/terminal"
)

// ANSI color codes for level labels
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// InteractiveHandler renders concise human-readable log lines for
// interactive terminal sessions, with colored level labels when the
// terminal supports them. It is the interactive counterpart of
// ConditionalTextHandler and stays silent in non-interactive environments.
type InteractiveHandler struct {
	capabilities terminal.Capabilities
	level        slog.Leveler
	writer       io.Writer
	mu           *sync.Mutex
	attrs        []slog.Attr
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	Capabilities terminal.Capabilities
	Level        slog.Leveler
	Writer       io.Writer
}

// NewInteractiveHandler creates a new InteractiveHandler.
func NewInteractiveHandler(opts InteractiveHandlerOptions) *InteractiveHandler {
	return &InteractiveHandler{
		capabilities: opts.Capabilities,
		level:        opts.Level,
		writer:       opts.Writer,
		mu:           &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
// This handler only operates in interactive environments.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	if !h.capabilities.IsInteractive() {
		return false
	}
	minLevel := slog.LevelInfo
	if h.level != nil {
		minLevel = h.level.Level()
	}
	return level >= minLevel
}

// Handle renders the record as a single line: a level label, the message,
// and space-separated key=value attributes.
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder

	line.WriteString(h.levelLabel(r.Level))
	line.WriteString(" ")
	line.WriteString(r.Message)

	writeAttr := func(a slog.Attr) {
		fmt.Fprintf(&line, " %s=%v", a.Key, a.Value)
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})
	line.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, line.String())
	return err
}

// WithAttrs returns a new handler carrying the given attributes.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns the handler unchanged: the probes do not use groups,
// and flat key=value output reads better interactively.
func (h *InteractiveHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *InteractiveHandler) levelLabel(level slog.Level) string {
	label := level.String()
	if !h.capabilities.SupportsColor() {
		return label
	}

	var color string
	switch {
	case level >= slog.LevelError:
		color = colorRed
	case level >= slog.LevelWarn:
		color = colorYellow
	case level >= slog.LevelInfo:
		color = colorCyan
	default:
		color = colorGray
	}
	return color + label + colorReset
}
