package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/isseis/go-setuid-probe/internal/terminal"
)

// ErrInvalidLogLevel is returned for a log level outside the known set.
var ErrInvalidLogLevel = errors.New("invalid log level")

// SetupOptions configures the process-wide logger.
type SetupOptions struct {
	Level        slog.Level
	RunID        string
	Capabilities terminal.Capabilities // defaults to detection with no overrides
	Writer       io.Writer             // defaults to os.Stderr
}

// Setup builds the process-wide slog logger and installs it as the default.
// Interactive sessions get concise human-readable lines (colored when the
// terminal supports it); everything else gets standard slog text records.
func Setup(opts SetupOptions) (*slog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	capabilities := opts.Capabilities
	if capabilities == nil {
		capabilities = terminal.NewCapabilities(terminal.Options{})
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	interactiveHandler := NewInteractiveHandler(InteractiveHandlerOptions{
		Capabilities: capabilities,
		Level:        opts.Level,
		Writer:       writer,
	})

	textHandler, err := NewConditionalTextHandler(ConditionalTextHandlerOptions{
		Capabilities:       capabilities,
		TextHandlerOptions: handlerOpts,
		Writer:             writer,
	})
	if err != nil {
		return nil, err
	}

	logger := slog.New(NewMultiHandler(interactiveHandler, textHandler))
	if opts.RunID != "" {
		logger = logger.With("run_id", opts.RunID)
	}

	slog.SetDefault(logger)
	return logger, nil
}
