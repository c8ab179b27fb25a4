// Package terminal provides helpers for detecting terminal capabilities and
// determining whether probe output should be treated as interactive and
// whether it may use color.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"APPVEYOR",               // AppVeyor
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure DevOps
}

// colorTerminals lists TERM values (or prefixes) that are known to support
// basic terminal colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// Options contains command-line overrides for capability detection.
type Options struct {
	ForceInteractive    bool // Force interactive mode regardless of environment
	ForceNonInteractive bool // Force non-interactive mode regardless of environment
	ForceColor          bool // Force color output regardless of environment
	DisableColor        bool // Disable color output regardless of environment
}

// Capabilities provides a unified interface for terminal capability detection.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
}

// DefaultCapabilities implements Capabilities against the real process
// environment and stderr, which is where the probes write their report.
type DefaultCapabilities struct {
	options Options
}

// NewCapabilities creates a capability detector with the given options.
func NewCapabilities(options Options) *DefaultCapabilities {
	return &DefaultCapabilities{options: options}
}

// IsInteractive returns true if the current environment is interactive.
// Priority: command-line options, then CI detection, then terminal detection.
func (c *DefaultCapabilities) IsInteractive() bool {
	if c.options.ForceInteractive {
		return true
	}
	if c.options.ForceNonInteractive {
		return false
	}
	if c.isCIEnvironment() {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// SupportsColor returns true if color output should be enabled.
// Priority: command-line options, CLICOLOR_FORCE, NO_COLOR, then TERM-based
// detection in interactive sessions only.
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.options.ForceColor {
		return true
	}
	if c.options.DisableColor {
		return false
	}
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}
	// NO_COLOR disables color when set to any value, even empty
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return c.IsInteractive() && termSupportsColor(os.Getenv("TERM"))
}

func (c *DefaultCapabilities) isCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}
	return false
}

// termSupportsColor reports whether the TERM value names a terminal known
// to support basic colors. Unknown terminals default to no color: missing
// color support beats emitting escape sequences a terminal cannot render.
func termSupportsColor(termValue string) bool {
	termValue = strings.ToLower(strings.TrimSpace(termValue))
	if termValue == "" || termValue == "dumb" {
		return false
	}
	for _, colorTerm := range colorTerminals {
		if termValue == colorTerm || strings.HasPrefix(termValue, colorTerm+"-") {
			return true
		}
	}
	return false
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
