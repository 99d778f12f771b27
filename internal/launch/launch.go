// Package launch starts external programs and documents through the
// platform shell.
package launch

import "github.com/rs/zerolog"

// Launcher hands targets to the operating system's shell
type Launcher struct {
	log zerolog.Logger
}

// New creates a new launcher
func New(logger zerolog.Logger) *Launcher {
	return &Launcher{log: logger}
}

// Run launches the target a Run hotkey names. The shell resolves
// executables, documents, and URLs alike.
func (l *Launcher) Run(command string) error {
	l.log.Info().Str("command", command).Msg("Running command")
	return platformOpen(command)
}

// Open opens a URL in the default browser
func (l *Launcher) Open(url string) error {
	l.log.Info().Str("url", url).Msg("Opening URL")
	return platformOpen(url)
}
