package clipboard

import (
	termenv "github.com/muesli/termenv"

	logger "github.com/inference-gateway/osint-toolkit/internal/logger"
)

var (
	systemWrite   = writeText
	terminalWrite = func(text string) {
		termenv.DefaultOutput().Copy(text)
	}
)

// WriteText copies text to the system clipboard. When no system clipboard is
// reachable the text is sent to the terminal as an OSC52 sequence instead.
func WriteText(text string) {
	if err := systemWrite(text); err != nil {
		logger.Debug("system clipboard unavailable, using OSC52", "error", err)
		terminalWrite(text)
	}
}
