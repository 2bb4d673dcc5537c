package clipboard

import (
	"errors"
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func swapWriters(t *testing.T, system func(string) error, terminal func(string)) {
	t.Helper()
	origSystem, origTerminal := systemWrite, terminalWrite
	systemWrite, terminalWrite = system, terminal
	t.Cleanup(func() {
		systemWrite, terminalWrite = origSystem, origTerminal
	})
}

func TestWriteText_UsesSystemClipboard(t *testing.T) {
	var system, terminal []string
	swapWriters(t,
		func(text string) error { system = append(system, text); return nil },
		func(text string) { terminal = append(terminal, text) },
	)

	WriteText("Domain Name: EXAMPLE.COM")

	assert.Equal(t, []string{"Domain Name: EXAMPLE.COM"}, system)
	assert.Empty(t, terminal)
}

func TestWriteText_FallsBackToTerminal(t *testing.T) {
	var terminal []string
	swapWriters(t,
		func(string) error { return errors.New("no xclip") },
		func(text string) { terminal = append(terminal, text) },
	)

	WriteText("output")

	assert.Equal(t, []string{"output"}, terminal)
}
