package domain

import (
	uuid "github.com/google/uuid"
)

// CardState is the lifecycle position of a tool card
type CardState int

const (
	CardIdle CardState = iota
	CardSubmitting
	CardSucceeded
	CardFailed
)

func (s CardState) String() string {
	switch s {
	case CardSubmitting:
		return "submitting"
	case CardSucceeded:
		return "succeeded"
	case CardFailed:
		return "failed"
	default:
		return "idle"
	}
}

// CardSession holds the per-card state for as long as a card is open.
// At most one run is in flight per session.
type CardSession struct {
	id      string
	tool    ToolRecord
	input   Input
	loading bool
	result  string
	err     string
}

// NewCardSession opens a fresh session for tool
func NewCardSession(tool ToolRecord) *CardSession {
	return &CardSession{
		id:   uuid.New().String(),
		tool: tool,
	}
}

func (s *CardSession) ID() string        { return s.id }
func (s *CardSession) Tool() ToolRecord  { return s.tool }
func (s *CardSession) Input() Input      { return s.input }
func (s *CardSession) IsLoading() bool   { return s.loading }
func (s *CardSession) Result() string    { return s.result }
func (s *CardSession) ErrorText() string { return s.err }
func (s *CardSession) HasInput() bool    { return s.input != nil }
func (s *CardSession) CanSubmit() bool   { return !s.loading && s.input != nil }

// Text returns the typed value, or "" when a file is selected
func (s *CardSession) Text() string {
	if t, ok := s.input.(TextInput); ok {
		return t.Value
	}
	return ""
}

// File returns the selected file, if any
func (s *CardSession) File() (FileInput, bool) {
	f, ok := s.input.(FileInput)
	return f, ok
}

// State derives the lifecycle position from the stored fields
func (s *CardSession) State() CardState {
	switch {
	case s.loading:
		return CardSubmitting
	case s.err != "":
		return CardFailed
	case s.result != "":
		return CardSucceeded
	default:
		return CardIdle
	}
}

// SetText replaces the input with typed text, dropping any selected file.
// Inputs are frozen while a run is in flight.
func (s *CardSession) SetText(value string) {
	if s.loading {
		return
	}
	if value == "" {
		s.input = nil
		return
	}
	s.input = TextInput{Value: value}
}

// SelectFile replaces the input with a file, dropping any typed text
func (s *CardSession) SelectFile(file FileInput) {
	if s.loading {
		return
	}
	s.input = file
}

// ClearFile removes a selected file and leaves typed text untouched
func (s *CardSession) ClearFile() {
	if s.loading {
		return
	}
	if _, ok := s.input.(FileInput); ok {
		s.input = nil
	}
}

// Begin moves the session into Submitting. It returns false, changing
// nothing, when a run is already in flight or there is no input.
func (s *CardSession) Begin() bool {
	if !s.CanSubmit() {
		return false
	}
	s.loading = true
	s.result = ""
	s.err = ""
	return true
}

// Complete stores a successful response verbatim
func (s *CardSession) Complete(output string) {
	if !s.loading {
		return
	}
	s.result = output
	s.err = ""
	s.loading = false
}

// Fail stores a user-facing error message and clears the result
func (s *CardSession) Fail(message string) {
	if !s.loading {
		return
	}
	s.err = message
	s.result = ""
	s.loading = false
}
