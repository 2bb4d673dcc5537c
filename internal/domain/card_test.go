package domain

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func newWhoisSession() *CardSession {
	return NewCardSession(ToolRecord{
		ID:              "whois",
		Name:            "Whois",
		Category:        "Domain Recon",
		InputType:       InputText,
		CommandTemplate: "whois {INPUT}",
	})
}

func TestNewCardSession(t *testing.T) {
	a := newWhoisSession()
	b := newWhoisSession()

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID(), "every mount gets its own session")
	assert.Equal(t, CardIdle, a.State())
	assert.False(t, a.HasInput())
	assert.False(t, a.CanSubmit())
}

func TestCardSession_InputMutualExclusivity(t *testing.T) {
	file := NewFileInput("/tmp/photo.jpg")

	tests := []struct {
		name      string
		apply     func(s *CardSession)
		wantText  string
		wantFile  bool
		wantInput bool
	}{
		{
			name:      "text only",
			apply:     func(s *CardSession) { s.SetText("example.com") },
			wantText:  "example.com",
			wantInput: true,
		},
		{
			name: "file after text clears text",
			apply: func(s *CardSession) {
				s.SetText("example.com")
				s.SelectFile(file)
			},
			wantFile:  true,
			wantInput: true,
		},
		{
			name: "text after file clears file",
			apply: func(s *CardSession) {
				s.SelectFile(file)
				s.SetText("example.com")
			},
			wantText:  "example.com",
			wantInput: true,
		},
		{
			name: "text file text file",
			apply: func(s *CardSession) {
				s.SetText("a")
				s.SelectFile(file)
				s.SetText("b")
				s.SelectFile(file)
			},
			wantFile:  true,
			wantInput: true,
		},
		{
			name: "clearing file leaves nothing",
			apply: func(s *CardSession) {
				s.SelectFile(file)
				s.ClearFile()
			},
		},
		{
			name: "clearing file keeps typed text",
			apply: func(s *CardSession) {
				s.SetText("example.com")
				s.ClearFile()
			},
			wantText:  "example.com",
			wantInput: true,
		},
		{
			name: "erasing text empties input",
			apply: func(s *CardSession) {
				s.SetText("example.com")
				s.SetText("")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newWhoisSession()
			tt.apply(s)

			_, hasFile := s.File()
			assert.Equal(t, tt.wantText, s.Text())
			assert.Equal(t, tt.wantFile, hasFile)
			assert.Equal(t, tt.wantInput, s.HasInput())
			assert.False(t, s.Text() != "" && hasFile, "text and file must never both be set")
		})
	}
}

func TestCardSession_BeginGuards(t *testing.T) {
	t.Run("no input is a no-op", func(t *testing.T) {
		s := newWhoisSession()
		assert.False(t, s.Begin())
		assert.False(t, s.IsLoading())
	})

	t.Run("second begin while loading is a no-op", func(t *testing.T) {
		s := newWhoisSession()
		s.SetText("example.com")
		require.True(t, s.Begin())
		assert.False(t, s.Begin())
		assert.Equal(t, CardSubmitting, s.State())
	})

	t.Run("begin clears previous result and error", func(t *testing.T) {
		s := newWhoisSession()
		s.SetText("example.com")
		require.True(t, s.Begin())
		s.Complete("Registrar: Example")
		require.True(t, s.Begin())
		assert.Empty(t, s.Result())
		assert.Empty(t, s.ErrorText())
	})
}

func TestCardSession_TerminalTransitions(t *testing.T) {
	t.Run("success stores output verbatim", func(t *testing.T) {
		s := newWhoisSession()
		s.SetText("example.com")
		require.True(t, s.Begin())

		s.Complete("  Domain Name: EXAMPLE.COM\n")

		assert.Equal(t, "  Domain Name: EXAMPLE.COM\n", s.Result())
		assert.Empty(t, s.ErrorText())
		assert.False(t, s.IsLoading())
		assert.Equal(t, CardSucceeded, s.State())
	})

	t.Run("failure after success clears stale result", func(t *testing.T) {
		s := newWhoisSession()
		s.SetText("example.com")
		require.True(t, s.Begin())
		s.Complete("first run")

		require.True(t, s.Begin())
		s.Fail(RequestFailureMessage)

		assert.Equal(t, RequestFailureMessage, s.ErrorText())
		assert.Empty(t, s.Result())
		assert.False(t, s.IsLoading())
		assert.Equal(t, CardFailed, s.State())
	})

	t.Run("completion without a run in flight is ignored", func(t *testing.T) {
		s := newWhoisSession()
		s.Complete("late")
		s.Fail("late")

		assert.Empty(t, s.Result())
		assert.Empty(t, s.ErrorText())
		assert.Equal(t, CardIdle, s.State())
	})
}

func TestCardSession_InputFrozenWhileLoading(t *testing.T) {
	s := newWhoisSession()
	s.SetText("example.com")
	require.True(t, s.Begin())

	s.SetText("other.org")
	s.SelectFile(NewFileInput("/tmp/x.html"))
	s.ClearFile()

	assert.Equal(t, "example.com", s.Text())
}

func TestCardState_String(t *testing.T) {
	assert.Equal(t, "idle", CardIdle.String())
	assert.Equal(t, "submitting", CardSubmitting.String())
	assert.Equal(t, "succeeded", CardSucceeded.String())
	assert.Equal(t, "failed", CardFailed.String())
}
