package domain

import (
	"errors"
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestToolRecord_ApplyTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		input    string
		expected string
	}{
		{name: "whois", template: "whois {INPUT}", input: "example.com", expected: "whois example.com"},
		{name: "placeholder in the middle", template: "sherlock {INPUT} --timeout 5", input: "johndoe", expected: "sherlock johndoe --timeout 5"},
		{name: "only first placeholder replaced", template: "echo {INPUT} {INPUT}", input: "x", expected: "echo x {INPUT}"},
		{name: "no template", template: "", input: "x", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := ToolRecord{CommandTemplate: tt.template}
			assert.Equal(t, tt.expected, tool.ApplyTemplate(tt.input))
		})
	}
}

func TestToolRecord_CommandParts(t *testing.T) {
	prefix, suffix := ToolRecord{CommandTemplate: "theHarvester -d {INPUT} -b all"}.CommandParts()
	assert.Equal(t, "theHarvester -d ", prefix)
	assert.Equal(t, " -b all", suffix)

	prefix, suffix = ToolRecord{}.CommandParts()
	assert.Empty(t, prefix)
	assert.Empty(t, suffix)
}

func TestToolRecord_IsRunnable(t *testing.T) {
	assert.False(t, ToolRecord{InputType: InputNone}.IsRunnable())
	assert.False(t, ToolRecord{}.IsRunnable())
	assert.True(t, ToolRecord{InputType: InputText}.IsRunnable())
	assert.True(t, ToolRecord{InputType: InputFile}.IsRunnable())
	assert.True(t, ToolRecord{CommandTemplate: "nmap {INPUT}"}.IsRunnable())
}

func TestToolRecord_AcceptsFiles(t *testing.T) {
	assert.True(t, ToolRecord{InputType: InputFile}.AcceptsFiles())
	assert.True(t, ToolRecord{InputType: InputText, AllowFileUpload: true}.AcceptsFiles())
	assert.False(t, ToolRecord{InputType: InputText}.AcceptsFiles())
}

func TestNewFileInput(t *testing.T) {
	f := NewFileInput("/home/user/Downloads/page.html")
	assert.Equal(t, "page.html", f.Name)
	assert.Equal(t, "/home/user/Downloads/page.html", f.Path)
}

func TestRequestFailure(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&RequestFailure{ToolID: "whois", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "whois")

	var failure *RequestFailure
	if assert.ErrorAs(t, err, &failure) {
		assert.Equal(t, RequestFailureMessage, failure.UserMessage())
	}
}

func TestThemeProvider(t *testing.T) {
	tp := NewThemeProvider()

	assert.Equal(t, DefaultThemeName, tp.GetCurrentThemeName())
	assert.Equal(t, []string{"dracula", "terminal-green", "tokyo-night"}, tp.ListThemes())
	assert.NoError(t, tp.SetTheme("dracula"))
	assert.Equal(t, "dracula", tp.GetCurrentThemeName())
	assert.Error(t, tp.SetTheme("solarized"))
	assert.Equal(t, "dracula", tp.GetCurrentThemeName())
}
