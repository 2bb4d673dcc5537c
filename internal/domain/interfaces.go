package domain

import (
	"context"
)

//go:generate go tool counterfeiter -generate

// Generator issues a single request to the hosted generation API
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_generator.go . Generator
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// ToolRunner turns a tool and its input into simulated output
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_tool_runner.go . ToolRunner
type ToolRunner interface {
	CanRun(tool ToolRecord, input Input) bool
	Run(ctx context.Context, tool ToolRecord, input Input) (string, error)
}

// Theme exposes the colors the UI renders with
type Theme interface {
	GetAccentColor() string
	GetTextColor() string
	GetDimColor() string
	GetErrorColor() string
	GetSuccessColor() string
	GetStatusColor() string
	GetBorderColor() string
	GetBadgeColor() string
}

// ThemeService manages the active theme
type ThemeService interface {
	ListThemes() []string
	GetCurrentTheme() Theme
	GetCurrentThemeName() string
	SetTheme(name string) error
}
