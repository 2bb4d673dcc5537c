package domain

import (
	"path/filepath"
)

// Input is the single value a tool card collects: either text or a file.
// A nil Input means nothing has been entered.
type Input interface {
	isInput()
}

// TextInput is free text typed into the command field
type TextInput struct {
	Value string
}

// FileInput references a local file picked for analysis. The file is read
// only when a run is dispatched.
type FileInput struct {
	Path string
	Name string
}

func (TextInput) isInput() {}
func (FileInput) isInput() {}

// NewFileInput builds a FileInput whose display name is the base name of path
func NewFileInput(path string) FileInput {
	return FileInput{Path: path, Name: filepath.Base(path)}
}
