package components

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	filepicker "github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff", ".heic"}

// FilePickerView browses the filesystem for one file matching a tool's
// accept filter. A new picker is built every time the user attaches a file.
type FilePickerView struct {
	picker        filepicker.Model
	accept        string
	styleProvider *styles.Provider
	selected      string
	rejected      string
	done          bool
	cancelled     bool
}

// NewFilePickerView creates a picker rooted at startDir, or the working
// directory when startDir is empty
func NewFilePickerView(styleProvider *styles.Provider, accept, startDir string, width, height int) *FilePickerView {
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "."
		}
	}

	picker := filepicker.New()
	picker.CurrentDirectory = startDir
	picker.AllowedTypes = AcceptToExtensions(accept)
	picker.ShowPermissions = false
	picker.AutoHeight = true
	picker, _ = picker.Update(tea.WindowSizeMsg{Width: width, Height: height})

	return &FilePickerView{
		picker:        picker,
		accept:        accept,
		styleProvider: styleProvider,
	}
}

func (v *FilePickerView) Init() tea.Cmd {
	return v.picker.Init()
}

func (v *FilePickerView) Update(msg tea.Msg) tea.Cmd {
	if v.done {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		v.cancelled = true
		v.done = true
		return nil
	}

	var cmd tea.Cmd
	v.picker, cmd = v.picker.Update(msg)

	if ok, path := v.picker.DidSelectFile(msg); ok {
		v.selected = path
		v.done = true
		return cmd
	}
	if ok, path := v.picker.DidSelectDisabledFile(msg); ok {
		v.rejected = filepath.Base(path)
	}

	return cmd
}

// IsSelected reports whether the user picked an allowed file
func (v *FilePickerView) IsSelected() bool {
	return v.done && !v.cancelled && v.selected != ""
}

func (v *FilePickerView) IsCancelled() bool {
	return v.cancelled
}

func (v *FilePickerView) IsDone() bool {
	return v.done
}

func (v *FilePickerView) SelectedPath() string {
	return v.selected
}

func (v *FilePickerView) View() string {
	var b strings.Builder

	b.WriteString(v.styleProvider.RenderSectionLabel("Choose a file"))
	if v.accept != "" {
		b.WriteString(" ")
		b.WriteString(v.styleProvider.RenderDimText("(" + v.accept + ")"))
	}
	b.WriteString("\n")
	b.WriteString(v.styleProvider.RenderDimText(v.picker.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(v.picker.View())

	if v.rejected != "" {
		b.WriteString("\n")
		b.WriteString(v.styleProvider.RenderErrorText(v.rejected + " is not an accepted file type"))
	}

	b.WriteString("\n")
	b.WriteString(v.styleProvider.RenderDimText("enter select • ← parent • esc cancel"))
	return b.String()
}

// AcceptToExtensions maps an HTML-style accept list (".html,.htm",
// "image/*", "application/pdf") onto file extensions. An empty list allows
// every file.
func AcceptToExtensions(accept string) []string {
	var exts []string
	seen := make(map[string]bool)

	add := func(ext string) {
		for _, e := range []string{strings.ToLower(ext), strings.ToUpper(ext)} {
			if !seen[e] {
				seen[e] = true
				exts = append(exts, e)
			}
		}
	}

	for _, item := range strings.Split(accept, ",") {
		item = strings.TrimSpace(item)
		switch {
		case item == "":
			continue
		case strings.HasPrefix(item, "."):
			add(item)
		case item == "image/*":
			for _, ext := range imageExtensions {
				add(ext)
			}
		case strings.Contains(item, "/"):
			byType, err := mime.ExtensionsByType(item)
			if err != nil {
				continue
			}
			for _, ext := range byType {
				add(ext)
			}
		}
	}

	return exts
}
