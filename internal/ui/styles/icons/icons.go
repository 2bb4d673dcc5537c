package icons

// Status icons
const (
	CheckMark = "✓"
	CrossMark = "✗"
	Paperclip = "⌁"
	Link      = "↗"
)
