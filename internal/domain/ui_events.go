package domain

// UI events exchanged as bubbletea messages

// ToolRunCompletedEvent carries a successful response back to the card
// session that dispatched it
type ToolRunCompletedEvent struct {
	SessionID string
	ToolID    string
	Output    string
}

// ToolRunFailedEvent carries a failed run back to its card session
type ToolRunFailedEvent struct {
	SessionID string
	ToolID    string
	Err       error
}

// CardClosedEvent asks the shell to discard the open card and return to the list
type CardClosedEvent struct {
	SessionID string
}

// ShowErrorEvent displays a transient message in the status line
type ShowErrorEvent struct {
	Error string
}
