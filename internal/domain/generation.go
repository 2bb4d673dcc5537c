package domain

// InlineData is a binary attachment sent alongside a prompt
type InlineData struct {
	MimeType string
	Data     []byte
}

// GenerationRequest is one call to the hosted generation API: a prompt and
// at most one inline attachment
type GenerationRequest struct {
	Prompt     string
	Attachment *InlineData
}

// IsMultipart reports whether the request carries an attachment
func (r GenerationRequest) IsMultipart() bool {
	return r.Attachment != nil
}
