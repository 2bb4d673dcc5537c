package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	pdf "github.com/ledongthuc/pdf"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	charset "golang.org/x/net/html/charset"
)

// FileReader loads attached files for a run
type FileReader interface {
	ReadText(path string) (string, error)
	ReadInline(path string) (*domain.InlineData, error)
}

// LocalFileService reads attachments from the local filesystem. Files never
// leave the process except as part of the generation request.
type LocalFileService struct {
	maxFileSize int64
}

// NewLocalFileService creates a file service rejecting files above maxFileSize bytes
func NewLocalFileService(maxFileSize int64) *LocalFileService {
	return &LocalFileService{maxFileSize: maxFileSize}
}

// ReadText decodes a file as text. PDFs are converted to their plain text.
// Other files are decoded from their detected charset, and bytes that do not
// decode become U+FFFD.
func (s *LocalFileService) ReadText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		if _, err := s.checkSize(path); err != nil {
			return "", err
		}
		return s.readPDF(path)
	}

	data, err := s.readBytes(path)
	if err != nil {
		return "", err
	}
	return decodeText(data, DetectMimeType(data, path)), nil
}

func decodeText(data []byte, contentType string) string {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return strings.ToValidUTF8(string(decoded), "\uFFFD")
}

// ReadInline loads a file as binary data with a detected MIME type
func (s *LocalFileService) ReadInline(path string) (*domain.InlineData, error) {
	data, err := s.readBytes(path)
	if err != nil {
		return nil, err
	}

	return &domain.InlineData{
		MimeType: DetectMimeType(data, path),
		Data:     data,
	}, nil
}

func (s *LocalFileService) checkSize(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, fmt.Errorf("file %s is %d bytes, limit is %d", filepath.Base(path), info.Size(), s.maxFileSize)
	}
	return info, nil
}

func (s *LocalFileService) readBytes(path string) ([]byte, error) {
	if _, err := s.checkSize(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (s *LocalFileService) readPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}

// DetectMimeType identifies image formats by decoding their header and
// falls back to the file extension, then to content sniffing
func DetectMimeType(data []byte, path string) string {
	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return "image/" + format
	}

	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		mediaType, _, err := mime.ParseMediaType(byExt)
		if err == nil {
			return mediaType
		}
	}

	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return "application/octet-stream"
	}
	return mediaType
}
