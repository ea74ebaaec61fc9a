package sendsculpt

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MIMEOctetStream is used when an attachment's type cannot be detected.
const MIMEOctetStream = "application/octet-stream"

// Attachment describes a file attached to an email.
// Exactly one content source must be set via Base64Content, Bytes or File.
type Attachment struct {
	Source   AttachmentSource
	Filename string // Display name; defaults to the file's base name for File sources
	MimeType string // MIME type; detected from content when empty
}

// AttachmentSource supplies attachment content.
// The set of implementations is closed: use Base64Content, Bytes or File.
type AttachmentSource interface {
	// load returns the raw bytes (nil if not needed) and the base64 payload.
	// Raw bytes are only produced when detect is true or decoding is free.
	load(detect bool) (raw []byte, encoded string, err error)
}

// Base64Content returns a source for content that is already base64-encoded.
// The string is sent verbatim.
func Base64Content(s string) AttachmentSource {
	return base64Source(s)
}

// Bytes returns a source for raw binary content.
func Bytes(b []byte) AttachmentSource {
	return bytesSource(b)
}

// File returns a source that reads the attachment from disk at send time.
func File(path string) AttachmentSource {
	return fileSource(path)
}

type base64Source string

func (s base64Source) load(detect bool) ([]byte, string, error) {
	if !detect {
		return nil, string(s), nil
	}
	raw, err := base64.StdEncoding.DecodeString(string(s))
	if err != nil {
		// Undecodable content still goes out untouched; only detection is lost.
		return nil, string(s), nil
	}
	return raw, string(s), nil
}

type bytesSource []byte

func (s bytesSource) load(bool) ([]byte, string, error) {
	return s, base64.StdEncoding.EncodeToString(s), nil
}

type fileSource string

func (s fileSource) load(bool) ([]byte, string, error) {
	path := string(s)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: attachment file not found: %s", ErrResourceNotFound, path)
		}
		return nil, "", fmt.Errorf("sendsculpt: stat attachment file %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("sendsculpt: open attachment file %s: %w", path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("sendsculpt: read attachment file %s: %w", path, err)
	}

	return raw, base64.StdEncoding.EncodeToString(raw), nil
}

// wireAttachment is the normalized form sent to the API.
type wireAttachment struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Content  string `json:"content"`
}

// normalize resolves the attachment source into its wire form.
func (a Attachment) normalize() (wireAttachment, error) {
	if a.Source == nil {
		return wireAttachment{}, configError("attachment must specify content, content bytes or file path")
	}

	raw, encoded, err := a.Source.load(a.MimeType == "")
	if err != nil {
		return wireAttachment{}, err
	}

	filename := a.Filename
	if path, ok := a.Source.(fileSource); ok && filename == "" {
		filename = filepath.Base(string(path))
	}

	mimeType := a.MimeType
	if mimeType == "" {
		mimeType = detectMIME(raw)
	}

	return wireAttachment{
		Filename: filename,
		MimeType: mimeType,
		Content:  encoded,
	}, nil
}

// detectMIME sniffs the content type from magic bytes, dropping parameters like charset.
func detectMIME(raw []byte) string {
	if raw == nil {
		return MIMEOctetStream
	}
	mt := mimetype.Detect(raw).String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if mt == "" {
		return MIMEOctetStream
	}
	return mt
}

func normalizeAttachments(attachments []Attachment) ([]wireAttachment, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	result := make([]wireAttachment, len(attachments))
	for i, a := range attachments {
		wa, err := a.normalize()
		if err != nil {
			return nil, fmt.Errorf("attachment %d: %w", i, err)
		}
		result[i] = wa
	}
	return result, nil
}
