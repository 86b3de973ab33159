package validator

import (
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// extensionMIMETypes maps the supported document extensions to the MIME type
// the signing service expects for them.
var extensionMIMETypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ErrInvalidBase64 is returned by DecodeContent for undecodable payloads.
var ErrInvalidBase64 = errors.New("invalid base64 content")

// Content describes a decoded base64 payload.
type Content struct {
	// MIME is the type declared in a data URI prefix, empty when the payload
	// was bare base64.
	MIME string
	// Size is the decoded byte length.
	Size int
}

// DecodeContent decodes a base64 payload, stripping an optional
// "data:<mime>;base64," URI prefix first.
func DecodeContent(value string) (Content, error) {
	var c Content

	if rest, ok := strings.CutPrefix(value, "data:"); ok {
		marker := strings.Index(rest, ";base64,")
		if marker < 0 {
			return c, ErrInvalidBase64
		}
		c.MIME = rest[:marker]
		value = rest[marker+len(";base64,"):]
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return c, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}

	c.Size = len(decoded)
	return c, nil
}

// MIMEByExtension resolves the expected MIME type for a filename's extension.
// The second return is false for unsupported extensions.
func MIMEByExtension(filename string) (string, bool) {
	mime, ok := extensionMIMETypes[strings.ToLower(filepath.Ext(filename))]
	return mime, ok
}

// SupportedExtensions lists the accepted filename extensions without the
// leading dot, sorted for stable error messages.
func SupportedExtensions() []string {
	exts := []string{"doc", "docx", "jpeg", "jpg", "pdf", "png", "txt"}
	return exts
}

// MinContentSize validates the lower bound on a payload's decoded byte length.
func MinContentSize(field string, size, min int) Rule {
	return Rule{
		Check: func() bool {
			return size >= min
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindRange,
			Message: fmt.Sprintf("decoded content must be at least %d bytes", min),
		},
	}
}

// MaxContentSize validates the upper bound on a payload's decoded byte length.
func MaxContentSize(field string, size, max int) Rule {
	return Rule{
		Check: func() bool {
			return size <= max
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindRange,
			Message: fmt.Sprintf("decoded content must not exceed %d bytes", max),
		},
	}
}
