package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/selosign/selosign-go/pkg/jsonapi"
	"github.com/selosign/selosign-go/pkg/sanitizer"
	"github.com/selosign/selosign-go/pkg/validator"
)

const (
	maxFilenameLen = 255
	minContentSize = 1 << 10  // 1KB
	maxContentSize = 25 << 20 // 25MB
)

// DocumentAttrs is the attribute set of a file attachment.
type DocumentAttrs struct {
	Filename      string
	ContentBase64 string
}

// Document is a file attachment within an envelope.
type Document struct {
	Model[DocumentAttrs]
}

type documentContract struct{}

// Validate checks the filename and content chains. Within each chain the
// checks short-circuit: a malformed filename has no extractable extension and
// an undecodable payload has no size, so later checks in the same chain are
// skipped. The two chains are still evaluated independently of each other.
func (documentContract) Validate(a DocumentAttrs) (DocumentAttrs, error) {
	a.Filename = sanitizer.Trim(a.Filename)

	var errs validator.ValidationErrors

	extMIME, extOK := "", false
	switch {
	case a.Filename == "":
		errs.Add(validator.ValidationError{
			Field:   "filename",
			Kind:    validator.KindFormat,
			Message: "is required",
		})
	case utf8.RuneCountInString(a.Filename) > maxFilenameLen:
		errs.Add(validator.ValidationError{
			Field:   "filename",
			Kind:    validator.KindRange,
			Message: fmt.Sprintf("must be at most %d characters long", maxFilenameLen),
		})
	default:
		extMIME, extOK = validator.MIMEByExtension(a.Filename)
		if !extOK {
			errs.Add(validator.ValidationError{
				Field:   "filename",
				Kind:    validator.KindEnum,
				Message: fmt.Sprintf("extension must be one of: %s", strings.Join(validator.SupportedExtensions(), ", ")),
			})
		}
	}

	if a.ContentBase64 == "" {
		errs.Add(validator.ValidationError{
			Field:   "content_base64",
			Kind:    validator.KindFormat,
			Message: "is required",
		})
	} else if content, err := validator.DecodeContent(a.ContentBase64); err != nil {
		errs.Add(validator.ValidationError{
			Field:   "content_base64",
			Kind:    validator.KindFormat,
			Message: "must be valid base64 content",
		})
	} else {
		if sizeErr := validator.Apply(
			validator.MinContentSize("content_base64", content.Size, minContentSize),
			validator.MaxContentSize("content_base64", content.Size, maxContentSize),
		); sizeErr != nil {
			errs = append(errs, validator.Extract(sizeErr)...)
		}
		if content.MIME != "" && extOK && content.MIME != extMIME {
			errs.Add(validator.ValidationError{
				Field:   "content_base64",
				Kind:    validator.KindDependency,
				Message: fmt.Sprintf("declared MIME type %s does not match filename extension type %s", content.MIME, extMIME),
			})
		}
	}

	if len(errs) > 0 {
		return a, errs
	}
	return a, nil
}

// NewDocument validates the attributes and returns the document, or the
// aggregated validation errors.
func NewDocument(attrs DocumentAttrs) (*Document, error) {
	m, err := newModel[DocumentAttrs](documentContract{}, attrs)
	if err != nil {
		return nil, err
	}
	return &Document{Model: *m}, nil
}

// BuildDocument always returns a document; validation failures are carried
// in its error list.
func BuildDocument(attrs DocumentAttrs) *Document {
	return &Document{Model: *buildModel[DocumentAttrs](documentContract{}, attrs)}
}

// ToJSONAPI serializes a valid document into its wire resource document.
func (d *Document) ToJSONAPI() (jsonapi.Document, error) {
	if !d.Valid() {
		return jsonapi.Document{}, d.Errors()
	}

	a := d.Attrs()
	res := jsonapi.NewResource("documents")
	res.SetAttr("filename", a.Filename)
	res.SetAttr("content_base64", a.ContentBase64)
	return jsonapi.NewDocument(res), nil
}
