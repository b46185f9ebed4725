package order

import (
	"strings"
	"time"

	"verification/internal/pkg/errs"

	"github.com/google/uuid"
)

// AttachedDocument is a file attached to an order: a photo, a scanned
// contract, a utility bill. The file itself lives in the external storage
// collaborator; the order only keeps the opaque URL plus a storage key
// generated at attach time.
type AttachedDocument struct {
	storageKey string
	fileName   string
	url        string
	attachedAt time.Time
}

// NewAttachedDocument registers a stored file against an order.
// The storage key is generated here and never changes.
func NewAttachedDocument(fileName, url string) (AttachedDocument, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return AttachedDocument{}, errs.NewValueIsRequiredError("file name")
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return AttachedDocument{}, errs.NewValueIsRequiredError("url")
	}

	return AttachedDocument{
		storageKey: uuid.NewString(),
		fileName:   fileName,
		url:        url,
		attachedAt: time.Now(),
	}, nil
}

// RestoreAttachedDocument reconstructs an attachment from persistence.
func RestoreAttachedDocument(storageKey, fileName, url string, attachedAt time.Time) (AttachedDocument, error) {
	if _, err := uuid.Parse(storageKey); err != nil {
		return AttachedDocument{}, errs.NewValueIsInvalidErrorWithCause("storage key", err)
	}

	doc, err := NewAttachedDocument(fileName, url)
	if err != nil {
		return AttachedDocument{}, err
	}

	doc.storageKey = storageKey
	doc.attachedAt = attachedAt
	return doc, nil
}

// StorageKey returns the stable key identifying the file in storage.
func (d AttachedDocument) StorageKey() string {
	return d.storageKey
}

// FileName returns the original file name.
func (d AttachedDocument) FileName() string {
	return d.fileName
}

// URL returns the opaque URL served by the storage collaborator.
func (d AttachedDocument) URL() string {
	return d.url
}

// AttachedAt returns when the file was attached.
func (d AttachedDocument) AttachedAt() time.Time {
	return d.attachedAt
}

// Validate returns an error for a zero-value AttachedDocument.
func (d AttachedDocument) Validate() error {
	if d.storageKey == "" {
		return errs.NewValueIsRequiredError(
			"AttachedDocument must be created via NewAttachedDocument")
	}
	return nil
}
