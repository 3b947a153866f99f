package types

import (
	"bytes"
	"io"
)

// Attachment is a processed image ready to be stored.
type Attachment struct {
	reader      io.ReadSeeker
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
	FileSize    uint64 `json:"fileSize"`
	Width       uint32 `json:"width"`
	Height      uint32 `json:"height"`
}

func (a *Attachment) SetReader(reader io.ReadSeeker) {
	a.reader = reader
}

func (a *Attachment) SetContent(b []byte) {
	a.reader = bytes.NewReader(b)
	a.FileSize = uint64(len(b))
}

func (a *Attachment) Reader() io.ReadSeeker {
	return a.reader
}

type AttachPostImage struct {
	Ref   PostRef
	Image io.ReadSeeker

	userID string
}

func (in *AttachPostImage) SetUserID(userID string) {
	in.userID = userID
}

func (in AttachPostImage) UserID() string {
	return in.userID
}

func (in *AttachPostImage) Validate() error {
	if err := in.Ref.Validate(); err != nil {
		return err
	}
	if in.Ref.Kind != PostKindSender {
		return ErrInvalidPostKind
	}
	if in.Image == nil {
		return ErrImageRequired
	}
	return nil
}
