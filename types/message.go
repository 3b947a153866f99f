package types

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/validator"
)

type MessageKind string

const (
	MessageKindText MessageKind = "text"
	// MessageKindSystem is the opening message seeded on the first open of a thread.
	MessageKindSystem MessageKind = "system"
)

type Message struct {
	ID           string        `json:"id" db:"id" msgpack:"id"`
	PostKind     PostKind      `json:"postKind" db:"post_kind" msgpack:"pk"`
	PostID       string        `json:"postID" db:"post_id" msgpack:"pi"`
	SenderID     string        `json:"senderID" db:"sender_id" msgpack:"si"`
	SenderName   string        `json:"senderName" db:"sender_name" msgpack:"sn"`
	ReceiverID   string        `json:"receiverID" db:"receiver_id" msgpack:"ri"`
	Body         string        `json:"body" db:"body" msgpack:"b"`
	Kind         MessageKind   `json:"kind" db:"kind" msgpack:"k"`
	Read         bool          `json:"read" db:"read" msgpack:"r"`
	PostSnapshot *PostSnapshot `json:"postSnapshot" db:"post_snapshot" msgpack:"ps,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at" msgpack:"ca"`
}

func (m Message) PostRef() PostRef {
	return PostRef{Kind: m.PostKind, ID: m.PostID}
}

// Counterpart of viewerID in this message.
func (m Message) Counterpart(viewerID string) string {
	if m.SenderID == viewerID {
		return m.ReceiverID
	}
	return m.SenderID
}

// ThreadKey identifies a conversation: one post and an unordered pair of users.
func ThreadKey(ref PostRef, userID, otherUserID string) string {
	a, b := userID, otherUserID
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%s:%s:%s:%s", ref.Kind, ref.ID, a, b)
}

const messageBodyMaxLength = 2000

var ErrSelfAddressed = errs.NewInvalidArgumentError("ReceiverID", "cannot message yourself")

type CreateMessage struct {
	Post       PostRef `json:"-"`
	ReceiverID string  `json:"-"`
	Body       string  `json:"body"`

	sender       User
	postSnapshot PostSnapshot
}

func (in *CreateMessage) SetSender(u User) {
	in.sender = u
}

func (in CreateMessage) Sender() User {
	return in.sender
}

func (in *CreateMessage) SetPostSnapshot(s PostSnapshot) {
	in.postSnapshot = s
}

func (in CreateMessage) PostSnapshot() PostSnapshot {
	return in.postSnapshot
}

func (in *CreateMessage) Validate() error {
	if err := in.Post.Validate(); err != nil {
		return err
	}

	v := validator.New()

	in.Body = tidyText(in.Body)
	v.Check(ValidUUIDv4(in.ReceiverID), "ReceiverID", "invalid receiver ID")
	if in.Body == "" {
		v.AddError("Body", "Body is required")
	}
	if utf8.RuneCountInString(in.Body) > messageBodyMaxLength {
		v.AddError("Body", "Body must be at most 2000 characters")
	}

	return v.AsError()
}

type RetrieveThread struct {
	Post        PostRef
	OtherUserID string

	viewer       User
	postSnapshot PostSnapshot
	noSeed       bool
}

// SkipSeed keeps an empty thread empty.
// Used once the post is gone and only the message log is left.
func (in *RetrieveThread) SkipSeed() {
	in.noSeed = true
}

func (in RetrieveThread) Seeds() bool {
	return !in.noSeed
}

func (in *RetrieveThread) SetViewer(u User) {
	in.viewer = u
}

func (in RetrieveThread) Viewer() User {
	return in.viewer
}

func (in *RetrieveThread) SetPostSnapshot(s PostSnapshot) {
	in.postSnapshot = s
}

func (in RetrieveThread) PostSnapshot() PostSnapshot {
	return in.postSnapshot
}

func (in RetrieveThread) Key() string {
	return ThreadKey(in.Post, in.viewer.ID, in.OtherUserID)
}

// SeedBody is the text of the opening system message.
func (in RetrieveThread) SeedBody() string {
	return "Conversation about " + in.postSnapshot.Title
}

func (in *RetrieveThread) Validate() error {
	if err := in.Post.Validate(); err != nil {
		return err
	}

	v := validator.New()
	v.Check(ValidUUIDv4(in.OtherUserID), "OtherUserID", "invalid other user ID")
	return v.AsError()
}

// Conversation is derived from the message log, it is never stored.
type Conversation struct {
	PostKind      PostKind      `json:"postKind"`
	PostID        string        `json:"postID"`
	OtherUserID   string        `json:"otherUserID"`
	OtherUsername string        `json:"otherUsername"`
	LastMessage   string        `json:"lastMessage"`
	LastMessageID string        `json:"lastMessageID"`
	LastMessageAt time.Time     `json:"lastMessageAt"`
	UnreadCount   int           `json:"unreadCount"`
	PostSnapshot  *PostSnapshot `json:"postSnapshot"`
}
