package realtime

import (
	"encoding/json"

	"github.com/nakamauwu/parcelmate/types"
)

const (
	EventNewMessage = "newMessage"
	EventJoin       = "join"
	EventJoined     = "joined"
	EventError      = "error"
)

// Event is the frame exchanged with websocket clients.
type Event struct {
	Type    string         `json:"type"`
	UserID  string         `json:"userID,omitempty"`
	Message *types.Message `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func encodeEvent(ev Event) []byte {
	b, err := json.Marshal(ev)
	if err != nil {
		// only reachable with an unencodable message, report it to the client instead.
		b, _ = json.Marshal(Event{Type: EventError, Error: "encode_failed"})
	}
	return b
}

func newMessageEvent(m types.Message) []byte {
	return encodeEvent(Event{Type: EventNewMessage, Message: &m})
}

func errorEvent(code string) []byte {
	return encodeEvent(Event{Type: EventError, Error: code})
}
