// Package conversation folds a user's message log into their conversation list.
package conversation

import (
	"cmp"
	"slices"

	"github.com/nakamauwu/parcelmate/types"
)

type key struct {
	postKind    types.PostKind
	postID      string
	otherUserID string
}

// Aggregator builds conversations in a single pass over messages
// given in ascending creation order.
// The zero value is not usable, create one with [New].
type Aggregator struct {
	viewerID string
	convs    map[key]*types.Conversation
}

func New(viewerID string) *Aggregator {
	return &Aggregator{
		viewerID: viewerID,
		convs:    map[key]*types.Conversation{},
	}
}

// Add a message of the viewer. Messages where the viewer is neither sender
// nor receiver are ignored.
func (a *Aggregator) Add(m types.Message) {
	if m.SenderID != a.viewerID && m.ReceiverID != a.viewerID {
		return
	}

	otherID := m.Counterpart(a.viewerID)
	k := key{postKind: m.PostKind, postID: m.PostID, otherUserID: otherID}

	c, ok := a.convs[k]
	if !ok {
		c = &types.Conversation{
			PostKind:    m.PostKind,
			PostID:      m.PostID,
			OtherUserID: otherID,
		}
		a.convs[k] = c
	}

	if m.SenderID == otherID && m.SenderName != "" {
		c.OtherUsername = m.SenderName
	}

	if m.PostSnapshot != nil {
		c.PostSnapshot = m.PostSnapshot
	}

	if m.ReceiverID == a.viewerID && !m.Read {
		c.UnreadCount++
	}

	if !c.LastMessageAt.After(m.CreatedAt) {
		c.LastMessage = m.Body
		c.LastMessageID = m.ID
		c.LastMessageAt = m.CreatedAt
	}
}

func (a *Aggregator) Len() int {
	return len(a.convs)
}

// Result returns the conversations, most recent first.
func (a *Aggregator) Result() []types.Conversation {
	out := make([]types.Conversation, 0, len(a.convs))
	for _, c := range a.convs {
		out = append(out, *c)
	}

	slices.SortFunc(out, func(x, y types.Conversation) int {
		if c := y.LastMessageAt.Compare(x.LastMessageAt); c != 0 {
			return c
		}
		return cmp.Compare(y.LastMessageID, x.LastMessageID)
	})

	return out
}
