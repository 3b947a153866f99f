package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/types"
	"github.com/vmihailenco/msgpack/v5"
)

const messageStreamBuffer = 32

var (
	ErrNotParticipant = errs.ForbiddenError("conversations about a post must include its owner")
	ErrSelfThread     = errs.NewInvalidArgumentError("OtherUserID", "cannot open a conversation with yourself")
)

func messageTopic(userID string) string { return "messages." + userID }

// SendMessage persists a message between the actor and the receiver about a post
// and publishes it to both of them.
func (svc *Service) SendMessage(ctx context.Context, actor types.User, in types.CreateMessage) (types.Message, error) {
	var out types.Message

	if err := in.Validate(); err != nil {
		return out, err
	}

	if !actor.Valid() {
		return out, errs.Unauthenticated
	}

	if in.ReceiverID == actor.ID {
		return out, types.ErrSelfAddressed
	}

	post, err := svc.participantsPost(ctx, in.Post, actor.ID, in.ReceiverID)
	if err != nil {
		return out, err
	}

	in.SetSender(actor)
	in.SetPostSnapshot(post.Snapshot())

	out, err = svc.Store.CreateMessage(ctx, in)
	if err != nil {
		return out, err
	}

	svc.Metrics.MessagesSent.Inc()
	svc.fanoutMessage(ctx, out)

	return out, nil
}

// participantsPost loads the post and checks one of the two users owns it.
func (svc *Service) participantsPost(ctx context.Context, ref types.PostRef, userID, otherUserID string) (types.Post, error) {
	post, err := svc.Store.Post(ctx, ref)
	if err != nil {
		return post, err
	}

	if post.UserID != userID && post.UserID != otherUserID {
		return post, ErrNotParticipant
	}

	return post, nil
}

// fanoutMessage publishes to the sender and the receiver topics.
// Failures are only logged, the message is already stored.
func (svc *Service) fanoutMessage(ctx context.Context, m types.Message) {
	data, err := msgpack.Marshal(m)
	if err != nil {
		svc.Logger.ErrorContext(ctx, "could not msgpack marshal message", "err", err)
		svc.Metrics.FanoutFailures.Inc()
		return
	}

	for _, userID := range []string{m.SenderID, m.ReceiverID} {
		topic := messageTopic(userID)
		if err := svc.PubSub.Pub(topic, data); err != nil {
			svc.Logger.ErrorContext(ctx, "could not publish message", "topic", topic, "message_id", m.ID, "err", err)
			svc.Metrics.FanoutFailures.Inc()
		}
	}
}

// Thread opens the conversation of the actor with another user about a post.
// Unread messages addressed to the actor get marked as read.
// Once the post is deleted the thread is still reachable through its
// messages, but an empty one is not seeded and reports the post as not found.
func (svc *Service) Thread(ctx context.Context, actor types.User, in types.RetrieveThread) ([]types.Message, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if !actor.Valid() {
		return nil, errs.Unauthenticated
	}

	if in.OtherUserID == actor.ID {
		return nil, ErrSelfThread
	}

	in.SetViewer(actor)

	post, err := svc.participantsPost(ctx, in.Post, actor.ID, in.OtherUserID)
	if errs.IsNotFound(err) {
		in.SkipSeed()

		mm, threadErr := svc.Store.Thread(ctx, in)
		if threadErr != nil {
			return nil, threadErr
		}

		if len(mm) == 0 {
			return nil, err
		}

		return mm, nil
	}

	if err != nil {
		return nil, err
	}

	in.SetPostSnapshot(post.Snapshot())

	return svc.Store.Thread(ctx, in)
}

// Conversations of the actor, most recent first.
func (svc *Service) Conversations(ctx context.Context, actor types.User) ([]types.Conversation, error) {
	if !actor.Valid() {
		return nil, errs.Unauthenticated
	}

	return svc.Store.Conversations(ctx, actor.ID)
}

// UnreadCount of messages addressed to the actor.
func (svc *Service) UnreadCount(ctx context.Context, actor types.User) (int64, error) {
	if !actor.Valid() {
		return 0, errs.Unauthenticated
	}

	return svc.Store.UnreadCount(ctx, actor.ID)
}

// MessageStream to receive the messages sent or received by the actor in realtime.
// The channel is closed once ctx is done. Messages are dropped
// while the receiver is not keeping up.
func (svc *Service) MessageStream(ctx context.Context, actor types.User) (<-chan types.Message, error) {
	if !actor.Valid() {
		return nil, errs.Unauthenticated
	}

	var (
		mu     sync.Mutex
		closed bool
	)
	mm := make(chan types.Message, messageStreamBuffer)
	unsub, err := svc.PubSub.Sub(messageTopic(actor.ID), func(data []byte) {
		var m types.Message
		if err := msgpack.Unmarshal(data, &m); err != nil {
			svc.Logger.Error("could not msgpack unmarshal message", "err", err)
			return
		}

		mu.Lock()
		defer mu.Unlock()

		if closed {
			return
		}

		select {
		case mm <- m:
		default:
			svc.Logger.Warn("message stream full, dropping message", "user_id", actor.ID, "message_id", m.ID)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("could not subscribe to messages: %w", err)
	}

	go func() {
		<-ctx.Done()
		if err := unsub(); err != nil {
			svc.Logger.Error("could not unsubscribe from messages", "err", err)
			// don't return
		}

		mu.Lock()
		closed = true
		close(mm)
		mu.Unlock()
	}()

	return mm, nil
}
