package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nakamauwu/parcelmate/conversation"
	"github.com/nakamauwu/parcelmate/types"
)

const sqlMessageCols = `
	  messages.id
	, messages.post_kind
	, messages.post_id
	, messages.sender_id
	, messages.sender_name
	, messages.receiver_id
	, messages.body
	, messages.kind
	, messages.read
	, messages.post_snapshot
	, messages.created_at
`

// sqlThreadFilter matches the messages of one post between @user_id and @other_user_id
// in both directions.
const sqlThreadFilter = `
	messages.post_kind = @post_kind
	AND messages.post_id = @post_id
	AND (
		(messages.sender_id = @user_id AND messages.receiver_id = @other_user_id)
		OR (messages.sender_id = @other_user_id AND messages.receiver_id = @user_id)
	)
`

func (c *Cockroach) CreateMessage(ctx context.Context, in types.CreateMessage) (types.Message, error) {
	query := `
		INSERT INTO messages (
			  post_kind
			, post_id
			, sender_id
			, sender_name
			, receiver_id
			, body
			, kind
			, post_snapshot
		) VALUES (
			  @post_kind
			, @post_id
			, @sender_id
			, @sender_name
			, @receiver_id
			, @body
			, 'text'
			, @post_snapshot
		)
		RETURNING ` + sqlMessageCols
	args := pgx.StrictNamedArgs{
		"post_kind":     in.Post.Kind,
		"post_id":       in.Post.ID,
		"sender_id":     in.Sender().ID,
		"sender_name":   in.Sender().Username,
		"receiver_id":   in.ReceiverID,
		"body":          in.Body,
		"post_snapshot": in.PostSnapshot(),
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Message])
	if err != nil {
		return out, fmt.Errorf("sql insert message: %w", err)
	}

	return out, nil
}

// Thread opens the conversation between the viewer and the other user about a post.
// The first open seeds a system message unless the input skips seeding,
// concurrent first opens agree on a single one through the unique seed key.
// Every unread message addressed to the viewer is marked as read.
// Messages are returned oldest first.
func (c *Cockroach) Thread(ctx context.Context, in types.RetrieveThread) ([]types.Message, error) {
	var out []types.Message

	err := c.executeTx(ctx, func(tx pgx.Tx) error {
		args := pgx.StrictNamedArgs{
			"post_kind":     in.Post.Kind,
			"post_id":       in.Post.ID,
			"user_id":       in.Viewer().ID,
			"user_name":     in.Viewer().Username,
			"other_user_id": in.OtherUserID,
			"body":          in.SeedBody(),
			"post_snapshot": in.PostSnapshot(),
			"seed_key":      in.Key(),
		}
		if in.Seeds() {
			_, err := tx.Exec(ctx, `
				INSERT INTO messages (
					  post_kind
					, post_id
					, sender_id
					, sender_name
					, receiver_id
					, body
					, kind
					, read
					, post_snapshot
					, seed_key
				)
				SELECT
					  @post_kind::STRING
					, @post_id::UUID
					, @user_id::UUID
					, @user_name::STRING
					, @other_user_id::UUID
					, @body::STRING
					, 'system'
					, true
					, @post_snapshot::JSONB
					, @seed_key::STRING
				WHERE NOT EXISTS (
					SELECT 1 FROM messages WHERE `+sqlThreadFilter+`
				)
				ON CONFLICT (seed_key) DO NOTHING
			`, args)
			if err != nil {
				return fmt.Errorf("sql insert thread seed: %w", err)
			}
		}

		_, err := tx.Exec(ctx, `
			UPDATE messages SET read = true
			WHERE messages.post_kind = @post_kind
			AND messages.post_id = @post_id
			AND messages.sender_id = @other_user_id
			AND messages.receiver_id = @user_id
			AND messages.read = false
		`, pgx.StrictNamedArgs{
			"post_kind":     in.Post.Kind,
			"post_id":       in.Post.ID,
			"user_id":       in.Viewer().ID,
			"other_user_id": in.OtherUserID,
		})
		if err != nil {
			return fmt.Errorf("sql mark thread as read: %w", err)
		}

		query := `
			SELECT ` + sqlMessageCols + `
			FROM messages
			WHERE ` + sqlThreadFilter + `
			ORDER BY messages.created_at ASC, messages.id ASC
		`
		out, err = pgxutil.Select(ctx, tx, query, []any{pgx.StrictNamedArgs{
			"post_kind":     in.Post.Kind,
			"post_id":       in.Post.ID,
			"user_id":       in.Viewer().ID,
			"other_user_id": in.OtherUserID,
		}}, pgx.RowToStructByNameLax[types.Message])
		if err != nil {
			return fmt.Errorf("sql select thread: %w", err)
		}

		return nil
	})

	return out, err
}

// Conversations folds every message of the user into conversations,
// most recent first.
func (c *Cockroach) Conversations(ctx context.Context, userID string) ([]types.Conversation, error) {
	query := `
		SELECT ` + sqlMessageCols + `
		FROM messages
		WHERE messages.sender_id = @user_id OR messages.receiver_id = @user_id
		ORDER BY messages.created_at ASC, messages.id ASC
	`
	rows, err := c.db.Query(ctx, query, pgx.StrictNamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("sql select user messages: %w", err)
	}

	defer rows.Close()

	agg := conversation.New(userID)
	for rows.Next() {
		m, err := pgx.RowToStructByNameLax[types.Message](rows)
		if err != nil {
			return nil, fmt.Errorf("sql scan user message: %w", err)
		}

		agg.Add(m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sql iterate user messages: %w", err)
	}

	return agg.Result(), nil
}

// UnreadCount of messages addressed to the user.
func (c *Cockroach) UnreadCount(ctx context.Context, userID string) (int64, error) {
	const query = `
		SELECT count(*)
		FROM messages
		WHERE messages.receiver_id = @user_id AND messages.read = false
	`
	args := pgx.StrictNamedArgs{"user_id": userID}
	count, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowTo[int64])
	if err != nil {
		return 0, fmt.Errorf("sql count unread messages: %w", err)
	}

	return count, nil
}
