package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/types"
	"github.com/nicolasparada/go-db"
	"golang.org/x/sync/errgroup"
)

var (
	ErrResponseNotFound  = errs.NotFoundError("response not found")
	ErrNotPostOwner      = errs.ForbiddenError("you are not the owner of this post")
	ErrOwnPostResponse   = errs.ForbiddenError("you cannot respond to your own post")
	ErrResponseNotActive = errs.AlreadyResolvedError("response is no longer pending")
)

const sqlResponseCols = `
	  responses.id
	, responses.post_kind
	, responses.post_id
	, responses.traveller_id
	, responses.traveller_name
	, responses.message
	, responses.estimated_delivery
	, responses.price_offer
	, responses.status
	, responses.created_at
	, responses.updated_at
`

// SubmitResponse creates a pending response. The post row is locked so
// the submission lands either before or after a concurrent acceptance.
// The returned response carries the post it was submitted to.
func (c *Cockroach) SubmitResponse(ctx context.Context, in types.SubmitResponse) (types.Response, error) {
	var out types.Response

	err := c.executeTx(ctx, func(tx pgx.Tx) error {
		post, err := selectPost(ctx, tx, in.Post, "", true)
		if err != nil {
			return err
		}

		if post.UserID == in.Traveller().ID {
			return ErrOwnPostResponse
		}

		if post.Status != types.PostStatusPending {
			return ErrPostAlreadyResolved
		}

		query := `
			INSERT INTO responses (
				  post_kind
				, post_id
				, traveller_id
				, traveller_name
				, message
				, estimated_delivery
				, price_offer
			) VALUES (
				  @post_kind
				, @post_id
				, @traveller_id
				, @traveller_name
				, @message
				, @estimated_delivery
				, @price_offer
			)
			RETURNING ` + sqlResponseCols
		args := pgx.StrictNamedArgs{
			"post_kind":          in.Post.Kind,
			"post_id":            in.Post.ID,
			"traveller_id":       in.Traveller().ID,
			"traveller_name":     in.Traveller().Username,
			"message":            in.Message,
			"estimated_delivery": in.EstimatedDelivery,
			"price_offer":        in.PriceOffer,
		}
		out, err = pgxutil.SelectRow(ctx, tx, query, []any{args}, pgx.RowToStructByNameLax[types.Response])
		if err != nil {
			return fmt.Errorf("sql insert response: %w", err)
		}

		out.Post = &post

		return nil
	})

	return out, err
}

// PostResponses returns the responses of a post, oldest first.
func (c *Cockroach) PostResponses(ctx context.Context, ref types.PostRef) ([]types.Response, error) {
	query := `
		SELECT ` + sqlResponseCols + `
		FROM responses
		WHERE responses.post_kind = @post_kind AND responses.post_id = @post_id
		ORDER BY responses.created_at ASC, responses.id ASC
	`
	args := pgx.StrictNamedArgs{
		"post_kind": ref.Kind,
		"post_id":   ref.ID,
	}
	responses, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Response])
	if err != nil {
		return nil, fmt.Errorf("sql select post responses: %w", err)
	}

	return responses, nil
}

// UserResponses returns every response submitted by the user, newest first,
// each one joined with its post.
func (c *Cockroach) UserResponses(ctx context.Context, userID string) ([]types.Response, error) {
	query := `
		SELECT ` + sqlResponseCols + `
		FROM responses
		WHERE responses.traveller_id = @traveller_id
		ORDER BY responses.created_at DESC, responses.id DESC
	`
	args := pgx.StrictNamedArgs{"traveller_id": userID}
	responses, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Response])
	if err != nil {
		return nil, fmt.Errorf("sql select user responses: %w", err)
	}

	if len(responses) == 0 {
		return responses, nil
	}

	postIDs := map[types.PostKind][]string{}
	for _, r := range responses {
		postIDs[r.PostKind] = append(postIDs[r.PostKind], r.PostID)
	}

	senderPosts := map[string]types.Post{}
	travellerPosts := map[string]types.Post{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.postsByIDs(gctx, types.PostKindSender, postIDs[types.PostKindSender], senderPosts)
	})
	g.Go(func() error {
		return c.postsByIDs(gctx, types.PostKindTraveller, postIDs[types.PostKindTraveller], travellerPosts)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, r := range responses {
		var p types.Post
		var ok bool
		switch r.PostKind {
		case types.PostKindSender:
			p, ok = senderPosts[r.PostID]
		case types.PostKindTraveller:
			p, ok = travellerPosts[r.PostID]
		}
		if ok {
			responses[i].Post = &p
		}
	}

	return responses, nil
}

func (c *Cockroach) postsByIDs(ctx context.Context, kind types.PostKind, ids []string, dst map[string]types.Post) error {
	if len(ids) == 0 {
		return nil
	}

	t, err := tableOf(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s.id = ANY(@post_ids)", t.cols, t.name, t.name)
	args := pgx.StrictNamedArgs{"post_ids": ids}
	posts, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Post])
	if err != nil {
		return fmt.Errorf("sql select %s by ids: %w", t.name, err)
	}

	for _, p := range posts {
		dst[p.ID] = p
	}

	return nil
}

// AcceptResponse marks the response as accepted, the post as accepted
// and every other pending response of the post as rejected, all at once.
// The post status moves only from pending, so a second acceptance
// on the same post finds nothing to change and reports it as already resolved.
func (c *Cockroach) AcceptResponse(ctx context.Context, in types.AcceptResponse) (types.AcceptedResponse, error) {
	var out types.AcceptedResponse

	err := c.executeTx(ctx, func(tx pgx.Tx) error {
		resp, err := selectResponse(ctx, tx, in.ResponseID)
		if err != nil {
			return err
		}

		if resp.PostRef() != in.Post {
			return ErrResponseNotFound
		}

		post, err := selectPost(ctx, tx, in.Post, "", true)
		if err != nil {
			return err
		}

		if post.UserID != in.UserID() {
			return ErrNotPostOwner
		}

		if post.Status != types.PostStatusPending {
			return ErrPostAlreadyResolved
		}

		if resp.Status != types.ResponseStatusPending {
			return ErrResponseNotActive
		}

		t, err := tableOf(in.Post.Kind)
		if err != nil {
			return err
		}

		query := fmt.Sprintf(`
			UPDATE %s SET status = 'accepted', updated_at = now()
			WHERE id = @post_id AND status = 'pending'`, t.name)
		tag, err := tx.Exec(ctx, query, pgx.StrictNamedArgs{"post_id": in.Post.ID})
		if err != nil {
			return fmt.Errorf("sql accept post: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return ErrPostAlreadyResolved
		}

		query = `
			UPDATE responses SET status = 'accepted', updated_at = now()
			WHERE id = @response_id AND status = 'pending'
			RETURNING ` + sqlResponseCols
		accepted, err := pgxutil.SelectRow(ctx, tx, query, []any{pgx.StrictNamedArgs{
			"response_id": in.ResponseID,
		}}, pgx.RowToStructByNameLax[types.Response])
		if db.IsNotFoundError(err) {
			return ErrResponseNotActive
		}

		if err != nil {
			return fmt.Errorf("sql accept response: %w", err)
		}

		rejected, err := rejectPendingResponses(ctx, tx, in.Post)
		if err != nil {
			return err
		}

		accepted.Post = &post
		accepted.Post.Status = types.PostStatusAccepted

		out = types.AcceptedResponse{
			Response:      accepted,
			RejectedCount: rejected,
		}

		return nil
	})

	return out, err
}

func selectResponse(ctx context.Context, q querier, responseID string) (types.Response, error) {
	query := `
		SELECT ` + sqlResponseCols + `
		FROM responses
		WHERE responses.id = @response_id
	`
	args := pgx.StrictNamedArgs{"response_id": responseID}
	out, err := pgxutil.SelectRow(ctx, q, query, []any{args}, pgx.RowToStructByNameLax[types.Response])
	if db.IsNotFoundError(err) {
		return out, ErrResponseNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql select response: %w", err)
	}

	return out, nil
}

// rejectPendingResponses rejects every still pending response of the post
// and returns how many were rejected.
func rejectPendingResponses(ctx context.Context, q querier, ref types.PostRef) (int64, error) {
	const query = `
		UPDATE responses SET status = 'rejected', updated_at = now()
		WHERE post_kind = @post_kind AND post_id = @post_id AND status = 'pending'
	`
	tag, err := q.Exec(ctx, query, pgx.StrictNamedArgs{
		"post_kind": ref.Kind,
		"post_id":   ref.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("sql reject pending responses: %w", err)
	}

	return tag.RowsAffected(), nil
}
