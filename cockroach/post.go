package cockroach

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgxutil"
	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/types"
	"github.com/nicolasparada/go-db"
)

var (
	ErrPostNotFound        = errs.NotFoundError("post not found")
	ErrPostAlreadyResolved = errs.AlreadyResolvedError("post is no longer pending")
)

const sqlSenderPostCols = `
	  sender_posts.id
	, 'sender_post' AS kind
	, sender_posts.user_id
	, sender_posts.username
	, sender_posts.email
	, sender_posts.source
	, sender_posts.destination
	, sender_posts.expected_time
	, sender_posts.additional_details
	, sender_posts.status
	, sender_posts.created_at
	, sender_posts.updated_at
	, sender_posts.product_name
	, sender_posts.product_weight
	, sender_posts.length
	, sender_posts.breadth
	, sender_posts.height
	, sender_posts.is_fragile
	, sender_posts.receiver_details
	, sender_posts.payment_min
	, sender_posts.payment_max
	, sender_posts.category
	, sender_posts.image_url
`

const sqlTravellerPostCols = `
	  traveller_posts.id
	, 'traveller_post' AS kind
	, traveller_posts.user_id
	, traveller_posts.username
	, traveller_posts.email
	, traveller_posts.source
	, traveller_posts.destination
	, traveller_posts.expected_time
	, traveller_posts.additional_details
	, traveller_posts.status
	, traveller_posts.created_at
	, traveller_posts.updated_at
	, traveller_posts.mode_of_travel
	, traveller_posts.parcel_size
	, traveller_posts.travel_details
	, traveller_posts.expected_amount
	, traveller_posts.agree_terms
`

// querier is satisfied by both [*db.DB] and [pgx.Tx].
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// postTable describes where and how a post kind is stored.
type postTable struct {
	name string
	cols string

	// price columns used by the payment range filter.
	minCol string
	maxCol string

	// text columns searched by the free-text filter.
	searchCols []string
}

func tableOf(kind types.PostKind) (postTable, error) {
	switch kind {
	case types.PostKindSender:
		return postTable{
			name:       "sender_posts",
			cols:       sqlSenderPostCols,
			minCol:     "sender_posts.payment_min",
			maxCol:     "sender_posts.payment_max",
			searchCols: []string{"source", "destination", "additional_details", "product_name", "category", "receiver_details"},
		}, nil
	case types.PostKindTraveller:
		return postTable{
			name:       "traveller_posts",
			cols:       sqlTravellerPostCols,
			minCol:     "traveller_posts.expected_amount",
			maxCol:     "traveller_posts.expected_amount",
			searchCols: []string{"source", "destination", "additional_details", "mode_of_travel", "parcel_size", "travel_details"},
		}, nil
	}

	return postTable{}, types.ErrInvalidPostKind
}

func (c *Cockroach) CreateSenderPost(ctx context.Context, in types.CreateSenderPost) (types.Post, error) {
	owner := in.Owner()
	query := `
		INSERT INTO sender_posts (
			  user_id
			, username
			, email
			, product_name
			, product_weight
			, length
			, breadth
			, height
			, is_fragile
			, source
			, destination
			, receiver_details
			, expected_time
			, payment_min
			, payment_max
			, category
			, additional_details
		) VALUES (
			  @user_id
			, @username
			, @email
			, @product_name
			, @product_weight
			, @length
			, @breadth
			, @height
			, @is_fragile
			, @source
			, @destination
			, @receiver_details
			, @expected_time
			, @payment_min
			, @payment_max
			, @category
			, @additional_details
		)
		RETURNING ` + sqlSenderPostCols
	args := pgx.StrictNamedArgs{
		"user_id":            owner.ID,
		"username":           owner.Username,
		"email":              emptyStrPtr(owner.Email),
		"product_name":       in.ProductName,
		"product_weight":     in.ProductWeight,
		"length":             in.Length,
		"breadth":            in.Breadth,
		"height":             in.Height,
		"is_fragile":         in.IsFragile,
		"source":             in.Source,
		"destination":        in.Destination,
		"receiver_details":   in.ReceiverDetails,
		"expected_time":      in.ExpectedTime,
		"payment_min":        in.PaymentMin,
		"payment_max":        in.PaymentMax,
		"category":           in.Category,
		"additional_details": in.AdditionalDetails,
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Post])
	if err != nil {
		return out, fmt.Errorf("sql insert sender post: %w", err)
	}

	return out, nil
}

func (c *Cockroach) CreateTravellerPost(ctx context.Context, in types.CreateTravellerPost) (types.Post, error) {
	owner := in.Owner()
	query := `
		INSERT INTO traveller_posts (
			  user_id
			, username
			, email
			, mode_of_travel
			, source
			, destination
			, expected_time
			, parcel_size
			, travel_details
			, expected_amount
			, additional_details
			, agree_terms
		) VALUES (
			  @user_id
			, @username
			, @email
			, @mode_of_travel
			, @source
			, @destination
			, @expected_time
			, @parcel_size
			, @travel_details
			, @expected_amount
			, @additional_details
			, @agree_terms
		)
		RETURNING ` + sqlTravellerPostCols
	args := pgx.StrictNamedArgs{
		"user_id":            owner.ID,
		"username":           owner.Username,
		"email":              emptyStrPtr(owner.Email),
		"mode_of_travel":     in.ModeOfTravel,
		"source":             in.Source,
		"destination":        in.Destination,
		"expected_time":      in.ExpectedTime,
		"parcel_size":        in.ParcelSize,
		"travel_details":     in.TravelDetails,
		"expected_amount":    in.ExpectedAmount,
		"additional_details": in.AdditionalDetails,
		"agree_terms":        in.AgreeTerms,
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Post])
	if err != nil {
		return out, fmt.Errorf("sql insert traveller post: %w", err)
	}

	return out, nil
}

// PostsByOwner returns every post of the given kind owned by the user, newest first.
func (c *Cockroach) PostsByOwner(ctx context.Context, in types.ListUserPosts) ([]types.Post, error) {
	t, err := tableOf(in.Kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s.user_id = @user_id
		ORDER BY %s.created_at DESC, %s.id DESC`, t.cols, t.name, t.name, t.name, t.name)
	args := pgx.StrictNamedArgs{"user_id": in.UserID()}
	posts, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Post])
	if err != nil {
		return nil, fmt.Errorf("sql select posts by owner: %w", err)
	}

	return posts, nil
}

// openPostFilters builds the filters of an open posts query.
// Only pending posts are ever listed.
func openPostFilters(t postTable, in types.ListOpenPosts) ([]string, pgx.StrictNamedArgs) {
	filters := []string{t.name + ".status = 'pending'"}
	args := pgx.StrictNamedArgs{}

	if in.Query != nil && *in.Query != "" {
		ors := make([]string, len(t.searchCols))
		for i, col := range t.searchCols {
			ors[i] = t.name + "." + col + " ILIKE @query"
		}
		filters = append(filters, "("+strings.Join(ors, " OR ")+")")
		args["query"] = "%" + escapeLike(*in.Query) + "%"
	}

	// Interval overlap between the post price range and the requested one.
	if in.PaymentMin != nil {
		filters = append(filters, t.maxCol+" >= @payment_min")
		args["payment_min"] = *in.PaymentMin
	}
	if in.PaymentMax != nil {
		filters = append(filters, t.minCol+" <= @payment_max")
		args["payment_max"] = *in.PaymentMax
	}

	if in.From != nil {
		filters = append(filters, t.name+".expected_time >= @from")
		args["from"] = *in.From
	}
	if in.To != nil {
		filters = append(filters, t.name+".expected_time <= @to")
		args["to"] = *in.To
	}

	return filters, args
}

// OpenPosts lists pending posts matching the filter, newest first.
func (c *Cockroach) OpenPosts(ctx context.Context, in types.ListOpenPosts) (types.Page[types.Post], error) {
	var out types.Page[types.Post]

	t, err := tableOf(in.Kind)
	if err != nil {
		return out, err
	}

	k, err := newKeyset(in.PageArgs)
	if err != nil {
		return out, err
	}

	filters, args := openPostFilters(t, in)
	filters, tail := k.clauses(t.name, filters, args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		%s`,
		t.cols,
		t.name,
		where(filters),
		tail,
	)

	posts, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Post])
	if err != nil {
		return out, fmt.Errorf("sql select open posts: %w", err)
	}

	return k.page(posts)
}

func (c *Cockroach) Post(ctx context.Context, ref types.PostRef) (types.Post, error) {
	return selectPost(ctx, c.db, ref, "", false)
}

// selectPost reads a post, optionally scoped to its owner
// and locked for the rest of the transaction.
func selectPost(ctx context.Context, q querier, ref types.PostRef, ownerID string, forUpdate bool) (types.Post, error) {
	var out types.Post

	t, err := tableOf(ref.Kind)
	if err != nil {
		return out, err
	}

	filters := []string{t.name + ".id = @post_id"}
	args := pgx.StrictNamedArgs{"post_id": ref.ID}
	if ownerID != "" {
		filters = append(filters, t.name+".user_id = @user_id")
		args["user_id"] = ownerID
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s", t.cols, t.name, where(filters))
	if forUpdate {
		query += " FOR UPDATE"
	}

	out, err = pgxutil.SelectRow(ctx, q, query, []any{args}, pgx.RowToStructByNameLax[types.Post])
	if db.IsNotFoundError(err) {
		return out, ErrPostNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql select post: %w", err)
	}

	return out, nil
}

// UpdatePost applies the patch to a pending post owned by the user.
// A post owned by someone else is reported as not found.
func (c *Cockroach) UpdatePost(ctx context.Context, in types.UpdatePost) (types.Post, error) {
	var out types.Post

	return out, c.db.RunTx(ctx, func(ctx context.Context) error {
		current, err := selectPost(ctx, c.db, in.Ref, in.UserID(), true)
		if err != nil {
			return err
		}

		if current.Status != types.PostStatusPending {
			return ErrPostAlreadyResolved
		}

		if err := checkPaymentRange(current, in); err != nil {
			return err
		}

		sets, args := postUpdates(in)
		if len(sets) == 0 {
			out = current
			return nil
		}

		t, err := tableOf(in.Ref.Kind)
		if err != nil {
			return err
		}

		args["post_id"] = in.Ref.ID
		query := fmt.Sprintf(`
			UPDATE %s SET %s, updated_at = now()
			WHERE %s.id = @post_id
			RETURNING %s`, t.name, strings.Join(sets, ", "), t.name, t.cols)

		out, err = pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Post])
		if err != nil {
			return fmt.Errorf("sql update post: %w", err)
		}

		return nil
	})
}

func checkPaymentRange(current types.Post, in types.UpdatePost) error {
	if in.PaymentMin == nil && in.PaymentMax == nil {
		return nil
	}

	lo, hi := current.PaymentMin, current.PaymentMax
	if in.PaymentMin != nil {
		lo = in.PaymentMin
	}
	if in.PaymentMax != nil {
		hi = in.PaymentMax
	}

	if lo != nil && hi != nil && *hi < *lo {
		return errs.NewInvalidArgumentError("PaymentMax", "PaymentMax must be greater or equal than PaymentMin")
	}

	return nil
}

func postUpdates(in types.UpdatePost) ([]string, pgx.StrictNamedArgs) {
	var sets []string
	args := pgx.StrictNamedArgs{}

	set := func(col string, v any, present bool) {
		if !present {
			return
		}
		sets = append(sets, col+" = @"+col)
		args[col] = v
	}

	set("source", in.Source, in.Source != nil)
	set("destination", in.Destination, in.Destination != nil)
	set("expected_time", in.ExpectedTime, in.ExpectedTime != nil)
	set("additional_details", in.AdditionalDetails, in.AdditionalDetails != nil)

	switch in.Ref.Kind {
	case types.PostKindSender:
		set("product_name", in.ProductName, in.ProductName != nil)
		set("product_weight", in.ProductWeight, in.ProductWeight != nil)
		set("length", in.Length, in.Length != nil)
		set("breadth", in.Breadth, in.Breadth != nil)
		set("height", in.Height, in.Height != nil)
		set("is_fragile", in.IsFragile, in.IsFragile != nil)
		set("receiver_details", in.ReceiverDetails, in.ReceiverDetails != nil)
		set("payment_min", in.PaymentMin, in.PaymentMin != nil)
		set("payment_max", in.PaymentMax, in.PaymentMax != nil)
		set("category", in.Category, in.Category != nil)
	case types.PostKindTraveller:
		set("mode_of_travel", in.ModeOfTravel, in.ModeOfTravel != nil)
		set("parcel_size", in.ParcelSize, in.ParcelSize != nil)
		set("travel_details", in.TravelDetails, in.TravelDetails != nil)
		set("expected_amount", in.ExpectedAmount, in.ExpectedAmount != nil)
	}

	return sets, args
}

// DeletePost removes a pending post owned by the user
// and rejects its still pending responses.
func (c *Cockroach) DeletePost(ctx context.Context, in types.DeletePost) (int64, error) {
	var rejected int64

	return rejected, c.db.RunTx(ctx, func(ctx context.Context) error {
		current, err := selectPost(ctx, c.db, in.Ref, in.UserID(), true)
		if err != nil {
			return err
		}

		if current.Status != types.PostStatusPending {
			return ErrPostAlreadyResolved
		}

		rejected, err = rejectPendingResponses(ctx, c.db, in.Ref)
		if err != nil {
			return err
		}

		t, err := tableOf(in.Ref.Kind)
		if err != nil {
			return err
		}

		query := fmt.Sprintf("DELETE FROM %s WHERE id = @post_id", t.name)
		_, err = c.db.Exec(ctx, query, pgx.StrictNamedArgs{"post_id": in.Ref.ID})
		if err != nil {
			return fmt.Errorf("sql delete post: %w", err)
		}

		return nil
	})
}

// SetPostImageURL stores the image URL of a sender post owned by the user.
func (c *Cockroach) SetPostImageURL(ctx context.Context, in types.AttachPostImage, imageURL string) (types.Post, error) {
	query := `
		UPDATE sender_posts SET image_url = @image_url, updated_at = now()
		WHERE sender_posts.id = @post_id AND sender_posts.user_id = @user_id
		RETURNING ` + sqlSenderPostCols
	args := pgx.StrictNamedArgs{
		"image_url": imageURL,
		"post_id":   in.Ref.ID,
		"user_id":   in.UserID(),
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Post])
	if db.IsNotFoundError(err) {
		return out, ErrPostNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql update post image: %w", err)
	}

	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func emptyStrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
