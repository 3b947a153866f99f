package cockroach

import (
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/jackc/pgx/v5"
	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/types"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultPageSize = 20

var ErrInvalidCursor = errs.InvalidArgumentError("invalid cursor")

// postCursor points at a post inside a newest first listing.
type postCursor struct {
	ID        string    `msgpack:"i"`
	CreatedAt time.Time `msgpack:"t"`
}

func encodeCursor(c postCursor) (string, error) {
	b, err := msgpack.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("msgpack marshal cursor: %w", err)
	}

	return base58.Encode(b), nil
}

func decodeCursor(s string) (postCursor, error) {
	var c postCursor

	b := base58.Decode(s)
	if len(b) == 0 {
		return c, ErrInvalidCursor
	}

	if err := msgpack.Unmarshal(b, &c); err != nil || !types.ValidUUIDv4(c.ID) {
		return c, ErrInvalidCursor
	}

	return c, nil
}

// keyset is a decoded page request over (created_at, id).
// Backwards pages are read oldest first and flipped afterwards.
type keyset struct {
	size      uint
	backwards bool
	after     *postCursor
	before    *postCursor
}

func newKeyset(in types.PageArgs) (keyset, error) {
	k := keyset{
		size:      defaultPageSize,
		backwards: in.IsBackwards(),
	}

	if in.First != nil {
		k.size = *in.First
	}

	if in.Last != nil {
		k.size = *in.Last
	}

	if in.After != nil {
		c, err := decodeCursor(*in.After)
		if err != nil {
			return k, err
		}

		k.after = &c
	}

	if in.Before != nil {
		c, err := decodeCursor(*in.Before)
		if err != nil {
			return k, err
		}

		k.before = &c
	}

	return k, nil
}

// clauses appends the cursor condition to filters and returns
// the ORDER BY and LIMIT clauses for the given table.
// One extra row is requested to know whether another page exists.
func (k keyset) clauses(table string, filters []string, args pgx.StrictNamedArgs) ([]string, string) {
	if k.after != nil {
		filters = append(filters, fmt.Sprintf("(%s.created_at, %s.id) < (@after_created_at, @after_id)", table, table))
		args["after_created_at"] = k.after.CreatedAt
		args["after_id"] = k.after.ID
	} else if k.before != nil {
		filters = append(filters, fmt.Sprintf("(%s.created_at, %s.id) > (@before_created_at, @before_id)", table, table))
		args["before_created_at"] = k.before.CreatedAt
		args["before_id"] = k.before.ID
	}

	dir := "DESC"
	if k.backwards {
		dir = "ASC"
	}

	tail := fmt.Sprintf("ORDER BY %s.created_at %s, %s.id %s LIMIT %d", table, dir, table, dir, k.size+1)
	return filters, tail
}

// page trims the extra row, restores newest first order
// and fills the page info.
func (k keyset) page(posts []types.Post) (types.Page[types.Post], error) {
	out := types.Page[types.Post]{Items: posts}

	more := uint(len(posts)) > k.size
	if more {
		out.Items = out.Items[:k.size]
	}

	if k.backwards {
		slices.Reverse(out.Items)
		out.PageInfo.HasPreviousPage = more
		out.PageInfo.HasNextPage = k.before != nil
	} else {
		out.PageInfo.HasNextPage = more
		out.PageInfo.HasPreviousPage = k.after != nil
	}

	if len(out.Items) == 0 {
		return out, nil
	}

	first, last := out.Items[0], out.Items[len(out.Items)-1]

	start, err := encodeCursor(postCursor{ID: first.ID, CreatedAt: first.CreatedAt})
	if err != nil {
		return out, fmt.Errorf("encode start cursor: %w", err)
	}

	end, err := encodeCursor(postCursor{ID: last.ID, CreatedAt: last.CreatedAt})
	if err != nil {
		return out, fmt.Errorf("encode end cursor: %w", err)
	}

	out.PageInfo.StartCursor = &start
	out.PageInfo.EndCursor = &end

	return out, nil
}
