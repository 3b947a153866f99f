package cockroach

import (
	"context"
	"embed"
	"errors"
	"strings"

	"github.com/cockroachdb/cockroach-go/v2/crdb"
	"github.com/cockroachdb/cockroach-go/v2/crdb/crdbpgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nicolasparada/go-db"
)

//go:embed migrations/*.sql
var MigrationsFS embed.FS

// maxTxRetries bounds the retries of serializable transactions
// before giving up with a conflict.
const maxTxRetries = 10

var ErrConcurrentUpdate = errs.ConflictError("concurrent update, try again")

type Cockroach struct {
	db   *db.DB
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Cockroach {
	return &Cockroach{
		db:   db.New(pool),
		pool: pool,
	}
}

// executeTx runs fn in a serializable transaction retried on
// serialization failures. Exhausted retries are reported as [ErrConcurrentUpdate].
func (c *Cockroach) executeTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	ctx = crdb.WithMaxRetries(ctx, maxTxRetries)
	err := crdbpgx.ExecuteTx(ctx, c.pool, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
	if isSerializationFailure(err) {
		return ErrConcurrentUpdate
	}

	return err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

func where(filters []string) string {
	if len(filters) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(filters, " AND ") + " "
}
