package water

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/dates"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("water entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO water_logs (user_id, amount_oz, logged_at) VALUES ($1, $2, $3) RETURNING id;`,
		entry.UserID, entry.AmountOz, entry.LoggedAt,
	).Scan(&id); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("water.id", id))

	entry.ID = id
	return &entry, nil
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM water_logs WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ListForDay returns entries logged between the day's UTC start and end.
func (r *Repo) ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]Entry, error) {
	return r.ListRange(ctx, userID, date, date)
}

func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from))
	span.SetAttributes(attribute.String("to", to))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, amount_oz, logged_at
			FROM water_logs
			WHERE user_id = $1 AND logged_at >= $2::timestamptz AND logged_at <= $3::timestamptz
			ORDER BY logged_at;`,
		userID, dates.StartOfDay(from), dates.EndOfDay(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.AmountOz, &e.LoggedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
