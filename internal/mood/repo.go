package mood

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrCheckinExists = errors.New("checkin for this date already exists")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, checkin Checkin) (_ *Checkin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mood.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkin.Validate(); err != nil {
		return nil, err
	}

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO mood_checkins (user_id, mood_rating, energy_rating, notes, checkin_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		checkin.UserID, checkin.MoodRating, checkin.EnergyRating, checkin.Notes, checkin.CheckinDate, checkin.CreatedAt,
	).Scan(&id); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrCheckinExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int64("checkin.id", id))

	checkin.ID = id
	return &checkin, nil
}

func (r *Repo) ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]Checkin, error) {
	return r.ListRange(ctx, userID, date, date)
}

func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to string) (_ []Checkin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mood.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from))
	span.SetAttributes(attribute.String("to", to))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, mood_rating, energy_rating, COALESCE(notes, ''), checkin_date::text, created_at
			FROM mood_checkins
			WHERE user_id = $1 AND checkin_date >= $2 AND checkin_date <= $3
			ORDER BY checkin_date;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkins []Checkin
	for rows.Next() {
		var c Checkin
		if err := rows.Scan(&c.ID, &c.UserID, &c.MoodRating, &c.EnergyRating, &c.Notes, &c.CheckinDate, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		checkins = append(checkins, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return checkins, nil
}
