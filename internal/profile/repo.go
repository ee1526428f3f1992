package profile

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p := &Profile{UserID: userID}
	err = r.db.QueryRow(
		ctx,
		`SELECT COALESCE(display_name, ''), macro_targets, updated_at FROM profiles WHERE user_id = $1;`,
		userID,
	).Scan(&p.DisplayName, &p.MacroTargets, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repo) UpsertMacroTargets(ctx context.Context, userID uuid.UUID, targets MacroTargets, updatedAt time.Time) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upserttargets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p := &Profile{UserID: userID}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO profiles (user_id, macro_targets, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id) DO UPDATE
				SET macro_targets = EXCLUDED.macro_targets, updated_at = EXCLUDED.updated_at
			RETURNING COALESCE(display_name, ''), macro_targets, updated_at;`,
		userID, targets, updatedAt,
	).Scan(&p.DisplayName, &p.MacroTargets, &p.UpdatedAt); err != nil {
		return nil, err
	}

	return p, nil
}
