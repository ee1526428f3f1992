package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workouts
				(user_id, workout_type, duration_minutes, estimated_calories_burned, workout_date, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		workout.UserID, workout.WorkoutType, workout.DurationMinutes, workout.EstimatedCaloriesBurned,
		workout.WorkoutDate, workout.Notes, workout.CreatedAt,
	).Scan(&id); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("workout.id", id))

	workout.ID = id
	return &workout, nil
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]Workout, error) {
	return r.ListRange(ctx, userID, date, date)
}

func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from))
	span.SetAttributes(attribute.String("to", to))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_type, duration_minutes, estimated_calories_burned, workout_date::text, COALESCE(notes, ''), created_at
			FROM workouts
			WHERE user_id = $1 AND workout_date >= $2 AND workout_date <= $3
			ORDER BY workout_date, created_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2workouts(rows)
}

func (r *Repo) Count(ctx context.Context, from, to string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workouts WHERE workout_date >= $1 AND workout_date <= $2;`,
		from, to,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.WorkoutType, &w.DurationMinutes, &w.EstimatedCaloriesBurned,
			&w.WorkoutDate, &w.Notes, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}
