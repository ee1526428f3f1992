package meals

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

var ErrMealNotFound = errors.New("meal not found")

const mealColumns = `id, user_id, name, calories, protein, carbs, fat, fiber, sugar, meal_type, meal_date::text, photo_key, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO meals
				(user_id, name, calories, protein, carbs, fat, fiber, sugar, meal_type, meal_date, photo_key, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id;`,
		meal.UserID, meal.Name, meal.Calories, meal.Protein, meal.Carbs, meal.Fat, meal.Fiber, meal.Sugar,
		meal.MealType, meal.MealDate, meal.PhotoKey, meal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int64("meal.id", id))

	meal.ID = id
	return &meal, nil
}

func (r *Repo) Get(ctx context.Context, userID uuid.UUID, id int64) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealColumns+` FROM meals WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals, err := rows2meals(rows)
	if err != nil {
		return nil, err
	}
	if len(meals) != 1 {
		return nil, ErrMealNotFound
	}

	return &meals[0], nil
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM meals WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (r *Repo) ListForDay(ctx context.Context, userID uuid.UUID, date string) (_ []Meal, err error) {
	return r.ListRange(ctx, userID, date, date)
}

// ListRange returns the user's meals with meal_date in [from, to], both included.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to string) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from))
	span.SetAttributes(attribute.String("to", to))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealColumns+`
			FROM meals
			WHERE user_id = $1 AND meal_date >= $2 AND meal_date <= $3
			ORDER BY meal_date, created_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2meals(rows)
}

// Count returns the number of meals logged by all users in [from, to].
func (r *Repo) Count(ctx context.Context, from, to string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM meals WHERE meal_date >= $1 AND meal_date <= $2;`,
		from, to,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func rows2meals(rows pgx.Rows) ([]Meal, error) {
	var meals []Meal
	for rows.Next() {
		var m Meal
		var photoKey *string
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Name,
			&m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.Fiber, &m.Sugar,
			&m.MealType, &m.MealDate, &photoKey, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if photoKey != nil {
			m.PhotoKey = *photoKey
		}
		meals = append(meals, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}
