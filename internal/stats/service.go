package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/fittrack/internal/dates"
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/mood"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats_test

type mealsReader interface {
	ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]meals.Meal, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]meals.Meal, error)
}

type workoutsReader interface {
	ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]workouts.Workout, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]workouts.Workout, error)
}

type waterReader interface {
	ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]water.Entry, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]water.Entry, error)
}

type moodReader interface {
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]mood.Checkin, error)
}

type profileReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
}

type MacroReport struct {
	Date        string                `json:"date"`
	Totals      Macros                `json:"totals"`
	Percentages MacroPercentages      `json:"percentages"`
	Targets     *profile.MacroTargets `json:"targets"`
	ByMealType  map[string]float64    `json:"byMealType"`
}

type RangeStats struct {
	dates.Range
	Days []DayStats `json:"days"`
}

// Service fetches what a report needs and hands it to the reducers.
// Independent reads of one report run concurrently.
type Service struct {
	meals    mealsReader
	workouts workoutsReader
	water    waterReader
	mood     moodReader
	profiles profileReader
	dates    *dates.Dates
}

type NewServiceParams struct {
	Meals    mealsReader
	Workouts workoutsReader
	Water    waterReader
	Mood     moodReader
	Profiles profileReader
	Dates    *dates.Dates
}

func NewService(params NewServiceParams) *Service {
	d := params.Dates
	if d == nil {
		d = dates.New(nil)
	}
	return &Service{
		meals:    params.Meals,
		workouts: params.Workouts,
		water:    params.Water,
		mood:     params.Mood,
		profiles: params.Profiles,
		dates:    d,
	}
}

func (s *Service) Daily(ctx context.Context, userID uuid.UUID, date string) (_ *DailyStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.daily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	var in DailyInput
	in.Date = date

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Meals, err = s.meals.ListForDay(gctx, userID, date)
		if err != nil {
			return fmt.Errorf("list meals: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		in.Workouts, err = s.workouts.ListForDay(gctx, userID, date)
		if err != nil {
			return fmt.Errorf("list workouts: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		in.Water, err = s.water.ListForDay(gctx, userID, date)
		if err != nil {
			return fmt.Errorf("list water: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		in.Profile, err = s.profiles.Get(gctx, userID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	daily := GenerateDailyStats(in)
	return &daily, nil
}

// Weekly reports the Sunday started week that contains date.
func (s *Service) Weekly(ctx context.Context, userID uuid.UUID, date string) (_ *WeeklyStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	day, err := dates.ParseDate(date)
	if err != nil {
		return nil, err
	}
	weekStart := dates.StartOfWeek(day)
	from := dates.FormatDateString(weekStart)
	to := dates.FormatDateString(weekStart.AddDate(0, 0, daysInWeek-1))

	rows, err := s.fetchRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	weekly := GenerateWeeklyStats(WeeklyInput{
		Meals:     rows.Meals,
		Workouts:  rows.Workouts,
		Water:     rows.Water,
		Checkins:  rows.Checkins,
		Profile:   rows.Profile,
		WeekStart: weekStart,
	})
	return &weekly, nil
}

// Range reports every day from today-days to today.
func (s *Service) Range(ctx context.Context, userID uuid.UUID, days int) (_ *RangeStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	dateRange := s.dates.DateRange(days)
	rows, err := s.fetchRange(ctx, userID, dateRange.StartDate, dateRange.EndDate)
	if err != nil {
		return nil, err
	}

	start, err := dates.ParseDate(dateRange.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := dates.ParseDate(dateRange.EndDate)
	if err != nil {
		return nil, err
	}
	rows.Days = dates.DaysInRange(start, end)

	return &RangeStats{
		Range: dateRange,
		Days:  GenerateRangeStats(*rows),
	}, nil
}

func (s *Service) Macros(ctx context.Context, userID uuid.UUID, date string) (_ *MacroReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.macros")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	var dayMeals []meals.Meal
	var p *profile.Profile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dayMeals, err = s.meals.ListForDay(gctx, userID, date)
		if err != nil {
			return fmt.Errorf("list meals: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		p, err = s.profiles.Get(gctx, userID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := TotalMacros(dayMeals)
	report := &MacroReport{
		Date: date,
		Totals: Macros{
			Protein: nutrition.RoundTo1(totals.Protein),
			Carbs:   nutrition.RoundTo1(totals.Carbs),
			Fat:     nutrition.RoundTo1(totals.Fat),
		},
		Percentages: CalculateMacroPercentages(totals),
		ByMealType:  MealTypeBreakdown(dayMeals),
	}
	if p != nil {
		report.Targets = p.MacroTargets
	}

	return report, nil
}

func (s *Service) fetchRange(ctx context.Context, userID uuid.UUID, from, to string) (*RangeInput, error) {
	var rows RangeInput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows.Meals, err = s.meals.ListRange(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("list meals: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		rows.Workouts, err = s.workouts.ListRange(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("list workouts: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		rows.Water, err = s.water.ListRange(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("list water: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		rows.Checkins, err = s.mood.ListRange(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("list checkins: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		rows.Profile, err = s.profiles.Get(gctx, userID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &rows, nil
}
