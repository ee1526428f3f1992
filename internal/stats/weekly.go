package stats

import (
	"time"

	"github.com/2beens/fittrack/internal/dates"
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/mood"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/internal/workouts"
)

const daysInWeek = 7

// RangeInput holds rows fetched for a span of days. Rows dated outside
// Days are ignored.
type RangeInput struct {
	Meals    []meals.Meal
	Workouts []workouts.Workout
	Water    []water.Entry
	Checkins []mood.Checkin
	Profile  *profile.Profile
	Days     []string
}

type DayStats struct {
	DailyStats
	DayName string   `json:"dayName"`
	Mood    *float64 `json:"mood"`
	Energy  *float64 `json:"energy"`
}

type WeeklyInput struct {
	Meals     []meals.Meal
	Workouts  []workouts.Workout
	Water     []water.Entry
	Checkins  []mood.Checkin
	Profile   *profile.Profile
	WeekStart time.Time
}

type WeekTotals struct {
	Consumed       float64 `json:"consumed"`
	Burned         float64 `json:"burned"`
	Net            float64 `json:"net"`
	WorkoutMinutes int     `json:"workoutMinutes"`
	WaterOz        float64 `json:"waterOz"`
	MealsLogged    int     `json:"mealsLogged"`
	WorkoutsLogged int     `json:"workoutsLogged"`
}

type WeekAverages struct {
	Consumed float64 `json:"consumed"`
	Burned   float64 `json:"burned"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	WaterOz  float64 `json:"waterOz"`
}

type WeeklyStats struct {
	WeekStart     string       `json:"weekStart"`
	WeekEnd       string       `json:"weekEnd"`
	Goal          float64      `json:"goal"`
	Days          []DayStats   `json:"days"`
	Totals        WeekTotals   `json:"totals"`
	Averages      WeekAverages `json:"averages"`
	DaysLogged    int          `json:"daysLogged"`
	AverageMood   *float64     `json:"averageMood"`
	AverageEnergy *float64     `json:"averageEnergy"`
}

// GenerateRangeStats buckets the rows by their day and builds one DayStats
// per entry of in.Days, in the same order. Water entries are bucketed by
// the UTC day of logged_at.
func GenerateRangeStats(in RangeInput) []DayStats {
	mealsByDay := make(map[string][]meals.Meal)
	for _, m := range in.Meals {
		mealsByDay[m.MealDate] = append(mealsByDay[m.MealDate], m)
	}
	workoutsByDay := make(map[string][]workouts.Workout)
	for _, w := range in.Workouts {
		workoutsByDay[w.WorkoutDate] = append(workoutsByDay[w.WorkoutDate], w)
	}
	waterByDay := make(map[string][]water.Entry)
	for _, e := range in.Water {
		day := dates.FormatDateString(e.LoggedAt.UTC())
		waterByDay[day] = append(waterByDay[day], e)
	}
	checkinsByDay := make(map[string][]mood.Checkin)
	for _, c := range in.Checkins {
		checkinsByDay[c.CheckinDate] = append(checkinsByDay[c.CheckinDate], c)
	}

	days := make([]DayStats, 0, len(in.Days))
	for _, day := range in.Days {
		dayStats := DayStats{
			DailyStats: GenerateDailyStats(DailyInput{
				Meals:    mealsByDay[day],
				Workouts: workoutsByDay[day],
				Water:    waterByDay[day],
				Profile:  in.Profile,
				Date:     day,
			}),
			Mood:   AverageMood(checkinsByDay[day]),
			Energy: AverageEnergy(checkinsByDay[day]),
		}
		if t, err := dates.ParseDate(day); err == nil {
			dayStats.DayName = dates.DayName(t)
		}
		days = append(days, dayStats)
	}

	return days
}

// GenerateWeeklyStats covers the 7 days starting at in.WeekStart. Averages
// are taken over the days with at least one meal logged, so an unused app
// day does not drag the week down.
func GenerateWeeklyStats(in WeeklyInput) WeeklyStats {
	start := in.WeekStart
	end := start.AddDate(0, 0, daysInWeek-1)
	days := GenerateRangeStats(RangeInput{
		Meals:    in.Meals,
		Workouts: in.Workouts,
		Water:    in.Water,
		Checkins: in.Checkins,
		Profile:  in.Profile,
		Days:     dates.DaysInRange(start, end),
	})

	weekly := WeeklyStats{
		WeekStart: dates.FormatDateString(start),
		WeekEnd:   dates.FormatDateString(end),
		Goal:      CalorieGoal(in.Profile),
		Days:      days,
	}

	// only rows that fall inside the week count
	inWeek := make(map[string]bool, len(days))
	for _, d := range days {
		inWeek[d.Date] = true
	}
	var weekWorkouts []workouts.Workout
	for _, w := range in.Workouts {
		if inWeek[w.WorkoutDate] {
			weekWorkouts = append(weekWorkouts, w)
		}
	}
	var weekCheckins []mood.Checkin
	for _, c := range in.Checkins {
		if inWeek[c.CheckinDate] {
			weekCheckins = append(weekCheckins, c)
		}
	}

	var protein, carbs, fat float64
	for _, d := range days {
		weekly.Totals.Consumed += d.Consumed
		weekly.Totals.Burned += d.Burned
		weekly.Totals.WaterOz += d.WaterOz
		weekly.Totals.MealsLogged += d.MealsLogged
		weekly.Totals.WorkoutsLogged += d.WorkoutsLogged
		if d.MealsLogged == 0 {
			continue
		}
		weekly.DaysLogged++
		protein += d.Protein
		carbs += d.Carbs
		fat += d.Fat
	}
	weekly.Totals.Net = NetCalories(weekly.Totals.Consumed, weekly.Totals.Burned)
	weekly.Totals.WorkoutMinutes = TotalWorkoutMinutes(weekWorkouts)

	if weekly.DaysLogged > 0 {
		n := float64(weekly.DaysLogged)
		weekly.Averages = WeekAverages{
			Consumed: nutrition.Round(weekly.Totals.Consumed / n),
			Burned:   nutrition.Round(weekly.Totals.Burned / n),
			Protein:  nutrition.Round(protein / n),
			Carbs:    nutrition.Round(carbs / n),
			Fat:      nutrition.Round(fat / n),
			WaterOz:  nutrition.RoundTo1(weekly.Totals.WaterOz / n),
		}
	}

	weekly.AverageMood = AverageMood(weekCheckins)
	weekly.AverageEnergy = AverageEnergy(weekCheckins)

	return weekly
}
