// Package stats reduces already fetched rows into the daily, weekly and
// macro reports served to the mobile client.
//
// Every reducer is total: nil slices read as empty, nil numeric fields
// read as 0 and inputs are never modified.
package stats

import (
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/mood"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/internal/workouts"
)

const DefaultCalorieGoal = 2000

// kcal per gram
const (
	proteinKcal = 4
	carbsKcal   = 4
	fatKcal     = 9
)

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MacroPercentages are rounded independently, they may not add up to 100.
type MacroPercentages struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

type DailyInput struct {
	Meals    []meals.Meal
	Workouts []workouts.Workout
	Water    []water.Entry
	Profile  *profile.Profile
	Date     string
}

type DailyStats struct {
	Date           string  `json:"date"`
	Consumed       float64 `json:"consumed"`
	Burned         float64 `json:"burned"`
	Net            float64 `json:"net"`
	Goal           float64 `json:"goal"`
	Remaining      float64 `json:"remaining"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
	MealsLogged    int     `json:"mealsLogged"`
	WorkoutsLogged int     `json:"workoutsLogged"`
	WaterOz        float64 `json:"waterOz"`
}

func valueOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func TotalCalories(ms []meals.Meal) float64 {
	var total float64
	for _, m := range ms {
		total += valueOf(m.Calories)
	}
	return total
}

func TotalMacros(ms []meals.Meal) Macros {
	var macros Macros
	for _, m := range ms {
		macros.Protein += valueOf(m.Protein)
		macros.Carbs += valueOf(m.Carbs)
		macros.Fat += valueOf(m.Fat)
	}
	return macros
}

func CaloriesBurned(ws []workouts.Workout) float64 {
	var total float64
	for _, w := range ws {
		total += valueOf(w.EstimatedCaloriesBurned)
	}
	return total
}

func TotalWorkoutMinutes(ws []workouts.Workout) int {
	var total int
	for _, w := range ws {
		if w.DurationMinutes != nil {
			total += *w.DurationMinutes
		}
	}
	return total
}

func NetCalories(consumed, burned float64) float64 {
	return consumed - burned
}

func CaloriesRemaining(goal, consumed, burned float64) float64 {
	return goal - NetCalories(consumed, burned)
}

func TotalWater(entries []water.Entry) float64 {
	var total float64
	for _, e := range entries {
		total += valueOf(e.AmountOz)
	}
	return total
}

// AverageMood is nil, not 0, when there is nothing to average.
func AverageMood(checkins []mood.Checkin) *float64 {
	return averageRating(checkins, func(c mood.Checkin) *int {
		return c.MoodRating
	})
}

// AverageEnergy is nil, not 0, when there is nothing to average.
func AverageEnergy(checkins []mood.Checkin) *float64 {
	return averageRating(checkins, func(c mood.Checkin) *int {
		return c.EnergyRating
	})
}

// averageRating skips checkins without the rating, a mood only checkin
// says nothing about energy.
func averageRating(checkins []mood.Checkin, rating func(mood.Checkin) *int) *float64 {
	var sum, count int
	for _, c := range checkins {
		r := rating(c)
		if r == nil {
			continue
		}
		sum += *r
		count++
	}
	if count == 0 {
		return nil
	}
	avg := nutrition.RoundTo1(float64(sum) / float64(count))
	return &avg
}

// CalorieGoal is the profile calorie target, or DefaultCalorieGoal when unset.
func CalorieGoal(p *profile.Profile) float64 {
	if p == nil || p.MacroTargets == nil || p.MacroTargets.Calories <= 0 {
		return DefaultCalorieGoal
	}
	return p.MacroTargets.Calories
}

func GenerateDailyStats(in DailyInput) DailyStats {
	consumed := TotalCalories(in.Meals)
	burned := CaloriesBurned(in.Workouts)
	goal := CalorieGoal(in.Profile)
	macros := TotalMacros(in.Meals)

	return DailyStats{
		Date:           in.Date,
		Consumed:       consumed,
		Burned:         burned,
		Net:            NetCalories(consumed, burned),
		Goal:           goal,
		Remaining:      CaloriesRemaining(goal, consumed, burned),
		Protein:        nutrition.Round(macros.Protein),
		Carbs:          nutrition.Round(macros.Carbs),
		Fat:            nutrition.Round(macros.Fat),
		MealsLogged:    len(in.Meals),
		WorkoutsLogged: len(in.Workouts),
		WaterOz:        TotalWater(in.Water),
	}
}

func CalculateMacroPercentages(m Macros) MacroPercentages {
	proteinCal := m.Protein * proteinKcal
	carbsCal := m.Carbs * carbsKcal
	fatCal := m.Fat * fatKcal
	total := proteinCal + carbsCal + fatCal
	if total == 0 {
		return MacroPercentages{}
	}

	return MacroPercentages{
		Protein: int(nutrition.Round(proteinCal * 100 / total)),
		Carbs:   int(nutrition.Round(carbsCal * 100 / total)),
		Fat:     int(nutrition.Round(fatCal * 100 / total)),
	}
}

// MealTypeBreakdown sums calories per meal type, rounded to one decimal.
// Meals without a type are counted under "other".
func MealTypeBreakdown(ms []meals.Meal) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, m := range ms {
		mealType := m.MealType
		if mealType == "" {
			mealType = "other"
		}
		breakdown[mealType] += valueOf(m.Calories)
	}
	for mealType, calories := range breakdown {
		breakdown[mealType] = nutrition.RoundTo1(calories)
	}
	return breakdown
}
