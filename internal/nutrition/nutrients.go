package nutrition

import "math"

// FoodData Central nutrient ids
const (
	NutrientEnergy       = 1008
	NutrientProtein      = 1003
	NutrientCarbohydrate = 1005
	NutrientTotalFat     = 1004
	NutrientFiber        = 1079
	NutrientSugars       = 2000
)

type Field string

const (
	FieldCalories Field = "calories"
	FieldProtein  Field = "protein"
	FieldCarbs    Field = "carbs"
	FieldFat      Field = "fat"
	FieldFiber    Field = "fiber"
	FieldSugar    Field = "sugar"
)

// FieldByNutrientID maps the vendor nutrient ids onto the app schema.
var FieldByNutrientID = map[int]Field{
	NutrientEnergy:       FieldCalories,
	NutrientProtein:      FieldProtein,
	NutrientCarbohydrate: FieldCarbs,
	NutrientTotalFat:     FieldFat,
	NutrientFiber:        FieldFiber,
	NutrientSugars:       FieldSugar,
}

// VendorNutrient is a single entry of a vendor food nutrient list.
type VendorNutrient struct {
	NutrientID int      `json:"nutrientId"`
	Value      *float64 `json:"value"`
}

type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// ExtractNutrients never fails: unknown ids are skipped, a missing value
// counts as 0 and every known value is rounded to one decimal.
// When an id repeats, the last entry wins.
func ExtractNutrients(list []VendorNutrient) Nutrients {
	var n Nutrients
	for _, vn := range list {
		field, ok := FieldByNutrientID[vn.NutrientID]
		if !ok {
			continue
		}

		var value float64
		if vn.Value != nil {
			value = RoundTo1(*vn.Value)
		}
		n.set(field, value)
	}
	return n
}

func (n *Nutrients) set(field Field, value float64) {
	switch field {
	case FieldCalories:
		n.Calories = value
	case FieldProtein:
		n.Protein = value
	case FieldCarbs:
		n.Carbs = value
	case FieldFat:
		n.Fat = value
	case FieldFiber:
		n.Fiber = value
	case FieldSugar:
		n.Sugar = value
	}
}

// Scale multiplies every field, e.g. to turn per-100g values into a
// serving. Results keep one decimal.
func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Calories: RoundTo1(n.Calories * factor),
		Protein:  RoundTo1(n.Protein * factor),
		Carbs:    RoundTo1(n.Carbs * factor),
		Fat:      RoundTo1(n.Fat * factor),
		Fiber:    RoundTo1(n.Fiber * factor),
		Sugar:    RoundTo1(n.Sugar * factor),
	}
}

// Round rounds half up (towards +Inf), so -2.5 becomes -2.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

func RoundTo1(v float64) float64 {
	return Round(v*10) / 10
}
