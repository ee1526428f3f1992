package fooddb

import (
	"strings"

	"github.com/2beens/fittrack/internal/nutrition"
)

// FoodData Central search response, only the fields we read.
type searchResponse struct {
	TotalHits   int          `json:"totalHits"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	Foods       []searchFood `json:"foods"`
}

type searchFood struct {
	FdcID           int                        `json:"fdcId"`
	Description     string                     `json:"description"`
	DataType        string                     `json:"dataType"`
	BrandOwner      string                     `json:"brandOwner"`
	ServingSize     float64                    `json:"servingSize"`
	ServingSizeUnit string                     `json:"servingSizeUnit"`
	FoodNutrients   []nutrition.VendorNutrient `json:"foodNutrients"`
}

// The details endpoint nests the nutrient id and calls the value "amount".
type detailsResponse struct {
	FdcID           int               `json:"fdcId"`
	Description     string            `json:"description"`
	DataType        string            `json:"dataType"`
	BrandOwner      string            `json:"brandOwner"`
	ServingSize     float64           `json:"servingSize"`
	ServingSizeUnit string            `json:"servingSizeUnit"`
	FoodNutrients   []detailsNutrient `json:"foodNutrients"`
}

type detailsNutrient struct {
	Nutrient struct {
		ID int `json:"id"`
	} `json:"nutrient"`
	Amount *float64 `json:"amount"`
}

type Food struct {
	FdcID           int                  `json:"fdcId"`
	Description     string               `json:"description"`
	DataType        string               `json:"dataType"`
	Brand           string               `json:"brand,omitempty"`
	ServingSize     float64              `json:"servingSize,omitempty"`
	ServingSizeUnit string               `json:"servingSizeUnit,omitempty"`
	Per100g         nutrition.Nutrients  `json:"per100g"`
	PerServing      *nutrition.Nutrients `json:"perServing"`
}

type SearchResult struct {
	Query     string `json:"query"`
	TotalHits int    `json:"totalHits"`
	Foods     []Food `json:"foods"`
}

func newFood(fdcID int, description, dataType, brand string, servingSize float64, servingSizeUnit string, list []nutrition.VendorNutrient) Food {
	food := Food{
		FdcID:           fdcID,
		Description:     description,
		DataType:        dataType,
		Brand:           brand,
		ServingSize:     servingSize,
		ServingSizeUnit: servingSizeUnit,
		Per100g:         nutrition.ExtractNutrients(list),
	}

	// FDC values are per 100 g (or ml), a serving can only be derived for those units
	switch strings.ToLower(servingSizeUnit) {
	case "g", "grm", "ml", "mlt":
		if servingSize > 0 {
			perServing := food.Per100g.Scale(servingSize / 100)
			food.PerServing = &perServing
		}
	}

	return food
}

func (f searchFood) toFood() Food {
	return newFood(f.FdcID, f.Description, f.DataType, f.BrandOwner, f.ServingSize, f.ServingSizeUnit, f.FoodNutrients)
}

func (d detailsResponse) toFood() Food {
	list := make([]nutrition.VendorNutrient, 0, len(d.FoodNutrients))
	for _, n := range d.FoodNutrients {
		list = append(list, nutrition.VendorNutrient{
			NutrientID: n.Nutrient.ID,
			Value:      n.Amount,
		})
	}
	return newFood(d.FdcID, d.Description, d.DataType, d.BrandOwner, d.ServingSize, d.ServingSizeUnit, list)
}
