package meals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/dates"
	"github.com/2beens/fittrack/internal/photos"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=meals_test

type mealsRepo interface {
	Add(ctx context.Context, meal Meal) (*Meal, error)
	ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]Meal, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type ListResponse struct {
	Date  string `json:"date"`
	Meals []Meal `json:"meals"`
}

type DeleteResponse struct {
	DeletedID int64 `json:"deletedId"`
}

type Handler struct {
	repo           mealsRepo
	dates          *dates.Dates
	metricsManager *metrics.Manager
}

func NewHandler(repo mealsRepo, d *dates.Dates, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		dates:          d,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var meal Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		log.Tracef("new meal, unmarshal json params: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}

	if !MealTypes[meal.MealType] {
		http.Error(w, "error, invalid meal type", http.StatusBadRequest)
		return
	}
	if hasNegative(meal) {
		http.Error(w, "error, negative nutrient value", http.StatusBadRequest)
		return
	}

	if meal.MealDate == "" {
		meal.MealDate = handler.dates.TodayString()
	} else if !dates.IsCalendarDate(meal.MealDate) {
		http.Error(w, "error, invalid meal date", http.StatusBadRequest)
		return
	}

	// photos are uploaded under the owner's key prefix
	if meal.PhotoKey != "" && !strings.HasPrefix(meal.PhotoKey, photos.UserKeyPrefix(userID)) {
		http.Error(w, "error, invalid photo key", http.StatusBadRequest)
		return
	}

	meal.UserID = userID
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = handler.dates.Now()
	}

	added, err := handler.repo.Add(ctx, meal)
	if err != nil {
		log.Errorf("failed to add new meal for user %s: %s", userID, err)
		http.Error(w, "error, failed to add new meal", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntriesLogged.WithLabelValues("meal").Inc()

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new meal: %s", err)
		http.Error(w, "error, failed to add new meal", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	date := handler.dates.ParseDateOrToday(r.URL.Query().Get("date"))
	if !dates.IsCalendarDate(date) {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}
	meals, err := handler.repo.ListForDay(ctx, userID, date)
	if err != nil {
		log.Errorf("failed to list meals for user %s, date %s: %s", userID, date, err)
		http.Error(w, "failed to get meals", http.StatusInternalServerError)
		return
	}

	if meals == nil {
		meals = []Meal{}
	}

	respJson, err := json.Marshal(ListResponse{
		Date:  date,
		Meals: meals,
	})
	if err != nil {
		log.Errorf("failed to marshal meals: %s", err)
		http.Error(w, "failed to get meals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrMealNotFound) {
			http.Error(w, "meal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete meal %d: %s", id, err)
		http.Error(w, "failed to delete meal", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete meal response: %s", err)
		http.Error(w, "failed to delete meal", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func hasNegative(meal Meal) bool {
	for _, v := range []*float64{meal.Calories, meal.Protein, meal.Carbs, meal.Fat, meal.Fiber, meal.Sugar} {
		if v != nil && *v < 0 {
			return true
		}
	}
	return false
}

