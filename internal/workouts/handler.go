package workouts

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
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]Workout, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type ListResponse struct {
	Date     string    `json:"date"`
	Workouts []Workout `json:"workouts"`
}

type DeleteResponse struct {
	DeletedID int64 `json:"deletedId"`
}

type Handler struct {
	repo           workoutsRepo
	dates          *dates.Dates
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, d *dates.Dates, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		dates:          d,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
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

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	workout.WorkoutType = strings.TrimSpace(workout.WorkoutType)
	if workout.WorkoutType == "" {
		http.Error(w, "error, workout type empty", http.StatusBadRequest)
		return
	}
	if workout.DurationMinutes != nil && *workout.DurationMinutes < 0 {
		http.Error(w, "error, negative duration", http.StatusBadRequest)
		return
	}
	if workout.EstimatedCaloriesBurned != nil && *workout.EstimatedCaloriesBurned < 0 {
		http.Error(w, "error, negative calories burned", http.StatusBadRequest)
		return
	}

	if workout.WorkoutDate == "" {
		workout.WorkoutDate = handler.dates.TodayString()
	} else if !dates.IsCalendarDate(workout.WorkoutDate) {
		http.Error(w, "error, invalid workout date", http.StatusBadRequest)
		return
	}

	workout.UserID = userID
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = handler.dates.Now()
	}

	added, err := handler.repo.Add(ctx, workout)
	if err != nil {
		log.Errorf("failed to add new workout for user %s: %s", userID, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntriesLogged.WithLabelValues("workout").Inc()

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
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
	workouts, err := handler.repo.ListForDay(ctx, userID, date)
	if err != nil {
		log.Errorf("failed to list workouts for user %s, date %s: %s", userID, date, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	if workouts == nil {
		workouts = []Workout{}
	}

	respJson, err := json.Marshal(ListResponse{
		Date:     date,
		Workouts: workouts,
	})
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "failed to delete workout", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete workout response: %s", err)
		http.Error(w, "failed to delete workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
