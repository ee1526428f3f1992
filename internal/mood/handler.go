package mood

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/dates"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=mood_test

type moodRepo interface {
	Add(ctx context.Context, checkin Checkin) (*Checkin, error)
	ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]Checkin, error)
}

type ListResponse struct {
	Date     string    `json:"date"`
	Checkins []Checkin `json:"checkins"`
}

type Handler struct {
	repo           moodRepo
	dates          *dates.Dates
	metricsManager *metrics.Manager
}

func NewHandler(repo moodRepo, d *dates.Dates, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		dates:          d,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mood.add")
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

	var checkin Checkin
	if err := json.NewDecoder(r.Body).Decode(&checkin); err != nil {
		log.Tracef("new checkin, unmarshal json params: %s", err)
		http.Error(w, "add checkin failed", http.StatusBadRequest)
		return
	}

	if err := checkin.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if checkin.CheckinDate == "" {
		checkin.CheckinDate = handler.dates.TodayString()
	} else if !dates.IsCalendarDate(checkin.CheckinDate) {
		http.Error(w, "error, invalid checkin date", http.StatusBadRequest)
		return
	}

	checkin.UserID = userID
	checkin.CreatedAt = handler.dates.Now()

	added, err := handler.repo.Add(ctx, checkin)
	if err != nil {
		if errors.Is(err, ErrCheckinExists) {
			http.Error(w, "checkin for this date already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add checkin for user %s: %s", userID, err)
		http.Error(w, "error, failed to add checkin", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntriesLogged.WithLabelValues("mood").Inc()

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal checkin: %s", err)
		http.Error(w, "error, failed to add checkin", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mood.list")
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
	checkins, err := handler.repo.ListForDay(ctx, userID, date)
	if err != nil {
		log.Errorf("failed to list checkins for user %s, date %s: %s", userID, date, err)
		http.Error(w, "failed to get checkins", http.StatusInternalServerError)
		return
	}

	if checkins == nil {
		checkins = []Checkin{}
	}

	respJson, err := json.Marshal(ListResponse{
		Date:     date,
		Checkins: checkins,
	})
	if err != nil {
		log.Errorf("failed to marshal checkins: %s", err)
		http.Error(w, "failed to get checkins", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
