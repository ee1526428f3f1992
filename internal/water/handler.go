package water

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/dates"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=water_test

type waterRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	ListForDay(ctx context.Context, userID uuid.UUID, date string) ([]Entry, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type ListResponse struct {
	Date    string  `json:"date"`
	Entries []Entry `json:"entries"`
	TotalOz float64 `json:"total_oz"`
}

type DeleteResponse struct {
	DeletedID int64 `json:"deletedId"`
}

type Handler struct {
	repo           waterRepo
	dates          *dates.Dates
	metricsManager *metrics.Manager
}

func NewHandler(repo waterRepo, d *dates.Dates, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		dates:          d,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.add")
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

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("new water entry, unmarshal json params: %s", err)
		http.Error(w, "add water entry failed", http.StatusBadRequest)
		return
	}

	if entry.AmountOz == nil || *entry.AmountOz <= 0 || *entry.AmountOz > MaxAmountOz {
		http.Error(w, "error, invalid amount", http.StatusBadRequest)
		return
	}

	entry.UserID = userID
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = handler.dates.Now()
	}

	added, err := handler.repo.Add(ctx, entry)
	if err != nil {
		log.Errorf("failed to add water entry for user %s: %s", userID, err)
		http.Error(w, "error, failed to add water entry", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEntriesLogged.WithLabelValues("water").Inc()

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal water entry: %s", err)
		http.Error(w, "error, failed to add water entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.list")
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
	entries, err := handler.repo.ListForDay(ctx, userID, date)
	if err != nil {
		log.Errorf("failed to list water entries for user %s, date %s: %s", userID, date, err)
		http.Error(w, "failed to get water entries", http.StatusInternalServerError)
		return
	}

	resp := ListResponse{
		Date:    date,
		Entries: []Entry{},
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, e)
		if e.AmountOz != nil {
			resp.TotalOz += *e.AmountOz
		}
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal water entries: %s", err)
		http.Error(w, "failed to get water entries", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.delete")
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
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "water entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete water entry %d: %s", id, err)
		http.Error(w, "failed to delete water entry", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete water entry response: %s", err)
		http.Error(w, "failed to delete water entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
