package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/dates"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

const (
	defaultRangeDays = 7
	maxRangeDays     = 90
)

type statsService interface {
	Daily(ctx context.Context, userID uuid.UUID, date string) (*DailyStats, error)
	Weekly(ctx context.Context, userID uuid.UUID, date string) (*WeeklyStats, error)
	Macros(ctx context.Context, userID uuid.UUID, date string) (*MacroReport, error)
	Range(ctx context.Context, userID uuid.UUID, days int) (*RangeStats, error)
}

type Handler struct {
	service        statsService
	dates          *dates.Dates
	metricsManager *metrics.Manager
}

func NewHandler(service statsService, d *dates.Dates, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		dates:          d,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.daily")
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
	daily, err := handler.service.Daily(ctx, userID, date)
	if err != nil {
		log.Errorf("failed to get daily stats for user %s, date %s: %s", userID, date, err)
		http.Error(w, "failed to fetch daily stats", http.StatusInternalServerError)
		return
	}

	handler.writeStats(w, "daily", daily)
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weekly")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	date := handler.dates.ParseDateOrToday(r.URL.Query().Get("date"))
	if !dates.IsValidDateString(date) {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	weekly, err := handler.service.Weekly(ctx, userID, date)
	if err != nil {
		log.Errorf("failed to get weekly stats for user %s, date %s: %s", userID, date, err)
		http.Error(w, "failed to fetch weekly stats", http.StatusInternalServerError)
		return
	}

	handler.writeStats(w, "weekly", weekly)
}

func (handler *Handler) HandleMacros(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.macros")
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
	report, err := handler.service.Macros(ctx, userID, date)
	if err != nil {
		log.Errorf("failed to get macros for user %s, date %s: %s", userID, date, err)
		http.Error(w, "failed to fetch macros", http.StatusInternalServerError)
		return
	}

	handler.writeStats(w, "macros", report)
}

func (handler *Handler) HandleRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.range")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	days := defaultRangeDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		var err error
		days, err = strconv.Atoi(daysParam)
		if err != nil || days < 1 || days > maxRangeDays {
			http.Error(w, "error, days must be between 1 and 90", http.StatusBadRequest)
			return
		}
	}

	rangeStats, err := handler.service.Range(ctx, userID, days)
	if err != nil {
		log.Errorf("failed to get range stats for user %s, days %d: %s", userID, days, err)
		http.Error(w, "failed to fetch stats", http.StatusInternalServerError)
		return
	}

	handler.writeStats(w, "range", rangeStats)
}

func (handler *Handler) writeStats(w http.ResponseWriter, report string, stats any) {
	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal %s stats: %s", report, err)
		http.Error(w, "failed to marshal stats", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterStatsRequests.WithLabelValues(report).Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}
