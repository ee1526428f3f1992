package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/dates"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=admin_test

const (
	defaultLoginsPerMin = 15
	defaultOverviewDays = 7
	maxOverviewDays     = 90
)

type authService interface {
	Login(ctx context.Context, credentials auth.Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type dailyStatsService interface {
	Daily(ctx context.Context, userID uuid.UUID, date string) (*stats.DailyStats, error)
}

type entryCounter interface {
	Count(ctx context.Context, from, to string) (int, error)
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Overview struct {
	dates.Range
	Days           int `json:"days"`
	MealsLogged    int `json:"mealsLogged"`
	WorkoutsLogged int `json:"workoutsLogged"`
}

type NewHandlerParams struct {
	AuthService   authService
	StatsService  dailyStatsService
	MealsCount    entryCounter
	WorkoutsCount entryCounter
	Dates         *dates.Dates
}

// Handler serves the admin dashboard: session login and cross user reports.
type Handler struct {
	authService   authService
	statsService  dailyStatsService
	mealsCount    entryCounter
	workoutsCount entryCounter
	dates         *dates.Dates
}

func NewHandler(params NewHandlerParams) *Handler {
	return &Handler{
		authService:   params.AuthService,
		statsService:  params.StatsService,
		mealsCount:    params.MealsCount,
		workoutsCount: params.WorkoutsCount,
		dates:         params.Dates,
	}
}

func (handler *Handler) SetupRoutes(
	adminRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	loginsAllowedPerMin int,
) {
	if loginsAllowedPerMin <= 0 {
		loginsAllowedPerMin = defaultLoginsPerMin
	}

	// rate limit /login to slow down password guessing
	adminRouter.
		Handle("/login", middleware.RateLimit(rateLimiter, "admin-login", loginsAllowedPerMin, metricsManager)(
			http.HandlerFunc(handler.HandleLogin),
		)).
		Methods("POST", "OPTIONS").Name("admin-login")
	adminRouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("admin-logout")
	adminRouter.HandleFunc("/overview", handler.HandleOverview).Methods("GET").Name("admin-overview")
	adminRouter.HandleFunc("/users/{userId}/stats/daily", handler.HandleUserDailyStats).Methods("GET").Name("admin-user-daily-stats")
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var credentials auth.Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusBadRequest)
			return
		}
		credentials = auth.Credentials{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if credentials.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if credentials.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, credentials, handler.dates.Now())
	if err != nil {
		if errors.Is(err, auth.ErrWrongUsername) || errors.Is(err, auth.ErrWrongPassword) {
			log.Tracef("failed login attempt for user %s: %s", credentials.Username, err)
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(LoginResponse{Token: token})
	if err != nil {
		log.Errorf("marshal login response: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new admin login success")
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get(middleware.AdminTokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Trace("admin logout success")
	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.overview")
	defer span.End()

	days := defaultOverviewDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		var err error
		days, err = strconv.Atoi(daysParam)
		if err != nil || days < 1 || days > maxOverviewDays {
			http.Error(w, "error, invalid days", http.StatusBadRequest)
			return
		}
	}

	overview := Overview{
		Range: handler.dates.DateRange(days),
		Days:  days,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := handler.mealsCount.Count(gCtx, overview.StartDate, overview.EndDate)
		overview.MealsLogged = count
		return err
	})
	g.Go(func() error {
		count, err := handler.workoutsCount.Count(gCtx, overview.StartDate, overview.EndDate)
		overview.WorkoutsLogged = count
		return err
	})
	if err := g.Wait(); err != nil {
		log.Errorf("admin overview, count entries: %s", err)
		http.Error(w, "failed to get overview", http.StatusInternalServerError)
		return
	}

	overviewJson, err := json.Marshal(overview)
	if err != nil {
		log.Errorf("marshal admin overview: %s", err)
		http.Error(w, "failed to get overview", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, overviewJson)
}

func (handler *Handler) HandleUserDailyStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.userdailystats")
	defer span.End()

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	date := handler.dates.ParseDateOrToday(r.URL.Query().Get("date"))
	if !dates.IsCalendarDate(date) {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}
	dailyStats, err := handler.statsService.Daily(ctx, userID, date)
	if err != nil {
		log.Errorf("admin daily stats for %s [%s]: %s", userID, date, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(dailyStats)
	if err != nil {
		log.Errorf("marshal daily stats: %s", err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}
