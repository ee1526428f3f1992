package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpsertMacroTargets(ctx context.Context, userID uuid.UUID, targets MacroTargets, updatedAt time.Time) (*Profile, error)
}

type Handler struct {
	repo profileRepo
	now  func() time.Time
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := handler.repo.Get(ctx, userID)
	if err != nil {
		log.Errorf("failed to get profile for user %s: %s", userID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateMacroTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.updatetargets")
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

	var targets MacroTargets
	if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
		log.Tracef("update macro targets, unmarshal json params: %s", err)
		http.Error(w, "update macro targets failed", http.StatusBadRequest)
		return
	}

	if err := targets.Validate(); err != nil {
		http.Error(w, "error, invalid macro targets", http.StatusBadRequest)
		return
	}

	p, err := handler.repo.UpsertMacroTargets(ctx, userID, targets, handler.now())
	if err != nil {
		log.Errorf("failed to update macro targets for user %s: %s", userID, err)
		http.Error(w, "failed to update macro targets", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "failed to update macro targets", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusOK)
}
