package fooddb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=fooddb_test

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

type foodsClient interface {
	Search(ctx context.Context, query string, pageSize int) (*SearchResult, error)
	GetFood(ctx context.Context, fdcID int) (*Food, error)
}

type Handler struct {
	client foodsClient
}

func NewHandler(client foodsClient) *Handler {
	return &Handler{
		client: client,
	}
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.search")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "error, query empty", http.StatusBadRequest)
		return
	}

	pageSize := defaultPageSize
	if pageSizeParam := r.URL.Query().Get("pageSize"); pageSizeParam != "" {
		var err error
		pageSize, err = strconv.Atoi(pageSizeParam)
		if err != nil || pageSize < 1 || pageSize > maxPageSize {
			http.Error(w, "error, invalid page size", http.StatusBadRequest)
			return
		}
	}

	result, err := handler.client.Search(ctx, query, pageSize)
	if err != nil {
		log.Errorf("failed to search foods [%s]: %s", query, err)
		http.Error(w, "failed to search foods", http.StatusBadGateway)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal food search result: %s", err)
		http.Error(w, "failed to search foods", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.get")
	defer span.End()

	fdcID, err := strconv.Atoi(mux.Vars(r)["fdcId"])
	if err != nil || fdcID <= 0 {
		http.Error(w, "error, invalid food id", http.StatusBadRequest)
		return
	}

	food, err := handler.client.GetFood(ctx, fdcID)
	if err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			http.Error(w, "food not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get food %d: %s", fdcID, err)
		http.Error(w, "failed to get food", http.StatusBadGateway)
		return
	}

	foodJson, err := json.Marshal(food)
	if err != nil {
		log.Errorf("failed to marshal food: %s", err)
		http.Error(w, "failed to get food", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodJson, http.StatusOK)
}
