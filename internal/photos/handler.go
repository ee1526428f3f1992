package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=photos_test

const keyPrefix = "meal-photos"

var extensionByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

type urlPresigner interface {
	UploadURL(ctx context.Context, key, contentType string) (*PresignedURL, error)
	DownloadURL(ctx context.Context, key string) (*PresignedURL, error)
}

type UploadURLRequest struct {
	ContentType string `json:"contentType"`
}

type Handler struct {
	presigner urlPresigner
	newKeyID  func() uuid.UUID
}

func NewHandler(presigner urlPresigner) *Handler {
	return &Handler{
		presigner: presigner,
		newKeyID:  uuid.New,
	}
}

// UserKeyPrefix is the object key prefix owned by the given user.
func UserKeyPrefix(userID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/", keyPrefix, userID)
}

func (handler *Handler) HandleUploadURL(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.uploadurl")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
		return
	}

	var req UploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	ext, ok := extensionByContentType[contentType]
	if !ok {
		http.Error(w, "error, unsupported image type", http.StatusBadRequest)
		return
	}

	key := UserKeyPrefix(userID) + handler.newKeyID().String() + ext
	presigned, err := handler.presigner.UploadURL(ctx, key, contentType)
	if err != nil {
		log.Errorf("failed to presign upload for user %s: %s", userID, err)
		http.Error(w, "failed to create upload url", http.StatusInternalServerError)
		return
	}

	presignedJson, err := json.Marshal(presigned)
	if err != nil {
		log.Errorf("failed to marshal presigned url: %s", err)
		http.Error(w, "failed to create upload url", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, presignedJson, http.StatusOK)
}

func (handler *Handler) HandleDownloadURL(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.downloadurl")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" || strings.Contains(key, "..") {
		http.Error(w, "error, invalid key", http.StatusBadRequest)
		return
	}
	if !strings.HasPrefix(key, UserKeyPrefix(userID)) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	presigned, err := handler.presigner.DownloadURL(ctx, key)
	if err != nil {
		log.Errorf("failed to presign download [%s]: %s", key, err)
		http.Error(w, "failed to create download url", http.StatusInternalServerError)
		return
	}

	presignedJson, err := json.Marshal(presigned)
	if err != nil {
		log.Errorf("failed to marshal presigned url: %s", err)
		http.Error(w, "failed to create download url", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, presignedJson, http.StatusOK)
}
