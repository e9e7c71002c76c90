package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type URLSigner interface {
	PresignedURL(ctx context.Context, key string) (string, error)
}

type Response struct {
	URL string `json:"url"`
}

type ErrResponse struct {
	Error string `json:"error"`
}

// GetPresignedURL выдаёт временную ссылку на объект в бакете.
// Маршрут существует только в режиме объектного хранилища.
func GetPresignedURL(log *slog.Logger, signer URLSigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.presign.GetPresignedURL"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		key := r.URL.Query().Get("key")
		if key == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrResponse{Error: "Missing key"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		url, err := signer.PresignedURL(ctx, key)
		if err != nil {
			log.Error("failed to presign", slog.String("error", err.Error()), slog.String("key", key))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, ErrResponse{Error: "Failed to generate URL"})
			return
		}

		render.JSON(w, r, Response{URL: url})
	}
}
