package upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"print3d-backend/internal/filestore"
)

// Лимит на размер модели — 50 МиБ.
const maxUploadBytes = 50 << 20

type FileSaver interface {
	Save(ctx context.Context, src io.Reader, size int64, originalName, contentType, baseURL string) (filestore.StoredFile, error)
}

type Response struct {
	Success      bool   `json:"success"`
	OriginalName string `json:"originalName"`
	Storage      string `json:"storage"`
	FileURL      string `json:"fileUrl"`
	FilePath     string `json:"filePath,omitempty"`
	S3Key        string `json:"s3Key,omitempty"`
}

type ErrResponse struct {
	Error string `json:"error"`
}

// UploadModel принимает одну 3D-модель в multipart-поле "model" и отдаёт
// адрес сохранённого файла. Геометрию модели никто не проверяет.
func UploadModel(log *slog.Logger, saver FileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.upload.UploadModel"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		file, header, err := r.FormFile("model")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				log.Error("upload too large", slog.Int64("limit", maxErr.Limit))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, ErrResponse{Error: "File too large"})
				return
			}

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrResponse{Error: "No file uploaded"})
			return
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
		defer cancel()

		stored, err := saver.Save(ctx, file, header.Size, header.Filename,
			header.Header.Get("Content-Type"), baseURL(r))
		if err != nil {
			log.Error("failed to store file", slog.String("error", err.Error()),
				slog.String("file", header.Filename))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, ErrResponse{Error: "Upload failed"})
			return
		}

		render.JSON(w, r, Response{
			Success:      true,
			OriginalName: header.Filename,
			Storage:      stored.Storage,
			FileURL:      stored.URL,
			FilePath:     stored.Path,
			S3Key:        stored.Key,
		})
	}
}

// baseURL — scheme://host текущего запроса, для ссылок дискового бэкенда.
func baseURL(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
