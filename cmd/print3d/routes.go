package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	savorder "print3d-backend/http-server/order/save"
	presign "print3d-backend/http-server/presign/get"
	"print3d-backend/http-server/upload"
	"print3d-backend/internal/config"
	"print3d-backend/internal/filestore"
	"print3d-backend/internal/service"
)

func routes(cfg config.Config, log *slog.Logger, backend filestore.Backend, orders *service.OrderService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "3D print order backend is running")
	})

	router.Post("/api/upload", upload.UploadModel(log, backend))
	router.Post("/api/order", savorder.PlaceOrder(log, orders))

	if signer, ok := backend.(filestore.Presigner); ok {
		// Объектное хранилище: файлы отдаются по подписанным ссылкам.
		router.Get("/api/presign", presign.GetPresignedURL(log, signer))
	} else {
		// Дисковый режим: загрузки раздаются как статика.
		fileServer := http.StripPrefix(filestore.PublicUploadsPath+"/", http.FileServer(http.Dir(cfg.UploadDir)))
		router.Handle(filestore.PublicUploadsPath+"/*", fileServer)
	}

	return router
}
