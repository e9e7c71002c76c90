package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"print3d-backend/internal/storage"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req storage.OrderRequest) (storage.OrderResult, error)
}

type Response struct {
	Success bool   `json:"success"`
	Weight  string `json:"weight,omitempty"`
	CostUSD string `json:"costUSD,omitempty"`
	CostINR string `json:"costINR,omitempty"`
	OrderID *int64 `json:"orderId,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PlaceOrder считает стоимость печати и при save=true сохраняет заказ.
// Причина сбоя остаётся в логах, клиенту уходит общий ответ.
func PlaceOrder(log *slog.Logger, orders OrderPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.order.save.PlaceOrder"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid order body", slog.String("error", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := orders.PlaceOrder(ctx, req)
		if err != nil {
			log.Error("failed to place order", slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Failed to process order"})
			return
		}

		resp := Response{
			Success: true,
			Weight:  result.Weight,
			CostUSD: result.CostUSD,
			CostINR: result.CostINR,
			OrderID: result.OrderID,
		}
		if result.OrderID != nil {
			resp.Message = "Order saved to DB."
		}

		render.JSON(w, r, resp)
	}
}
