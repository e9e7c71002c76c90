package service

import (
	"context"
	"fmt"

	"print3d-backend/internal/pricing"
	"print3d-backend/internal/storage"
)

type OrderStorage interface {
	SaveOrder(ctx context.Context, order storage.Order) (int64, error)
}

type OrderService struct {
	storage      OrderStorage
	exchangeRate float64
}

func NewOrderService(storage OrderStorage, exchangeRate float64) *OrderService {
	return &OrderService{storage: storage, exchangeRate: exchangeRate}
}

// PlaceOrder всегда считает расценку; при save=true дополнительно пишет
// заказ в базу и возвращает его идентификатор.
func (s *OrderService) PlaceOrder(ctx context.Context, req storage.OrderRequest) (storage.OrderResult, error) {
	const op = "service.order.PlaceOrder"

	quote := pricing.Calculate(req.Material, req.Quality, req.Infill, float64(req.Weight), s.exchangeRate)

	result := storage.OrderResult{
		Weight:  pricing.Format2(quote.Weight),
		CostUSD: pricing.Format2(quote.CostUSD),
		CostINR: pricing.Format2(quote.CostINR),
	}

	if !req.Save {
		return result, nil
	}

	order := storage.Order{
		FileURL:  nullable(req.FileURL),
		FilePath: nullable(req.FilePath),
		S3Key:    nullable(req.S3Key),
		Material: req.Material,
		Color:    nullable(req.Color),
		Infill:   req.Infill,
		Quality:  req.Quality,
		Weight:   quote.Weight,
		CostUSD:  pricing.Round2(quote.CostUSD),
		CostINR:  pricing.Round2(quote.CostINR),
		Name:     nullable(req.Name),
		Email:    nullable(req.Email),
		Phone:    nullable(req.Number),
	}

	orderID, err := s.storage.SaveOrder(ctx, order)
	if err != nil {
		return storage.OrderResult{}, fmt.Errorf("%s: %w", op, err)
	}

	result.OrderID = &orderID

	return result, nil
}

// nullable — пустая строка уходит в базу как NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
