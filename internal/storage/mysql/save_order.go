package mysql

import (
	"context"
	"fmt"

	"print3d-backend/internal/storage"
)

// SaveOrder вставляет одну запись заказа и возвращает её идентификатор.
// Запись никогда не обновляется и не удаляется этим сервисом.
func (s *Storage) SaveOrder(ctx context.Context, order storage.Order) (int64, error) {
	const op = "storage.mysql.SaveOrder"

	stmt := `INSERT INTO orders (file_url, file_path, s3_key, material, color, infill, quality,
            weight, cost_usd, cost_inr, customer_name, email, phone) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	exec, err := s.db.ExecContext(ctx, stmt, order.FileURL, order.FilePath, order.S3Key,
		order.Material, order.Color, order.Infill, order.Quality,
		order.Weight, order.CostUSD, order.CostINR, order.Name, order.Email, order.Phone)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return exec.LastInsertId()
}
