package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"print3d-backend/internal/storage"
)

const createOrdersTable = `CREATE TABLE IF NOT EXISTS orders (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	file_url VARCHAR(1024),
	file_path VARCHAR(1024),
	s3_key VARCHAR(1024),
	material VARCHAR(64),
	color VARCHAR(64),
	infill VARCHAR(16),
	quality VARCHAR(64),
	weight DOUBLE,
	cost_usd DOUBLE,
	cost_inr DOUBLE,
	customer_name VARCHAR(255),
	email VARCHAR(255),
	phone VARCHAR(64)
)`

func strPtr(s string) *string { return &s }

func TestSaveOrder(t *testing.T) {
	_, err := testDB.Exec(createOrdersTable)
	require.NoError(t, err)

	s := &Storage{db: testDB}

	order := storage.Order{
		FileURL:  strPtr("http://localhost:8080/uploads/1700000000000.stl"),
		FilePath: strPtr("uploads/1700000000000.stl"),
		Material: "PLA",
		Color:    strPtr("Red"),
		Infill:   "30%",
		Quality:  "0.2 mm Standard Quality",
		Weight:   100,
		CostUSD:  5,
		CostINR:  415,
		Name:     strPtr("Test Customer"),
		Email:    strPtr("test@example.com"),
		Phone:    strPtr("9999999999"),
	}

	id, err := s.SaveOrder(context.Background(), order)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	var costUSD, costINR float64
	var s3Key *string
	err = testDB.QueryRow(`SELECT cost_usd, cost_inr, s3_key FROM orders WHERE id = ?`, id).
		Scan(&costUSD, &costINR, &s3Key)
	require.NoError(t, err)

	assert.Equal(t, 5.0, costUSD)
	assert.Equal(t, 415.0, costINR)
	// Заказ без s3-ключа хранит NULL, а не пустую строку.
	assert.Nil(t, s3Key)
}
