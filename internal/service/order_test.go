package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"print3d-backend/internal/storage"
)

type MockOrderStorage struct {
	mock.Mock
}

func (m *MockOrderStorage) SaveOrder(ctx context.Context, order storage.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func formatTest(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func TestPlaceOrder_QuoteOnly(t *testing.T) {
	mockStorage := new(MockOrderStorage)
	svc := NewOrderService(mockStorage, 83)

	req := storage.OrderRequest{
		Material: "PLA",
		Quality:  "0.2 mm Standard Quality",
		Infill:   "30%",
		Weight:   100,
	}

	result, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "100.00", result.Weight)
	assert.Equal(t, "5.00", result.CostUSD)
	assert.Equal(t, "415.00", result.CostINR)
	assert.Nil(t, result.OrderID)

	// Без save=true в базу ничего не пишем.
	mockStorage.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_Save(t *testing.T) {
	mockStorage := new(MockOrderStorage)
	svc := NewOrderService(mockStorage, 83)

	var saved storage.Order
	mockStorage.On("SaveOrder", mock.Anything, mock.MatchedBy(func(o storage.Order) bool {
		saved = o
		return true
	})).Return(int64(42), nil)

	req := storage.OrderRequest{
		Material: "ABS",
		Quality:  "0.15 mm High Quality",
		Infill:   "50%",
		Weight:   33.333,
		Color:    "Black",
		Name:     "Customer",
		Email:    "c@example.com",
		Number:   "9999999999",
		FileURL:  "https://bucket.s3.ap-south-1.amazonaws.com/uploads/1_benchy.stl",
		S3Key:    "uploads/1_benchy.stl",
		Save:     true,
	}

	result, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, result.OrderID)
	assert.Equal(t, int64(42), *result.OrderID)

	// В базе лежат числа, округлённые до двух знаков, и они совпадают
	// со строками в ответе.
	usd := 0.06 * 33.333 * 1.2 * 1.2
	assert.InDelta(t, usd, saved.CostUSD, 0.005)
	assert.Equal(t, result.CostUSD, formatTest(saved.CostUSD))
	assert.Equal(t, result.CostINR, formatTest(saved.CostINR))

	require.NotNil(t, saved.Color)
	assert.Equal(t, "Black", *saved.Color)
	require.NotNil(t, saved.S3Key)
	assert.Equal(t, "uploads/1_benchy.stl", *saved.S3Key)
	// Не заполненные клиентом поля — NULL.
	assert.Nil(t, saved.FilePath)

	mockStorage.AssertExpectations(t)
}

func TestPlaceOrder_SaveFailure(t *testing.T) {
	mockStorage := new(MockOrderStorage)
	svc := NewOrderService(mockStorage, 83)

	mockStorage.On("SaveOrder", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection refused"))

	_, err := svc.PlaceOrder(context.Background(), storage.OrderRequest{
		Material: "PLA",
		Weight:   10,
		Save:     true,
	})
	assert.Error(t, err)
}

func TestPlaceOrder_ZeroWeight(t *testing.T) {
	svc := NewOrderService(new(MockOrderStorage), 83)

	result, err := svc.PlaceOrder(context.Background(), storage.OrderRequest{Material: "PLA"})
	require.NoError(t, err)

	assert.Equal(t, "0.00", result.Weight)
	assert.Equal(t, "0.00", result.CostUSD)
	assert.Equal(t, "0.00", result.CostINR)
}
