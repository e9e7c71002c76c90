package storage

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Grams — вес модели от клиента. Приходит числом или строкой,
// всё нечисловое превращается в 0, а не в ошибку.
type Grams float64

func (g *Grams) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*g = 0
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*g = Grams(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if num, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*g = Grams(num)
			return nil
		}
	}

	*g = 0
	return nil
}

type OrderRequest struct {
	Material string `json:"material"`
	Infill   string `json:"infill"`
	Quality  string `json:"quality"`
	Weight   Grams  `json:"weight"`
	Color    string `json:"color"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Number   string `json:"number"`
	FileURL  string `json:"fileUrl"`
	FilePath string `json:"filePath"`
	S3Key    string `json:"s3Key"`
	Save     bool   `json:"save"`
}

// Order — строка таблицы orders. Необязательные поля — указатели,
// пустые значения уходят в базу как NULL.
type Order struct {
	FileURL  *string `json:"file_url"`
	FilePath *string `json:"file_path"`
	S3Key    *string `json:"s3_key"`
	Material string  `json:"material"`
	Color    *string `json:"color"`
	Infill   string  `json:"infill"`
	Quality  string  `json:"quality"`
	Weight   float64 `json:"weight"`
	CostUSD  float64 `json:"cost_usd"`
	CostINR  float64 `json:"cost_inr"`
	Name     *string `json:"customer_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// OrderResult — итог обработки заказа: расценка и, при save=true, id записи.
type OrderResult struct {
	Weight  string
	CostUSD string
	CostINR string
	OrderID *int64
}
