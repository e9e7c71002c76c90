package pricing

import (
	"fmt"
	"math"
)

// Таблицы фиксированы на этапе сборки. Неизвестные значения не отклоняются,
// а берут дефолтный коэффициент.

const DefaultBaseCost = 0.05

// materialBaseCost — цена материала в USD за грамм.
var materialBaseCost = map[string]float64{
	"PLA":         0.05,
	"ABS":         0.06,
	"PETG":        0.07,
	"TPU":         0.08,
	"ASA":         0.07,
	"PLA Glass":   0.06,
	"Engineering": 0.12,
	"ePLA":        0.06,
}

var qualityMultiplier = map[string]float64{
	"0.2 mm Standard Quality":   1,
	"0.15 mm High Quality":      1.2,
	"0.1 mm Ultra High Quality": 1.5,
	"0.3 mm Draft Quality":      1.1,
	"0.25 mm Economy Quality":   1.05,
}

var infillMultiplier = map[string]float64{
	"0%":  0.5,
	"10%": 0.6,
	"20%": 0.8,
	"30%": 1,
	"40%": 1.1,
	"50%": 1.2,
	"60%": 1.3,
	"70%": 1.4,
	"80%": 1.5,
	"90%": 1.6,
}

type Quote struct {
	Weight  float64
	CostUSD float64
	CostINR float64
}

func BaseCost(material string) float64 {
	if cost, ok := materialBaseCost[material]; ok {
		return cost
	}
	return DefaultBaseCost
}

func QualityMultiplier(quality string) float64 {
	if mult, ok := qualityMultiplier[quality]; ok {
		return mult
	}
	return 1
}

func InfillMultiplier(infill string) float64 {
	if mult, ok := infillMultiplier[infill]; ok {
		return mult
	}
	return 1
}

// Calculate считает стоимость печати. Без состояния, безопасно для
// конкурентных вызовов.
func Calculate(material, quality, infill string, weight float64, exchangeRate float64) Quote {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		weight = 0
	}

	usd := BaseCost(material) * weight * QualityMultiplier(quality) * InfillMultiplier(infill)
	inr := usd * exchangeRate

	return Quote{
		Weight:  weight,
		CostUSD: usd,
		CostINR: inr,
	}
}

// Round2 — округление до двух знаков перед сохранением в базу.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format2 — фиксированные две цифры после запятой для ответа клиенту.
func Format2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
