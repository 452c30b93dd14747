package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period representa um mês do calendário
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// String retorna o período no formato yyyy-mm
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// MonthlyAggregate representa o resumo de vendas de um produto em um mês
type MonthlyAggregate struct {
	Month         Period          `json:"month"`
	Product       string          `json:"product"`
	TotalQuantity int             `json:"total_quantity"`
	AveragePrice  decimal.Decimal `json:"average_price"` // Média simples dos preços, sem ponderar pela quantidade
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}
