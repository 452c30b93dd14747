package aggregating

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/utils"
)

// Chave de agrupamento: mês + produto
type groupKey struct {
	month   domain.Period
	product string
}

// Estrutura para acumular as vendas de uma chave antes de gerar o resumo
type monthlyAccumulator struct {
	quantity   int
	priceSum   decimal.Decimal
	priceCount int
	revenue    decimal.Decimal
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Aggregate agrupa as transações por mês e produto, ordenando por mês e depois por produto
func (s *Service) Aggregate(records []domain.TransactionRecord) ([]domain.MonthlyAggregate, error) {
	accumulators := make(map[groupKey]*monthlyAccumulator)

	for _, record := range records {
		date, err := utils.ParseDate(record.Date)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidDate, "line %d %q: %v", record.Line, record.Date, err)
		}

		key := groupKey{month: domain.PeriodOf(*date), product: record.Product}
		acc, exists := accumulators[key]
		if !exists {
			acc = &monthlyAccumulator{priceSum: decimal.Zero, revenue: decimal.Zero}
			accumulators[key] = acc
		}

		acc.quantity += record.Quantity
		acc.priceSum = acc.priceSum.Add(record.Price)
		acc.priceCount++
		acc.revenue = acc.revenue.Add(record.Revenue())
	}

	keys := make([]groupKey, 0, len(accumulators))
	for key := range accumulators {
		keys = append(keys, key)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].month != keys[j].month {
			return keys[i].month.Before(keys[j].month)
		}
		return keys[i].product < keys[j].product
	})

	aggregates := make([]domain.MonthlyAggregate, 0, len(keys))
	for _, key := range keys {
		acc := accumulators[key]
		aggregates = append(aggregates, domain.MonthlyAggregate{
			Month:         key.month,
			Product:       key.product,
			TotalQuantity: acc.quantity,
			AveragePrice:  acc.priceSum.Div(decimal.NewFromInt(int64(acc.priceCount))),
			TotalRevenue:  acc.revenue,
		})
	}

	return aggregates, nil
}
