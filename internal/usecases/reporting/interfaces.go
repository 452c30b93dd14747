package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/sales-report/internal/domain"
)

// RecordParser lê o arquivo de vendas e devolve as transações válidas
type RecordParser interface {
	ParseFile(ctx context.Context, path string) (*domain.ParseResult, error)
}

// Aggregator agrupa as transações por mês e produto
type Aggregator interface {
	Aggregate(records []domain.TransactionRecord) ([]domain.MonthlyAggregate, error)
}

// ChartRenderer grava o gráfico de barras dos resumos mensais
type ChartRenderer interface {
	Render(aggregates []domain.MonthlyAggregate, path string) error
}

// DocumentBuilder grava o relatório paginado com a tabela e o gráfico
type DocumentBuilder interface {
	Build(aggregates []domain.MonthlyAggregate, chartPath, outputPath string) error
}
