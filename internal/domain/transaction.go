package domain

import "github.com/shopspring/decimal"

// TransactionRecord representa uma linha de venda lida do arquivo de entrada
type TransactionRecord struct {
	Line     int             `json:"line"`
	Date     string          `json:"date"` // Data no formato yyyy-mm-dd, convertida apenas na agregação
	Product  string          `json:"product" validate:"required"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
}

// Revenue retorna quantidade × preço da transação
func (r TransactionRecord) Revenue() decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// SkippedLine descreve uma linha ignorada pelo parser
type SkippedLine struct {
	Line    int    `json:"line"`
	Content string `json:"content"`
	Reason  string `json:"reason"`
}

// ParseResult é o resultado da leitura de um arquivo de vendas
type ParseResult struct {
	Records      []TransactionRecord `json:"records"`
	SkippedLines []SkippedLine       `json:"skipped_lines"`
}

func (r *ParseResult) IsEmpty() bool {
	return r == nil || len(r.Records) == 0
}
