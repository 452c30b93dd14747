package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/log"
	"github.com/vfg2006/sales-report/pkg/utils"
)

const (
	ReportTitle  = "Monthly Sales Report"
	SummaryTitle = "Sales Summary:"
	ChartTitle   = "Sales Chart"

	fontFamily = "Arial"
	lineHeight = 10.0
	chartX     = 10.0
)

var (
	columnNames  = []string{"Date", "Product", "Quantity", "Total"}
	columnWidths = []float64{30, 50, 30, 30}
)

type Builder struct {
	imageWidth float64
	logger     log.Logger
}

func NewBuilder(cfg config.Chart, logger log.Logger) *Builder {
	return &Builder{
		imageWidth: cfg.ImageWidthMM,
		logger:     logger,
	}
}

// Build gera o PDF com a tabela de resumo na primeira página e o gráfico na seguinte
func (b *Builder) Build(aggregates []domain.MonthlyAggregate, chartPath, outputPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(fontFamily, "B", 12)
		pdf.CellFormat(0, lineHeight, ReportTitle, "0", 1, "C", false, 0, "")
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, lineHeight, fmt.Sprintf("Page %d", pdf.PageNo()), "0", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, lineHeight, ReportTitle, "0", 1, "C", false, 0, "")
	writeTable(pdf, tr, aggregates)

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, lineHeight, ChartTitle, "0", 1, "L", false, 0, "")
	pdf.Ln(lineHeight)
	pdf.ImageOptions(chartPath, chartX, 0, b.imageWidth, 0, true, fpdf.ImageOptions{ReadDpi: true}, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("erro ao montar o PDF: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("erro ao criar diretório do relatório: %w", err)
		}
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("erro ao salvar o PDF em %s: %w", outputPath, err)
	}

	b.logger.Infof("PDF report generated successfully. Saved as: %s", outputPath)
	return nil
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, aggregates []domain.MonthlyAggregate) {
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, lineHeight, SummaryTitle, "0", 1, "", false, 0, "")

	pdf.SetFont(fontFamily, "B", 10)
	for i, name := range columnNames {
		pdf.CellFormat(columnWidths[i], lineHeight, name, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 10)
	for _, row := range TableRows(aggregates) {
		for i, value := range row {
			pdf.CellFormat(columnWidths[i], lineHeight, tr(value), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// TableRows formata os resumos nas colunas Date, Product, Quantity e Total
func TableRows(aggregates []domain.MonthlyAggregate) [][]string {
	rows := make([][]string, 0, len(aggregates))
	for _, a := range aggregates {
		rows = append(rows, []string{
			a.Month.String(),
			a.Product,
			strconv.Itoa(a.TotalQuantity),
			utils.FormatMoney(a.TotalRevenue),
		})
	}
	return rows
}
