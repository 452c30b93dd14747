package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	Title      = "Monthly Sales Report"
	XAxisLabel = "Month"
	YAxisLabel = "Total Sales"
)

// Fração da largura do gráfico ocupada pelas barras; o restante separa os meses
const groupFill = 0.6

type Renderer struct {
	width  vg.Length
	height vg.Length
}

func NewRenderer(cfg config.Chart) *Renderer {
	return &Renderer{
		width:  vg.Length(cfg.WidthInches) * vg.Inch,
		height: vg.Length(cfg.HeightInches) * vg.Inch,
	}
}

// Render gera um gráfico de barras agrupadas (uma série por produto) e grava o PNG em path
func (r *Renderer) Render(aggregates []domain.MonthlyAggregate, path string) error {
	chart, err := r.build(aggregates)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("erro ao criar diretório do gráfico: %w", err)
		}
	}

	if err := chart.plot.Save(r.width, r.height, path); err != nil {
		return fmt.Errorf("erro ao salvar gráfico em %s: %w", path, err)
	}

	return nil
}

// barPlot guarda o gráfico montado e as séries na ordem da legenda
type barPlot struct {
	plot     *plot.Plot
	months   []string
	products []string
	series   []*plotter.BarChart
	barWidth vg.Length
}

func (r *Renderer) build(aggregates []domain.MonthlyAggregate) (*barPlot, error) {
	months, products, revenue := pivot(aggregates)

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XAxisLabel
	p.Y.Label.Text = YAxisLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	groupWidth := r.width * groupFill / vg.Length(max(len(months), 1))
	barWidth := groupWidth / vg.Length(max(len(products), 1))

	series := make([]*plotter.BarChart, 0, len(products))
	for i, product := range products {
		values := make(plotter.Values, len(months))
		for j, month := range months {
			values[j] = revenue[month][product]
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar série do produto %s: %w", product, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = barWidth * (vg.Length(i) - vg.Length(len(products)-1)/2)

		p.Add(bars)
		p.Legend.Add(product, bars)
		series = append(series, bars)
	}

	labels := make([]string, len(months))
	for i, month := range months {
		labels[i] = month.String()
	}
	p.NominalX(labels...)

	return &barPlot{
		plot:     p,
		months:   labels,
		products: products,
		series:   series,
		barWidth: barWidth,
	}, nil
}

// pivot organiza a receita por mês (eixo x) e produto (série)
func pivot(aggregates []domain.MonthlyAggregate) ([]domain.Period, []string, map[domain.Period]map[string]float64) {
	revenue := make(map[domain.Period]map[string]float64)
	seenProducts := make(map[string]struct{})
	months := make([]domain.Period, 0)
	products := make([]string, 0)

	for _, a := range aggregates {
		if _, ok := revenue[a.Month]; !ok {
			revenue[a.Month] = make(map[string]float64)
			months = append(months, a.Month)
		}
		if _, ok := seenProducts[a.Product]; !ok {
			seenProducts[a.Product] = struct{}{}
			products = append(products, a.Product)
		}
		revenue[a.Month][a.Product] += utils.RoundWithTwoDecimalPlace(a.TotalRevenue.InexactFloat64())
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	sort.Strings(products)

	return months, products, revenue
}
