package reporting

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report/infrastructure/chart"
	"github.com/vfg2006/sales-report/infrastructure/document"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/usecases/aggregating"
	"github.com/vfg2006/sales-report/internal/usecases/parsing"
	"github.com/vfg2006/sales-report/pkg/log"
)

func newPipeline(t *testing.T, dir string) *Service {
	t.Helper()
	base, _ := test.NewNullLogger()
	logger := log.New(base)

	cfg := &config.Config{
		Report: config.Report{
			ChartPath:    filepath.Join(dir, "sales_report_chart.png"),
			DocumentPath: filepath.Join(dir, "monthly_sales_report.pdf"),
		},
		Chart: config.Chart{WidthInches: 6, HeightInches: 4, ImageWidthMM: 190},
	}

	return NewService(
		cfg,
		parsing.NewService(logger),
		aggregating.NewService(),
		chart.NewRenderer(cfg.Chart),
		document.NewBuilder(cfg.Chart, logger),
		logger,
	)
}

func TestPipeline_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sales.txt")
	require.NoError(t, os.WriteFile(input, []byte("Date,Product,Quantity,Price\n"+
		"2024-01-05,Widget,10,2.50\n"+
		"2024-01-20,Widget,5,2.50\n"+
		"broken line\n"+
		"2024-02-01,Gadget,3,9.99\n"), 0o644))

	report, err := newPipeline(t, dir).Run(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, 3, report.RecordCount)
	require.Len(t, report.SkippedLines, 1)
	assert.Equal(t, 4, report.SkippedLines[0].Line)

	require.Len(t, report.Aggregates, 2)
	assert.Equal(t, [][]string{
		{"2024-01", "Widget", "15", "37.50"},
		{"2024-02", "Gadget", "3", "29.97"},
	}, document.TableRows(report.Aggregates))

	png, err := os.ReadFile(report.ChartPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	pdf, err := os.ReadFile(report.DocumentPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestPipeline_HeaderOnlyWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sales.txt")
	require.NoError(t, os.WriteFile(input, []byte("Date,Product,Quantity,Price\n"), 0o644))

	report, err := newPipeline(t, dir).Run(context.Background(), input)
	require.NoError(t, err)
	assert.Nil(t, report)

	assert.NoFileExists(t, filepath.Join(dir, "sales_report_chart.png"))
	assert.NoFileExists(t, filepath.Join(dir, "monthly_sales_report.pdf"))
}

func TestPipeline_InvalidNumberWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sales.txt")
	require.NoError(t, os.WriteFile(input, []byte("Date,Product,Quantity,Price\n"+
		"2024-01-05,Widget,10,2.50\n"+
		"2024-03-01,Widget,notanumber,2.50\n"), 0o644))

	report, err := newPipeline(t, dir).Run(context.Background(), input)
	require.NoError(t, err)
	assert.Nil(t, report)
	assert.NoFileExists(t, filepath.Join(dir, "sales_report_chart.png"))
}
