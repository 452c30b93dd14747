package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "sales_report_chart.png", cfg.Report.ChartPath)
	assert.Equal(t, "monthly_sales_report.pdf", cfg.Report.DocumentPath)
	assert.Equal(t, 12.0, cfg.Chart.WidthInches)
	assert.Equal(t, 8.0, cfg.Chart.HeightInches)
	assert.Equal(t, 190.0, cfg.Chart.ImageWidthMM)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("REPORT_CHART_PATH", "out/chart.png")
	t.Setenv("REPORT_CHART_WIDTH_INCHES", "6.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "out/chart.png", cfg.Report.ChartPath)
	assert.Equal(t, 6.5, cfg.Chart.WidthInches)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Report: Report{ChartPath: "a.png", DocumentPath: "b.pdf"},
		Chart:  Chart{WidthInches: 12, HeightInches: 8, ImageWidthMM: 190},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "configuração válida", mutate: func(c *Config) {}},
		{name: "sem caminho do gráfico", mutate: func(c *Config) { c.Report.ChartPath = "" }, wantErr: true},
		{name: "sem caminho do documento", mutate: func(c *Config) { c.Report.DocumentPath = "" }, wantErr: true},
		{name: "caminhos iguais", mutate: func(c *Config) { c.Report.DocumentPath = "a.png" }, wantErr: true},
		{name: "altura zero", mutate: func(c *Config) { c.Chart.HeightInches = 0 }, wantErr: true},
		{name: "largura da imagem negativa", mutate: func(c *Config) { c.Chart.ImageWidthMM = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewConfig_PathsDecodeVerbatim(t *testing.T) {
	viper.Reset()
	t.Setenv("REPORT_DOCUMENT_PATH", "reports/jan,feb 2024.pdf")
	t.Setenv("REPORT_CHART_IMAGE_WIDTH_MM", "150")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "reports/jan,feb 2024.pdf", cfg.Report.DocumentPath)
	assert.Equal(t, 150.0, cfg.Chart.ImageWidthMM)
}
