package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
	Chart  Chart  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Report agrupa os caminhos dos artefatos gerados a cada execução
type Report struct {
	ChartPath    string `mapstructure:"report_chart_path"`
	DocumentPath string `mapstructure:"report_document_path"`
}

type Chart struct {
	WidthInches  float64 `mapstructure:"report_chart_width_inches"`
	HeightInches float64 `mapstructure:"report_chart_height_inches"`
	ImageWidthMM float64 `mapstructure:"report_chart_image_width_mm"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	// Os artefatos são sobrescritos a cada execução no diretório atual
	viper.SetDefault("REPORT_CHART_PATH", "sales_report_chart.png")
	viper.SetDefault("REPORT_DOCUMENT_PATH", "monthly_sales_report.pdf")

	viper.SetDefault("REPORT_CHART_WIDTH_INCHES", 12)
	viper.SetDefault("REPORT_CHART_HEIGHT_INCHES", 8)
	viper.SetDefault("REPORT_CHART_IMAGE_WIDTH_MM", 190) // largura da imagem no PDF
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate garante que os caminhos e dimensões permitem gerar os artefatos
func (c *Config) Validate() error {
	if c.Report.ChartPath == "" {
		return fmt.Errorf("config: REPORT_CHART_PATH is required")
	}
	if c.Report.DocumentPath == "" {
		return fmt.Errorf("config: REPORT_DOCUMENT_PATH is required")
	}
	if c.Report.ChartPath == c.Report.DocumentPath {
		return fmt.Errorf("config: chart and document paths must differ")
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("config: invalid chart size %vx%v", c.Chart.WidthInches, c.Chart.HeightInches)
	}
	if c.Chart.ImageWidthMM <= 0 {
		return fmt.Errorf("config: invalid chart image width %v", c.Chart.ImageWidthMM)
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}
}
