package reporting

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/log"
)

type Service struct {
	cfg        *config.Config
	parser     RecordParser
	aggregator Aggregator
	chart      ChartRenderer
	document   DocumentBuilder
	logger     log.Logger
}

func NewService(
	cfg *config.Config,
	parser RecordParser,
	aggregator Aggregator,
	chart ChartRenderer,
	document DocumentBuilder,
	logger log.Logger,
) *Service {
	return &Service{
		cfg:        cfg,
		parser:     parser,
		aggregator: aggregator,
		chart:      chart,
		document:   document,
		logger:     logger,
	}
}

// Run executa o pipeline completo para um arquivo: leitura, agregação, gráfico e PDF.
// Retorna nil, nil quando o arquivo não produz nenhuma transação válida.
func (s *Service) Run(ctx context.Context, path string) (*domain.Report, error) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := s.logger.WithContext(ctx)

	if cwd, err := os.Getwd(); err == nil {
		logger.Infof("Diretório de trabalho atual: %s", cwd)
	}
	if abs, err := filepath.Abs(path); err == nil {
		logger.Infof("Caminho absoluto do arquivo: %s", abs)
	}

	parsed, err := s.parser.ParseFile(ctx, path)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler o arquivo de vendas")
		return nil, nil
	}
	if parsed.IsEmpty() {
		logger.Warn("Nenhuma transação válida encontrada, relatório não gerado")
		return nil, nil
	}

	aggregates, err := s.aggregator.Aggregate(parsed.Records)
	if err != nil {
		return nil, &StageError{Stage: StageAggregate, Err: errors.Wrap(err, "erro ao agregar vendas")}
	}

	chartPath := s.cfg.Report.ChartPath
	if err := s.chart.Render(aggregates, chartPath); err != nil {
		return nil, &StageError{Stage: StageChart, Err: errors.Wrap(err, "erro ao gerar gráfico")}
	}

	documentPath := s.cfg.Report.DocumentPath
	if err := s.document.Build(aggregates, chartPath, documentPath); err != nil {
		return nil, &StageError{Stage: StageDocument, Err: errors.Wrap(err, "erro ao gerar relatório")}
	}

	logger.WithFields(log.Fields{
		"records":    len(parsed.Records),
		"skipped":    len(parsed.SkippedLines),
		"aggregates": len(aggregates),
	}).Debug("Relatório gerado")

	return &domain.Report{
		SourcePath:   path,
		RecordCount:  len(parsed.Records),
		SkippedLines: parsed.SkippedLines,
		Aggregates:   aggregates,
		ChartPath:    chartPath,
		DocumentPath: documentPath,
	}, nil
}
