package parsing

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/log"
)

const fieldSeparator = ","

// Header é a ordem fixa das colunas do arquivo de vendas
var Header = []string{"Date", "Product", "Quantity", "Price"}

type Service struct {
	logger   log.Logger
	validate *validator.Validate
}

func NewService(logger log.Logger) *Service {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return &Service{
		logger:   logger,
		validate: validate,
	}
}

// ParseFile lê o arquivo de vendas. Linhas com número de campos diferente de
// quatro são ignoradas; um campo numérico inválido invalida o arquivo inteiro.
func (s *Service) ParseFile(ctx context.Context, path string) (*domain.ParseResult, error) {
	logger := s.logger.WithContext(ctx).WithField("path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
		}
		return nil, ErrEmptyFile
	}

	if err := checkHeader(scanner.Text()); err != nil {
		return nil, err
	}

	result := &domain.ParseResult{Records: make([]domain.TransactionRecord, 0)}
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		record, err := s.parseLine(lineNum, line)
		if err != nil {
			if errors.Is(err, ErrInvalidNumber) {
				return nil, err
			}

			reason := err.Error()
			var lineErr *LineError
			if errors.As(err, &lineErr) {
				reason = lineErr.Err.Error()
			}

			logger.WithField("line", lineNum).Warnf("Ignorando linha mal formatada: %d %s", lineNum, line)
			result.SkippedLines = append(result.SkippedLines, domain.SkippedLine{
				Line:    lineNum,
				Content: line,
				Reason:  reason,
			})
			continue
		}

		result.Records = append(result.Records, *record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	logger.WithFields(log.Fields{
		"records": len(result.Records),
		"skipped": len(result.SkippedLines),
	}).Debug("Arquivo de vendas lido")

	return result, nil
}

func (s *Service) parseLine(lineNum int, line string) (*domain.TransactionRecord, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != len(Header) {
		return nil, &LineError{Err: ErrMalformedLine, Line: lineNum, Content: line}
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, &LineError{Err: errors.Wrapf(ErrInvalidNumber, "quantity %q", parts[2]), Line: lineNum, Content: line}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
	if err != nil {
		return nil, &LineError{Err: errors.Wrapf(ErrInvalidNumber, "price %q", parts[3]), Line: lineNum, Content: line}
	}

	record := &domain.TransactionRecord{
		Line:     lineNum,
		Date:     parts[0],
		Product:  parts[1],
		Quantity: quantity,
		Price:    price,
	}

	if err := s.validate.Struct(record); err != nil {
		return nil, &LineError{Err: errors.Wrap(ErrInvalidRecord, err.Error()), Line: lineNum, Content: line}
	}

	return record, nil
}

func checkHeader(line string) error {
	fields := strings.Split(strings.TrimSpace(line), fieldSeparator)
	if len(fields) != len(Header) {
		return errors.Wrapf(ErrInvalidHeader, "expected %s, got %q", strings.Join(Header, fieldSeparator), line)
	}

	for i, name := range Header {
		if !strings.EqualFold(strings.TrimSpace(fields[i]), name) {
			return errors.Wrapf(ErrInvalidHeader, "expected %s, got %q", strings.Join(Header, fieldSeparator), line)
		}
	}

	return nil
}
