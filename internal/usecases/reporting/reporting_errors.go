package reporting

import "fmt"

// Etapas do pipeline
const (
	StageAggregate = "aggregate"
	StageChart     = "chart"
	StageDocument  = "document"
)

// StageError indica em qual etapa a execução foi interrompida
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %s", e.Stage, e.Err.Error())
}

func (e *StageError) Unwrap() error {
	return e.Err
}
