package parsing

import (
	"errors"
	"fmt"
)

var (
	ErrOpenFile      = errors.New("error opening sales file")
	ErrReadFile      = errors.New("error reading sales file")
	ErrEmptyFile     = errors.New("sales file is empty")
	ErrInvalidHeader = errors.New("invalid header")
	ErrInvalidNumber = errors.New("invalid numeric field")
	ErrInvalidRecord = errors.New("invalid record")
	ErrMalformedLine = errors.New("wrong number of fields")
)

// LineError identifica a linha do arquivo que causou o erro
type LineError struct {
	Err     error
	Line    int
	Content string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Content, e.Err.Error())
}

func (e *LineError) Unwrap() error {
	return e.Err
}
