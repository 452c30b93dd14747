// Package cli contém o laço interativo que solicita o arquivo de vendas
// e dispara o pipeline de geração do relatório.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/log"
)

const ExitCommand = "exit"

const (
	Prompt          = "Enter the path to the text file: "
	MsgFileNotFound = "File not found. Please enter a valid file path."
	MsgExiting      = "Exiting..."
)

var menu = []string{
	"Generate Monthly Sales Report",
	"-----------------------------",
	"Please provide the path to the text file containing sales data.",
	"Enter 'exit' to quit.",
}

type State int

const (
	StatePrompting State = iota
	StateTerminated
)

// Runner executa uma geração completa de relatório
type Runner interface {
	Run(ctx context.Context, path string) (*domain.Report, error)
}

type Driver struct {
	runner Runner
	in     *bufio.Scanner
	out    io.Writer
	logger log.Logger
	exists func(path string) bool
}

func NewDriver(runner Runner, in io.Reader, out io.Writer, logger log.Logger) *Driver {
	return &Driver{
		runner: runner,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
		exists: fileExists,
	}
}

// inputLine é uma linha lida da entrada ou o erro de leitura
type inputLine struct {
	text string
	err  error
}

// Run repete o ciclo menu → leitura → execução até o comando de saída,
// o fim da entrada ou o cancelamento do contexto.
func (d *Driver) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}

	lines := d.readLines(ctx)

	state := StatePrompting
	for state == StatePrompting {
		var err error
		state, err = d.step(ctx, lines)
		if err != nil {
			return err
		}
	}
	return nil
}

// readLines lê a entrada em uma goroutine para que a espera no prompt
// possa ser interrompida pelo contexto. O canal é fechado no fim da entrada.
func (d *Driver) readLines(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)
		for d.in.Scan() {
			select {
			case lines <- inputLine{text: d.in.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := d.in.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}

func (d *Driver) step(ctx context.Context, lines <-chan inputLine) (State, error) {
	for _, line := range menu {
		fmt.Fprintln(d.out, line)
	}
	fmt.Fprint(d.out, Prompt)

	var line inputLine
	var ok bool
	select {
	case <-ctx.Done():
		fmt.Fprintln(d.out)
		return StateTerminated, nil
	case line, ok = <-lines:
	}

	if !ok {
		fmt.Fprintln(d.out)
		return StateTerminated, nil
	}
	if line.err != nil {
		return StateTerminated, fmt.Errorf("erro ao ler a entrada: %w", line.err)
	}

	input := strings.TrimSpace(line.text)
	if strings.EqualFold(input, ExitCommand) {
		fmt.Fprintln(d.out, MsgExiting)
		return StateTerminated, nil
	}

	if !d.exists(input) {
		fmt.Fprintln(d.out, MsgFileNotFound)
		return StatePrompting, nil
	}

	// A linha pode ter chegado junto com o cancelamento
	if ctx.Err() != nil {
		return StateTerminated, nil
	}

	if err := d.runOnce(ctx, input); err != nil {
		d.logger.WithContext(ctx).WithError(err).WithField("path", input).Error("Falha na geração do relatório")
		fmt.Fprintf(d.out, "An error occurred: %v\n", err)
	}

	return StatePrompting, nil
}

// runOnce isola uma execução do pipeline: erros e panics não encerram o laço
func (d *Driver) runOnce(ctx context.Context, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	_, err = d.runner.Run(ctx, path)
	return err
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
