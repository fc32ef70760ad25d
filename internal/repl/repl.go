package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/session"
	"github.com/averycrespi/polycalc/internal/store"
	"github.com/averycrespi/polycalc/pkg/polynomial"
	"github.com/averycrespi/polycalc/pkg/project"
)

// DefaultAbortKeyword returns to the main menu from any prompt
const DefaultAbortKeyword = "*main menu*"

// EOFMessage is printed when the input ends before the user exits
const EOFMessage = "Standard input reached EOF"

var (
	errAbort = errors.New("returned to main menu")
	errExit  = errors.New("exit requested")
)

type action int

const (
	actionExit action = iota
	actionAdd
	actionSubtract
	actionScale
	actionMultiply
	actionEvaluate
	actionCompare
	actionDerivative
	actionList
	actionHelp
)

// REPL is the interactive menu-driven calculator
type REPL struct {
	session             *session.Session
	scanner             *bufio.Scanner
	out                 io.Writer
	logger              *zap.Logger
	styles              styles
	abortKeyword        string
	maxIdentifierLength int
}

// Option configures a REPL
type Option func(*REPL)

// WithAbortKeyword sets the input that returns to the main menu
func WithAbortKeyword(keyword string) Option {
	return func(r *REPL) {
		r.abortKeyword = keyword
	}
}

// WithMaxIdentifierLength sets the identifier length shown in the help text
func WithMaxIdentifierLength(n int) Option {
	return func(r *REPL) {
		r.maxIdentifierLength = n
	}
}

// New creates a calculator reading lines from in and writing to out
func New(sess *session.Session, in io.Reader, out io.Writer, logger *zap.Logger, opts ...Option) *REPL {
	r := &REPL{
		session:             sess,
		scanner:             bufio.NewScanner(in),
		out:                 out,
		logger:              logger,
		styles:              newStyles(out),
		abortKeyword:        DefaultAbortKeyword,
		maxIdentifierLength: store.DefaultMaxIdentifierLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run shows the menu and performs actions until the user exits, the input
// ends or ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	r.println(r.styles.title.Render(fmt.Sprintf("Welcome to Polynomial Calculator %s", project.Version)))
	r.printHelp()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.println("")
		err := r.step()
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			return nil
		case errors.Is(err, errAbort):
			r.logger.Debug("Returned to main menu")
		case errors.Is(err, io.EOF):
			r.println(EOFMessage)
			return nil
		default:
			return err
		}
	}
}

func (r *REPL) step() error {
	choice, err := readInput(r, "Please enter an action: ", parseAction)
	if err != nil {
		return err
	}
	r.logger.Debug("Selected action", zap.Int("action", int(choice)))

	switch choice {
	case actionExit:
		return errExit
	case actionHelp:
		r.printHelp()
		return nil
	case actionList:
		r.printVariables()
		return nil
	case actionEvaluate:
		return r.evaluate()
	case actionCompare:
		return r.compare()
	}

	var result polynomial.Polynomial
	switch choice {
	case actionScale:
		factor, err := readInput(r, "Please enter a constant: ", parseReal)
		if err != nil {
			return err
		}
		p, err := r.readPolynomial("Please enter a polynomial: ")
		if err != nil {
			return err
		}
		result = p.Scale(factor)
	case actionDerivative:
		p, err := r.readPolynomial("Please enter a polynomial: ")
		if err != nil {
			return err
		}
		result = p.Derivative()
	default:
		lhs, rhs, err := r.readPair()
		if err != nil {
			return err
		}
		switch choice {
		case actionAdd:
			result = lhs.Add(rhs)
		case actionSubtract:
			result = lhs.Sub(rhs)
		case actionMultiply:
			if result, err = lhs.Mul(rhs); err != nil {
				r.println(r.styles.err.Render("Error: " + err.Error()))
				return nil
			}
		}
	}

	r.println("Result: " + r.styles.result.Render(result.String()))
	return r.offerToStore(result)
}

func (r *REPL) evaluate() error {
	p, err := r.readPolynomial("Please enter a polynomial: ")
	if err != nil {
		return err
	}
	x, err := readInput(r, "Please enter the value of x: ", parseReal)
	if err != nil {
		return err
	}
	r.println("Evaluated value: " + r.styles.result.Render(strconv.FormatFloat(p.Eval(x), 'g', -1, 64)))
	return nil
}

func (r *REPL) compare() error {
	lhs, rhs, err := r.readPair()
	if err != nil {
		return err
	}
	if lhs.Equal(rhs) {
		r.println(r.styles.result.Render("The polynomials are equal."))
	} else {
		r.println(r.styles.result.Render("The polynomials are not equal."))
	}
	return nil
}

func (r *REPL) offerToStore(result polynomial.Polynomial) error {
	save, err := readInput(r, "Store the result?(y/n) ", parseYesNo)
	if err != nil || !save {
		return err
	}

	_, err = readInput(r, "Please enter variable name: ", func(name string) (struct{}, error) {
		return struct{}{}, r.session.Store(name, result)
	})
	if err == nil {
		r.logger.Debug("Stored result", zap.Stringer("polynomial", result))
	}
	return err
}

func (r *REPL) readPair() (polynomial.Polynomial, polynomial.Polynomial, error) {
	lhs, err := r.readPolynomial("Please enter the first polynomial: ")
	if err != nil {
		return polynomial.Polynomial{}, polynomial.Polynomial{}, err
	}
	rhs, err := r.readPolynomial("Please enter the second polynomial: ")
	if err != nil {
		return polynomial.Polynomial{}, polynomial.Polynomial{}, err
	}
	return lhs, rhs, nil
}

func (r *REPL) readPolynomial(prompt string) (polynomial.Polynomial, error) {
	return readInput(r, prompt, r.session.ResolvePolynomial)
}

// readInput prompts until parse accepts a line. Blank lines are skipped.
func readInput[T any](r *REPL, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		r.println(r.styles.err.Render("Error: " + err.Error()))
		r.println("")
	}
}

func (r *REPL) readLine(prompt string) (string, error) {
	for {
		fmt.Fprint(r.out, r.styles.prompt.Render(prompt))
		if !r.scanner.Scan() {
			r.println("")
			if err := r.scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read input: %w", err)
			}
			return "", io.EOF
		}

		line := strings.TrimSpace(r.scanner.Text())
		switch line {
		case "":
			continue
		case r.abortKeyword:
			return "", errAbort
		}
		return line, nil
	}
}

func (r *REPL) printHelp() {
	lines := []string{
		"1.Polynomial Addition",
		"2.Polynomial Subtraction",
		"3.Multiplying a Polynomial with a Constant",
		"4.Polynomial and Polynomial Multiplication",
		"5.Evaluate the Polynomial",
		"6.Check if two polynomials are equal",
		"7.Polynomial Derivation",
		"8.Show all stored polynomials",
		"9.Help",
		"0.Exit",
	}
	for _, line := range lines {
		r.println(line)
	}
	notes := []string{
		"Example polynomial: -x^3 + 2x^4 - x^6 + x - 24.",
		"  Store a polynomial while entering it with an assignment, for example `a = x^3 + 2`.",
		"  Enter a stored identifier to use its polynomial.",
		fmt.Sprintf("  Identifiers consist of letters and are at most %d long.", r.maxIdentifierLength),
		fmt.Sprintf("At any time you can enter `%s` to return to the main menu.", r.abortKeyword),
	}
	for _, note := range notes {
		r.println(r.styles.help.Render(note))
	}
}

func (r *REPL) printVariables() {
	var rows [][]string
	for name, p := range r.session.Variables() {
		rows = append(rows, []string{name, p.String()})
	}
	if len(rows) == 0 {
		r.println("No polynomials are stored.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.border).
		Headers("Variable", "Polynomial").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.header
			}
			return r.styles.cell
		})

	r.println("The currently stored polynomials:")
	r.println(t.String())
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, s)
}

func parseAction(s string) (action, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < int(actionExit) || n > int(actionHelp) {
		return 0, errors.New("please enter a number between 0 and 9")
	}
	return action(n), nil
}

func parseReal(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("please enter a valid real number")
	}
	return f, nil
}

func parseYesNo(s string) (bool, error) {
	switch s {
	case "y", "Y":
		return true, nil
	case "n", "N":
		return false, nil
	}
	return false, errors.New("please enter y or n")
}
