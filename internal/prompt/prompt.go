// Package prompt collects run parameters from an interactive console,
// re-asking until each answer is valid.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/saviobatista/route-builder/internal/types"
)

var (
	// ErrAPIKeyRequired is returned when no API key is entered
	ErrAPIKeyRequired = errors.New("API key is required")
	// ErrOutputPathRequired is returned when no output folder is entered
	ErrOutputPathRequired = errors.New("output path required")
)

// Prompter reads answers line by line and writes prompts and feedback
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	now func() time.Time
}

// New creates a Prompter reading from in and writing to out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
		now: time.Now,
	}
}

// SetClock overrides the clock used to decide which dates are in the past
func (p *Prompter) SetClock(now func() time.Time) {
	p.now = now
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// APIKey asks for the RapidAPI key. An empty answer is fatal.
func (p *Prompter) APIKey() (string, error) {
	key, err := p.ask("Enter your RapidAPI key: ")
	if err != nil {
		return "", err
	}
	if key == "" {
		fmt.Fprintln(p.out, "API key is required.")
		return "", ErrAPIKeyRequired
	}
	return key, nil
}

// AirportCode asks until a 3 letter IATA or 4 letter ICAO code is entered
func (p *Prompter) AirportCode() (string, error) {
	for {
		answer, err := p.ask("Enter airport code (ICAO 4 letters or IATA 3 letters, e.g., YBBN or BNE): ")
		if err != nil {
			return "", err
		}
		code := strings.ToUpper(answer)
		if ValidAirportCode(code) {
			return code, nil
		}
		fmt.Fprintln(p.out, "Invalid code. Enter 3-letter IATA or 4-letter ICAO.")
	}
}

// ValidAirportCode reports whether code is 3 or 4 ASCII letters or digits
func ValidAirportCode(code string) bool {
	if len(code) != 3 && len(code) != 4 {
		return false
	}
	for _, r := range code {
		isLetter := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit {
			return false
		}
	}
	return true
}

// StartDate asks until it gets a start date whose 7 day window ends before today
func (p *Prompter) StartDate() (time.Time, error) {
	for {
		answer, err := p.ask("Enter start date (YYYY-MM-DD) for a 7-day window that is fully in the past: ")
		if err != nil {
			return time.Time{}, err
		}

		start, err := time.Parse(types.DateLayout, answer)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid date format. Please use YYYY-MM-DD.")
			continue
		}

		today := p.now()
		if types.ValidWindow(start, today) {
			return start, nil
		}
		fmt.Fprintf(p.out, "Invalid window. End date %s must be before today %s. Try an earlier start date.\n",
			types.WindowEnd(start).Format(types.DateLayout), today.Format(types.DateLayout))
	}
}

// OutputFolder asks for the output folder and creates it. An empty answer is fatal.
func (p *Prompter) OutputFolder() (string, error) {
	folder, err := p.ask("Enter full output folder path: ")
	if err != nil {
		return "", err
	}
	if folder == "" {
		fmt.Fprintln(p.out, "Output path required.")
		return "", ErrOutputPathRequired
	}
	if err := os.MkdirAll(folder, 0o750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return folder, nil
}

// YesNo asks msg until the answer is y, yes, n or no
func (p *Prompter) YesNo(msg string) (bool, error) {
	for {
		answer, err := p.ask(msg + " [y/n]: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
