package prompt

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out)
	p.SetClock(func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	})
	return p, &out
}

func TestAPIKey(t *testing.T) {
	p, _ := newPrompter("  abc123  \n")

	key, err := p.APIKey()
	if err != nil {
		t.Fatalf("APIKey() failed: %v", err)
	}
	if key != "abc123" {
		t.Errorf("Expected key abc123, got %q", key)
	}
}

func TestAPIKey_Empty(t *testing.T) {
	p, out := newPrompter("   \nshould-not-be-read\n")

	_, err := p.APIKey()
	if !errors.Is(err, ErrAPIKeyRequired) {
		t.Fatalf("Expected ErrAPIKeyRequired, got %v", err)
	}
	if !strings.Contains(out.String(), "API key is required.") {
		t.Errorf("Expected operator message, got %q", out.String())
	}
}

func TestAirportCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		retries int
	}{
		{"icao", "YBBN\n", "YBBN", 0},
		{"iata lowercase", "bne\n", "BNE", 0},
		{"padded", "  ksfo \n", "KSFO", 0},
		{"retries until valid", "BN\nYBBNX\nY-BN\n\nybbn\n", "YBBN", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newPrompter(tt.input)

			code, err := p.AirportCode()
			if err != nil {
				t.Fatalf("AirportCode() failed: %v", err)
			}
			if code != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, code)
			}
			if got := strings.Count(out.String(), "Invalid code."); got != tt.retries {
				t.Errorf("Expected %d retries, got %d", tt.retries, got)
			}
		})
	}
}

func TestValidAirportCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"BNE", true},
		{"YBBN", true},
		{"K1G4", true},
		{"BN", false},
		{"YBBNX", false},
		{"Y BN", false},
		{"YBÉN", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidAirportCode(tt.code); got != tt.want {
			t.Errorf("ValidAirportCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestStartDate(t *testing.T) {
	p, out := newPrompter("2024-03-08\n")

	start, err := p.StartDate()
	if err != nil {
		t.Fatalf("StartDate() failed: %v", err)
	}
	if start.Format("2006-01-02") != "2024-03-08" {
		t.Errorf("Unexpected start %s", start)
	}
	if strings.Contains(out.String(), "Invalid") {
		t.Errorf("Unexpected retry output %q", out.String())
	}
}

func TestStartDate_RejectsUntilValid(t *testing.T) {
	p, out := newPrompter("03/01/2024\n2024-13-01\n2024-03-09\n2024-03-20\n2024-03-01\n")

	start, err := p.StartDate()
	if err != nil {
		t.Fatalf("StartDate() failed: %v", err)
	}
	if start.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("Unexpected start %s", start)
	}

	text := out.String()
	if got := strings.Count(text, "Invalid date format. Please use YYYY-MM-DD."); got != 2 {
		t.Errorf("Expected 2 format errors, got %d", got)
	}
	// A window ending today is rejected
	if !strings.Contains(text, "Invalid window. End date 2024-03-15 must be before today 2024-03-15.") {
		t.Errorf("Expected boundary rejection, got %q", text)
	}
	if !strings.Contains(text, "End date 2024-03-26 must be before today 2024-03-15") {
		t.Errorf("Expected future rejection, got %q", text)
	}
}

func TestOutputFolder(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "out")
	p, _ := newPrompter(target + "\n")

	folder, err := p.OutputFolder()
	if err != nil {
		t.Fatalf("OutputFolder() failed: %v", err)
	}
	if folder != target {
		t.Errorf("Expected %s, got %s", target, folder)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected folder to be created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}
}

func TestOutputFolder_Empty(t *testing.T) {
	p, out := newPrompter("\n")

	_, err := p.OutputFolder()
	if !errors.Is(err, ErrOutputPathRequired) {
		t.Fatalf("Expected ErrOutputPathRequired, got %v", err)
	}
	if !strings.Contains(out.String(), "Output path required.") {
		t.Errorf("Expected operator message, got %q", out.String())
	}
}

func TestOutputFolder_BlockedByFile(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocked, []byte("blocking file"), 0o600); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}
	p, _ := newPrompter(filepath.Join(blocked, "out") + "\n")

	if _, err := p.OutputFolder(); err == nil {
		t.Fatal("Expected error creating folder under a file")
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		retries int
	}{
		{"y\n", true, 0},
		{"YES\n", true, 0},
		{"n\n", false, 0},
		{" No \n", false, 0},
		{"maybe\n\ny\n", true, 2},
	}

	for _, tt := range tests {
		p, out := newPrompter(tt.input)

		got, err := p.YesNo("Write YBBN_routes.txt")
		if err != nil {
			t.Fatalf("YesNo(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("YesNo(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Write YBBN_routes.txt [y/n]: ") {
			t.Errorf("Expected question in output, got %q", out.String())
		}
		if c := strings.Count(out.String(), "Please answer y or n."); c != tt.retries {
			t.Errorf("YesNo(%q) retries = %d, want %d", tt.input, c, tt.retries)
		}
	}
}

func TestEndOfInput(t *testing.T) {
	p, _ := newPrompter("BN\n")

	if _, err := p.AirportCode(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Expected io.ErrUnexpectedEOF, got %v", err)
	}
	if _, err := p.YesNo("again"); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Expected io.ErrUnexpectedEOF, got %v", err)
	}
}
