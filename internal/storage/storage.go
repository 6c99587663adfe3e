package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saviobatista/route-builder/internal/types"
)

// RouteSuffix terminates every route line
const RouteSuffix = "ANY#"

// Storage writes run outputs for one airport into an output directory
type Storage struct {
	outputDir string
	airport   string
}

// New creates a new Storage instance
func New(outputDir, airport string) *Storage {
	return &Storage{
		outputDir: outputDir,
		airport:   airport,
	}
}

// CombinedPath returns the path of the combined schedule document
func (s *Storage) CombinedPath() string {
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_combined_schedule.json", s.airport))
}

// RoutesPath returns the path of the route table text file
func (s *Storage) RoutesPath() string {
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_routes.txt", s.airport))
}

// WriteCombined writes the combined schedule as one indented JSON document.
// Payloads are written as received.
func (s *Storage) WriteCombined(combined types.CombinedSchedule) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(combined); err != nil {
		return "", fmt.Errorf("failed to encode combined schedule: %w", err)
	}

	path := s.CombinedPath()
	// Encode appends a newline
	if err := writeFile(path, bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		return "", err
	}
	return path, nil
}

// WriteRoutes writes the route table in the line format
func (s *Storage) WriteRoutes(table types.RouteTable) (string, error) {
	path := s.RoutesPath()
	if err := writeFile(path, []byte(FormatRoutes(table))); err != nil {
		return "", err
	}
	return path, nil
}

// RouteLines renders one AIRLINE-DEST-fam.id:fam.id-ANY# line per route, in sorted order
func RouteLines(table types.RouteTable) []string {
	keys := table.Keys()
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		fams := table.Families(key)
		parts := make([]string, 0, len(fams))
		for _, f := range fams {
			parts = append(parts, f.String())
		}
		lines = append(lines, fmt.Sprintf("%s-%s-%s-%s", key.Airline, key.Destination, strings.Join(parts, ":"), RouteSuffix))
	}
	return lines
}

// FormatRoutes joins the route lines with newlines, without a trailing newline
func FormatRoutes(table types.RouteTable) string {
	return strings.Join(RouteLines(table), "\n")
}

func writeFile(path string, data []byte) error {
	//nolint:gosec // path is built from the operator's output folder
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
