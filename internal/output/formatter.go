package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rpgo/taxdrag/internal/domain"
)

var (
	// ErrUnsupportedFormat is returned for unknown formatter names.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrOutputWrite is returned when a report cannot be created or written.
	// The simulation itself succeeded when this is returned.
	ErrOutputWrite = errors.New("output write failure")
	// ErrReportPathConflict is returned when two reports would share a path.
	ErrReportPathConflict = errors.New("report path conflict")
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.SimulationResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is written to disk.
	Extension() string
}

// WriteFormatted runs a formatter and writes its output to path. Write
// failures are wrapped with ErrOutputWrite.
func WriteFormatted(f Formatter, result *domain.SimulationResult, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: no path for %s report", ErrOutputWrite, f.Name())
	}
	data, err := f.Format(result)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	return path, nil
}

// SiblingPath returns path with its extension replaced by ext, used to place
// additional formats next to the CSV export.
func SiblingPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

// ReportPaths assigns each formatter a file next to csvPath. Formatters that
// share an extension, or whose sibling path is csvPath itself, get their name
// appended to the file stem so no report overwrites another.
func ReportPaths(csvPath string, formatters []Formatter) ([]string, error) {
	taken := map[string]bool{filepath.Clean(csvPath): true}
	stem := strings.TrimSuffix(csvPath, filepath.Ext(csvPath))

	paths := make([]string, 0, len(formatters))
	for _, f := range formatters {
		p := SiblingPath(csvPath, f.Extension())
		if taken[filepath.Clean(p)] {
			p = stem + "_" + f.Name() + "." + f.Extension()
		}
		if taken[filepath.Clean(p)] {
			return nil, fmt.Errorf("%w: %s report would overwrite %s", ErrReportPathConflict, f.Name(), p)
		}
		taken[filepath.Clean(p)] = true
		paths = append(paths, p)
	}
	return paths, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	CSVExporter{},
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"summary":     "console",
	"text":        "console",
	"verbose":     "console-verbose",
	"csv-yearly":  "csv",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LookupFormatter returns the formatter for name or an ErrUnsupportedFormat
// error listing the available names.
func LookupFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
