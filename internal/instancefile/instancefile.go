// Package instancefile reads knapsack instances for the command-line tool.
//
// Two formats are supported:
//
//   - classic: the first data line is "n budget", followed by n lines
//     "value cost". Blank lines and lines starting with '#' are ignored.
//   - YAML:    a document with "budget" and an "items" list of
//     {value, cost} mappings.
//
// Both produce float64 instances, so integral and fractional data share the
// same solving path in the CLI.
package instancefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapstack/knapsack"
)

// ErrMalformed is wrapped by every parse error.
var ErrMalformed = errors.New("instancefile: malformed instance")

// Instance is the instance type produced by the readers.
type Instance = knapsack.Instance[float64, float64]

// Load opens path and dispatches on its extension: .yaml/.yml are read as
// YAML, anything else as the classic text format.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return ReadClassic(f)
	}
}

// ReadClassic parses the classic "n budget" / "value cost" text format.
func ReadClassic(r io.Reader) (*Instance, error) {
	var (
		sc     = bufio.NewScanner(r)
		line   int
		inst   *Instance
		want   int
		fields []string
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields = strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformed, line, len(fields))
		}
		if inst == nil {
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: bad item count %q", ErrMalformed, line, fields[0])
			}
			budget, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: budget: %v", ErrMalformed, line, err)
			}
			inst = knapsack.NewInstance[float64, float64](budget)
			want = n
			continue
		}
		if inst.Len() == want {
			return nil, fmt.Errorf("%w: line %d: more than %d items", ErrMalformed, line, want)
		}
		value, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: value: %v", ErrMalformed, line, err)
		}
		cost, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: cost: %v", ErrMalformed, line, err)
		}
		inst.AddItem(value, cost)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, fmt.Errorf("%w: missing header line", ErrMalformed)
	}
	if inst.Len() != want {
		return nil, fmt.Errorf("%w: header announces %d items, found %d", ErrMalformed, want, inst.Len())
	}

	return inst, nil
}

// yamlItem and yamlDoc mirror the YAML layout.
type yamlItem struct {
	Value *float64 `yaml:"value"`
	Cost  *float64 `yaml:"cost"`
}

type yamlDoc struct {
	Budget *float64   `yaml:"budget"`
	Items  []yamlItem `yaml:"items"`
}

// ReadYAML parses a YAML instance document.
func ReadYAML(r io.Reader) (*Instance, error) {
	var doc yamlDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Budget == nil {
		return nil, fmt.Errorf("%w: missing budget", ErrMalformed)
	}
	inst := knapsack.NewInstance[float64, float64](*doc.Budget)
	for i, it := range doc.Items {
		if it.Value == nil || it.Cost == nil {
			return nil, fmt.Errorf("%w: item %d needs value and cost", ErrMalformed, i)
		}
		inst.AddItem(*it.Value, *it.Cost)
	}

	return inst, nil
}
