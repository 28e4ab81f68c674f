package dataset

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/wtqexec/internal/table"
)

//go:embed schema.cue
var schemaSource string

// Example is one question to evaluate.
type Example struct {
	// ID uniquely identifies the example within its suite.
	ID string `yaml:"id" json:"id"`

	// Question is the natural-language question.
	Question string `yaml:"question" json:"question"`

	// Tokens is the pre-tokenized question. When empty the question is
	// tokenized with table.Tokenize.
	Tokens []string `yaml:"tokens,omitempty" json:"tokens,omitempty"`

	// Table is the tagged table file. After loading it is resolved against
	// the suite file's directory.
	Table string `yaml:"table" json:"table"`

	// Targets are the gold answers.
	Targets []string `yaml:"targets" json:"targets"`

	// LogicalForms are the candidate logical forms to execute.
	LogicalForms []string `yaml:"logical_forms" json:"logical_forms"`
}

// QuestionTokens returns the tokens the table context is built from.
func (e Example) QuestionTokens() []table.Token {
	if len(e.Tokens) > 0 {
		return table.TokensFromStrings(e.Tokens)
	}
	return table.Tokenize(e.Question)
}

// Suite is a named list of examples.
type Suite struct {
	Name     string    `yaml:"name,omitempty" json:"name,omitempty"`
	Examples []Example `yaml:"examples" json:"examples"`
}

// LoadError reports a suite that cannot be read or is invalid.
type LoadError struct {
	// Path is the suite file.
	Path string

	// Line is the 1-based line for JSON Lines input, 0 otherwise.
	Line int

	// Err is the underlying problem.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load suite %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load suite %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError returns true if err is or wraps a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// Load reads a suite, dispatching on the file extension.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var suite *Suite
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		suite, err = decodeYAML(data)
	case ".jsonl":
		suite, err = decodeJSONL(path, data)
	case ".cue":
		suite, err = decodeCUE(path, data)
	default:
		return nil, &LoadError{Path: path, Err: fmt.Errorf("unsupported suite format %q", filepath.Ext(path))}
	}
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := validate(suite); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	resolveTables(suite, filepath.Dir(path))
	return suite, nil
}

func decodeYAML(data []byte) (*Suite, error) {
	var suite Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&suite); err != nil {
		if errors.Is(err, io.EOF) {
			return &suite, nil
		}
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return &suite, nil
}

func decodeJSONL(path string, data []byte) (*Suite, error) {
	var suite Suite
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var ex Example
		dec := json.NewDecoder(bytes.NewReader(text))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ex); err != nil {
			return nil, &LoadError{Path: path, Line: line, Err: fmt.Errorf("parse JSON: %w", err)}
		}
		suite.Examples = append(suite.Examples, ex)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &suite, nil
}

func decodeCUE(path string, data []byte) (*Suite, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile CUE: %w", err)
	}

	unified := schema.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate CUE: %w", err)
	}

	var suite Suite
	if err := unified.Decode(&suite); err != nil {
		return nil, fmt.Errorf("decode CUE: %w", err)
	}
	return &suite, nil
}

// validate checks required fields and ID uniqueness.
func validate(s *Suite) error {
	seen := make(map[string]bool, len(s.Examples))
	for i, ex := range s.Examples {
		switch {
		case ex.ID == "":
			return fmt.Errorf("example %d: id is required", i)
		case ex.Question == "":
			return fmt.Errorf("example %s: question is required", ex.ID)
		case ex.Table == "":
			return fmt.Errorf("example %s: table is required", ex.ID)
		case seen[ex.ID]:
			return fmt.Errorf("example %s: duplicate id", ex.ID)
		}
		seen[ex.ID] = true
	}
	return nil
}

func resolveTables(s *Suite, base string) {
	for i := range s.Examples {
		if p := s.Examples[i].Table; !filepath.IsAbs(p) {
			s.Examples[i].Table = filepath.Join(base, p)
		}
	}
}
