// Package story reads story files from disk into author-form game states.
package story

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tatianab/advgame/internal/models"
	"gopkg.in/yaml.v3"
)

// Encoding is an on-disk story encoding.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

// ErrUnsupportedFormat is returned for files whose extension names no known encoding.
var ErrUnsupportedFormat = errors.New("unsupported story format")

// DecodeError reports a malformed story file. Line and Column are 1-based
// and zero when the decoder could not locate the problem.
type DecodeError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("error while parsing ")
	if e.Path != "" {
		b.WriteString(e.Path)
	} else {
		b.WriteString("story")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ", line %d:%d", e.Line, e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodingFor picks the encoding from the file extension.
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// ReadFile decodes the story stored at path.
func ReadFile(path string) (*models.GameState, error) {
	enc, err := EncodingFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	game, err := decode(data, enc)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return game, nil
}

// Decode reads a whole story from r.
func Decode(r io.Reader, enc Encoding) (*models.GameState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data, enc)
}

func decode(data []byte, enc Encoding) (*models.GameState, error) {
	var game models.GameState
	switch enc {
	case JSON:
		if err := json.Unmarshal(data, &game); err != nil {
			line, col := jsonPosition(data, err)
			return nil, &DecodeError{Line: line, Column: col, Err: err}
		}
	case YAML:
		if err := yaml.Unmarshal(data, &game); err != nil {
			return nil, &DecodeError{Err: err}
		}
	default:
		return nil, fmt.Errorf("%q: %w", enc, ErrUnsupportedFormat)
	}
	return &game, nil
}

// jsonPosition turns the byte offset carried by encoding/json errors into
// a line and column.
func jsonPosition(data []byte, err error) (int, int) {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0, 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte("\n")) + 1
	col := len(prefix) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
