// Package loader decodes configuration sources into generic maps.
//
// Files are TOML unless their extension is .yaml or .yml. Environment
// overrides come from Env. Layers are combined with Merge, later layers
// taking precedence.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader produces one configuration layer. A source that does not exist
// yields nil, nil.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem reads configuration files. Tests substitute an in-memory
// implementation.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// OSFS reads from the operating system.
type OSFS struct{}

// ReadFile implements FileSystem.
func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Format is a configuration file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf picks the format from a file name's extension.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// File loads a single configuration file.
type File struct {
	fs     FileSystem
	path   string
	format Format
}

// NewFile returns a loader for path. A nil fsys reads from the OS.
func NewFile(fsys FileSystem, path string) *File {
	if fsys == nil {
		fsys = OSFS{}
	}
	return &File{fs: fsys, path: path, format: FormatOf(path)}
}

// Path returns the file path.
func (f *File) Path() string { return f.path }

// Format returns the syntax the file is decoded with.
func (f *File) Format() Format { return f.format }

// Load reads and decodes the file. A missing file yields nil, nil.
func (f *File) Load() (map[string]any, error) {
	data, err := f.fs.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", f.path, err)
	}
	return Decode(f.format, f.path, data)
}

// Decode parses data in the given format. name is only used in errors.
// Empty input decodes to an empty map.
func Decode(format Format, name string, data []byte) (map[string]any, error) {
	var out map[string]any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &out)
	default:
		err = toml.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, newParseError(name, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// DecodeReader is Decode for a reader.
func DecodeReader(format Format, name string, r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return Decode(format, name, data)
}

// ParseError is a syntax error in a configuration source.
// Line and Column are 1-based, or 0 when unknown.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func newParseError(name string, err error) *ParseError {
	pe := &ParseError{Path: name, Err: err}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
		return pe
	}
	// yaml.v3 reports syntax errors as "yaml: line N: ...".
	fmt.Sscanf(err.Error(), "yaml: line %d:", &pe.Line)
	return pe
}

// Error formats the error as path:line:column: message.
func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
		if e.Column > 0 {
			loc = fmt.Sprintf("%s:%d", loc, e.Column)
		}
	}
	return loc + ": " + e.Err.Error()
}

// Unwrap returns the decoder's error.
func (e *ParseError) Unwrap() error { return e.Err }
