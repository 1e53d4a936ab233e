// Package export writes assembled stair meshes to interchange file formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/stairgen/pkg/mesh"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format is an output file format.
type Format string

const (
	FormatOBJ      Format = "obj"
	FormatSTL      Format = "stl"
	FormatSTLASCII Format = "stl-ascii"
)

// ParseFormat resolves an explicit format name, or infers it from the file
// extension when name is empty.
func ParseFormat(name, path string) (Format, error) {
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	switch f := Format(strings.ToLower(name)); f {
	case FormatOBJ, FormatSTL, FormatSTLASCII:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write encodes buf to w in the given format. The name labels the object
// inside the file.
func Write(w io.Writer, buf *mesh.Buffer, format Format, name string) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	switch format {
	case FormatOBJ:
		return WriteOBJ(w, buf, name)
	case FormatSTL:
		return WriteSTL(w, buf, name, false)
	case FormatSTLASCII:
		return WriteSTL(w, buf, name, true)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile writes buf to path, creating parent directories.
func WriteFile(path string, buf *mesh.Buffer, format Format, name string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, buf, format, name); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
