package mapping

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a mapping file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from a file extension; anything other
// than .toml is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}

	return FormatYAML
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatYAML, FormatTOML:
		return f, nil
	case "yml", "":
		return FormatYAML, nil
	default:
		return "", errors.Newf("unsupported format %q", name)
	}
}

// LoadFile loads and parses a mapping file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mapping file %s", path)
	}

	return Decode(data, FormatForPath(path))
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*File, error) {
	if format == FormatTOML {
		return ParseTOML(data)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mapping YAML")
	}

	applyDefaults(&f)

	return &f, nil
}

// ParseTOML parses TOML data into a File.
func ParseTOML(data []byte) (*File, error) {
	var f File

	err := toml.Unmarshal(data, &f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mapping TOML")
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Encode serializes a File in the given format.
func Encode(f *File, format Format) ([]byte, error) {
	if format == FormatTOML {
		return toml.Marshal(f)
	}

	return Marshal(f)
}

// WriteFile writes a File to the given path, encoded by its extension.
func WriteFile(f *File, path string) error {
	data, err := Encode(f, FormatForPath(path))
	if err != nil {
		return errors.Wrap(err, "failed to marshal mapping")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write mapping file %s", path)
	}

	return nil
}
