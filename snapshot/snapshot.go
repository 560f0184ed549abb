// Package snapshot reads detailed timer frames from TOML or YAML files.
//
// A file lists frames in order. Each frame describes what the component
// shows; icons are image paths resolved relative to the file, and an icon
// is only uploaded on the frame where its path changes.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the decoder for a snapshot file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format's name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported snapshot extension %q (use .toml, .yaml or .yml)", filepath.Ext(path))
}

// File is a decoded snapshot file.
type File struct {
	// TextColor is the layout text color; white when empty.
	TextColor string  `toml:"text_color" yaml:"text_color"`
	Frames    []Frame `toml:"frame" yaml:"frame"`

	// Dir resolves relative icon paths. Load sets it to the file's directory.
	Dir string `toml:"-" yaml:"-"`
}

// Frame is one frame of the detailed timer.
type Frame struct {
	Background   Background  `toml:"background" yaml:"background"`
	Icon         string      `toml:"icon" yaml:"icon"`
	SegmentName  *string     `toml:"segment_name" yaml:"segment_name"`
	Timer        Timer       `toml:"timer" yaml:"timer"`
	SegmentTimer Timer       `toml:"segment_timer" yaml:"segment_timer"`
	Comparison1  *Comparison `toml:"comparison1" yaml:"comparison1"`
	Comparison2  *Comparison `toml:"comparison2" yaml:"comparison2"`
}

// Timer is one timer row.
type Timer struct {
	Background  Background `toml:"background" yaml:"background"`
	Time        string     `toml:"time" yaml:"time"`
	Fraction    string     `toml:"fraction" yaml:"fraction"`
	TopColor    string     `toml:"top_color" yaml:"top_color"`
	BottomColor string     `toml:"bottom_color" yaml:"bottom_color"`
}

// Comparison is one comparison line.
type Comparison struct {
	Name string `toml:"name" yaml:"name"`
	Time string `toml:"time" yaml:"time"`
}

// Background is a fill. It is written either as a table with kind, start
// and end, or as a bare hex color meaning a plain fill.
type Background struct {
	Kind  string `toml:"kind" yaml:"kind"`
	Start string `toml:"start" yaml:"start"`
	End   string `toml:"end" yaml:"end"`
}

// UnmarshalTOML accepts a bare color string or a table.
func (b *Background) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*b = Background{Kind: "plain", Start: v}
		return nil
	case map[string]any:
		for key, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("background.%s: expected string, got %T", key, raw)
			}
			switch key {
			case "kind":
				b.Kind = s
			case "start":
				b.Start = s
			case "end":
				b.End = s
			default:
				return fmt.Errorf("background: unknown key %q", key)
			}
		}
		return nil
	}
	return fmt.Errorf("background: expected string or table, got %T", data)
}

// UnmarshalYAML accepts a bare color string or a mapping.
func (b *Background) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*b = Background{Kind: "plain", Start: value.Value}
		return nil
	}
	type plain Background
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*b = Background(p)
	return nil
}

// Load reads a snapshot file, choosing the decoder by extension.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	f.Dir = filepath.Dir(path)
	return f, nil
}

// Decode reads a snapshot in the given format. Unknown keys are errors.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			slices.Sort(keys)
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown snapshot format %d", format)
	}

	if len(f.Frames) == 0 {
		return nil, errors.New("snapshot has no frames")
	}
	return &f, nil
}
