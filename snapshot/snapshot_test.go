package snapshot

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/grindlemire/go-splits"
)

const tomlSnapshot = `
text_color = "#FFFFFF"

[[frame]]
background = "#101010"
icon = "a.png"
segment_name = "Level 1"

[frame.timer]
time = "1:23"
fraction = ".45"
top_color = "#7FFF7F"
bottom_color = "#00CC36"

[frame.segment_timer]
background = { kind = "vertical", start = "#333333", end = "#000000" }
time = "0:12"
fraction = ".34"

[frame.comparison1]
name = "PB"
time = "59.99"

[[frame]]
background = "#101010"
icon = "a.png"
segment_name = "Level 2"

[frame.timer]
time = "1:24"
fraction = ".00"

[frame.segment_timer]
time = "0:00"
fraction = ".50"

[frame.comparison1]
name = "PB"
time = "1:05.12"

[frame.comparison2]
name = "Best Segments"
time = "58.00"

[[frame]]
icon = "b.png"

[frame.timer]
time = "1:25"
fraction = ".00"
`

const yamlSnapshot = `
text_color: "#FFFFFF"
frame:
  - background: "#101010"
    icon: a.png
    segment_name: Level 1
    timer:
      time: "1:23"
      fraction: ".45"
      top_color: "#7FFF7F"
      bottom_color: "#00CC36"
    segment_timer:
      background:
        kind: vertical
        start: "#333333"
        end: "#000000"
      time: "0:12"
      fraction: ".34"
    comparison1:
      name: PB
      time: "59.99"
  - background: "#101010"
    icon: a.png
    segment_name: Level 2
    timer:
      time: "1:24"
      fraction: ".00"
    segment_timer:
      time: "0:00"
      fraction: ".50"
    comparison1:
      name: PB
      time: "1:05.12"
    comparison2:
      name: Best Segments
      time: "58.00"
  - icon: b.png
    timer:
      time: "1:25"
      fraction: ".00"
`

// writeSnapshot writes a snapshot and its icons into a temp dir.
func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	for _, icon := range []string{"a.png", "b.png"} {
		if err := os.WriteFile(filepath.Join(dir, icon), []byte(icon), 0644); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func loadStates(t *testing.T, path string) (*splits.LayoutState, []splits.DetailedTimerState) {
	t.Helper()
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	layout, err := f.Layout()
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	states, err := f.States()
	if err != nil {
		t.Fatalf("States() error = %v", err)
	}
	return layout, states
}

func TestLoad_TOMLAndYAMLAgree(t *testing.T) {
	tomlLayout, tomlStates := loadStates(t, writeSnapshot(t, "splits.toml", tomlSnapshot))
	yamlLayout, yamlStates := loadStates(t, writeSnapshot(t, "splits.yaml", yamlSnapshot))

	if !reflect.DeepEqual(tomlLayout, yamlLayout) {
		t.Errorf("layouts differ: %+v vs %+v", tomlLayout, yamlLayout)
	}
	if !reflect.DeepEqual(tomlStates, yamlStates) {
		t.Errorf("states differ:\ntoml: %+v\nyaml: %+v", tomlStates, yamlStates)
	}
}

func TestLoad_States(t *testing.T) {
	layout, states := loadStates(t, writeSnapshot(t, "splits.toml", tomlSnapshot))

	if layout.TextColor != splits.White {
		t.Errorf("text color = %+v, want white", layout.TextColor)
	}
	if len(states) != 3 {
		t.Fatalf("got %d states, want 3", len(states))
	}

	first := states[0]
	if first.Background != splits.Plain(splits.RGB(0x10, 0x10, 0x10)) {
		t.Errorf("background = %+v, want plain #101010", first.Background)
	}
	if first.SegmentName == nil || *first.SegmentName != "Level 1" {
		t.Errorf("segment name = %v, want Level 1", first.SegmentName)
	}
	if first.Timer.TopColor != splits.RGB(0x7F, 0xFF, 0x7F) || first.Timer.BottomColor != splits.RGB(0x00, 0xCC, 0x36) {
		t.Errorf("timer colors = %+v / %+v", first.Timer.TopColor, first.Timer.BottomColor)
	}
	if first.SegmentTimer.Background != splits.Vertical(splits.RGB(0x33, 0x33, 0x33), splits.Black) {
		t.Errorf("segment background = %+v, want vertical", first.SegmentTimer.Background)
	}
	if first.SegmentTimer.TopColor != splits.White || first.SegmentTimer.BottomColor != splits.White {
		t.Errorf("default segment colors = %+v / %+v, want white", first.SegmentTimer.TopColor, first.SegmentTimer.BottomColor)
	}
	if first.Comparison1 == nil || first.Comparison2 != nil {
		t.Errorf("comparisons = %+v / %+v, want only comparison1", first.Comparison1, first.Comparison2)
	}

	type iconWant struct {
		changed bool
		name    string
	}
	wantIcons := []iconWant{
		{changed: true, name: "a.png"},
		{changed: false},
		{changed: true, name: "b.png"},
	}
	for i, w := range wantIcons {
		got := states[i].IconChange
		if (got != nil) != w.changed {
			t.Errorf("frame %d: icon change = %v, want %v", i, got != nil, w.changed)
			continue
		}
		if got != nil && (got.Name != w.name || string(got.Data) != w.name) {
			t.Errorf("frame %d: icon = %q (%q), want %q", i, got.Name, got.Data, w.name)
		}
	}

	if states[2].SegmentName != nil || states[2].Background != (splits.Gradient{}) {
		t.Errorf("frame 2 = %+v, want absent name and transparent background", states[2])
	}
}

func TestLoad_IconRemoved(t *testing.T) {
	content := `
[[frame]]
icon = "a.png"
[[frame]]
`
	_, states := loadStates(t, writeSnapshot(t, "icons.toml", content))

	removed := states[1].IconChange
	if removed == nil {
		t.Fatal("frame 1: no icon change when the icon was dropped")
	}
	if len(removed.Data) != 0 {
		t.Errorf("frame 1: icon data = %q, want empty", removed.Data)
	}
}

func TestDecode_Errors(t *testing.T) {
	type tc struct {
		format  Format
		input   string
		wantErr string
	}

	tests := map[string]tc{
		"no frames": {
			format:  FormatTOML,
			input:   `text_color = "#fff"`,
			wantErr: "no frames",
		},
		"unknown toml key": {
			format:  FormatTOML,
			input:   "[[frame]]\nsegmnet_name = \"typo\"\n",
			wantErr: "segmnet_name",
		},
		"unknown yaml key": {
			format:  FormatYAML,
			input:   "frame:\n  - segmnet_name: typo\n",
			wantErr: "segmnet_name",
		},
		"bad background type": {
			format:  FormatTOML,
			input:   "[[frame]]\nbackground = 3\n",
			wantErr: "background",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatalf("Decode() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Decode() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestStates_Errors(t *testing.T) {
	type tc struct {
		input   string
		wantErr string
	}

	tests := map[string]tc{
		"bad timer color": {
			input:   "[[frame]]\n[[frame]]\n[frame.timer]\ntop_color = \"#zzz\"\n",
			wantErr: "frame 1: timer: top_color",
		},
		"bad gradient kind": {
			input:   "[[frame]]\nbackground = { kind = \"radial\", start = \"#000\" }\n",
			wantErr: "frame 0: background: unknown kind",
		},
		"missing icon": {
			input:   "[[frame]]\nicon = \"missing.png\"\n",
			wantErr: "frame 0: icon",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := Decode(strings.NewReader(tt.input), FormatTOML)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			f.Dir = t.TempDir()
			_, err = f.States()
			if err == nil {
				t.Fatalf("States() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("States() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	type tc struct {
		path    string
		want    Format
		wantErr bool
	}

	tests := map[string]tc{
		"toml":      {path: "run.toml", want: FormatTOML},
		"yaml":      {path: "run.yaml", want: FormatYAML},
		"yml upper": {path: "RUN.YML", want: FormatYAML},
		"json":      {path: "run.json", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
