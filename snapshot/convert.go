package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grindlemire/go-splits"
)

// Layout returns the layout-wide state.
func (f *File) Layout() (*splits.LayoutState, error) {
	text, err := parseColor(f.TextColor, splits.White)
	if err != nil {
		return nil, fmt.Errorf("text_color: %w", err)
	}
	return &splits.LayoutState{TextColor: text}, nil
}

// States converts every frame into renderer input. IconChange is set on the
// first frame with an icon and on every frame whose icon path differs from
// the previous frame's; dropping the icon sends an empty source, which no
// backend can upload, so the icon slot ends up empty.
func (f *File) States() ([]splits.DetailedTimerState, error) {
	states := make([]splits.DetailedTimerState, len(f.Frames))
	prevIcon := ""
	for i, fr := range f.Frames {
		state, err := f.convertFrame(fr)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		if fr.Icon != prevIcon {
			src, err := f.readIcon(fr.Icon)
			if err != nil {
				return nil, fmt.Errorf("frame %d: icon: %w", i, err)
			}
			state.IconChange = src
			prevIcon = fr.Icon
		}
		states[i] = state
	}
	return states, nil
}

func (f *File) readIcon(path string) (*splits.ImageSource, error) {
	if path == "" {
		return &splits.ImageSource{}, nil
	}
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(f.Dir, path)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	return &splits.ImageSource{Name: path, Data: data}, nil
}

func (f *File) convertFrame(fr Frame) (splits.DetailedTimerState, error) {
	var state splits.DetailedTimerState

	bg, err := fr.Background.gradient()
	if err != nil {
		return state, fmt.Errorf("background: %w", err)
	}
	state.Background = bg

	if state.Timer, err = fr.Timer.state(); err != nil {
		return state, fmt.Errorf("timer: %w", err)
	}
	if state.SegmentTimer, err = fr.SegmentTimer.state(); err != nil {
		return state, fmt.Errorf("segment_timer: %w", err)
	}

	state.SegmentName = fr.SegmentName
	if c := fr.Comparison1; c != nil {
		state.Comparison1 = &splits.ComparisonState{Name: c.Name, Time: c.Time}
	}
	if c := fr.Comparison2; c != nil {
		state.Comparison2 = &splits.ComparisonState{Name: c.Name, Time: c.Time}
	}
	return state, nil
}

func (t Timer) state() (splits.TimerState, error) {
	bg, err := t.Background.gradient()
	if err != nil {
		return splits.TimerState{}, fmt.Errorf("background: %w", err)
	}
	top, err := parseColor(t.TopColor, splits.White)
	if err != nil {
		return splits.TimerState{}, fmt.Errorf("top_color: %w", err)
	}
	bottom, err := parseColor(t.BottomColor, top)
	if err != nil {
		return splits.TimerState{}, fmt.Errorf("bottom_color: %w", err)
	}
	return splits.TimerState{
		Background:  bg,
		Time:        t.Time,
		Fraction:    t.Fraction,
		TopColor:    top,
		BottomColor: bottom,
	}, nil
}

func (b Background) gradient() (splits.Gradient, error) {
	kind := b.Kind
	if kind == "" && b.Start != "" {
		kind = "plain"
	}

	switch kind {
	case "", "transparent":
		return splits.Gradient{}, nil
	case "plain":
		c, err := parseColor(b.Start, splits.Transparent)
		if err != nil {
			return splits.Gradient{}, fmt.Errorf("start: %w", err)
		}
		return splits.Plain(c), nil
	case "vertical", "horizontal":
		start, err := parseColor(b.Start, splits.Transparent)
		if err != nil {
			return splits.Gradient{}, fmt.Errorf("start: %w", err)
		}
		end, err := parseColor(b.End, start)
		if err != nil {
			return splits.Gradient{}, fmt.Errorf("end: %w", err)
		}
		if kind == "vertical" {
			return splits.Vertical(start, end), nil
		}
		return splits.Horizontal(start, end), nil
	}
	return splits.Gradient{}, fmt.Errorf("unknown kind %q (use transparent, plain, vertical or horizontal)", kind)
}

func parseColor(s string, fallback splits.Color) (splits.Color, error) {
	if s == "" {
		return fallback, nil
	}
	c, err := splits.ParseHexColor(s)
	if err != nil {
		return splits.Color{}, fmt.Errorf("%q: %w", s, err)
	}
	return c, nil
}
