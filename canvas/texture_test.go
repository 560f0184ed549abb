package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/grindlemire/go-splits"
)

// encodePNG returns a w x h PNG whose top half is top and bottom half is bottom.
func encodePNG(t *testing.T, w, h int, top, bottom color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y < h/2 {
				img.Set(x, y, top)
			} else {
				img.Set(x, y, bottom)
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestCanvas_CreateTexture(t *testing.T) {
	type tc struct {
		data       func(t *testing.T) []byte
		wantErr    bool
		wantAspect float32
	}

	tests := map[string]tc{
		"square png": {
			data:       func(t *testing.T) []byte { return encodePNG(t, 2, 2, red, blue) },
			wantAspect: 1,
		},
		"wide png": {
			data:       func(t *testing.T) []byte { return encodePNG(t, 4, 2, red, blue) },
			wantAspect: 2,
		},
		"garbage": {
			data:    func(t *testing.T) []byte { return []byte("not an image") },
			wantErr: true,
		},
		"empty": {
			data:    func(t *testing.T) []byte { return nil },
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestCanvas(t, 10, 4)
			tex, aspect, err := c.CreateTexture(splits.ImageSource{Name: name, Data: tt.data(t)})
			if tt.wantErr {
				if !errors.Is(err, splits.ErrTextureCreation) {
					t.Errorf("CreateTexture() error = %v, want ErrTextureCreation", err)
				}
				if c.LiveTextures() != 0 {
					t.Errorf("LiveTextures() = %d after failure, want 0", c.LiveTextures())
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateTexture() error = %v", err)
			}
			if tex != 1 {
				t.Errorf("first texture = %d, want 1", tex)
			}
			if !approxEqual(aspect, tt.wantAspect) {
				t.Errorf("aspect = %v, want %v", aspect, tt.wantAspect)
			}
		})
	}
}

func TestCanvas_FreeTexture(t *testing.T) {
	c := newTestCanvas(t, 10, 4)
	tex, _, err := c.CreateTexture(splits.ImageSource{Data: encodePNG(t, 2, 2, red, blue)})
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}

	c.FreeTexture(tex)
	c.FreeTexture(tex)
	if c.LiveTextures() != 0 {
		t.Errorf("LiveTextures() = %d, want 0", c.LiveTextures())
	}

	// Drawing a freed texture leaves the canvas untouched.
	c.DrawImage(splits.Vec2{}, c.Size(), tex)
	if got := c.Cell(0, 0).Content; got != " " {
		t.Errorf("freed texture was drawn: %q", got)
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	c := newTestCanvas(t, 10, 4)
	tex, _, err := c.CreateTexture(splits.ImageSource{Data: encodePNG(t, 2, 2, red, blue)})
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}

	// 4 columns by 2 rows is a square box of 4x4 pixels.
	c.DrawImage(splits.Vec2{}, splits.V(0.8, 0.8), tex)

	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			if got := c.Cell(col, row).Content; got != upperHalfBlock {
				t.Errorf("cell (%d,%d) = %q, want half block", col, row, got)
			}
		}
	}
	if got := c.Cell(4, 0).Content; got != " " {
		t.Errorf("cell right of image = %q, want blank", got)
	}

	r, _, b := c.Cell(0, 0).Style.Fg.RGB()
	if r <= b {
		t.Errorf("top pixel = (r %d, b %d), want red", r, b)
	}
	r, _, b = c.Cell(0, 1).Style.Bg.RGB()
	if b <= r {
		t.Errorf("bottom pixel = (r %d, b %d), want blue", r, b)
	}
}

// paintedMap returns one string per row with '#' for image cells.
func paintedMap(c *Canvas) []string {
	cols, rows := c.Grid()
	out := make([]string, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		for col := 0; col < cols; col++ {
			if c.Cell(col, row).Content == upperHalfBlock {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[row] = sb.String()
	}
	return out
}

func TestCanvas_DrawImageKeepsAspect(t *testing.T) {
	type tc struct {
		w, h int
		want []string
	}

	// The box is 10 columns by 5 rows: 10x10 pixels.
	tests := map[string]tc{
		"square fills the box": {
			w: 8, h: 8,
			want: []string{
				"##########",
				"##########",
				"##########",
				"##########",
				"##########",
			},
		},
		"wide is letterboxed": {
			w: 40, h: 10,
			want: []string{
				"..........",
				"..........",
				"##########",
				"..........",
				"..........",
			},
		},
		"tall is pillarboxed": {
			w: 10, h: 40,
			want: []string{
				"....##....",
				"....##....",
				"....##....",
				"....##....",
				"....##....",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestCanvas(t, 10, 5)
			tex, aspect, err := c.CreateTexture(splits.ImageSource{Name: name, Data: encodePNG(t, tt.w, tt.h, red, red)})
			if err != nil {
				t.Fatalf("CreateTexture() error = %v", err)
			}
			if !approxEqual(aspect, float32(tt.w)/float32(tt.h)) {
				t.Errorf("aspect = %v, want %v", aspect, float32(tt.w)/float32(tt.h))
			}

			c.DrawImage(splits.Vec2{}, splits.V(2, 2), tex)

			got := paintedMap(c)
			for row := range tt.want {
				if got[row] != tt.want[row] {
					t.Errorf("row %d = %s, want %s", row, got[row], tt.want[row])
				}
			}
		})
	}
}
