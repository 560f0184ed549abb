package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/grindlemire/go-splits"
	"github.com/grindlemire/go-splits/internal/debug"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// upperHalfBlock paints a cell's top half with its foreground color, so one
// cell shows two vertically stacked pixels.
const upperHalfBlock = "▀"

// CreateTexture decodes a PNG, JPEG, GIF, BMP or WebP image and keeps it
// until FreeTexture. Handles start at 1.
func (c *Canvas) CreateTexture(src splits.ImageSource) (splits.Texture, float32, error) {
	img, format, err := image.Decode(bytes.NewReader(src.Data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: decoding %q: %w", splits.ErrTextureCreation, src.Name, err)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0, 0, fmt.Errorf("%w: %q: %w", splits.ErrTextureCreation, src.Name, errors.New("image has no pixels"))
	}

	c.nextTexture++
	tex := c.nextTexture
	c.textures[tex] = img
	debug.Log("canvas: texture %d from %q (%s %dx%d)", tex, src.Name, format, bounds.Dx(), bounds.Dy())
	return tex, float32(bounds.Dx()) / float32(bounds.Dy()), nil
}

// FreeTexture drops a texture. Unknown handles are ignored.
func (c *Canvas) FreeTexture(tex splits.Texture) {
	if _, ok := c.textures[tex]; !ok {
		debug.Log("canvas: ignoring free of unknown texture %d", tex)
		return
	}
	delete(c.textures, tex)
}

// LiveTextures returns the number of textures not yet freed.
func (c *Canvas) LiveTextures() int {
	return len(c.textures)
}

// DrawImage fits the texture inside the box, keeping its aspect ratio and
// centering it on the short axis. Each cell shows two vertically stacked
// pixels; a cell half outside the fitted image keeps its background.
func (c *Canvas) DrawImage(origin, size splits.Vec2, tex splits.Texture) {
	img, ok := c.textures[tex]
	if !ok {
		debug.Log("canvas: ignoring draw of unknown texture %d", tex)
		return
	}
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	o, fitted := fit(origin.Add(c.offset), size, img.Bounds())
	x0, x1 := span(o.X, o.X+fitted.X, c.cellW)
	y0, y1 := span(o.Y, o.Y+fitted.Y, c.cellH/2)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	pixels := image.NewRGBA(image.Rect(0, 0, x1-x0, y1-y0))
	draw.BiLinear.Scale(pixels, pixels.Bounds(), img, img.Bounds(), draw.Src, nil)
	pixel := func(col, py int) color.RGBA {
		if py < y0 || py >= y1 {
			return color.RGBA{}
		}
		return pixels.RGBAAt(col-x0, py-y0)
	}

	for row := max(y0, 0) / 2; row < min((y1+1)/2, c.rows); row++ {
		for col := max(x0, 0); col < min(x1, c.cols); col++ {
			top, bottom := pixel(col, 2*row), pixel(col, 2*row+1)
			if top.A == 0 && bottom.A == 0 {
				continue
			}
			under := c.Cell(col, row).Style.Bg
			c.setCell(col, row, Cell{
				Content: upperHalfBlock,
				Style:   Style{Fg: over(unpremultiply(top), under), Bg: over(unpremultiply(bottom), under)},
				Width:   1,
			})
		}
	}
}

// fit returns the largest box with the image's aspect ratio that fits in
// size, centered in it.
func fit(origin, size splits.Vec2, bounds image.Rectangle) (splits.Vec2, splits.Vec2) {
	aspect := float32(bounds.Dx()) / float32(bounds.Dy())
	w, h := size.X, size.Y
	if w/h > aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	return origin.Add(splits.V((size.X-w)/2, (size.Y-h)/2)), splits.V(w, h)
}

// unpremultiply converts an alpha-premultiplied pixel to a straight-alpha color.
func unpremultiply(px color.Color) splits.Color {
	r, g, b, a := px.RGBA()
	if a == 0 {
		return splits.Transparent
	}
	return splits.Color{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 0xFFFF,
	}
}
