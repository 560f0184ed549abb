package splits

import "errors"

// Texture is a handle to an image uploaded to a Backend.
type Texture uint32

// ImageSource is an encoded image handed to Backend.CreateTexture.
type ImageSource struct {
	// Name identifies the image in logs, typically a file path.
	Name string
	Data []byte
}

// Errors reported by backends.
var (
	// ErrTextureCreation means an image could not be decoded or uploaded.
	ErrTextureCreation = errors.New("texture creation failed")
	// ErrMeasurementUnavailable means the backend cannot measure text.
	ErrMeasurementUnavailable = errors.New("text measurement unavailable")
)

// Backend draws primitives and measures text for the renderers.
// Every method is synchronous and is only called from the rendering goroutine.
type Backend interface {
	// FillRectangle fills the box at origin with the given style.
	FillRectangle(origin, size Vec2, fill Gradient)
	// DrawImage draws a texture stretched over the box at origin.
	DrawImage(origin, size Vec2, tex Texture)
	// CreateTexture uploads an image, returning its handle and
	// width/height aspect ratio. Failures wrap ErrTextureCreation.
	CreateTexture(src ImageSource) (Texture, float32, error)
	// FreeTexture releases a handle returned by CreateTexture. It is
	// called at most once per handle.
	FreeTexture(tex Texture)
	// DrawTextEllipsis draws text left-anchored at origin (x, baseline),
	// truncating it with an ellipsis so it never extends past maxX.
	// It returns the rightmost x used.
	DrawTextEllipsis(text string, origin Vec2, scale float32, colors ColorPair, maxX float32) (float32, error)
	// MeasureNumbers returns the width DrawNumbers would use for text.
	MeasureNumbers(text string, scale float32) (float32, error)
	// DrawNumbers draws text right-anchored at origin (x, baseline) and
	// returns the left edge it consumed.
	DrawNumbers(text string, origin Vec2, scale float32, colors ColorPair) (float32, error)
	// Translate shifts the coordinate origin of subsequent draws.
	Translate(dx, dy float32)
}
