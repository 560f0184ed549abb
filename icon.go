package splits

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-splits/internal/debug"
)

// Icon is an uploaded segment icon.
type Icon struct {
	Texture     Texture
	AspectRatio float32
}

// IconSlot caches the detailed timer's icon texture across frames.
// The zero value is an empty slot. The caller owns the slot, passes the same
// one to every frame of a component, and calls Release when the component
// goes away.
type IconSlot struct {
	icon Icon
	set  bool
}

// Icon returns the cached icon, if any.
func (s *IconSlot) Icon() (Icon, bool) {
	return s.icon, s.set
}

// Replace frees the cached texture and uploads src in its place. A source
// with no data removes the icon without touching the backend. If the upload
// fails the slot is left empty and the returned error wraps
// ErrTextureCreation.
func (s *IconSlot) Replace(b Backend, src ImageSource) error {
	s.Release(b)
	if len(src.Data) == 0 {
		return nil
	}

	tex, aspect, err := b.CreateTexture(src)
	if err != nil {
		if !errors.Is(err, ErrTextureCreation) {
			err = fmt.Errorf("%w: %w", ErrTextureCreation, err)
		}
		debug.Log("icon %q: %v", src.Name, err)
		return err
	}

	s.icon = Icon{Texture: tex, AspectRatio: aspect}
	s.set = true
	debug.Log("icon %q: installed texture %d (aspect %.3f)", src.Name, tex, aspect)
	return nil
}

// Release frees the cached texture, if any, and empties the slot.
func (s *IconSlot) Release(b Backend) {
	if !s.set {
		return
	}
	tex := s.icon.Texture
	s.icon = Icon{}
	s.set = false
	b.FreeTexture(tex)
	debug.Log("icon: freed texture %d", tex)
}
