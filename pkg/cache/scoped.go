package cache

// Keyer builds cache keys.
type Keyer interface {
	// BadgeKey identifies one rendered badge by its descriptor.
	BadgeKey(descriptor any) string
	// GalleryKey identifies a rendered gallery page.
	GalleryKey(logo string) string
}

// DefaultKeyer hashes descriptors with a fixed prefix per kind.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) BadgeKey(descriptor any) string { return hashKey("badge", descriptor) }
func (DefaultKeyer) GalleryKey(logo string) string  { return hashKey("gallery", logo) }

// ScopedKeyer prefixes every key of an inner Keyer. Badges measured with
// different font sets must not share entries, so callers scope keys by the
// font configuration.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), Scope("fonts", dir))
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner means
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) BadgeKey(descriptor any) string { return k.prefix + k.inner.BadgeKey(descriptor) }
func (k *ScopedKeyer) GalleryKey(logo string) string  { return k.prefix + k.inner.GalleryKey(logo) }

// Scope returns a short prefix derived from parts, ending in ':'.
func Scope(parts ...any) string {
	key := hashKey("scope", parts...)
	return key[:len("scope:")+16] + ":"
}
