// Package builtin provides the default font registry.
//
// The four font names used by the badge styles are backed by width tables
// measured from the Go fonts, which ship with golang.org/x/image and need no
// system installation. Tables loaded from a directory take priority, so real
// Verdana or Helvetica metrics can be dropped in without a rebuild.
package builtin

import (
	"io/fs"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/stackbadge/pkg/fonts"
	"github.com/matzehuels/stackbadge/pkg/fonts/fontgen"
)

var faces = map[string][]byte{
	"regular": goregular.TTF,
	"bold":    gobold.TTF,
}

var sources = []struct {
	name string
	face string
	size int
}{
	{fonts.VerdanaNormal11, "regular", 11},
	{fonts.VerdanaNormal10, "regular", 10},
	{fonts.VerdanaBold10, "bold", 10},
	{fonts.HelveticaBold11, "bold", 11},
}

var (
	once       sync.Once
	defaultReg *fonts.Registry
	defaultErr error
)

// Registry returns the shared default registry, building it on first use.
func Registry() (*fonts.Registry, error) {
	once.Do(func() {
		defaultReg, defaultErr = NewRegistry()
	})
	return defaultReg, defaultErr
}

// NewRegistry loads the tables found in dirs, in order, and fills any of the
// conventional names still missing from the Go fonts.
func NewRegistry(dirs ...fs.FS) (*fonts.Registry, error) {
	reg := fonts.NewRegistry()
	for _, dir := range dirs {
		if _, err := fonts.LoadDir(reg, dir); err != nil {
			return nil, err
		}
	}

	parsed := make(map[string]*fontgen.Source)
	for _, s := range sources {
		if reg.Has(s.name) {
			continue
		}
		src, ok := parsed[s.face]
		if !ok {
			var err error
			if src, err = fontgen.Parse(faces[s.face]); err != nil {
				return nil, err
			}
			parsed[s.face] = src
		}
		f, err := src.Font(s.size)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(s.name, f); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
