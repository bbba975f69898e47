package fonts

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/matzehuels/stackbadge/pkg/errors"
)

// TableExt is the file extension of width tables on disk.
const TableExt = ".json"

// LoadDir registers every <family>-<size>px-<weight>.json table found at the
// top level of fsys. Names already present in reg are skipped, so a directory
// loaded first takes priority over later sources. It returns the names it
// registered.
func LoadDir(reg *Registry, fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read font directory")
	}

	var loaded []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), TableExt) {
			continue
		}
		base := strings.TrimSuffix(e.Name(), TableExt)
		name, err := ParseName(base)
		if err != nil {
			return loaded, err
		}
		if reg.Has(base) {
			continue
		}

		font, err := loadFS(fsys, e.Name(), name.Size)
		if err != nil {
			return loaded, err
		}
		if err := reg.Register(base, font); err != nil {
			return loaded, err
		}
		loaded = append(loaded, base)
	}
	return loaded, nil
}

func loadFS(fsys fs.FS, file string, size int) (*Font, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open font table %s", file)
	}
	defer f.Close()

	font, err := Parse(f, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path.Base(file), err)
	}
	return font, nil
}
