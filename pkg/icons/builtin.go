package icons

import (
	_ "embed"
	"sync"
)

var (
	//go:embed assets/icon.idx
	builtinIndex []byte
	//go:embed assets/icon.bin
	builtinData []byte
)

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
	builtinErr     error
)

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtinCatalog, builtinErr = Parse(builtinIndex, builtinData)
	})
	return builtinCatalog, builtinErr
}
