package catalog

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed data/*.yaml
var embeddedData embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// DataFS exposes the embedded catalog files.
func DataFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return embeddedData
	}
	return sub
}

// Default returns the embedded catalog, loading it on first use. It panics
// if the embedded data is invalid.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Load(DataFS())
		if err != nil {
			panic(err)
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}
