package pronomen

import (
	"io/fs"

	"github.com/goliatone/go-pronomen/pkg/catalog"
	"github.com/goliatone/go-pronomen/pkg/results"
)

// EmbeddedTemplates exposes the built-in results templates so callers can
// copy or extend them and pass the result to results.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return results.TemplatesFS()
}

// EmbeddedCatalog exposes the catalog data files bundled with the module.
func EmbeddedCatalog() fs.FS {
	return catalog.DataFS()
}
