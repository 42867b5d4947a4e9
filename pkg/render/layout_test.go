package render

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exported APIs under pkg/ must only use types other modules can import.
func TestPublicPackagesDoNotImportInternal(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "*", "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	fset := token.NewFileSet()
	for _, path := range files {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		src, err := os.ReadFile(path)
		require.NoError(t, err)

		f, err := parser.ParseFile(fset, path, src, parser.ImportsOnly)
		require.NoError(t, err, path)
		for _, imp := range f.Imports {
			p, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			assert.NotContains(t, p, "/gointersect/internal/", "%s imports %s", path, p)
		}
	}
}
