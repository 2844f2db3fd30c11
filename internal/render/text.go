package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// TextRenderer writes a plain-text artifact with the same content as the
// PDF layout. Used by headless installations and by tests that assert on
// artifact content.
type TextRenderer struct {
	dir string
}

func (r *TextRenderer) Render(c Certificate) (string, error) {
	path := filepath.Join(r.dir, c.Code+".txt")

	content := fmt.Sprintf("%s\n\n%s\n\n%s\n", title, c.body(), footer)
	if err := os.WriteFile(path, []byte(content), 0o640); err != nil {
		return "", err
	}
	return path, nil
}
