package cli

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/landkeeper/internal/api"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// loadFile reads a local file for upload and guesses its content type from
// the extension, falling back to content sniffing.
func loadFile(slot, path string) (api.File, error) {
	data, err := readFile(path)
	if err != nil {
		return api.File{}, fmt.Errorf("read %s: %w", path, err)
	}

	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return api.File{Slot: slot, Name: filepath.Base(path), ContentType: ct, Data: data}, nil
}
