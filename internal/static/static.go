package static

import (
	"crypto/sha256"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
)

//go:embed styles.css
var stylesCSS []byte

var StylesAssetPath string

func Init() {
	stylesHash := fmt.Sprintf("%x", sha256.Sum256(stylesCSS))
	StylesAssetPath = fmt.Sprintf("/static/styles.%s.css", stylesHash[:12])
}

// Register serves the embedded assets. Paths are content-hashed so caching
// can be aggressive.
func Register(mux *http.ServeMux) {
	mux.HandleFunc(StylesAssetPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		if _, err := w.Write(stylesCSS); err != nil {
			slog.ErrorContext(r.Context(), "failed to write styles css", "error", err)
		}
	})
}
