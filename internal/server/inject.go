// internal/server/inject.go
package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
)

// injectReload appends the live-reload script to HTML responses. Other
// content types pass through untouched. Caching is disabled across the
// board so the browser always fetches the freshly built files.
func injectReload(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		isHTML := strings.HasSuffix(r.URL.Path, ".html") || strings.HasSuffix(r.URL.Path, "/")
		if !isHTML {
			next.ServeHTTP(w, r)
			return
		}

		rec := newRecorder(w)
		next.ServeHTTP(rec, r)

		for key, values := range rec.Header() {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}

		body := rec.body.Bytes()
		if rec.status != http.StatusOK {
			w.WriteHeader(rec.status)
			w.Write(body)
			return
		}

		body = bytes.Replace(body, []byte("</body>"), []byte(reloadScript+"</body>"), 1)
		w.Header().Set("Content-Length", fmt.Sprint(len(body)))
		w.WriteHeader(rec.status)
		w.Write(body)
	})
}

// recorder buffers a response so the body can be rewritten before it is
// sent. The file server sets Content-Length itself, which would be wrong
// after injection.
type recorder struct {
	http.ResponseWriter
	body   *bytes.Buffer
	status int
	header http.Header
}

func newRecorder(w http.ResponseWriter) *recorder {
	return &recorder{
		ResponseWriter: w,
		body:           new(bytes.Buffer),
		header:         make(http.Header),
		status:         http.StatusOK,
	}
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) Write(b []byte) (int, error) {
	return r.body.Write(b)
}

func (r *recorder) WriteHeader(status int) {
	r.status = status
}

const reloadScript = `
<script>
  (function() {
    let socket = new WebSocket("ws://" + window.location.host + "` + wsPath + `");
    socket.onmessage = function(event) {
      if (event.data === "reload") {
        window.location.reload();
      }
    };
    socket.onerror = function() {
      console.error("Live reload connection lost. Restart 'gazette serve'.");
    };
  })();
</script>
`