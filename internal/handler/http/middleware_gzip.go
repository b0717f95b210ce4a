package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that advertise gzip support in Accept-Encoding.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			body, err := gzip.NewReader(req.Body)
			if err != nil {
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
			defer body.Close()

			req.Body = body
			req.Header.Del("Content-Encoding")
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipPool.Get().(*gzip.Writer)
		zw.Reset(w)
		defer func() {
			zw.Close()
			gzipPool.Put(zw)
		}()

		next.ServeHTTP(&compressedWriter{ResponseWriter: w, zw: zw}, req)
	})
}

// compressedWriter routes the response body through a gzip writer. Headers
// are finalized on the first write so handlers that never call WriteHeader
// still get the Content-Encoding header.
type compressedWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (c *compressedWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true

	c.Header().Set("Content-Encoding", "gzip")
	// length of the compressed body is unknown up front
	c.Header().Del("Content-Length")
	c.ResponseWriter.WriteHeader(statusCode)
}

func (c *compressedWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	return c.zw.Write(p)
}
