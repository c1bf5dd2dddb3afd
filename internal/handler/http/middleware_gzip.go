// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipWriterPool and gzipReaderPool amortize the allocation cost of
// compress/gzip's internal buffers across the request volume a paste host
// sees: every PUT body and every GET response passes through here, so a
// per-request gzip.Writer/gzip.Reader would otherwise be the single
// hottest allocation site in the handler chain.
var (
	gzipWriterPool = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaderPool = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip transparently decompresses a gzip-encoded request body and
// compresses the response body when the client advertises support for it.
//
// Ciphertext itself rarely compresses well, but request/response framing
// (headers, and any plaintext status body on error paths) still benefits,
// and a caller is free to gzip its upload regardless of what the payload
// looks like; the middleware doesn't need to know which is which.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isGzipEncoded(r) {
			reader, ok := decompressBody(w, r)
			if !ok {
				return
			}
			defer reader.release()
		}

		if !acceptsGzip(r) {
			next.ServeHTTP(w, r)
			return
		}

		gw := gzipWriterPool.Get().(*gzip.Writer)
		gw.Reset(w)
		defer func() {
			gw.Close()
			gzipWriterPool.Put(gw)
		}()

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: gw}, r)
	})
}

func isGzipEncoded(r *http.Request) bool {
	return r.Body != nil && strings.Contains(r.Header.Get("Content-Encoding"), "gzip")
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// pooledGzipReader wraps a pooled *gzip.Reader so the caller can return it
// to the pool once the request body has been fully read.
type pooledGzipReader struct {
	*gzip.Reader
}

func (r pooledGzipReader) release() {
	r.Reader.Close()
	gzipReaderPool.Put(r.Reader)
}

// decompressBody swaps r.Body for a decompressing reader over the original
// gzip-encoded body and strips the now-stale Content-Encoding header so
// downstream handlers see plain bytes. On malformed gzip input it writes
// 400 itself and returns ok=false so the caller aborts the chain.
func decompressBody(w http.ResponseWriter, r *http.Request) (pooledGzipReader, bool) {
	gr := gzipReaderPool.Get().(*gzip.Reader)
	if err := gr.Reset(r.Body); err != nil {
		gzipReaderPool.Put(gr)
		http.Error(w, "invalid gzip request body", http.StatusBadRequest)
		return pooledGzipReader{}, false
	}

	pooled := pooledGzipReader{gr}
	r.Body = io.NopCloser(pooled)
	r.Header.Del("Content-Encoding")
	return pooled, true
}

// gzipResponseWriter compresses everything written through it and tags the
// response with Content-Encoding: gzip when WriteHeader is called. Write
// does not set the header, so a handler that writes a body without calling
// WriteHeader first sends compressed bytes untagged.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}
