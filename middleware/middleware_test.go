package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/httpcompress"
)

var testBody = strings.Repeat("a moderately compressible response body. ", 50)

func textHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		if body != "" {
			_, _ = io.WriteString(w, body)
		}
	})
}

func serve(t *testing.T, handler http.Handler, acceptEncoding string) *httptest.ResponseRecorder {
	t.Helper()

	policy := httpcompress.NewDefaultPolicy()
	wrapped := Compression(policy)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if acceptEncoding != "" {
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	return rec
}

func gunzip(t *testing.T, compressed []byte) []byte {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	defer zr.Close()

	got, err := io.ReadAll(zr)
	require.NoError(t, err)

	return got
}

func TestCompression_GzipRoundTrip(t *testing.T) {
	rec := serve(t, textHandler(http.StatusOK, testBody), "gzip")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	require.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
	require.Empty(t, rec.Header().Get("Content-Length"))
	require.Less(t, rec.Body.Len(), len(testBody))

	require.Equal(t, testBody, string(gunzip(t, rec.Body.Bytes())))
}

func TestCompression_AbsentHeaderPassesThrough(t *testing.T) {
	rec := serve(t, textHandler(http.StatusOK, testBody), "")

	require.Empty(t, rec.Header().Get("Content-Encoding"))
	require.Equal(t, testBody, rec.Body.String())
}

func TestCompression_ClientQualityPicksDeflate(t *testing.T) {
	rec := serve(t, textHandler(http.StatusOK, testBody), "gzip;q=0.5, deflate;q=0.8")

	require.Equal(t, "deflate", rec.Header().Get("Content-Encoding"))
}

func TestCompression_ZeroQualityNeverApplies(t *testing.T) {
	rec := serve(t, textHandler(http.StatusOK, testBody), "gzip;q=0")

	require.Empty(t, rec.Header().Get("Content-Encoding"))
	require.Equal(t, testBody, rec.Body.String())
}

func TestCompression_NoContentStatusUntouched(t *testing.T) {
	rec := serve(t, textHandler(http.StatusNoContent, ""), "gzip")

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Header().Get("Content-Encoding"))
	require.Empty(t, rec.Body.Bytes())
}

func TestCompression_AlreadyEncodedUntouched(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		_, _ = io.WriteString(w, "pre-compressed bytes")
	})

	rec := serve(t, handler, "gzip")

	require.Equal(t, "br", rec.Header().Get("Content-Encoding"))
	require.Equal(t, "pre-compressed bytes", rec.Body.String())
}

func TestCompression_SuppressDisablesCompression(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Suppress(w)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, testBody)
	})

	rec := serve(t, handler, "gzip")

	require.Empty(t, rec.Header().Get("Content-Encoding"))
	require.Equal(t, testBody, rec.Body.String())
}

func TestCompression_EmptyBodyEmitsNoContainer(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
	})

	rec := serve(t, handler, "gzip")

	// The encoder is installed on first write; a bodyless 200 stays empty
	// and must not advertise a coding it never produced.
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.Bytes())
	require.Empty(t, rec.Header().Get("Content-Encoding"))
	require.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
}

func TestCompression_ImplicitWriteHeader(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No explicit WriteHeader: the first Write commits a 200.
		_, _ = io.WriteString(w, testBody)
	})

	rec := serve(t, handler, "gzip")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	require.Equal(t, testBody, string(gunzip(t, rec.Body.Bytes())))
}

func TestCompression_PolicyConditionsApply(t *testing.T) {
	builder := httpcompress.NewBuilder()
	require.NoError(t, builder.RegisterGzip(httpcompress.DefaultGzipLevel,
		httpcompress.WithCondition(httpcompress.ContentTypes("text/")),
	))
	policy := builder.Build()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = io.WriteString(w, testBody)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	Compression(policy)(handler).ServeHTTP(rec, req)

	require.Empty(t, rec.Header().Get("Content-Encoding"))
	require.Equal(t, testBody, rec.Body.String())
}

func TestCompression_FlushStreamsIncrementally(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "first chunk. ")
		w.(http.Flusher).Flush()
		_, _ = io.WriteString(w, "second chunk.")
	})

	rec := serve(t, handler, "gzip")

	require.True(t, rec.Flushed)
	require.Equal(t, "first chunk. second chunk.", string(gunzip(t, rec.Body.Bytes())))
}

func TestCompression_FlushBeforeFirstWrite(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		// Flushing before any write must commit the headers through the
		// compression decision, not around it.
		w.(http.Flusher).Flush()
		_, _ = io.WriteString(w, testBody)
	})

	policy := httpcompress.NewDefaultPolicy()
	srv := httptest.NewServer(Compression(policy)(handler))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	// Setting Accept-Encoding explicitly disables the transport's transparent
	// decompression, so the test observes the wire bytes.
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, testBody, string(gunzip(t, raw)))
}

func TestCompression_FlushWithoutWriteEmitsValidStream(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		// The flush commits the coding header; the middleware owes the client
		// a decodable stream even though no body bytes follow.
		w.(http.Flusher).Flush()
	})

	rec := serve(t, handler, "gzip")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	require.Empty(t, gunzip(t, rec.Body.Bytes()))
}

func TestSuppress_UnwrappedWriterIsNoOp(t *testing.T) {
	// Suppress on a writer outside the middleware chain must not panic.
	Suppress(httptest.NewRecorder())
}
