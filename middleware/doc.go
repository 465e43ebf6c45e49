// Package middleware adapts the httpcompress negotiation core to standard
// net/http handler chains.
//
// The middleware negotiates candidates from the request's Accept-Encoding
// header up front, then decides eligibility when the handler commits the
// response headers: status codes without a body (1xx, 204, 304) and hijacked
// connections are never compressed, and the policy's conditions are evaluated
// against the committed headers. When an encoder applies, the response writer
// is wrapped lazily, Content-Length is dropped, Content-Encoding is set and
// "Vary: Accept-Encoding" is added.
//
//	policy := httpcompress.NewDefaultPolicy()
//	mux := http.NewServeMux()
//	// ...
//	http.ListenAndServe(addr, middleware.Compression(policy)(mux))
//
// Handlers can opt a single response out with Suppress:
//
//	func serve(w http.ResponseWriter, r *http.Request) {
//	    middleware.Suppress(w)
//	    // ...
//	}
package middleware
