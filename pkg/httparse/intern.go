package httparse

// String interning for common request tokens.
//
// These tables are consulted only when a caller turns a parsed view into a
// string; the scanner never touches them. The Go compiler optimizes map
// lookups keyed by string([]byte) to avoid allocating the temporary string,
// so interning a known method or header name is zero-alloc.

var methods = map[string]string{
	"GET": "GET", "HEAD": "HEAD", "POST": "POST",
	"PUT": "PUT", "DELETE": "DELETE", "CONNECT": "CONNECT",
	"OPTIONS": "OPTIONS", "TRACE": "TRACE", "PATCH": "PATCH",
}

var headerNames = map[string]string{
	"Accept":              "Accept",
	"Accept-Charset":      "Accept-Charset",
	"Accept-Encoding":     "Accept-Encoding",
	"Accept-Language":     "Accept-Language",
	"Authorization":       "Authorization",
	"Cache-Control":       "Cache-Control",
	"Connection":          "Connection",
	"Content-Encoding":    "Content-Encoding",
	"Content-Length":      "Content-Length",
	"Content-Type":        "Content-Type",
	"Cookie":              "Cookie",
	"Expect":              "Expect",
	"From":                "From",
	"Host":                "Host",
	"If-Match":            "If-Match",
	"If-Modified-Since":   "If-Modified-Since",
	"If-None-Match":       "If-None-Match",
	"If-Range":            "If-Range",
	"If-Unmodified-Since": "If-Unmodified-Since",
	"Max-Forwards":        "Max-Forwards",
	"Origin":              "Origin",
	"Pragma":              "Pragma",
	"Proxy-Authorization": "Proxy-Authorization",
	"Range":               "Range",
	"Referer":             "Referer",
	"TE":                  "TE",
	"Trailer":             "Trailer",
	"Transfer-Encoding":   "Transfer-Encoding",
	"Upgrade":             "Upgrade",
	"User-Agent":          "User-Agent",
	"Via":                 "Via",
	"X-Forwarded-For":     "X-Forwarded-For",
	"X-Forwarded-Host":    "X-Forwarded-Host",
	"X-Forwarded-Proto":   "X-Forwarded-Proto",
	"X-Real-IP":           "X-Real-IP",
	"X-Request-ID":        "X-Request-ID",
}

// InternMethod returns a shared string for known methods and a fresh copy
// otherwise. Matching is case-sensitive, as methods are.
func InternMethod(b []byte) string {
	if s, ok := methods[string(b)]; ok {
		return s
	}
	return string(b)
}

// InternHeaderName returns a shared string for common header names in their
// canonical case and a fresh copy otherwise.
func InternHeaderName(b []byte) string {
	if s, ok := headerNames[string(b)]; ok {
		return s
	}
	return string(b)
}

// MethodString returns req's method as a string.
func MethodString(req *Request) string { return InternMethod(req.Method) }

// HeaderName returns h's name as a string.
func HeaderName(h Header) string { return InternHeaderName(h.Name) }
