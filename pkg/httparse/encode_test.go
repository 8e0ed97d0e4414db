package httparse

import (
	"bytes"
	"testing"
)

func TestAppendRequest(t *testing.T) {
	var req Request
	data := []byte("OPTIONS * HTTP/1.0\r\nHost:   example.com  \r\nX-Empty:\r\n\r\n")
	if _, err := Parse(data, &req); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := string(AppendRequest([]byte("prefix|"), &req))
	want := "prefix|OPTIONS * HTTP/1.0\r\nHost: example.com\r\nX-Empty: \r\n\r\n"
	if got != want {
		t.Errorf("AppendRequest() =\n%q\nwant:\n%q", got, want)
	}
}

// FuzzAppendRequest_RoundTrip checks that re-encoding a parsed head and
// parsing it again yields the same request.
func FuzzAppendRequest_RoundTrip(f *testing.F) {
	f.Add([]byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"))
	f.Add([]byte("PUT /x HTTP/1.0\r\nA:  b \t\r\nA: c\r\n\r\nbody"))
	f.Add([]byte("\r\nDELETE /r?q=%20 HTTP/1.1\r\nX:\r\n\r\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		var req Request
		st, err := Parse(data, &req)
		if err != nil || st != Complete {
			return
		}
		encoded := AppendRequest(nil, &req)

		var again Request
		st, err = Parse(encoded, &again)
		if err != nil || st != Complete {
			t.Fatalf("re-parse of %q = (%v, %v)", encoded, st, err)
		}
		if !bytes.Equal(req.Method, again.Method) || !bytes.Equal(req.Path, again.Path) || req.Version != again.Version {
			t.Fatalf("request line changed: %q -> %q", data, encoded)
		}
		if len(req.Headers) != len(again.Headers) {
			t.Fatalf("header count %d -> %d", len(req.Headers), len(again.Headers))
		}
		for i := range req.Headers {
			if !bytes.Equal(req.Headers[i].Name, again.Headers[i].Name) || !bytes.Equal(req.Headers[i].Value, again.Headers[i].Value) {
				t.Fatalf("header %d changed: %q -> %q", i, req.Headers[i], again.Headers[i])
			}
		}
		if again.BodyStart != len(encoded) {
			t.Fatalf("BodyStart = %d, want %d", again.BodyStart, len(encoded))
		}
	})
}
