package httparse

import (
	"bufio"
	"bytes"
	nethttp "net/http"
	"testing"
)

// stdlib_bench_test.go - net/http comparison benchmarks
//
// These compare head parsing against net/http.ReadRequest on the same input.

var browserRequest = []byte("GET /api/users?page=2 HTTP/1.1\r\n" +
	"Host: example.com\r\n" +
	"User-Agent: Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36\r\n" +
	"Accept: text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8\r\n" +
	"Accept-Language: en-US,en;q=0.5\r\n" +
	"Accept-Encoding: gzip, deflate, br\r\n" +
	"Cookie: session=abc123; theme=dark\r\n" +
	"Connection: keep-alive\r\n\r\n")

func BenchmarkParse_BrowserRequest(b *testing.B) {
	p := NewParser()
	req := Request{Headers: make(Headers, 0, 16)}
	b.ReportAllocs()
	b.SetBytes(int64(len(browserRequest)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(browserRequest, &req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_BrowserRequestInterned(b *testing.B) {
	p := NewParser()
	req := Request{Headers: make(Headers, 0, 16)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(browserRequest, &req); err != nil {
			b.Fatal(err)
		}
		_ = MethodString(&req)
		for _, h := range req.Headers {
			_ = HeaderName(h)
		}
	}
}

func BenchmarkStdlib_ReadRequest(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(browserRequest)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := bufio.NewReader(bytes.NewReader(browserRequest))
		if _, err := nethttp.ReadRequest(r); err != nil {
			b.Fatal(err)
		}
	}
}
