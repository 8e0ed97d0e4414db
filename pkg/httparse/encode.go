package httparse

// AppendRequest appends the canonical wire form of req's head to dst:
// "METHOD SP PATH SP HTTP/1.x CRLF", one "Name: Value CRLF" line per header,
// then the blank line. Parsing the result yields the same method, path,
// version and headers.
func AppendRequest(dst []byte, req *Request) []byte {
	dst = appendRequestLine(dst, req.Method, req.Path, Proto(req.Version))
	for _, h := range req.Headers {
		dst = append(dst, h.Name...)
		dst = append(dst, ':', ' ')
		dst = append(dst, h.Value...)
		dst = appendCRLF(dst)
	}
	return appendCRLF(dst)
}

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendRequestLine appends "METHOD PATH VERSION\r\n" to buf.
func appendRequestLine(buf []byte, method, path []byte, version string) []byte {
	buf = append(buf, method...)
	buf = append(buf, ' ')
	buf = append(buf, path...)
	buf = append(buf, ' ')
	buf = append(buf, version...)
	return appendCRLF(buf)
}
