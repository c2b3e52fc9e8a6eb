package restbase

import "fmt"

// Response is the immutable envelope produced by one pipeline run: the raw
// transport response, the status code, and the decoded payload. The payload's
// shape is owned entirely by the Codec; the envelope treats it as opaque.
type Response struct {
	raw  *RawResponse
	code int
	data interface{}
}

// NewResponse wraps a raw transport response, status code, and decoded
// payload into an envelope.
func NewResponse(raw *RawResponse, code int, data interface{}) *Response {
	return &Response{raw: raw, code: code, data: data}
}

// Raw returns the raw transport response handle.
func (r *Response) Raw() *RawResponse {
	return r.raw
}

// Code returns the status code.
func (r *Response) Code() int {
	return r.code
}

// Data returns the decoded payload.
func (r *Response) Data() interface{} {
	return r.data
}

func (r *Response) String() string {
	return fmt.Sprintf("<Response: code=%d, data=%v>", r.code, r.data)
}
