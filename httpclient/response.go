package httpclient

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	StatusCode int
	Headers    http.Header
	raw        []byte
}

func (r *Response) JSON(target any) error {
	return json.Unmarshal(r.raw, target)
}

func (r *Response) Body() []byte {
	return r.raw
}

func (r *Response) String() string {
	return string(r.raw)
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
