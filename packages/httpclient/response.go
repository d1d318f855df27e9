package httpclient

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/andrewatan/httpcall/packages/format"
)

// Response is the normalized result of a completed exchange. It is
// created once per call and never mutated afterwards.
type Response struct {
	Status         int
	StatusText     string
	Headers        map[string]string
	Body           string
	ContentType    string
	ResponseTimeMs int64
}

// normalize converts a transport-level response into a Response,
// measuring elapsed time from start. Header values that are not valid
// UTF-8 are dropped rather than failing the call.
func normalize(url string, httpResp *http.Response, start time.Time) (*Response, error) {
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &BodyError{URL: url, Err: err}
	}

	headers := make(map[string]string)
	for k := range httpResp.Header {
		v := httpResp.Header.Get(k)
		if utf8.ValidString(v) {
			headers[k] = v
		}
	}

	contentType := httpResp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain"
	}

	return &Response{
		Status:         httpResp.StatusCode,
		StatusText:     statusText(httpResp),
		Headers:        headers,
		Body:           string(body),
		ContentType:    contentType,
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// statusText prefers the reason phrase the server sent, falling back to
// the local phrase table when the status line carried none.
func statusText(httpResp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(httpResp.Status, strconv.Itoa(httpResp.StatusCode)))
	if text == "" {
		return format.StatusText(httpResp.StatusCode)
	}
	return text
}

// Header returns a header value by case-insensitive name.
func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType, "application/json")
}

// Size returns the body length in bytes.
func (r *Response) Size() int {
	return len(r.Body)
}

// Field looks up a gjson path in the response body and reports whether
// it exists.
func (r *Response) Field(path string) (any, bool) {
	result := gjson.Get(r.Body, path)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	return json.Unmarshal([]byte(r.Body), v)
}
