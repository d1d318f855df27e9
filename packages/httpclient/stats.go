package httpclient

import "time"

// Stats records one completed exchange for reporting.
type Stats struct {
	Method         string
	URL            string
	StatusCode     int
	ResponseTimeMs int64
	ResponseSize   int
	Timestamp      time.Time
}

func NewStats(method, url string, resp *Response) Stats {
	return Stats{
		Method:         method,
		URL:            url,
		StatusCode:     resp.Status,
		ResponseTimeMs: resp.ResponseTimeMs,
		ResponseSize:   resp.Size(),
		Timestamp:      time.Now(),
	}
}
