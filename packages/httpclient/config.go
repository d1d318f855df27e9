package httpclient

import "github.com/andrewatan/httpcall/packages/format"

// Config is the per-request configuration. Mutators return an updated
// copy so configs can be built fluently and shared without aliasing;
// each call site owns its own value.
//
// FollowRedirects is honored per request. VerifyTLS never alters an
// existing Client: TLS verification lives on the shared transport and
// is fixed when the Client is built, so WithTLSVerification on the
// Client is authoritative and this flag only carries the preference
// for callers constructing their own Client. PrettyPrint is consumed
// by the output layer.
type Config struct {
	Headers         map[string]string
	PrettyPrint     bool
	FollowRedirects bool
	VerifyTLS       bool
}

func NewConfig() Config {
	return Config{
		Headers:         make(map[string]string),
		FollowRedirects: true,
		VerifyTLS:       true,
	}
}

func (c Config) clone() Config {
	headers := make(map[string]string, len(c.Headers))
	for k, v := range c.Headers {
		headers[k] = v
	}
	c.Headers = headers
	return c
}

// WithHeaders replaces the configured header map.
func (c Config) WithHeaders(headers map[string]string) Config {
	out := c.clone()
	out.Headers = make(map[string]string, len(headers))
	for k, v := range headers {
		out.Headers[k] = v
	}
	return out
}

// AddHeader returns a copy with one extra header set.
func (c Config) AddHeader(key, value string) Config {
	out := c.clone()
	out.Headers[key] = value
	return out
}

func (c Config) WithPrettyPrint(pretty bool) Config {
	out := c.clone()
	out.PrettyPrint = pretty
	return out
}

func (c Config) WithRedirects(follow bool) Config {
	out := c.clone()
	out.FollowRedirects = follow
	return out
}

func (c Config) WithTLSVerification(verify bool) Config {
	out := c.clone()
	out.VerifyTLS = verify
	return out
}

// WithBearerToken sets the Authorization header to a bearer token.
func (c Config) WithBearerToken(token string) Config {
	return c.AddHeader("Authorization", "Bearer "+token)
}

// WithBasicAuth sets the Authorization header from a username and
// password pair, base64 encoded per RFC 7617.
func (c Config) WithBasicAuth(username, password string) Config {
	encoded := format.Base64Encode(username + ":" + password)
	return c.AddHeader("Authorization", "Basic "+encoded)
}
