package taxa

import (
	"errors"

	"github.com/oceanbio/obisgo/client"
)

// ErrNoResult reports that a response carried an unexpected content type.
// OBIS answers queries that match no records with a non-JSON content type,
// so this can mean either a malformed response or an empty result; the two
// are not distinguishable from the error alone.
var ErrNoResult = client.ErrUnexpectedContentType

// Option is a functional option for configuring a taxa [Client] via [New].
type Option func(*options) error

type options struct {
	baseURL    string
	mapperURL  string
	clientOpts []client.Option
}

// WithBaseURL overrides the OBIS API base URL. Mostly useful for tests.
func WithBaseURL(raw string) Option {
	return func(o *options) error {
		if raw == "" {
			return errors.New("base url must not be empty")
		}
		o.baseURL = raw
		return nil
	}
}

// WithMapperBaseURL overrides the OBIS mapper base URL.
func WithMapperBaseURL(raw string) Option {
	return func(o *options) error {
		if raw == "" {
			return errors.New("mapper base url must not be empty")
		}
		o.mapperURL = raw
		return nil
	}
}

// WithClientOptions forwards options to the underlying [client.Client],
// e.g. timeouts, proxies via a custom transport, throttling, or TLS
// settings via [client.WithClient].
func WithClientOptions(opts ...client.Option) Option {
	return func(o *options) error {
		o.clientOpts = append(o.clientOpts, opts...)
		return nil
	}
}
