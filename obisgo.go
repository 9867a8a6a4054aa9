// Package obisgo exposes builders for the OBIS API client.
package obisgo

import (
	"github.com/oceanbio/obisgo/client"
	"github.com/oceanbio/obisgo/taxa"
)

// NewClient instantiates a generic *client.Client with the provided options.
// If not specified, the default http.Client and http.Transport are used.
func NewClient(opts ...client.Option) (*client.Client, error) {
	return client.Build(opts...)
}

// NewTaxa instantiates a *taxa.Client for the OBIS /taxon endpoints.
func NewTaxa(opts ...taxa.Option) (*taxa.Client, error) {
	return taxa.New(opts...)
}
