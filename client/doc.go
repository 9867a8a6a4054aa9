// Package client provides the configurable HTTP client the OBIS endpoint
// facades are built on. It is not OBIS-specific.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("obisgo/1.0"),
//	)
//
// # Making Requests
//
// Construct a [URL] and [Request], then execute with [Client.Do]:
//
//	u := client.URL("https", "api.obis.org", "/v3/taxon/402913")
//	req, err := client.Request(ctx, u, http.MethodGet)
//	err = c.Do(req, http.StatusOK,
//		client.WithDestination(&result),
//		client.WithExpectedContentType("application/json; charset=utf-8"),
//	)
//
// The status code is validated first; when an expected content type is
// set it is compared next, before any decoding, and a mismatch returns a
// [ContentTypeError].
//
// # Downloading Files
//
// Stream a response body directly to disk with optional checksum
// verification and progress reporting:
//
//	err = c.Download(req, http.StatusOK, "/tmp/occurrences.json",
//		download.WithChecksum(sha256.New(), expectedHex),
//		download.WithProgress(),
//	)
//
// The body is written straight to the destination path; an interrupted
// transfer leaves a partial file behind.
package client
