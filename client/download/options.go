package download

import (
	"errors"
	"hash"
)

// Option is a functional option for [Handle].
type Option func(*options) error

type options struct {
	checksum     *checksumVerifier
	progress     bool
	skipExisting bool
}

// WithChecksum verifies the downloaded bytes against expected, the
// hex-encoded checksum computed by h (e.g. sha256.New()). A mismatch
// fails the download with [ErrChecksumMismatch].
func WithChecksum(h hash.Hash, expected string) Option {
	return func(opts *options) error {
		if h == nil {
			return errors.New("hash must not be nil")
		}

		if expected == "" {
			return errors.New("expected checksum must not be empty")
		}

		opts.checksum = &checksumVerifier{hash: h, expected: expected}
		return nil
	}
}

// WithProgress logs transfer progress to the logger supplied to [Handle],
// at most once per second. When the response declared a Content-Length the
// log carries a completion percentage.
func WithProgress() Option {
	return func(opts *options) error {
		opts.progress = true
		return nil
	}
}

// WithSkipExisting returns immediately when the destination file already
// exists, avoiding a redundant download.
func WithSkipExisting() Option {
	return func(opts *options) error {
		opts.skipExisting = true
		return nil
	}
}
