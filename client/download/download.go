// Package download streams HTTP response bodies to disk
// with optional checksum validation and progress reporting.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// chunkSize is the fixed buffer size used when copying the body to disk.
const chunkSize = 1024

// Handle streams body to destPath, writing in chunkSize pieces. The file
// is written in place: if the copy is interrupted mid-stream a partial
// file remains at destPath.
func Handle(ctx context.Context, body io.Reader, contentLength int64, destPath string, logger *slog.Logger, optFns ...Option) error {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return fmt.Errorf("applying option: %w", err)
		}
	}

	if opts.skipExisting {
		if _, err := os.Stat(destPath); err == nil {
			logger.Info("skipping existing file", "path", destPath)
			return nil
		}
	}

	body = &contextReader{ctx: ctx, r: body}

	file, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			logger.Error("defer closing destination file", "error", err)
		}
	}()

	var writer io.Writer = file
	if opts.checksum != nil {
		writer = io.MultiWriter(writer, opts.checksum)
	}

	if opts.progress {
		writer = &progressWriter{
			w:         writer,
			logger:    logger,
			total:     contentLength,
			startTime: time.Now(),
		}
	}

	// The writer is wrapped so io.CopyBuffer can't bypass the fixed-size
	// buffer via the file's ReadFrom fast path.
	if _, err := io.CopyBuffer(struct{ io.Writer }{writer}, body, make([]byte, chunkSize)); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %w", ErrDownloadCancelled, err)
		}

		return fmt.Errorf("copying file body: %w", err)
	}

	if err := opts.checksum.Verify(); err != nil {
		return err
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("syncing destination file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing destination file: %w", err)
	}

	return nil
}

// contextReader fails the copy as soon as ctx is done, even when the
// underlying reader would still produce data.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
