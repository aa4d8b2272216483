// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/telekom/netpath/internal/logger"
	"github.com/telekom/netpath/pkg/hop"
)

var _ Client = (*FileClient)(nil)

// FileClient replays recorded provider responses instead of asking the
// provider. The response for a destination is read from "<destination>.json"
// in its directory, in the wire shape the provider sends.
type FileClient struct {
	dir  string
	fsys fs.FS
}

// NewFileClient returns a client replaying the responses stored in dir.
func NewFileClient(dir string) *FileClient {
	return &FileClient{
		dir:  dir,
		fsys: os.DirFS(dir),
	}
}

// Trace reads the recorded response for destination.
func (f *FileClient) Trace(ctx context.Context, destination string) (p hop.Path, err error) {
	dest, err := ValidateDestination(destination)
	if err != nil {
		return nil, err
	}
	name := dest + ".json"
	log := logger.FromContext(ctx).With("dir", f.dir, "file", name)

	file, err := f.fsys.Open(name)
	if err != nil {
		log.ErrorContext(ctx, "Failed to open recorded response", "error", err)
		return nil, &TransportFailure{Destination: dest, Err: fmt.Errorf("no recorded response: %w", err)}
	}
	defer func() {
		if cErr := file.Close(); cErr != nil {
			log.ErrorContext(ctx, "Failed to close recorded response", "error", cErr)
			err = errors.Join(err, cErr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(file, maxResponseSize))
	if err != nil {
		log.ErrorContext(ctx, "Failed to read recorded response", "error", err)
		return nil, &TransportFailure{Destination: dest, Err: err}
	}

	p, err = ingest(body)
	var failure *TransportFailure
	if errors.As(err, &failure) {
		failure.Destination = dest
	}
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "Replayed recorded response", "hops", len(p))
	return p, nil
}
