// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/netpath/pkg/hop"
	"github.com/telekom/netpath/test"
)

func TestFileClient_Trace(t *testing.T) {
	test.MarkAsShort(t)

	fsys := fstest.MapFS{
		"8.8.8.8.json":     {Data: []byte(test.TwoHopPayload)},
		"dns.google.json":  {Data: []byte(test.ErrorPayload)},
		"example.com.json": {Data: []byte(test.MalformedPayload)},
		"empty.test.json":  {Data: []byte(`[]`)},
	}

	tests := []struct {
		name          string
		destination   string
		wantHops      int
		wantFailure   bool
		wantMalformed bool
		wantInvalid   bool
	}{
		{name: "Recorded path", destination: "8.8.8.8", wantHops: 2},
		{name: "Recorded empty path", destination: "empty.test", wantHops: 0},
		{name: "Recorded error payload", destination: "dns.google", wantFailure: true},
		{name: "Recorded malformed path", destination: "example.com", wantMalformed: true},
		{name: "No recording", destination: "1.1.1.1", wantFailure: true},
		{name: "Invalid destination", destination: "../secrets", wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &FileClient{dir: "recordings", fsys: fsys}
			p, err := c.Trace(t.Context(), tt.destination)

			switch {
			case tt.wantFailure:
				var failure *TransportFailure
				require.ErrorAs(t, err, &failure)
				assert.NotEmpty(t, failure.Destination)
			case tt.wantMalformed:
				var malformed *hop.MalformedHopError
				require.ErrorAs(t, err, &malformed)
			case tt.wantInvalid:
				require.ErrorIs(t, err, ErrInvalidDestination)
			default:
				require.NoError(t, err)
				assert.Len(t, p, tt.wantHops)
				return
			}
			assert.Nil(t, p)
		})
	}
}

func TestFileClient_Trace_NoRecordingWrapsNotExist(t *testing.T) {
	test.MarkAsShort(t)

	c := &FileClient{fsys: fstest.MapFS{}}
	_, err := c.Trace(t.Context(), "8.8.8.8")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileClient_Trace_CloseError(t *testing.T) {
	test.MarkAsShort(t)

	closeErr := errors.New("close failed")
	c := &FileClient{fsys: &test.MockFS{
		OpenFunc: func(name string) (fs.File, error) {
			assert.Equal(t, "8.8.8.8.json", name)
			return &test.MockFile{
				Content:   []byte(test.TwoHopPayload),
				CloseFunc: func() error { return closeErr },
			}, nil
		},
	}}

	p, err := c.Trace(t.Context(), "8.8.8.8")
	assert.ErrorIs(t, err, closeErr)
	assert.Len(t, p, 2)
}

func TestNewFileClient(t *testing.T) {
	c := NewFileClient("testdata")
	assert.Equal(t, "testdata", c.dir)
	assert.NotNil(t, c.fsys)
}
