// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"io"
	"io/fs"
)

// MockFS is an [fs.FS] whose Open behavior is set by the test.
type MockFS struct {
	OpenFunc func(name string) (fs.File, error)
}

// Open calls OpenFunc.
func (m *MockFS) Open(name string) (fs.File, error) {
	return m.OpenFunc(name)
}

// MockFile is an in-memory [fs.File] serving Content.
type MockFile struct {
	Content []byte
	readPos int

	// CloseFunc optionally replaces the Close behavior, e.g. to fail.
	CloseFunc func() error
}

// Read copies the unread part of Content into b and returns io.EOF once it is consumed.
func (mf *MockFile) Read(b []byte) (int, error) {
	if mf.readPos >= len(mf.Content) {
		return 0, io.EOF
	}
	n := copy(b, mf.Content[mf.readPos:])
	mf.readPos += n
	return n, nil
}

// Close calls CloseFunc if set.
func (mf *MockFile) Close() error {
	if mf.CloseFunc != nil {
		return mf.CloseFunc()
	}
	return nil
}

// Stat is not supported and returns no file info.
func (mf *MockFile) Stat() (fs.FileInfo, error) {
	return nil, nil
}
