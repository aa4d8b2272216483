// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

// ErrFinalShutdown is returned by Run once the server and all its components are shut down
var ErrFinalShutdown = errors.New("server was shut down")

// ErrShutdown holds any errors that may
// have occurred during shutdown of the server
type ErrShutdown struct {
	errAPI     error
	errMetrics error
}

// HasError returns true if any of the errors are set
func (e ErrShutdown) HasError() bool {
	return e.errAPI != nil || e.errMetrics != nil
}

func (e ErrShutdown) Error() string {
	if err := errors.Join(e.errAPI, e.errMetrics); err != nil {
		return err.Error()
	}
	return ""
}
