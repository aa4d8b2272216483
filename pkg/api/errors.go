// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is returned when the listening address is not a host:port pair
	ErrInvalidAddress = errors.New("invalid listening address")
	// ErrServeAPI is returned when the api server stops unexpectedly
	ErrServeAPI = errors.New("failed serving api")
	// ErrUnsupportedMethod is returned when a route is registered with an unknown method
	ErrUnsupportedMethod = errors.New("unsupported method")
)

type ErrCreateOpenapiSchema struct {
	name string
	err  error
}

func (e *ErrCreateOpenapiSchema) Error() string {
	return fmt.Sprintf("failed to get schema for %s: %v", e.name, e.err)
}

func (e *ErrCreateOpenapiSchema) Unwrap() error {
	return e.err
}
