// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrInvalidProviderURL is returned when the provider url is invalid
	ErrInvalidProviderURL = errors.New("invalid provider url")
	// ErrInvalidProviderTimeout is returned when the provider timeout is not positive
	ErrInvalidProviderTimeout = errors.New("invalid provider timeout")
	// ErrInvalidReplayDir is returned when the replay directory cannot be used
	ErrInvalidReplayDir = errors.New("invalid replay directory")
	// ErrInvalidDestination is returned when the default destination is invalid
	ErrInvalidDestination = errors.New("invalid default destination")
	// ErrInvalidView is returned when the view is neither table nor graph
	ErrInvalidView = errors.New("invalid view")
)
