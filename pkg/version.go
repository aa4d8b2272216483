// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package pkg contains metadata about netpath.
package pkg

// Version is the version of netpath reported when the binary
// was built without -ldflags "-X main.version=x.x.x".
var Version = "dev"
