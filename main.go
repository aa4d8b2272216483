// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/telekom/netpath/cmd"
	"github.com/telekom/netpath/pkg"
)

// version is the current version of netpath
// It is set at build time by using -ldflags "-X main.version=x.x.x"
var version string

func main() {
	if version == "" {
		version = pkg.Version
	}
	cmd.Execute(version)
}
