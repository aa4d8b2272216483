// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package test holds helpers and fixtures shared by the tests of all packages.
package test

import (
	"os"
	"strconv"
	"testing"
)

// envLongOnly selects the long running tests only.
const envLongOnly = "NETPATH_LONG_TESTS_ONLY"

// MarkAsShort marks a fast unit test. It is skipped if only long tests are requested.
func MarkAsShort(t testing.TB) {
	t.Helper()
	if only, _ := strconv.ParseBool(os.Getenv(envLongOnly)); only {
		t.Skip("skipping short test")
	}
}

// MarkAsLong marks a test that starts servers or programs. It is skipped with -short.
func MarkAsLong(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping long test in short mode")
	}
}
