// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"fmt"
	"net/netip"
	"strings"

	"golang.org/x/net/idna"
)

// ValidateDestination checks that destination is an IP address or a host
// name and returns it in the form sent to the provider. Internationalized
// host names are converted to their ASCII form.
func ValidateDestination(destination string) (string, error) {
	d := strings.TrimSpace(destination)
	if d == "" {
		return "", fmt.Errorf("%w: destination is empty", ErrInvalidDestination)
	}
	if addr, err := netip.ParseAddr(d); err == nil {
		return addr.String(), nil
	}

	host, err := idna.Lookup.ToASCII(strings.TrimSuffix(d, "."))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidDestination, destination, err)
	}
	if host == "" || strings.ContainsAny(host, "/?#%@: ") {
		return "", fmt.Errorf("%w: %q is not a host name", ErrInvalidDestination, destination)
	}
	return host, nil
}
