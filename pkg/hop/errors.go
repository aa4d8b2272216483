// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package hop

import "fmt"

// MalformedHopError is returned when a raw hop payload violates
// the structural constraints of a [Record].
type MalformedHopError struct {
	// Position is the 0-based position of the payload within the path.
	Position int
	// Field is the raw field name that failed validation.
	Field string
	// Reason describes the violation.
	Reason string
}

func (e *MalformedHopError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed hop at position %d: %s", e.Position, e.Reason)
	}
	return fmt.Sprintf("malformed hop at position %d: field %q %s", e.Position, e.Field, e.Reason)
}
