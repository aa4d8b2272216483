// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package path

import "github.com/telekom/netpath/pkg/hop"

// Role is the topological role of a hop within its path.
type Role int

const (
	Intermediate Role = iota
	Source
	Destination
	// SourceAndDestination is the role of the only hop of a single-hop path.
	SourceAndDestination
)

func (r Role) String() string {
	switch r {
	case Source:
		return "source"
	case Destination:
		return "destination"
	case SourceAndDestination:
		return "source+destination"
	default:
		return "intermediate"
	}
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// IsSource reports whether the hop starts the path.
func (r Role) IsSource() bool {
	return r == Source || r == SourceAndDestination
}

// IsDestination reports whether the hop ends the path.
func (r Role) IsDestination() bool {
	return r == Destination || r == SourceAndDestination
}

// Style is one of the three fixed visual categories of a hop.
type Style int

const (
	StyleIntermediate Style = iota
	StyleSource
	StyleDestination
)

func (s Style) String() string {
	switch s {
	case StyleSource:
		return "source"
	case StyleDestination:
		return "destination"
	default:
		return "intermediate"
	}
}

// MarshalText encodes the style by name.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Styles lists the style categories in legend order.
var Styles = []Style{StyleSource, StyleIntermediate, StyleDestination}

// Style maps the role to its visual category. Source takes precedence,
// so a single-hop path is styled as source.
func (r Role) Style() Style {
	switch {
	case r.IsSource():
		return StyleSource
	case r.IsDestination():
		return StyleDestination
	default:
		return StyleIntermediate
	}
}

// Classified pairs a hop with its role.
type Classified struct {
	Hop  hop.Record
	Role Role
}

// RoleAt returns the role of position i in a path of n hops.
// It depends on length and position only.
func RoleAt(i, n int) Role {
	switch {
	case n == 1:
		return SourceAndDestination
	case i == 0:
		return Source
	case i == n-1:
		return Destination
	default:
		return Intermediate
	}
}

// Classify assigns each hop of p its role by position.
// Roles are derived on every call and never stored on the hop.
func Classify(p hop.Path) []Classified {
	out := make([]Classified, len(p))
	for i, h := range p {
		out[i] = Classified{Hop: h, Role: RoleAt(i, len(p))}
	}
	return out
}
