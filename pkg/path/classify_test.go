// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package path

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/telekom/netpath/pkg/hop"
)

func newPath(n int) hop.Path {
	p := make(hop.Path, n)
	for i := range p {
		p[i] = hop.Record{Index: i + 1, IP: hop.Some(fmt.Sprintf("10.0.0.%d", i+1))}
	}
	return p
}

func roles(c []Classified) []Role {
	out := make([]Role, len(c))
	for i, h := range c {
		out[i] = h.Role
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []Role
	}{
		{name: "Empty path", n: 0, want: []Role{}},
		{name: "Single hop", n: 1, want: []Role{SourceAndDestination}},
		{name: "Two hops", n: 2, want: []Role{Source, Destination}},
		{name: "Five hops", n: 5, want: []Role{Source, Intermediate, Intermediate, Intermediate, Destination}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roles(Classify(newPath(tt.n))))
		})
	}
}

func TestClassify_ExactlyOneSourceAndDestination(t *testing.T) {
	for n := 1; n <= 64; n++ {
		var sources, destinations int
		for _, c := range Classify(newPath(n)) {
			if c.Role.IsSource() {
				sources++
			}
			if c.Role.IsDestination() {
				destinations++
			}
		}
		assert.Equal(t, 1, sources, "path of %d hops", n)
		assert.Equal(t, 1, destinations, "path of %d hops", n)
	}
}

func TestClassify_IgnoresFieldValues(t *testing.T) {
	p := hop.Path{
		{Index: 9, RTTs: []float64{1}},
		{Index: 3},
		{Index: 1, IP: hop.Some("8.8.8.8"), Loss: 100},
	}
	assert.Equal(t, []Role{Source, Intermediate, Destination}, roles(Classify(p)))

	c := Classify(p)
	for i := range p {
		assert.True(t, c[i].Hop.Equal(p[i]))
	}
}

func TestRole_Style(t *testing.T) {
	assert.Equal(t, StyleSource, Source.Style())
	assert.Equal(t, StyleSource, SourceAndDestination.Style())
	assert.Equal(t, StyleIntermediate, Intermediate.Style())
	assert.Equal(t, StyleDestination, Destination.Style())
}
