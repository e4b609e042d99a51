// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package translate

import (
	"sort"

	"github.com/Helios-vmg/Xabin/internal/schema"
)

// IntegerGroup is a run of integer fields sharing width and signedness,
// declared together.
type IntegerGroup struct {
	Width  int
	Signed bool
	Fields []*schema.IntegerField
}

// Layout splits fields into declaration groups. Integers are ordered by
// descending width, unsigned before signed at equal width, keeping
// declaration order between equal keys; consecutive integers with the same
// key share a group. All other fields are returned in declaration order.
func Layout(fields []schema.Field) ([]IntegerGroup, []schema.Field) {
	var (
		ints   []*schema.IntegerField
		others []schema.Field
	)
	for _, f := range fields {
		if i, ok := f.(*schema.IntegerField); ok {
			ints = append(ints, i)
		} else {
			others = append(others, f)
		}
	}

	sort.SliceStable(ints, func(a, b int) bool {
		if ints[a].Width != ints[b].Width {
			return ints[a].Width > ints[b].Width
		}
		return !ints[a].Signed && ints[b].Signed
	})

	var groups []IntegerGroup
	for _, f := range ints {
		n := len(groups)
		if n > 0 && groups[n-1].Width == f.Width && groups[n-1].Signed == f.Signed {
			groups[n-1].Fields = append(groups[n-1].Fields, f)
			continue
		}
		groups = append(groups, IntegerGroup{Width: f.Width, Signed: f.Signed, Fields: []*schema.IntegerField{f}})
	}
	return groups, others
}
