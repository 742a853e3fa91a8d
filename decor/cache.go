// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

// decorationCache is the two-level decoration cache of a resolver. byState
// memoizes the full resolution per canonical state key, including negative
// results. byCombo memoizes built effective decorations per applicable
// fragment combination, so distinct state sets selecting the same fragments
// share one instance.
type decorationCache struct {
	byState map[string]Decoration
	byCombo map[string]Decoration
}

func newDecorationCache() *decorationCache {
	return &decorationCache{
		byState: map[string]Decoration{},
		byCombo: map[string]Decoration{},
	}
}

// invalidate drops all cached decorations.
func (dc *decorationCache) invalidate() {
	clear(dc.byState)
	clear(dc.byCombo)
}
