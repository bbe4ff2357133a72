// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package status

import (
	"fmt"
	"sort"
	"strings"

	"github.com/courierhq/courier/core/model"
)

// SummarizeSources aggregates "where did this value come from" tags into a
// compact label: distinct tags sorted by frequency (descending, first-seen
// order on ties), suffixed ×n when a tag recurs, joined with "+". Blank
// tags count as "unknown". An empty input yields the label "unknown" with
// no parts.
func SummarizeSources(tags []string) model.SourceSummary {
	if len(tags) == 0 {
		return model.SourceSummary{Label: "unknown"}
	}

	counts := make(map[string]int, len(tags))
	var order []string
	for _, tag := range tags {
		t := strings.TrimSpace(tag)
		if t == "" {
			t = "unknown"
		}
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	rendered := make([]string, len(order))
	for i, t := range order {
		if n := counts[t]; n > 1 {
			rendered[i] = fmt.Sprintf("%s×%d", t, n)
		} else {
			rendered[i] = t
		}
	}

	return model.SourceSummary{
		Label: strings.Join(rendered, "+"),
		Parts: order,
	}
}
