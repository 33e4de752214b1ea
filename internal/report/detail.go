package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blackwell-systems/oci-policy-audit/internal/audit"
)

// Detail renders the hierarchical detail document. Nodes are ordered by
// depth ascending, stable within a depth so siblings stay grouped in
// discovery order. Policy statements are authorization-critical text and are
// reproduced verbatim, in server order, never truncated or deduplicated.
func Detail(h Header, nodes []audit.CompartmentNode, stats []audit.PolicyStats, policies map[string][]audit.Policy) string {
	statsByID := make(map[string]audit.PolicyStats, len(stats))
	for _, s := range stats {
		statsByID[s.CompartmentID] = s
	}

	ordered := make([]audit.CompartmentNode, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Depth < ordered[j].Depth })

	var b strings.Builder
	b.WriteString(banner("OCI COMPARTMENT POLICY AUDIT - DETAIL REPORT", h))

	for _, n := range ordered {
		s := statsByID[n.ID]
		indent := strings.Repeat("  ", n.Depth)

		if n.Depth == 0 {
			fmt.Fprintf(&b, "[ROOT] %s\n", n.Name)
		} else {
			fmt.Fprintf(&b, "%s└─ %s\n", indent, n.Name)
		}
		fmt.Fprintf(&b, "%s   Path:       %s\n", indent, n.Path)
		fmt.Fprintf(&b, "%s   Policies:   %d   Statements: %d\n", indent, s.PolicyCount, s.StatementCount)

		if s.PolicyCount > 0 {
			for _, p := range policies[n.ID] {
				fmt.Fprintf(&b, "%s   Policy: %s (%s)\n", indent, p.Name, p.ID)
				for i, stmt := range p.Statements {
					fmt.Fprintf(&b, "%s     %d. %s\n", indent, i+1, stmt)
				}
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
