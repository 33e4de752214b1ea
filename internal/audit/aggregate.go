package audit

import (
	"context"
	"log"
)

// Aggregate fetches the policies attached to each compartment, in the order
// given, and returns per-compartment counts plus a policy cache keyed by
// compartment ID for the detail report. A fetch failure degrades to zero
// policies for that compartment and the run continues; one permission gap
// must not blank the whole report.
func Aggregate(ctx context.Context, dir Directory, nodes []CompartmentNode) ([]PolicyStats, map[string][]Policy) {
	stats := make([]PolicyStats, 0, len(nodes))
	cache := make(map[string][]Policy, len(nodes))

	for _, n := range nodes {
		policies, err := dir.ListPolicies(ctx, n.ID)
		if err != nil {
			log.Printf("listing policies in %s failed, counting as none: %v", n.ID, err)
			policies = nil
		}

		statements := 0
		for _, p := range policies {
			statements += len(p.Statements)
		}

		stats = append(stats, PolicyStats{
			CompartmentID:  n.ID,
			PolicyCount:    len(policies),
			StatementCount: statements,
		})
		cache[n.ID] = policies
	}

	return stats, cache
}

// Summarize folds the per-compartment stats into tenancy-wide totals. It is
// recomputed from scratch on every call, never patched incrementally.
func Summarize(stats []PolicyStats) TenancySummary {
	sum := TenancySummary{TotalCompartments: len(stats)}

	for _, s := range stats {
		sum.TotalPolicies += s.PolicyCount
		sum.TotalStatements += s.StatementCount
		if s.PolicyCount > 0 {
			sum.CompartmentsWithPolicies++
		} else {
			sum.CompartmentsWithoutPolicies++
		}
	}

	return sum
}
