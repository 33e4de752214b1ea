package report

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/oci-policy-audit/internal/audit"
)

// Summary renders the executive summary: general statistics, the policy
// distribution table in aggregation order, derived security metrics, and the
// rule-based recommendations. The trailing footer names the companion detail
// report file.
func Summary(h Header, nodes []audit.CompartmentNode, stats []audit.PolicyStats, sum audit.TenancySummary, detailFile string) string {
	var b strings.Builder
	b.WriteString(banner("OCI COMPARTMENT POLICY AUDIT - EXECUTIVE SUMMARY", h))

	b.WriteString("GENERAL STATISTICS\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "  Total compartments:          %d\n", sum.TotalCompartments)
	fmt.Fprintf(&b, "  Total policies:              %d\n", sum.TotalPolicies)
	fmt.Fprintf(&b, "  Total statements:            %d\n", sum.TotalStatements)
	fmt.Fprintf(&b, "  Compartments with policies:  %d\n", sum.CompartmentsWithPolicies)
	fmt.Fprintf(&b, "  Compartments without:        %d\n\n", sum.CompartmentsWithoutPolicies)

	b.WriteString("POLICY DISTRIBUTION\n")
	b.WriteString("-------------------\n")
	fmt.Fprintf(&b, "  %-35s%-10s%s\n", "COMPARTMENT", "POLICIES", "PATH")
	for i, n := range nodes {
		fmt.Fprintf(&b, "  %-35s%-10d%s\n", truncate(n.Name, 34), stats[i].PolicyCount, n.Path)
	}
	b.WriteString("\n")

	b.WriteString("SECURITY ANALYSIS\n")
	b.WriteString("-----------------\n")
	if sum.TotalCompartments > 0 {
		coverage := sum.CompartmentsWithPolicies * 100 / sum.TotalCompartments
		fmt.Fprintf(&b, "  Policy coverage:               %d%%\n", coverage)
		fmt.Fprintf(&b, "  Avg policies per compartment:  %s\n", twoDecimals(sum.TotalPolicies, sum.TotalCompartments))
	}
	if sum.TotalPolicies > 0 {
		fmt.Fprintf(&b, "  Avg statements per policy:     %s\n", twoDecimals(sum.TotalStatements, sum.TotalPolicies))
	}
	b.WriteString("\n")

	b.WriteString("RECOMMENDATIONS\n")
	b.WriteString("---------------\n")
	if sum.CompartmentsWithoutPolicies > sum.CompartmentsWithPolicies {
		b.WriteString("  [WARN] More compartments lack policies than have them; review whether\n")
		b.WriteString("         inherited parent policies cover the gaps intentionally.\n")
	} else {
		b.WriteString("  [OK]   Policy distribution across compartments is balanced.\n")
	}
	if sum.TotalPolicies < 5 {
		b.WriteString("  [WARN] Fewer than 5 policies in the tenancy; access control may be too\n")
		b.WriteString("         coarse for a multi-compartment layout.\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Full per-policy statements: %s\n", detailFile)

	return b.String()
}

// twoDecimals formats numerator/denominator with two decimal digits using
// integer arithmetic only.
func twoDecimals(numerator, denominator int) string {
	scaled := numerator * 100 / denominator
	return fmt.Sprintf("%d.%02d", scaled/100, scaled%100)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
