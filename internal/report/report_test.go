package report

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/oci-policy-audit/internal/audit"
)

var testHeader = Header{
	TenancyName: "acme",
	Region:      "eu-frankfurt-1",
	Environment: "Local OCI config",
	GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
}

func TestTwoDecimals(t *testing.T) {
	tests := []struct {
		name        string
		numerator   int
		denominator int
		want        string
	}{
		{name: "one third", numerator: 1, denominator: 3, want: "0.33"},
		{name: "exactly one", numerator: 3, denominator: 3, want: "1.00"},
		{name: "three and a half", numerator: 7, denominator: 2, want: "3.50"},
		{name: "zero", numerator: 0, denominator: 4, want: "0.00"},
		{name: "two thirds", numerator: 2, denominator: 3, want: "0.66"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := twoDecimals(tt.numerator, tt.denominator); got != tt.want {
				t.Errorf("twoDecimals(%d, %d) = %q, want %q", tt.numerator, tt.denominator, got, tt.want)
			}
		})
	}
}

func TestDetailDepthOrderAndStatements(t *testing.T) {
	nodes := []audit.CompartmentNode{
		{ID: "root", Name: "acme", Depth: 0, Path: "acme"},
		{ID: "a", Name: "dev", Depth: 1, Path: "acme > dev"},
		{ID: "a1", Name: "dev-net", Depth: 2, Path: "acme > dev > dev-net"},
		{ID: "b", Name: "prod", Depth: 1, Path: "acme > prod"},
	}
	stats := []audit.PolicyStats{
		{CompartmentID: "root", PolicyCount: 1, StatementCount: 2},
		{CompartmentID: "a"},
		{CompartmentID: "a1"},
		{CompartmentID: "b"},
	}
	policies := map[string][]audit.Policy{
		"root": {{
			ID:   "ocid1.policy.oc1..p1",
			Name: "tenant-admins",
			Statements: []string{
				"Allow group Administrators to manage all-resources in tenancy",
				"Allow group Auditors to inspect all-resources in tenancy",
			},
		}},
	}

	doc := Detail(testHeader, nodes, stats, policies)

	// root labeled, depth-1 siblings grouped before depth-2
	rootAt := strings.Index(doc, "[ROOT] acme")
	devAt := strings.Index(doc, "└─ dev\n")
	prodAt := strings.Index(doc, "└─ prod")
	netAt := strings.Index(doc, "└─ dev-net")
	if rootAt < 0 || devAt < 0 || prodAt < 0 || netAt < 0 {
		t.Fatalf("missing entries in detail document:\n%s", doc)
	}
	if !(rootAt < devAt && devAt < prodAt && prodAt < netAt) {
		t.Errorf("entries not sorted by depth: root=%d dev=%d prod=%d dev-net=%d", rootAt, devAt, prodAt, netAt)
	}

	// statements reproduced verbatim and in order
	s1 := strings.Index(doc, "1. Allow group Administrators to manage all-resources in tenancy")
	s2 := strings.Index(doc, "2. Allow group Auditors to inspect all-resources in tenancy")
	if s1 < 0 || s2 < 0 || s2 < s1 {
		t.Errorf("statements missing or reordered (s1=%d, s2=%d):\n%s", s1, s2, doc)
	}

	// breadcrumb paths present
	if !strings.Contains(doc, "acme > dev > dev-net") {
		t.Errorf("detail document missing breadcrumb path:\n%s", doc)
	}
}

func TestDetailOmitsPolicyBlockWhenEmpty(t *testing.T) {
	nodes := []audit.CompartmentNode{{ID: "root", Name: "acme", Depth: 0, Path: "acme"}}
	stats := []audit.PolicyStats{{CompartmentID: "root"}}

	doc := Detail(testHeader, nodes, stats, map[string][]audit.Policy{})

	if strings.Contains(doc, "Policy:") {
		t.Errorf("policy block rendered for a compartment without policies:\n%s", doc)
	}
	if !strings.Contains(doc, "Policies:   0   Statements: 0") {
		t.Errorf("zero counts not rendered:\n%s", doc)
	}
}

func TestSummaryMetrics(t *testing.T) {
	nodes := []audit.CompartmentNode{
		{ID: "root", Name: "acme", Depth: 0, Path: "acme"},
		{ID: "a", Name: "dev", Depth: 1, Path: "acme > dev"},
		{ID: "b", Name: "prod", Depth: 1, Path: "acme > prod"},
	}
	stats := []audit.PolicyStats{
		{CompartmentID: "root", PolicyCount: 1, StatementCount: 3},
		{CompartmentID: "a"},
		{CompartmentID: "b"},
	}
	sum := audit.Summarize(stats)

	doc := Summary(testHeader, nodes, stats, sum, "detail.txt")

	for _, want := range []string{
		"Total compartments:          3",
		"Total policies:              1",
		"Total statements:            3",
		"Policy coverage:               33%",
		"Avg policies per compartment:  0.33",
		"Avg statements per policy:     3.00",
		"Full per-policy statements: detail.txt",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("summary missing %q:\n%s", want, doc)
		}
	}
}

func TestSummaryOmitsMetricsWithoutData(t *testing.T) {
	t.Run("no compartments", func(t *testing.T) {
		doc := Summary(testHeader, nil, nil, audit.TenancySummary{}, "detail.txt")
		if strings.Contains(doc, "Policy coverage") {
			t.Errorf("coverage rendered with zero compartments:\n%s", doc)
		}
		if strings.Contains(doc, "Avg policies per compartment") {
			t.Errorf("average rendered with zero compartments:\n%s", doc)
		}
	})

	t.Run("no policies", func(t *testing.T) {
		nodes := []audit.CompartmentNode{{ID: "root", Name: "acme", Depth: 0, Path: "acme"}}
		stats := []audit.PolicyStats{{CompartmentID: "root"}}
		doc := Summary(testHeader, nodes, stats, audit.Summarize(stats), "detail.txt")
		if strings.Contains(doc, "Avg statements per policy") {
			t.Errorf("statement average rendered with zero policies:\n%s", doc)
		}
		if !strings.Contains(doc, "Policy coverage:               0%") {
			t.Errorf("coverage missing:\n%s", doc)
		}
	})
}

func TestSummaryRecommendations(t *testing.T) {
	tests := []struct {
		name        string
		sum         audit.TenancySummary
		wantParts   []string
		absentParts []string
	}{
		{
			name: "imbalanced and few policies",
			sum: audit.TenancySummary{
				TotalCompartments:           3,
				TotalPolicies:               1,
				CompartmentsWithPolicies:    1,
				CompartmentsWithoutPolicies: 2,
			},
			wantParts: []string{
				"[WARN] More compartments lack policies",
				"[WARN] Fewer than 5 policies",
			},
			absentParts: []string{"[OK]"},
		},
		{
			name: "balanced with enough policies",
			sum: audit.TenancySummary{
				TotalCompartments:        2,
				TotalPolicies:            6,
				CompartmentsWithPolicies: 2,
			},
			wantParts:   []string{"[OK]   Policy distribution across compartments is balanced."},
			absentParts: []string{"[WARN]"},
		},
		{
			name: "balanced but few policies",
			sum: audit.TenancySummary{
				TotalCompartments:        2,
				TotalPolicies:            2,
				CompartmentsWithPolicies: 2,
			},
			// the two rules are independent; both lines may appear
			wantParts: []string{
				"[OK]   Policy distribution across compartments is balanced.",
				"[WARN] Fewer than 5 policies",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Summary(testHeader, nil, nil, tt.sum, "detail.txt")
			for _, want := range tt.wantParts {
				if !strings.Contains(doc, want) {
					t.Errorf("summary missing %q:\n%s", want, doc)
				}
			}
			for _, absent := range tt.absentParts {
				if strings.Contains(doc, absent) {
					t.Errorf("summary should not contain %q:\n%s", absent, doc)
				}
			}
		})
	}
}

func TestSummaryTableKeepsAggregationOrder(t *testing.T) {
	// deeper node deliberately listed before a shallower one: the summary
	// table must not re-sort
	nodes := []audit.CompartmentNode{
		{ID: "root", Name: "acme", Depth: 0, Path: "acme"},
		{ID: "a1", Name: "dev-net", Depth: 2, Path: "acme > dev > dev-net"},
		{ID: "b", Name: "prod", Depth: 1, Path: "acme > prod"},
	}
	stats := []audit.PolicyStats{
		{CompartmentID: "root"},
		{CompartmentID: "a1"},
		{CompartmentID: "b"},
	}

	doc := Summary(testHeader, nodes, stats, audit.Summarize(stats), "detail.txt")

	netAt := strings.Index(doc, "dev-net")
	prodAt := strings.Index(doc, "prod")
	if netAt < 0 || prodAt < 0 || prodAt < netAt {
		t.Errorf("distribution table re-sorted (dev-net=%d, prod=%d):\n%s", netAt, prodAt, doc)
	}
}

func TestBannerFields(t *testing.T) {
	doc := Summary(testHeader, nil, nil, audit.TenancySummary{}, "detail.txt")

	for _, want := range []string{
		"Tenancy:     acme",
		"Home region: eu-frankfurt-1",
		"Generated:   2026-08-30 12:00:00",
		"Environment: Local OCI config",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("banner missing %q:\n%s", want, doc)
		}
	}
}
