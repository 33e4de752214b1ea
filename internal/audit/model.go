// Package audit implements the compartment inventory core: depth-first tree
// discovery, per-compartment policy aggregation, and the tenancy-wide
// summary fold. It talks to the identity service only through the Directory
// interface, so the whole pipeline runs against an in-memory fake in tests.
package audit

import "context"

// Directory is the read-only identity surface the audit walks.
// Implementations page through all results transparently.
type Directory interface {
	// ListChildCompartments returns the active child compartments of the
	// given compartment.
	ListChildCompartments(ctx context.Context, compartmentID string) ([]Compartment, error)

	// ListPolicies returns the policies attached directly to the given
	// compartment, statements in server-assigned order.
	ListPolicies(ctx context.Context, compartmentID string) ([]Policy, error)
}

// Compartment is a child entry returned by the directory.
type Compartment struct {
	ID   string
	Name string
}

// Policy is an IAM policy attached to exactly one compartment. Statements
// are opaque authorization text and keep the server-assigned order.
type Policy struct {
	ID         string
	Name       string
	Statements []string
}

// CompartmentNode is one discovered compartment, annotated with its depth in
// the tree and a breadcrumb path from the tenancy root. Depth 0 is the root
// itself.
type CompartmentNode struct {
	ID    string
	Name  string
	Depth int
	Path  string
}

// PolicyStats holds the policy counts for one compartment, keyed 1:1 with
// CompartmentNode by compartment ID. A policy with no statements still
// counts as a policy, so StatementCount may be smaller than PolicyCount.
type PolicyStats struct {
	CompartmentID  string
	PolicyCount    int
	StatementCount int
}

// TenancySummary holds the tenancy-wide aggregate counters, derived by
// folding over the PolicyStats sequence.
type TenancySummary struct {
	TotalCompartments           int
	TotalPolicies               int
	TotalStatements             int
	CompartmentsWithPolicies    int
	CompartmentsWithoutPolicies int
}
