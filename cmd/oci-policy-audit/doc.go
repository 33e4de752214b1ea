// Command oci-policy-audit inventories the compartment hierarchy of an OCI
// tenancy and the IAM policies attached to each compartment.
//
// # Overview
//
// The tool walks the compartment tree depth-first from the tenancy root,
// counts the policies and statements attached to every compartment, and
// writes two timestamped reports into the output directory:
//   - a detail report listing every compartment with its full policy
//     statements, indented by tree depth
//   - an executive summary with coverage statistics, a policy distribution
//     table, and rule-based recommendations
//
// It is strictly read-only: no compartment or policy is ever modified.
//
// # Installation
//
//	go install github.com/blackwell-systems/oci-policy-audit/cmd/oci-policy-audit@latest
//
// # Quick Start
//
//	export OCI_AUDIT_TENANCY_ID=ocid1.tenancy.oc1..example
//	oci-policy-audit
//
// Credentials come from the local OCI configuration (~/.oci/config) or, on a
// compute instance, from instance principal. See internal/config for the
// full set of environment variables.
package main
