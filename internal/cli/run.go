package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/blackwell-systems/oci-policy-audit/internal/audit"
	"github.com/blackwell-systems/oci-policy-audit/internal/config"
	"github.com/blackwell-systems/oci-policy-audit/internal/identity"
	"github.com/blackwell-systems/oci-policy-audit/internal/report"
)

func runAudit(ctx context.Context) error {
	// Load configuration (Viper resolves behind the scenes)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := identity.New(cfg)
	if err != nil {
		color.Red("✗ Failed to build identity client: %v", err)
		return err
	}

	color.Cyan("Checking connectivity to the identity service...")
	if err := client.Ping(ctx); err != nil {
		color.Red("✗ Cannot reach the identity service: %v", err)
		color.Yellow("  Check your OCI credentials (~/.oci/config or instance principal)")
		color.Yellow("  and network access to the identity endpoint, then retry.")
		return err
	}

	tenancyName := client.TenancyName(ctx)
	homeRegion := client.HomeRegion(ctx)
	color.Cyan("Tenancy: %s (%s)", tenancyName, homeRegion)

	color.Cyan("→ Discovering compartment tree...")
	nodes := audit.Discover(ctx, client, client.TenancyID(), tenancyName)
	color.Cyan("  %d compartments found", len(nodes))

	color.Cyan("→ Collecting attached policies...")
	stats, policies := audit.Aggregate(ctx, client, nodes)
	sum := audit.Summarize(stats)

	hdr := report.Header{
		TenancyName: tenancyName,
		Region:      homeRegion,
		Environment: cfg.EnvironmentLabel(),
		GeneratedAt: time.Now(),
	}

	ts := hdr.GeneratedAt.Format("20060102_150405")
	detailFile := filepath.Join(cfg.OutputDir, fmt.Sprintf("policy_audit_detail_%s.txt", ts))
	summaryFile := filepath.Join(cfg.OutputDir, fmt.Sprintf("policy_audit_summary_%s.txt", ts))

	detail := report.Detail(hdr, nodes, stats, policies)
	if err := os.WriteFile(detailFile, []byte(detail), 0644); err != nil {
		color.Red("✗ Failed to write detail report: %v", err)
		return err
	}

	summary := report.Summary(hdr, nodes, stats, sum, filepath.Base(detailFile))
	if err := os.WriteFile(summaryFile, []byte(summary), 0644); err != nil {
		color.Red("✗ Failed to write summary report: %v", err)
		return err
	}

	color.Green("✓ Audit complete")
	color.Cyan("\nStatistics:")
	color.Cyan("  Compartments:  %d", sum.TotalCompartments)
	color.Cyan("  Policies:      %d", sum.TotalPolicies)
	color.Cyan("  Statements:    %d", sum.TotalStatements)
	if sum.TotalCompartments > 0 {
		color.Cyan("  Coverage:      %d%%", sum.CompartmentsWithPolicies*100/sum.TotalCompartments)
	}
	color.Cyan("\nReports:")
	color.Cyan("  Detail:  %s", detailFile)
	color.Cyan("  Summary: %s", summaryFile)

	return nil
}
