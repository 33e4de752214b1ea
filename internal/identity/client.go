// Package identity wraps the OCI identity API behind the small read-only
// surface the audit needs: child compartments, attached policies, and
// tenancy metadata. All list calls page through every result.
package identity

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/common/auth"
	"github.com/oracle/oci-go-sdk/v65/identity"

	"github.com/blackwell-systems/oci-policy-audit/internal/audit"
	"github.com/blackwell-systems/oci-policy-audit/internal/config"
)

// Client talks to the OCI identity service for one tenancy. It satisfies
// audit.Directory.
type Client struct {
	id      identity.IdentityClient
	tenancy string
}

// New builds the identity client from the configured credential source and
// resolves the effective tenancy OCID.
func New(cfg *config.Config) (*Client, error) {
	provider, err := configurationProvider(cfg)
	if err != nil {
		return nil, err
	}

	id, err := identity.NewIdentityClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity client: %w", err)
	}
	if cfg.Region != "" {
		id.SetRegion(cfg.Region)
	}

	tenancy := cfg.TenancyID
	if tenancy == "" {
		tenancy, err = provider.TenancyOCID()
		if err != nil {
			return nil, fmt.Errorf("tenancy OCID not configured and not resolvable from credentials: %w", err)
		}
	}

	return &Client{id: id, tenancy: tenancy}, nil
}

func configurationProvider(cfg *config.Config) (common.ConfigurationProvider, error) {
	switch cfg.AuthMethod {
	case config.AuthInstance:
		provider, err := auth.InstancePrincipalConfigurationProvider()
		if err != nil {
			return nil, fmt.Errorf("instance principal credentials unavailable: %w", err)
		}
		return provider, nil
	case config.AuthConfig:
		if cfg.Profile != "" {
			return common.CustomProfileConfigProvider("", cfg.Profile), nil
		}
		return common.DefaultConfigProvider(), nil
	default:
		return nil, fmt.Errorf("unknown auth method: %s", cfg.AuthMethod)
	}
}

// TenancyID returns the tenancy OCID the client audits.
func (c *Client) TenancyID() string {
	return c.tenancy
}

// Ping verifies the identity endpoint is reachable with the configured
// credentials. Any failure here is fatal for the run.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.id.ListRegions(ctx); err != nil {
		return fmt.Errorf("identity service unreachable: %w", err)
	}
	return nil
}

// ListChildCompartments returns the ACTIVE child compartments of the given
// compartment, across all pages.
func (c *Client) ListChildCompartments(ctx context.Context, compartmentID string) ([]audit.Compartment, error) {
	var out []audit.Compartment
	var page *string

	for {
		resp, err := c.id.ListCompartments(ctx, identity.ListCompartmentsRequest{
			CompartmentId:  common.String(compartmentID),
			LifecycleState: identity.CompartmentLifecycleStateActive,
			Page:           page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list compartments under %s: %w", compartmentID, err)
		}

		for _, item := range resp.Items {
			out = append(out, audit.Compartment{
				ID:   deref(item.Id),
				Name: deref(item.Name),
			})
		}

		if resp.OpcNextPage == nil {
			break
		}
		page = resp.OpcNextPage
	}

	return out, nil
}

// ListPolicies returns the policies attached directly to the given
// compartment, across all pages, statements in server order. The bulk list
// response carries the full statement bodies; no per-policy fetch is needed.
func (c *Client) ListPolicies(ctx context.Context, compartmentID string) ([]audit.Policy, error) {
	var out []audit.Policy
	var page *string

	for {
		resp, err := c.id.ListPolicies(ctx, identity.ListPoliciesRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list policies in %s: %w", compartmentID, err)
		}

		for _, item := range resp.Items {
			out = append(out, audit.Policy{
				ID:         deref(item.Id),
				Name:       deref(item.Name),
				Statements: item.Statements,
			})
		}

		if resp.OpcNextPage == nil {
			break
		}
		page = resp.OpcNextPage
	}

	return out, nil
}

// TenancyName resolves the tenancy display name, best effort.
func (c *Client) TenancyName(ctx context.Context) string {
	resp, err := c.id.GetTenancy(ctx, identity.GetTenancyRequest{
		TenancyId: common.String(c.tenancy),
	})
	if err != nil || resp.Name == nil {
		return "unknown tenancy"
	}
	return *resp.Name
}

// HomeRegion resolves the tenancy's home region, best effort.
func (c *Client) HomeRegion(ctx context.Context) string {
	resp, err := c.id.ListRegionSubscriptions(ctx, identity.ListRegionSubscriptionsRequest{
		TenancyId: common.String(c.tenancy),
	})
	if err != nil {
		return "unknown region"
	}

	for _, sub := range resp.Items {
		if sub.IsHomeRegion != nil && *sub.IsHomeRegion && sub.RegionName != nil {
			return *sub.RegionName
		}
	}
	return "unknown region"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
