// Package report renders the two audit output documents: the hierarchical
// detail report and the executive summary. Both are plain-text documents
// built deterministically from the discovered tree and its policy stats.
package report

import (
	"fmt"
	"strings"
	"time"
)

const bannerRule = "==============================================================================="

// Header carries the banner fields shared by both documents.
type Header struct {
	TenancyName string
	Region      string
	Environment string
	GeneratedAt time.Time
}

func banner(title string, h Header) string {
	var b strings.Builder

	b.WriteString(bannerRule + "\n")
	fmt.Fprintf(&b, " %s\n", title)
	b.WriteString(bannerRule + "\n")
	fmt.Fprintf(&b, " Tenancy:     %s\n", h.TenancyName)
	fmt.Fprintf(&b, " Home region: %s\n", h.Region)
	fmt.Fprintf(&b, " Generated:   %s\n", h.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, " Environment: %s\n", h.Environment)
	b.WriteString(bannerRule + "\n\n")

	return b.String()
}
