package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/schemaguard/schemaguard/internal/domain"
)

// Markdown renders the result as a document suitable for a pull-request
// comment. Service and tag are opaque caller-supplied identities; they are
// stated, not computed.
func Markdown(service, tag string, result *domain.CheckResult, c domain.Classification) string {
	var b strings.Builder

	b.WriteString("### Schema Check\n\n")
	fmt.Fprintf(&b, "Validated the local schema for service `%s` against tag `%s`.\n\n", service, tag)
	fmt.Fprintf(&b, "Compared **%s** against operations seen over the last **%s**.\n\n",
		english.Plural(c.Total, "schema change", ""),
		english.Plural(result.Window.Days(), "day", ""),
	)

	if c.Safe() {
		b.WriteString("Found **no breaking changes**.\n")
	} else {
		fmt.Fprintf(&b, "Found **%s**, affecting **%s**.\n",
			english.Plural(c.BreakingCount, "breaking change", ""),
			english.Plural(result.AffectedQueryCount, "operation", ""),
		)
	}

	if result.TargetURL != "" {
		fmt.Fprintf(&b, "\n[View the full check report](%s)\n", result.TargetURL)
	}

	return b.String()
}
