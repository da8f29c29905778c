package cmdout

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
	"github.com/bigmonlabs/bigmonctl/pkg/reconcile"
)

// PoliciesToTableData converts policies to table format.
func PoliciesToTableData(policies []bigtap.Policy, wide bool) Data {
	headers := []string{"Name", "Action", "Priority", "Duration", "Description"}
	alignment := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft}
	if wide {
		headers = []string{"Name", "Action", "Priority", "Duration", "Delivery Pkts", "Start Time", "Description"}
		alignment = []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft, AlignLeft}
	}

	rows := make([][]string, 0, len(policies))
	for _, policy := range policies {
		description := policy.Description
		if !wide && len(description) > 40 {
			description = description[:37] + "..."
		}
		if description == "" {
			description = "-"
		}

		row := []string{
			policy.Name,
			policy.Action.String(),
			strconv.Itoa(policy.Priority),
			FormatBound(policy.Duration, "s"),
		}
		if wide {
			row = append(row,
				FormatBound(policy.DeliveryPacketCount, ""),
				formatStartTime(policy.StartTime),
			)
		}
		row = append(row, description)

		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// PolicyToTableData converts a single policy to a property table.
func PolicyToTableData(policy bigtap.Policy) Data {
	description := policy.Description
	if description == "" {
		description = "-"
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{propertyName("name"), policy.Name},
			{propertyName("action"), policy.Action.String()},
			{propertyName("priority"), strconv.Itoa(policy.Priority)},
			{propertyName("duration"), FormatBound(policy.Duration, "s")},
			{propertyName("delivery-packet-count"), FormatBound(policy.DeliveryPacketCount, "")},
			{propertyName("start-time"), formatStartTime(policy.StartTime)},
			{propertyName("policy-description"), description},
		},
	}
}

// FormatPolicies writes the policy list in the given format.
func FormatPolicies(w io.Writer, policies []bigtap.Policy, format Format) error {
	switch format {
	case FormatTable, FormatWide, "":
		return NewFormatter(format).Format(w, PoliciesToTableData(policies, format == FormatWide))
	default:
		return NewFormatter(format).Format(w, policies)
	}
}

// FormatPolicy writes a single policy in the given format.
func FormatPolicy(w io.Writer, policy bigtap.Policy, format Format) error {
	switch format {
	case FormatTable, FormatWide, "":
		return NewFormatter(format).Format(w, PolicyToTableData(policy))
	default:
		return NewFormatter(format).Format(w, policy)
	}
}

// FormatResult writes a reconciliation result in the given format. Table
// output renders the summary line plus any field differences.
func FormatResult(w io.Writer, result *reconcile.Result, format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		return NewFormatter(format).Format(w, result)
	default:
		if _, err := fmt.Fprintln(w, result.Summary()); err != nil {
			return err
		}
		for _, line := range result.Diff {
			if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
				return err
			}
		}
		return nil
	}
}

// FormatBound renders a scheduling bound where zero means unbounded.
func FormatBound(v int, unit string) string {
	if v == 0 {
		return "unbounded"
	}
	return strconv.Itoa(v) + unit
}

func formatStartTime(start string) string {
	if start == "" {
		return "-"
	}
	return start
}

// propertyName renders a wire field name as a display label.
func propertyName(tag string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(tag, "-", " "))
}
