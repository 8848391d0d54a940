// Package report renders a month summary as markdown or plain text.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"budget/internal/core"
	"budget/internal/ledger"
)

// Month is everything shown for one month.
type Month struct {
	Key     core.MonthKey
	Items   []core.Item
	Summary ledger.Summary
}

func NewMonth(k core.MonthKey, m core.MonthData) Month {
	return Month{Key: k, Items: m.Items, Summary: ledger.Summarize(m)}
}

func amount(a core.Amount) string { return a.StringFixed(2) }

// Status is the one-line verdict under the item table.
func (m Month) Status() string {
	s := m.Summary
	switch {
	case !s.MaxBudget.IsPositive():
		return fmt.Sprintf("Total %s, no budget set", amount(s.Total))
	case s.Exceeding:
		return fmt.Sprintf("Total %s of %s, over budget by %s", amount(s.Total), amount(s.MaxBudget), amount(s.Exceeded))
	default:
		return fmt.Sprintf("Total %s of %s, %s left", amount(s.Total), amount(s.MaxBudget), amount(s.Remaining))
	}
}

// Markdown renders the month as a heading, an item table and the status.
func (m Month) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget %s\n\n", m.Key)
	if len(m.Items) == 0 {
		b.WriteString("_No items yet._\n\n")
	} else {
		b.WriteString("| # | Item | Price | Over | ID |\n")
		b.WriteString("|--:|------|------:|:----:|----|\n")
		for i, it := range m.Items {
			over := ""
			if i < len(m.Summary.Over) && m.Summary.Over[i] {
				over = "**!**"
			}
			fmt.Fprintf(&b, "| %d | %s | %s | %s | `%s` |\n", i+1, escape(it.Name), amount(it.Price), over, it.ID)
		}
		b.WriteString("\n")
	}
	if m.Summary.Exceeding {
		fmt.Fprintf(&b, "**%s**\n", m.Status())
	} else {
		fmt.Fprintf(&b, "%s\n", m.Status())
	}
	return b.String()
}

// WritePlain writes the month as aligned columns without markup.
func (m Month) WritePlain(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "#\tITEM\tPRICE\tOVER\tID\t\n")
	for i, it := range m.Items {
		over := ""
		if i < len(m.Summary.Over) && m.Summary.Over[i] {
			over = "!"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", i+1, it.Name, amount(it.Price), over, it.ID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", m.Key, m.Status())
	return err
}

func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
