package report

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"budget/internal/core"
)

func month(budget float64, prices ...float64) core.MonthData {
	m := core.MonthData{MaxBudget: core.A(budget)}
	for i, p := range prices {
		m.Items = append(m.Items, core.Item{ID: string(rune('a' + i)), Name: "item|" + string(rune('a'+i)), Price: core.A(p)})
	}
	return m
}

func TestStatus(t *testing.T) {
	cases := []struct {
		m    core.MonthData
		want string
	}{
		{month(0, 80), "Total 80.00, no budget set"},
		{month(100, 50, 60, 40), "Total 150.00 of 100.00, over budget by 50.00"},
		{month(100, 30), "Total 30.00 of 100.00, 70.00 left"},
	}
	for _, tc := range cases {
		if got := NewMonth("2025-01", tc.m).Status(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestMarkdownFlagsOverItems(t *testing.T) {
	md := NewMonth("2025-01", month(100, 50, 60, 40)).Markdown()
	lines := strings.Split(md, "\n")
	var rows []string
	for _, l := range lines {
		if strings.HasPrefix(l, "| 1 ") || strings.HasPrefix(l, "| 2 ") || strings.HasPrefix(l, "| 3 ") {
			rows = append(rows, l)
		}
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d in:\n%s", len(rows), md)
	}
	if strings.Contains(rows[0], "**!**") || !strings.Contains(rows[1], "**!**") || !strings.Contains(rows[2], "**!**") {
		t.Fatalf("unexpected flags:\n%s", md)
	}
	if !strings.Contains(rows[0], `item\|a`) {
		t.Fatalf("pipe not escaped: %s", rows[0])
	}
	if !strings.HasPrefix(md, "# Budget 2025-01\n") {
		t.Fatalf("missing heading:\n%s", md)
	}
}

// TestMarkdownParsesAsTable checks that escaped names keep every row at five cells.
func TestMarkdownParsesAsTable(t *testing.T) {
	md := []byte(NewMonth("2025-01", month(100, 50, 60, 40)).Markdown())
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(md))

	var tables, rows int
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			tables++
		case *east.TableRow:
			rows++
			if got := n.ChildCount(); got != 5 {
				t.Errorf("row %d has %d cells, want 5", rows, got)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if tables != 1 || rows != 3 {
		t.Fatalf("expected 1 table with 3 rows, got %d tables and %d rows", tables, rows)
	}
}

func TestMarkdownEmptyMonth(t *testing.T) {
	md := NewMonth("2025-02", core.EmptyMonth()).Markdown()
	if !strings.Contains(md, "_No items yet._") || !strings.Contains(md, "no budget set") {
		t.Fatalf("unexpected markdown:\n%s", md)
	}
}

func TestWritePlain(t *testing.T) {
	var b strings.Builder
	if err := NewMonth("2025-01", month(100, 50, 60)).WritePlain(&b); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "ITEM") || !strings.Contains(out, "60.00") || !strings.HasSuffix(out, "2025-01: Total 110.00 of 100.00, over budget by 10.00\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
