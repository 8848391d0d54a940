package ledger

import "budget/internal/core"

// Summary is the computed view of one month.
type Summary struct {
	Total     core.Amount
	MaxBudget core.Amount
	Exceeding bool
	// Exceeded is the amount over the ceiling, zero unless Exceeding.
	Exceeded core.Amount
	// Remaining is what is left under the ceiling, zero when over or unset.
	Remaining core.Amount
	// Over holds one flag per item, in item order.
	Over []bool
}

// Total sums the item prices. A missing price counts as zero.
func Total(items []core.Item) core.Amount {
	total := core.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}

// Overage flags the items responsible for exceeding maxBudget.
//
// Items are walked in order with a running sum. An item is flagged when the
// sum had already reached the ceiling before it, or when its own price takes
// the sum from below the ceiling to above it. An item landing exactly on the
// ceiling is not flagged. With no ceiling (maxBudget <= 0) nothing is.
func Overage(items []core.Item, maxBudget core.Amount) []bool {
	flags := make([]bool, len(items))
	if !maxBudget.IsPositive() {
		return flags
	}
	running := core.Zero
	for i, it := range items {
		start := running
		running = running.Add(it.Price)
		crosses := start.LessThan(maxBudget) && running.GreaterThan(maxBudget)
		flags[i] = crosses || start.GreaterThanOrEqual(maxBudget)
	}
	return flags
}

// IsExceeding reports whether total is above a set ceiling. A zero or
// negative ceiling means no budget, never "always exceeded".
func IsExceeding(total, maxBudget core.Amount) bool {
	return maxBudget.IsPositive() && total.GreaterThan(maxBudget)
}

// ExceededAmount returns max(total-maxBudget, 0).
func ExceededAmount(total, maxBudget core.Amount) core.Amount {
	return core.Max(total.Sub(maxBudget), core.Zero)
}

// Summarize computes totals and attribution for m.
func Summarize(m core.MonthData) Summary {
	total := Total(m.Items)
	s := Summary{
		Total:     total,
		MaxBudget: m.MaxBudget,
		Exceeding: IsExceeding(total, m.MaxBudget),
		Exceeded:  core.Zero,
		Remaining: core.Zero,
		Over:      Overage(m.Items, m.MaxBudget),
	}
	if s.Exceeding {
		s.Exceeded = ExceededAmount(total, m.MaxBudget)
	}
	if m.MaxBudget.IsPositive() {
		s.Remaining = core.Max(m.MaxBudget.Sub(total), core.Zero)
	}
	return s
}
