// Package valueobject defines immutable domain value types.
package valueobject

// Category is the need/want/guilt classification tag applied to an expense.
type Category string

const (
	CategoryNeed           Category = "need"
	CategoryWants          Category = "wants"
	CategoryGuilts         Category = "guilts"
	CategoryNeedRecurrence Category = "need_recurrence"
)

// Categories lists every category in rollup order. Dashboards initialize
// one bucket per entry so absent categories still report zero.
var Categories = []Category{CategoryNeed, CategoryWants, CategoryGuilts, CategoryNeedRecurrence}

// IsValid reports whether c is one of the four supported categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryNeed, CategoryWants, CategoryGuilts, CategoryNeedRecurrence:
		return true
	}
	return false
}

// IsExpenseCategory reports whether c counts toward the expense side of a
// monthly rollup. Rows without a category are treated as income instead.
func (c Category) IsExpenseCategory() bool {
	return c.IsValid()
}

// CollapseCategory derives the stored category from the caller-supplied base
// category and the recurring flag: a recurring "need" is stored as
// "need_recurrence", which is also the trigger that spawns a bill.
func CollapseCategory(base Category, recurring bool) Category {
	if base == CategoryNeed && recurring {
		return CategoryNeedRecurrence
	}
	return base
}
