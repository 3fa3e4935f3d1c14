package matcher

// Matcher represents a predicate (boolean-valued function) of one argument.
// Matchers are combined with Select to filter collections, such as the
// schedules of a configuration file.
type Matcher[T any] interface {
	// IsMatch evaluates this matcher on the given argument.
	IsMatch(T) bool
}

// Select returns the items satisfying all the given matchers, preserving
// their order. With no matchers every item is selected.
func Select[T any](items []T, matchers ...Matcher[T]) []T {
	selected := make([]T, 0, len(items))
	for _, item := range items {
		if isMatch(item, matchers) {
			selected = append(selected, item)
		}
	}
	return selected
}

func isMatch[T any](item T, matchers []Matcher[T]) bool {
	for _, m := range matchers {
		if !m.IsMatch(item) {
			return false
		}
	}
	return true
}
