package numrange

import "strings"

// token is one parsed list item: a single value or a closed stepped span.
// Tokens are ephemeral; they live only inside a Sequence and are expanded
// on demand during iteration.
type token[T Number] struct {
	start  T
	step   T
	end    T
	single bool
}

// unitStep reports whether the span's step renders implicitly, i.e. as
// "start:end" rather than "start:step:end".
func (t token[T]) unitStep() bool {
	if t.step == 1 {
		return true
	}
	if isUnsigned[T]() {
		return false
	}
	var one T = 1
	return t.step == -one
}

// render appends the item's notation to b using o's separators.
func (t token[T]) render(b *strings.Builder, o Options[T]) {
	groupSep := rune(0)
	if o.GroupOutput {
		groupSep = o.GroupSep
	}

	b.WriteString(formatNumber(t.start, groupSep))
	if t.single {
		return
	}

	b.WriteRune(o.RangeSep)
	if !t.unitStep() {
		b.WriteString(formatNumber(t.step, groupSep))
		b.WriteRune(o.RangeSep)
	}
	b.WriteString(formatNumber(t.end, groupSep))
}

// renderTokens joins rendered items with the list separator.
func renderTokens[T Number](tokens []token[T], o Options[T]) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteRune(o.ListSep)
		}
		t.render(&b, o)
	}
	return b.String()
}
