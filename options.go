package numrange

import "fmt"

// Options holds the separator configuration and tuning knobs shared by
// parsing and compression. The zero value of a separator field means
// "use the default"; construct via [DefaultOptions] and the With* setters,
// or as a struct literal with named fields.
//
// Options values are immutable: every setter returns a modified copy, so a
// configured value can be stored and reused across calls safely.
type Options[T Number] struct {
	// ListSep separates independent range items.
	// If 0, ',' is used instead.
	ListSep rune

	// RangeSep separates the start/step/end parts of a single item.
	// If 0, ':' is used instead.
	RangeSep rune

	// GroupSep is the digit group separator stripped from numbers before
	// parsing, enabling thousands-style separators embedded in numbers.
	// If 0, no stripping happens.
	GroupSep rune

	// DecimalSep is the decimal separator replaced by '.' before parsing.
	// Only consulted for float types. If 0, '.' is used instead.
	DecimalSep rune

	// TrimSpace strips whitespace inside list items before parsing.
	TrimSpace bool

	// DefaultStart substitutes an omitted start part in a range item.
	DefaultStart *T

	// DefaultEnd substitutes an omitted end part in a range item.
	DefaultEnd *T

	// StepHint makes compression additionally detect constant-step runs
	// with this step, rendered as "start:step:end". Without a hint only
	// unit-step runs are compressed.
	StepHint *T

	// MinRun is the minimum unit-step run length compressed into a range.
	// Shorter runs are emitted as individual numbers, since a two-element
	// range gains no notational economy. If 0, 3 is used instead.
	MinRun int

	// GroupOutput re-inserts GroupSep into rendered numbers. Compression
	// never emits grouping unless this is set.
	GroupOutput bool
}

// DefaultOptions returns the default configuration: list separator ',',
// range separator ':', no digit grouping, no whitespace trimming.
func DefaultOptions[T Number]() Options[T] {
	return Options[T]{
		ListSep:    ',',
		RangeSep:   ':',
		DecimalSep: '.',
	}
}

// WithListSep returns a copy of o with the list separator set to sep.
func (o Options[T]) WithListSep(sep rune) Options[T] {
	o.ListSep = sep
	return o
}

// WithRangeSep returns a copy of o with the range separator set to sep.
func (o Options[T]) WithRangeSep(sep rune) Options[T] {
	o.RangeSep = sep
	return o
}

// WithGroupSep returns a copy of o with the digit group separator set to sep.
func (o Options[T]) WithGroupSep(sep rune) Options[T] {
	o.GroupSep = sep
	return o
}

// WithDecimalSep returns a copy of o with the decimal separator set to sep.
func (o Options[T]) WithDecimalSep(sep rune) Options[T] {
	o.DecimalSep = sep
	return o
}

// WithTrimSpace returns a copy of o with whitespace trimming set to trim.
func (o Options[T]) WithTrimSpace(trim bool) Options[T] {
	o.TrimSpace = trim
	return o
}

// WithDefaultStart returns a copy of o with a default range start value.
func (o Options[T]) WithDefaultStart(start T) Options[T] {
	o.DefaultStart = &start
	return o
}

// WithDefaultEnd returns a copy of o with a default range end value.
func (o Options[T]) WithDefaultEnd(end T) Options[T] {
	o.DefaultEnd = &end
	return o
}

// WithStepHint returns a copy of o with a compression step hint.
func (o Options[T]) WithStepHint(step T) Options[T] {
	o.StepHint = &step
	return o
}

// WithMinRun returns a copy of o with the minimum compressible run length.
func (o Options[T]) WithMinRun(n int) Options[T] {
	o.MinRun = n
	return o
}

// WithGroupedOutput returns a copy of o with grouped number rendering set
// to grouped.
func (o Options[T]) WithGroupedOutput(grouped bool) Options[T] {
	o.GroupOutput = grouped
	return o
}

// Validate reports whether the configured separators are unambiguous.
// [Options.Parse] and [Options.Compress] perform the same check before
// touching their input.
func (o Options[T]) Validate() error {
	return o.normalized().validate()
}

// normalized fills zero-valued fields with defaults.
func (o Options[T]) normalized() Options[T] {
	if o.ListSep == 0 {
		o.ListSep = ','
	}
	if o.RangeSep == 0 {
		o.RangeSep = ':'
	}
	if o.DecimalSep == 0 {
		o.DecimalSep = '.'
	}
	if o.MinRun == 0 {
		o.MinRun = 3
	}
	return o
}

// validate checks pairwise separator distinctness on normalized options.
// Coinciding separators make the notation ambiguous.
func (o Options[T]) validate() error {
	if o.ListSep == o.RangeSep {
		return ambiguous("list", "range", o.ListSep)
	}
	if o.GroupSep != 0 {
		if o.GroupSep == o.ListSep {
			return ambiguous("group", "list", o.GroupSep)
		}
		if o.GroupSep == o.RangeSep {
			return ambiguous("group", "range", o.GroupSep)
		}
	}
	if isFloat[T]() {
		if o.DecimalSep == o.ListSep {
			return ambiguous("decimal", "list", o.DecimalSep)
		}
		if o.DecimalSep == o.RangeSep {
			return ambiguous("decimal", "range", o.DecimalSep)
		}
		if o.GroupSep != 0 && o.DecimalSep == o.GroupSep {
			return ambiguous("decimal", "group", o.DecimalSep)
		}
	}
	return nil
}

func ambiguous(a, b string, sep rune) error {
	return fmt.Errorf("%w: %s and %s separators are both %q", ErrAmbiguousSeparators, a, b, sep)
}
