package numrange

import (
	"fmt"
	"strings"
)

// Parse expands notation into a lazy numeric sequence using the default
// configuration. This is equivalent to calling:
//
//	DefaultOptions[T]().Parse(notation)
func Parse[T Number](notation string) (*Sequence[T], error) {
	return DefaultOptions[T]().Parse(notation)
}

// Parse expands notation into a lazy, restartable numeric sequence.
//
// The notation is split on the list separator into items; each item is a
// single number, a "start:end" interval with implicit step, or an explicit
// "start:step:end" span. Items are validated eagerly, so a single malformed
// item fails the whole parse, but expansion into values happens lazily
// during iteration.
//
// An empty notation string yields an empty sequence. Output order mirrors
// input order exactly; duplicates across items are not removed.
func (o Options[T]) Parse(notation string) (*Sequence[T], error) {
	o = o.normalized()
	if err := o.validate(); err != nil {
		return nil, err
	}

	seq := &Sequence[T]{opts: o, notation: notation}
	if o.sanitize(notation) == "" {
		return seq, nil
	}

	items := strings.Split(notation, string(o.ListSep))
	seq.tokens = make([]token[T], 0, len(items))

	for _, raw := range items {
		tok, err := o.parseItem(raw)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", raw, err)
		}
		seq.tokens = append(seq.tokens, tok)
	}

	return seq, nil
}

// parseItem resolves one list item into a token.
func (o Options[T]) parseItem(raw string) (token[T], error) {
	item := o.sanitize(raw)
	if item == "" {
		return token[T]{}, ErrEmptyItem
	}

	parts := strings.Split(item, string(o.RangeSep))
	switch len(parts) {
	case 1:
		n, err := parseNumber[T](parts[0])
		if err != nil {
			return token[T]{}, err
		}
		return token[T]{start: n, single: true}, nil

	case 2:
		start, err := parsePart(parts[0], o.DefaultStart)
		if err != nil {
			return token[T]{}, err
		}
		end, err := parsePart(parts[1], o.DefaultEnd)
		if err != nil {
			return token[T]{}, err
		}

		var step T = 1
		if end < start {
			if isUnsigned[T]() {
				return token[T]{}, ErrDescendingUnsigned
			}
			step = -step
		}
		return token[T]{start: start, step: step, end: end}, nil

	case 3:
		start, err := parsePart(parts[0], o.DefaultStart)
		if err != nil {
			return token[T]{}, err
		}
		step, err := parseStep[T](parts[1])
		if err != nil {
			return token[T]{}, err
		}
		end, err := parsePart(parts[2], o.DefaultEnd)
		if err != nil {
			return token[T]{}, err
		}

		if step == 0 {
			return token[T]{}, ErrZeroStep
		}
		if start > end && isUnsigned[T]() {
			return token[T]{}, ErrDescendingUnsigned
		}
		if start <= end && step < 0 {
			return token[T]{}, fmt.Errorf("%w: negative step in ascending range", ErrMalformedRange)
		}
		if start > end && step > 0 {
			return token[T]{}, fmt.Errorf("%w: positive step in descending range", ErrMalformedRange)
		}
		return token[T]{start: start, step: step, end: end}, nil

	default:
		return token[T]{}, fmt.Errorf("%w: too many range separators", ErrMalformedRange)
	}
}

// parsePart parses one range part, substituting def when the part is omitted.
func parsePart[T Number](part string, def *T) (T, error) {
	if part == "" && def != nil {
		return *def, nil
	}
	return parseNumber[T](part)
}

// parseStep parses the middle part of a three-part item. An omitted step
// defaults to 1.
func parseStep[T Number](part string) (T, error) {
	if part == "" {
		return 1, nil
	}
	return parseNumber[T](part)
}

// sanitize applies the pre-parse stripping passes to an item: whitespace
// removal when TrimSpace is set, group separator stripping, and decimal
// separator replacement for float types. No digit-group sizes are validated;
// stripping is purely textual.
func (o Options[T]) sanitize(s string) string {
	if o.TrimSpace {
		s = strings.Join(strings.Fields(s), "")
	}
	if o.GroupSep != 0 {
		s = strings.ReplaceAll(s, string(o.GroupSep), "")
	}
	if isFloat[T]() && o.DecimalSep != '.' {
		s = strings.ReplaceAll(s, string(o.DecimalSep), ".")
	}
	return s
}
