package numrange

import "slices"

// Compress renders values as canonical notation using the default
// configuration. This is equivalent to calling:
//
//	DefaultOptions[T]().Compress(values)
func Compress[T Number](values []T) (string, error) {
	return DefaultOptions[T]().Compress(values)
}

// Compress renders values as the shortest equivalent notation.
//
// The input is sorted and deduplicated first, so the output is canonical
// regardless of input order or duplication. Maximal unit-step runs of at
// least MinRun values render as "start:end"; with a step hint set, runs
// matching that step render as "start:step:end" from two values up.
// Everything else is emitted as individual numbers joined by the list
// separator. An empty collection yields an empty string.
//
// The only error condition is an ambiguous separator configuration; any
// finite collection compresses successfully.
func (o Options[T]) Compress(values []T) (string, error) {
	o = o.normalized()
	if err := o.validate(); err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", nil
	}

	vals := slices.Clone(values)
	slices.Sort(vals)
	vals = slices.Compact(vals)

	return renderTokens(o.runs(vals), o), nil
}

// runs groups sorted distinct values into tokens: compressible runs become
// spans, everything else becomes singles.
func (o Options[T]) runs(vals []T) []token[T] {
	minRun := o.MinRun
	if minRun < 2 {
		minRun = 2
	}

	tokens := make([]token[T], 0, len(vals))
	for i := 0; i < len(vals); {
		if end := runEnd(vals, i, 1); end-i >= minRun {
			tokens = append(tokens, token[T]{start: vals[i], step: 1, end: vals[end-1]})
			i = end
			continue
		}

		if h := o.StepHint; h != nil && *h > 0 && *h != 1 {
			if end := runEnd(vals, i, *h); end-i >= 2 {
				tokens = append(tokens, token[T]{start: vals[i], step: *h, end: vals[end-1]})
				i = end
				continue
			}
		}

		tokens = append(tokens, token[T]{start: vals[i], single: true})
		i++
	}

	return tokens
}

// runEnd returns the index one past the maximal run starting at i whose
// consecutive differences all equal step.
func runEnd[T Number](vals []T, i int, step T) int {
	j := i + 1
	for j < len(vals) && vals[j]-vals[j-1] == step {
		j++
	}
	return j
}
