// Package numrange converts between a compact textual notation for sets of
// numbers and the explicit numeric sequence it denotes, and back. The
// notation "1,3:10,14" expands to 1, 3, 4, ..., 10, 14; the reverse
// direction compresses an arbitrary collection of numbers into the shortest
// equivalent notation by detecting maximal constant-step runs.
//
// The notation grammar is:
//
//	notation := item (list_sep item)*
//	item     := number (range_sep number (range_sep number)?)?
//	number   := ['-'] digit+ (group_sep digit+)*
//
// A two-part item "start:end" is a closed interval with step 1 (or -1 for
// signed types when end < start). A three-part item "start:step:end" uses an
// explicit step. The end bound is included only when it is reachable exactly
// by the step; otherwise expansion truncates at the last in-range value.
//
// Basic usage:
//
//	// Expand notation using default separators.
//	seq, err := numrange.Parse[int]("1,3:10,14")
//	for v := range seq.All() { ... }
//
//	// Compress a collection into canonical notation.
//	s, err := numrange.Compress([]int{1, 3, 4, 5, 6, 7, 8, 9, 10, 14})
//	// s == "1,3:10,14"
//
//	// Custom separators, digit grouping and whitespace handling.
//	seq, err := numrange.DefaultOptions[int]().
//		WithListSep('/').
//		WithGroupSep(',').
//		WithTrimSpace(true).
//		Parse("1,200/1, 400, 230")
//	// seq.Values() == []int{1200, 1400230}
//
// Parsing is lazy: values are computed on demand during iteration, so very
// large ranges like "1:1000000000" cost nothing until consumed. The returned
// sequence is restartable; every call to [Sequence.All] walks the parsed
// items from the beginning.
//
// Both operations are pure functions over their inputs and an immutable
// [Options] value. The package holds no process-wide state and performs
// no I/O.
package numrange
