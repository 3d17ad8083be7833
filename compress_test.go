package numrange_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abemedia/numrange"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{"empty", nil, ""},
		{"single", []int{7}, "7"},
		{"classic", []int{1, 3, 4, 5, 6, 7, 8, 9, 10, 14}, "1,3:10,14"},
		{"unsorted_dupes", []int{14, 10, 3, 1, 9, 4, 8, 5, 3, 7, 6, 14}, "1,3:10,14"},
		{"pair_not_compressed", []int{1, 2, 5}, "1,2,5"},
		{"run_of_three", []int{1, 2, 3}, "1:3"},
		{"negative", []int{-3, -2, -1, 5}, "-3:-1,5"},
		{"all_singles", []int{2, 4, 9}, "2,4,9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := numrange.Compress(tt.values)
			if err != nil {
				t.Fatalf("Compress(%v): %v", tt.values, err)
			}
			if got != tt.want {
				t.Errorf("Compress(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestCompressStepHint(t *testing.T) {
	tests := []struct {
		name   string
		hint   int
		values []int
		want   string
	}{
		{"odd_run", 2, []int{1, 3, 5, 7, 10}, "1:2:7,10"},
		{"short_hinted_run", 5, []int{10, 15, 42}, "10:5:15,42"},
		{"unit_runs_still_win", 2, []int{1, 2, 3, 4, 10, 12, 14}, "1:4,10:2:14"},
		{"no_match", 3, []int{1, 5, 11}, "1,5,11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := numrange.DefaultOptions[int]().WithStepHint(tt.hint).Compress(tt.values)
			if err != nil {
				t.Fatalf("Compress(%v): %v", tt.values, err)
			}
			if got != tt.want {
				t.Errorf("Compress(%v, hint=%d) = %q, want %q", tt.values, tt.hint, got, tt.want)
			}
		})
	}
}

func TestCompressMinRun(t *testing.T) {
	got, err := numrange.DefaultOptions[int]().WithMinRun(2).Compress([]int{1, 2, 5})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1:2,5"; got != want {
		t.Errorf("Compress with MinRun 2 = %q, want %q", got, want)
	}

	got, err = numrange.DefaultOptions[int]().WithMinRun(4).Compress([]int{1, 2, 3, 7, 8, 9, 10})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1,2,3,7:10"; got != want {
		t.Errorf("Compress with MinRun 4 = %q, want %q", got, want)
	}
}

func TestCompressGroupedOutput(t *testing.T) {
	opts := numrange.DefaultOptions[int]().WithListSep('/').WithGroupSep(',')

	got, err := opts.Compress([]int{1200, 1400230})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1200/1400230"; got != want {
		t.Errorf("Compress without grouped output = %q, want %q", got, want)
	}

	got, err = opts.WithGroupedOutput(true).Compress([]int{1200, 1400230})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1,200/1,400,230"; got != want {
		t.Errorf("Compress with grouped output = %q, want %q", got, want)
	}
}

func TestCompressAmbiguousSeparators(t *testing.T) {
	_, err := numrange.DefaultOptions[int]().WithRangeSep(',').Compress([]int{1, 2, 3})
	if !errors.Is(err, numrange.ErrAmbiguousSeparators) {
		t.Errorf("error = %v, want %v", err, numrange.ErrAmbiguousSeparators)
	}
}

func TestCompressRoundTrip(t *testing.T) {
	sets := [][]int{
		{1, 3, 4, 5, 6, 7, 8, 9, 10, 14},
		{5},
		{1, 2},
		{-10, -9, -8, 0, 3},
		{2, 4, 6, 8, 11},
		{100, 200, 300},
	}

	for _, hinted := range []bool{false, true} {
		opts := numrange.DefaultOptions[int]()
		if hinted {
			opts = opts.WithStepHint(2)
		}

		for _, set := range sets {
			notation, err := opts.Compress(set)
			if err != nil {
				t.Fatalf("Compress(%v): %v", set, err)
			}

			seq, err := opts.Parse(notation)
			if err != nil {
				t.Fatalf("Parse(%q): %v", notation, err)
			}

			if diff := cmp.Diff(set, seq.Values()); diff != "" {
				t.Errorf("round trip of %v via %q (hinted=%t) mismatch (-want +got):\n%s",
					set, notation, hinted, diff)
			}
		}
	}
}

func TestCompressIdempotent(t *testing.T) {
	set := []int{1, 3, 4, 5, 6, 7, 8, 9, 10, 14}

	first, err := numrange.Compress(set)
	if err != nil {
		t.Fatal(err)
	}

	seq, err := numrange.Parse[int](first)
	if err != nil {
		t.Fatal(err)
	}

	second, err := numrange.Compress(seq.Values())
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("compression not idempotent: %q != %q", first, second)
	}
}

func TestCompressFloat(t *testing.T) {
	got, err := numrange.DefaultOptions[float64]().WithStepHint(0.5).
		Compress([]float64{1, 1.5, 2, 2.5, 9})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1:0.5:2.5,9"; got != want {
		t.Errorf("Compress = %q, want %q", got, want)
	}
}
