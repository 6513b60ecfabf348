package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlowAvailableWidth(t *testing.T) {
	tests := []struct {
		name string
		flow Flow
		want float32
	}{
		{
			name: "padding subtracted",
			flow: Flow{Width: 200, Padding: InsetsTLBR(10, 5, 10, 15)},
			want: 180,
		},
		{
			name: "negative padding ignored",
			flow: Flow{Width: 200, Padding: InsetsTLBR(0, -20, 0, -20)},
			want: 200,
		},
		{
			name: "zero width is unbounded",
			flow: Flow{Width: 0, Padding: InsetsAll(10)},
			want: 0,
		},
		{
			name: "padding wider than container is unbounded",
			flow: Flow{Width: 10, Padding: InsetsAll(10)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flow.AvailableWidth(); got != tt.want {
				t.Errorf("AvailableWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlowWrappingThreshold(t *testing.T) {
	flow := Flow{Width: 100, HorizontalSpacing: 10, VerticalSpacing: 4}

	tests := []struct {
		name     string
		sizes    []Size
		wantRows int
	}{
		{
			name:     "exactly fits",
			sizes:    []Size{{Width: 45, Height: 20}, {Width: 45, Height: 20}},
			wantRows: 1,
		},
		{
			name:     "one point over",
			sizes:    []Size{{Width: 45, Height: 20}, {Width: 46, Height: 20}},
			wantRows: 2,
		},
		{
			name:     "each fits alone",
			sizes:    []Size{{Width: 100, Height: 20}, {Width: 100, Height: 20}},
			wantRows: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flow.Arrange(tt.sizes)
			if len(got.Rows) != tt.wantRows {
				t.Errorf("got %d rows, want %d", len(got.Rows), tt.wantRows)
			}
		})
	}
}

func TestFlowArrangeFrames(t *testing.T) {
	flow := Flow{
		Width:             120,
		HorizontalSpacing: 10,
		VerticalSpacing:   5,
		Padding:           InsetsTLBR(8, 4, 6, 4),
	}
	sizes := []Size{
		{Width: 50, Height: 20},
		{Width: 40, Height: 30},
		{Width: 60, Height: 20},
		{Width: 30, Height: 10},
	}

	got := flow.Arrange(sizes)

	wantFrames := []Rect{
		{X: 4, Y: 8, Width: 50, Height: 20},
		{X: 64, Y: 8, Width: 40, Height: 30},
		{X: 4, Y: 43, Width: 60, Height: 20},
		{X: 74, Y: 43, Width: 30, Height: 10},
	}
	if diff := cmp.Diff(wantFrames, got.Frames); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}

	wantRows := []Row{
		{Start: 0, End: 2, Y: 8, Width: 100, Height: 30},
		{Start: 2, End: 4, Y: 43, Width: 100, Height: 20},
	}
	if diff := cmp.Diff(wantRows, got.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	// 8 + 30 + 5 + 20 + 6
	want := Size{Width: 100, Height: 69}
	if got.ContentSize != want {
		t.Errorf("ContentSize = %+v, want %+v", got.ContentSize, want)
	}
}

func TestFlowOversizedChipOwnRow(t *testing.T) {
	// Unbounded width never wraps; bounded width isolates the wide chip.
	sizes := []Size{{Width: 30, Height: 10}, {Width: 500, Height: 40}, {Width: 30, Height: 10}}

	bounded := Flow{Width: 100, HorizontalSpacing: 10}.Arrange(sizes)
	if len(bounded.Rows) != 3 {
		t.Fatalf("bounded: got %d rows, want 3", len(bounded.Rows))
	}
	if bounded.RowOf(1) != 1 || bounded.Rows[1].Len() != 1 {
		t.Errorf("wide chip should sit alone on row 1, rows=%+v", bounded.Rows)
	}

	unbounded := Flow{HorizontalSpacing: 10}.Arrange(sizes)
	if len(unbounded.Rows) != 1 {
		t.Errorf("unbounded: got %d rows, want 1", len(unbounded.Rows))
	}
	if unbounded.ContentSize.Width != 580 {
		t.Errorf("unbounded width = %v, want 580", unbounded.ContentSize.Width)
	}
}

func TestFlowEmpty(t *testing.T) {
	got := Flow{Width: 100, Padding: InsetsTLBR(10, 0, 12, 0)}.Arrange(nil)

	if len(got.Rows) != 0 || len(got.Frames) != 0 {
		t.Errorf("expected no rows or frames, got %+v", got)
	}
	if want := (Size{Width: 0, Height: 22}); got.ContentSize != want {
		t.Errorf("ContentSize = %+v, want %+v", got.ContentSize, want)
	}
}

func TestFlowNegativeValuesClamp(t *testing.T) {
	flow := Flow{
		Width:             100,
		HorizontalSpacing: -5,
		VerticalSpacing:   -5,
		Padding:           InsetsAll(-3),
	}
	got := flow.Arrange([]Size{{Width: 60, Height: -4}, {Width: 60, Height: 10}})

	if len(got.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(got.Rows))
	}
	for i, f := range got.Frames {
		if f.X < 0 || f.Y < 0 || f.Height < 0 {
			t.Errorf("frame %d has inverted geometry: %+v", i, f)
		}
	}
	if got.ContentSize.Height != 10 {
		t.Errorf("ContentSize.Height = %v, want 10", got.ContentSize.Height)
	}
}

func TestRectContainsAndInset(t *testing.T) {
	r := NewRect(10, 10, 20, 10)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 15) {
		t.Error("right edge should be outside")
	}

	in := r.Inset(InsetsTLBR(2, 3, 2, 3))
	if want := NewRect(13, 12, 14, 6); in != want {
		t.Errorf("Inset() = %+v, want %+v", in, want)
	}

	if got := r.Inset(InsetsAll(50)); got.Width != 0 || got.Height != 0 {
		t.Errorf("over-inset rect should collapse to zero, got %+v", got)
	}
}
