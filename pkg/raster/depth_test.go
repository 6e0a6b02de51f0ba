package raster

import "testing"

func TestDepthBufferClearSentinel(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1},
		{3, 2},
		{8, 8},
	}
	for _, s := range sizes {
		d := NewDepthBuffer(s.w, s.h)
		for y := 0; y < s.h; y++ {
			for x := 0; x < s.w; x++ {
				if got := d.Get(x, y); got != 0 {
					t.Fatalf("%dx%d new buffer at (%d, %d): got %v, want 0", s.w, s.h, x, y, got)
				}
			}
		}

		for y := 0; y < s.h; y++ {
			for x := 0; x < s.w; x++ {
				d.Set(x, y, float32(1+x+y*s.w))
			}
		}
		d.Clear()
		for y := 0; y < s.h; y++ {
			for x := 0; x < s.w; x++ {
				if got := d.Get(x, y); got != 0 {
					t.Fatalf("%dx%d cleared buffer at (%d, %d): got %v, want 0", s.w, s.h, x, y, got)
				}
			}
		}
	}
}

func TestDepthBufferRowMajor(t *testing.T) {
	d := NewDepthBuffer(4, 3)
	if d.Width() != 4 || d.Height() != 3 {
		t.Fatalf("got %dx%d, want 4x3", d.Width(), d.Height())
	}

	d.Set(3, 0, 1)
	d.Set(0, 1, 2)
	d.Set(3, 2, 3)
	if got := d.Get(3, 0); got != 1 {
		t.Fatalf("(3, 0): got %v, want 1", got)
	}
	if got := d.Get(0, 1); got != 2 {
		t.Fatalf("(0, 1): got %v, want 2", got)
	}
	if got := d.Get(3, 2); got != 3 {
		t.Fatalf("(3, 2): got %v, want 3", got)
	}
	// neighbours untouched
	if got := d.Get(2, 0); got != 0 {
		t.Fatalf("(2, 0): got %v, want 0", got)
	}
	if got := d.Get(1, 1); got != 0 {
		t.Fatalf("(1, 1): got %v, want 0", got)
	}
}
