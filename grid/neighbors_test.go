package grid

import (
	"errors"
	"reflect"
	"testing"
)

// TestFaceNeighborOffsets_2D checks count and layout: one ±1 coordinate
// per vector, same-axis offsets adjacent with +1 first.
func TestFaceNeighborOffsets_2D(t *testing.T) {
	offsets, err := FaceNeighborOffsets(2)
	if err != nil {
		t.Fatalf("FaceNeighborOffsets failed: %v", err)
	}
	want := [][]int{
		{+1, 0}, {-1, 0},
		{0, +1}, {0, -1},
	}
	if !reflect.DeepEqual(offsets, want) {
		t.Errorf("offsets = %v; want %v", offsets, want)
	}
}

// TestFaceNeighborOffsets_Counts checks the 2N count across dimensions.
func TestFaceNeighborOffsets_Counts(t *testing.T) {
	for dims := 1; dims <= 4; dims++ {
		offsets, err := FaceNeighborOffsets(dims)
		if err != nil {
			t.Fatalf("dims=%d: %v", dims, err)
		}
		if len(offsets) != 2*dims {
			t.Errorf("dims=%d: %d offsets; want %d", dims, len(offsets), 2*dims)
		}
	}
}

// TestVertexNeighborOffsets_Properties checks the 3^N−1 count, that the
// zero vector is excluded, all coordinates are in {−1,0,+1}, and all
// vectors are distinct.
func TestVertexNeighborOffsets_Properties(t *testing.T) {
	for dims := 1; dims <= 3; dims++ {
		offsets, err := VertexNeighborOffsets(dims)
		if err != nil {
			t.Fatalf("dims=%d: %v", dims, err)
		}
		want := pow(3, dims) - 1
		if len(offsets) != want {
			t.Fatalf("dims=%d: %d offsets; want %d", dims, len(offsets), want)
		}

		seen := make(map[string]bool, len(offsets))
		for _, offset := range offsets {
			zero := true
			for _, x := range offset {
				if x < -1 || x > 1 {
					t.Errorf("dims=%d: coordinate out of range in %v", dims, offset)
				}
				if x != 0 {
					zero = false
				}
			}
			if zero {
				t.Errorf("dims=%d: zero vector present", dims)
			}
			key := ""
			for _, x := range offset {
				key += string(rune('1' + x))
			}
			if seen[key] {
				t.Errorf("dims=%d: duplicate offset %v", dims, offset)
			}
			seen[key] = true
		}
	}
}

// TestNeighborOffsets_InvalidDimension ensures both tables reject dims < 1.
func TestNeighborOffsets_InvalidDimension(t *testing.T) {
	if _, err := FaceNeighborOffsets(0); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("face dims=0: got %v; want ErrInvalidDimension", err)
	}
	if _, err := VertexNeighborOffsets(0); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("vertex dims=0: got %v; want ErrInvalidDimension", err)
	}
}
