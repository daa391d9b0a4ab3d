package polyclip

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestClipAll_MatchesClip(t *testing.T) {
	region := mustRect(t, Pt(-0.5, -0.5), Pt(0.5, 0.5))
	rng := rand.New(rand.NewPCG(3, 4))

	subjects := make([]Polygon, 100)
	for i := range subjects {
		subjects[i] = randomStarPolygon(rng, 3+rng.IntN(10))
	}

	for _, workers := range []int{0, 1, 4} {
		got, err := ClipAll(subjects, region, WithWorkers(workers))
		if err != nil {
			t.Fatalf("workers=%d: ClipAll: %v", workers, err)
		}
		if len(got) != len(subjects) {
			t.Fatalf("workers=%d: %d results, want %d", workers, len(got), len(subjects))
		}
		for i, s := range subjects {
			want, _ := Clip(s, region)
			if len(got[i]) != len(want) {
				t.Fatalf("workers=%d subject %d: %v, want %v", workers, i, got[i], want)
			}
			for j := range want {
				if got[i][j] != want[j] {
					t.Fatalf("workers=%d subject %d vertex %d: %v, want %v", workers, i, j, got[i][j], want[j])
				}
			}
		}
	}
}

func TestClipAll_Empty(t *testing.T) {
	region := mustRect(t, Pt(0, 0), Pt(1, 1))
	got, err := ClipAll(nil, region)
	if err != nil {
		t.Fatalf("ClipAll: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d results, want 0", len(got))
	}
}

func TestClipAll_ZeroRegion(t *testing.T) {
	_, err := ClipAll([]Polygon{unitSquare()}, Region{})
	if !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("err = %v, want ErrEmptyRegion", err)
	}
}
