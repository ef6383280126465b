package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	b := BoundsOf(NewVector3(-1, 2, 0), NewVector3(3, -2, 1))

	if b.Min != NewVector3(-1, -2, 0) {
		t.Errorf("Min failed: got %v", b.Min)
	}
	if b.Max != NewVector3(3, 2, 1) {
		t.Errorf("Max failed: got %v", b.Max)
	}
	if b.Center() != NewVector3(1, 0, 0.5) {
		t.Errorf("Center failed: got %v", b.Center())
	}
	if math.Abs(b.Volume()-16) > 1e-10 {
		t.Errorf("Volume failed: expected 16, got %v", b.Volume())
	}
	if b.MaxDimension() != 4 {
		t.Errorf("MaxDimension failed: expected 4, got %v", b.MaxDimension())
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	b := NewBoundingBox()

	if !b.IsEmpty() {
		t.Error("new bounding box should be empty")
	}
	if b.Size() != (Vector3{}) {
		t.Errorf("empty Size should be zero, got %v", b.Size())
	}
}
