package geometry

import (
	"math"
	"testing"
)

func vectorsClose(a, b Vector3) bool {
	return a.Distance(b) < 1e-9
}

func TestMatrixIdentity(t *testing.T) {
	p := NewVector3(1, -2, 3)
	if result := Identity().TransformPoint(p); result != p {
		t.Errorf("Identity failed: expected %v, got %v", p, result)
	}
}

func TestMatrixTranslation(t *testing.T) {
	m := Translation(NewVector3(10, 20, 30))
	result := m.TransformPoint(NewVector3(1, 2, 3))

	expected := NewVector3(11, 22, 33)
	if result != expected {
		t.Errorf("Translation failed: expected %v, got %v", expected, result)
	}

	dir := m.TransformDirection(NewVector3(1, 2, 3))
	if dir != NewVector3(1, 2, 3) {
		t.Errorf("TransformDirection should ignore translation, got %v", dir)
	}
}

func TestMatrixRotations(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix4
		in       Vector3
		expected Vector3
	}{
		{"X", RotationX(math.Pi / 2), NewVector3(0, 1, 0), NewVector3(0, 0, 1)},
		{"Y", RotationY(math.Pi / 2), NewVector3(0, 0, 1), NewVector3(1, 0, 0)},
		{"Z", RotationZ(math.Pi / 2), NewVector3(1, 0, 0), NewVector3(0, 1, 0)},
	}

	for _, tt := range tests {
		result := tt.m.TransformPoint(tt.in)
		if !vectorsClose(result, tt.expected) {
			t.Errorf("Rotation%s failed: expected %v, got %v", tt.name, tt.expected, result)
		}
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// translate after rotating
	m := Translation(NewVector3(5, 0, 0)).Mul(RotationZ(math.Pi / 2))
	result := m.TransformPoint(NewVector3(1, 0, 0))

	expected := NewVector3(5, 1, 0)
	if !vectorsClose(result, expected) {
		t.Errorf("Mul failed: expected %v, got %v", expected, result)
	}
}

func TestMatrixInverse(t *testing.T) {
	m := Translation(NewVector3(1, 2, 3)).
		Mul(RotationY(0.3)).
		Mul(Scaling(NewVector3(2, 3, 4)))
	p := NewVector3(-1, 0.5, 7)

	back := m.Inverse().TransformPoint(m.TransformPoint(p))
	if !vectorsClose(back, p) {
		t.Errorf("Inverse failed: expected %v, got %v", p, back)
	}

	singular := Scaling(NewVector3(0, 1, 1)).Inverse()
	if singular != Identity() {
		t.Errorf("Inverse of singular matrix should be identity, got %v", singular)
	}
}

func TestMatrixFromBasis(t *testing.T) {
	m := FromBasis(NewVector3(0, 1, 0), NewVector3(-1, 0, 0), NewVector3(0, 0, 1), NewVector3(1, 1, 1))
	result := m.TransformPoint(NewVector3(1, 0, 0))

	expected := NewVector3(1, 2, 1)
	if !vectorsClose(result, expected) {
		t.Errorf("FromBasis failed: expected %v, got %v", expected, result)
	}
	if m.Origin() != NewVector3(1, 1, 1) {
		t.Errorf("Origin failed: got %v", m.Origin())
	}
}
