package geom

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{0.5, 0.25}
	got := v.Scale(1024)
	want := Vec2{512, 256}
	if got != want {
		t.Errorf("Vec2.Scale() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{1, 1}
	b := Vec2{4, 5}
	got := a.Distance(b)
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Distance() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3UV(t *testing.T) {
	v := Vec3{0.25, 0.75, 9}
	got := v.UV()
	want := Vec2{0.25, 0.75}
	if got != want {
		t.Errorf("Vec3.UV() = %v, want %v", got, want)
	}
}
