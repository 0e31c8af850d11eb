package ease

import (
	"math"
	"testing"
)

const eps = 1e-9

func deg(d float64) float64 { return d * math.Pi / 180 }

func TestInOutQuadEndpoints(t *testing.T) {
	if InOutQuad(0) != 0 {
		t.Errorf("InOutQuad(0) = %f", InOutQuad(0))
	}
	if math.Abs(InOutQuad(1)-1) > eps {
		t.Errorf("InOutQuad(1) = %f", InOutQuad(1))
	}
	if math.Abs(InOutQuad(0.5)-0.5) > eps {
		t.Errorf("InOutQuad(0.5) = %f", InOutQuad(0.5))
	}
}

func TestCurvesMonotonic(t *testing.T) {
	curves := map[string]func(float64) float64{
		"InOutQuad":  InOutQuad,
		"OutQuint":   OutQuint,
		"InOutQuint": InOutQuint,
	}
	for name, f := range curves {
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float64(i) / 100)
			if v < prev-eps {
				t.Errorf("%s decreases at t=%.2f", name, float64(i)/100)
			}
			prev = v
		}
		if math.Abs(prev-1) > eps {
			t.Errorf("%s(1) = %f, want 1", name, prev)
		}
	}
}

func TestAngleLerpShortestPath(t *testing.T) {
	mid := AngleLerp(deg(170), deg(-170), 0.5)
	if math.Abs(math.Abs(WrapAngle(mid))-math.Pi) > 1e-9 {
		t.Errorf("midpoint across wraparound = %f deg, want +-180", mid*180/math.Pi)
	}

	mid = AngleLerp(deg(-170), deg(170), 0.5)
	if math.Abs(math.Abs(WrapAngle(mid))-math.Pi) > 1e-9 {
		t.Errorf("reverse midpoint = %f deg, want +-180", mid*180/math.Pi)
	}
}

func TestAngleLerpEnds(t *testing.T) {
	tests := []struct{ a, b float64 }{
		{0, 1},
		{deg(170), deg(-170)},
		{deg(-90), deg(135)},
		{deg(10), deg(-10)},
	}
	for _, tt := range tests {
		if got := AngleLerp(tt.a, tt.b, 0); math.Abs(got-tt.a) > eps {
			t.Errorf("AngleLerp(%f, %f, 0) = %f", tt.a, tt.b, got)
		}
		end := AngleLerp(tt.a, tt.b, 1)
		if d := WrapAngle(end - tt.b); math.Abs(d) > eps {
			t.Errorf("AngleLerp(%f, %f, 1) = %f, off by %f", tt.a, tt.b, end, d)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{deg(370), deg(10)},
		{deg(-190), deg(170)},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	if Progress(5, 4, 2) != 0.5 {
		t.Error("expected halfway")
	}
	if Progress(3, 4, 2) != 0 {
		t.Error("expected clamp at 0")
	}
	if Progress(10, 4, 2) != 1 {
		t.Error("expected clamp at 1")
	}
	if Progress(4, 4, 0) != 1 {
		t.Error("zero duration should be complete")
	}
}
