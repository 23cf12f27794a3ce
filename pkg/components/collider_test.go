package components

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestColliderUpdateVertexOrder(t *testing.T) {
	var g ebiten.GeoM
	g.Translate(10, 20)

	var c ColliderComponent
	c.Update(4, 6, g)

	want := [8]float64{
		10, 26, // 左上
		10, 20, // 左下
		14, 26, // 右上
		14, 20, // 右下
	}
	if c.Vertices != want {
		t.Errorf("Expected %v, got %v", want, c.Vertices)
	}
}

func TestColliderBoundsRotated(t *testing.T) {
	var g ebiten.GeoM
	g.Rotate(math.Pi / 2)

	var c ColliderComponent
	c.Update(2, 4, g)

	minX, minY, maxX, maxY := c.Bounds()
	const eps = 1e-9
	if math.Abs(minX+4) > eps || math.Abs(maxX) > eps || math.Abs(minY) > eps || math.Abs(maxY-2) > eps {
		t.Errorf("unexpected bounds: %v %v %v %v", minX, minY, maxX, maxY)
	}
}

func TestHidingEffectPingPong(t *testing.T) {
	h := NewHidingEffect()
	prev := h.Value
	rising := true
	for i := 0; i < 40; i++ {
		v := h.Step()
		if v < HidingEffectMin-1e-9 || v > HidingEffectMax+1e-9 {
			t.Fatalf("value %v out of range", v)
		}
		if rising && v < prev {
			rising = false
		}
		prev = v
	}
	if rising {
		t.Error("effect should reverse direction at the max")
	}
}
