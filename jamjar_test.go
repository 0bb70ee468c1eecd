package jamjar

import "testing"

func TestBoxContains(t *testing.T) {
	b := BoxFromSize(50, 50, 20, 10) // spans x 40..60, y 45..55

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{50, 50}, true},
		{"inside", Vec2{59.9, 54.9}, true},
		{"left edge", Vec2{40, 50}, false},
		{"right edge", Vec2{60, 50}, false},
		{"top edge", Vec2{50, 45}, false},
		{"bottom edge", Vec2{50, 55}, false},
		{"corner", Vec2{40, 45}, false},
		{"outside", Vec2{70, 50}, false},
		{"inside x only", Vec2{50, 60}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoxGeometry(t *testing.T) {
	b := BoxFromSize(10, 20, 8, 4)
	if b.Min() != (Vec2{6, 18}) || b.Max() != (Vec2{14, 22}) {
		t.Errorf("Min/Max = %v/%v, want (6,18)/(14,22)", b.Min(), b.Max())
	}
	if b.Area() != 32 {
		t.Errorf("Area = %f, want 32", b.Area())
	}
}

func TestZeroSizeBoxContainsNothing(t *testing.T) {
	b := BoxFromSize(5, 5, 0, 0)
	if b.Contains(Vec2{5, 5}) {
		t.Error("zero-size box contains its center")
	}
}

func TestCapability(t *testing.T) {
	c := Hoverable | DropTarget
	if !c.Has(Hoverable) || c.Has(Draggable) {
		t.Errorf("Has mismatch for %v", c)
	}
	if !c.Any(Draggable | DropTarget) {
		t.Error("Any(Draggable|DropTarget) = false")
	}
	if got := c.String(); got != "hoverable|droptarget" {
		t.Errorf("String = %q", got)
	}
	if got := Capability(0).String(); got != "none" {
		t.Errorf("String(0) = %q", got)
	}
}

func TestColorLerpAndRGBA(t *testing.T) {
	c := Color{0, 0, 0, 1}.Lerp(Color{1, 0.5, 0, 1}, 0.5)
	if !approxEqual(c.R, 0.5, epsilon) || !approxEqual(c.G, 0.25, epsilon) {
		t.Errorf("Lerp = %v", c)
	}
	rgba := Color{1, 1, 1, 0.5}.RGBA()
	if rgba.A != 128 || rgba.R != 128 {
		t.Errorf("RGBA = %v, want premultiplied half white", rgba)
	}
}
