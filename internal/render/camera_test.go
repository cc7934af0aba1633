package render

import "testing"

func TestCameraPinsMapThatFits(t *testing.T) {
	c := NewCamera(80, 20, 1)
	c.Follow(50, 15, 57, 16)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Errorf("offset = (%d,%d), want (0,0)", c.OffsetX, c.OffsetY)
	}
}

func TestCameraCentersAndClamps(t *testing.T) {
	cases := []struct {
		name         string
		cx, cy       int
		wantX, wantY int
	}{
		{"middle", 28, 8, 23, 5},
		{"top-left corner", 0, 0, 0, 0},
		{"bottom-right corner", 56, 15, 47, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(10, 6, 1)
			c.Follow(tc.cx, tc.cy, 57, 16)
			if c.OffsetX != tc.wantX || c.OffsetY != tc.wantY {
				t.Errorf("offset = (%d,%d), want (%d,%d)", c.OffsetX, c.OffsetY, tc.wantX, tc.wantY)
			}
			if _, _, ok := c.WorldToScreen(tc.cx, tc.cy); !ok {
				t.Error("followed cell must be on screen")
			}
		})
	}
}

func TestCameraWideCells(t *testing.T) {
	c := NewCamera(20, 10, 2)
	c.Follow(3, 3, 8, 8)

	sx, sy, ok := c.WorldToScreen(3, 4)
	if !ok || sx != 6 || sy != 4 {
		t.Errorf("WorldToScreen(3,4) = (%d,%d,%v), want (6,4,true)", sx, sy, ok)
	}
	// A cell whose second column would fall off the right edge is not drawn.
	c = NewCamera(5, 10, 2)
	if _, _, ok := c.WorldToScreen(2, 0); ok {
		t.Error("half-visible wide cell should report off screen")
	}
}
