package system

// Visibility is a row-major set of lit cells for one frame.
// It is owned by the caller: FOV.Compute expects it empty and only ever sets
// entries, and the renderer empties it again with Take.
type Visibility struct {
	width, height int
	lit           []bool
}

// NewVisibility creates an empty set covering a width×height grid.
func NewVisibility(width, height int) *Visibility {
	return &Visibility{width: width, height: height, lit: make([]bool, width*height)}
}

// Size returns the dimensions the set covers.
func (v *Visibility) Size() (int, int) { return v.width, v.height }

// InBounds reports whether (x, y) is covered by the set.
func (v *Visibility) InBounds(x, y int) bool {
	return x >= 0 && x < v.width && y >= 0 && y < v.height
}

// Visible reports whether (x, y) is lit. Cells outside the set are never lit.
func (v *Visibility) Visible(x, y int) bool {
	return v.InBounds(x, y) && v.lit[y*v.width+x]
}

// Mark lights (x, y). Marking a lit cell again is a no-op.
func (v *Visibility) Mark(x, y int) {
	if v.InBounds(x, y) {
		v.lit[y*v.width+x] = true
	}
}

// Take reports whether (x, y) is lit and clears it.
func (v *Visibility) Take(x, y int) bool {
	if !v.InBounds(x, y) {
		return false
	}
	i := y*v.width + x
	lit := v.lit[i]
	v.lit[i] = false
	return lit
}

// Reset clears every entry.
func (v *Visibility) Reset() {
	clear(v.lit)
}

// Count returns the number of lit cells.
func (v *Visibility) Count() int {
	n := 0
	for _, lit := range v.lit {
		if lit {
			n++
		}
	}
	return n
}

// Empty reports whether no cell is lit.
func (v *Visibility) Empty() bool {
	for _, lit := range v.lit {
		if lit {
			return false
		}
	}
	return true
}

// Equal reports whether both sets light exactly the same cells.
func (v *Visibility) Equal(other *Visibility) bool {
	if v.width != other.width || v.height != other.height {
		return false
	}
	for i := range v.lit {
		if v.lit[i] != other.lit[i] {
			return false
		}
	}
	return true
}
