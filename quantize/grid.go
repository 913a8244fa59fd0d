package quantize

// Grid describes a uniform axis-aligned quantization grid: a fixed dimension
// count and a power-of-two cell edge length shared by every dimension.
//
// Grid is immutable after construction and safe for concurrent use.
type Grid[C Number] struct {
	dimensions int
	precision  int64
	shift      uint
}

// NewGrid creates a grid with the given dimension count and precision.
// Precision must be a positive power of two; dimensions must be > 0.
func NewGrid[C Number](dimensions int, precision int64) (*Grid[C], error) {
	if dimensions <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dimensions}
	}
	if err := ValidatePrecision(precision); err != nil {
		return nil, err
	}
	return &Grid[C]{
		dimensions: dimensions,
		precision:  precision,
		shift:      Shift(precision),
	}, nil
}

// Dimensions returns the fixed dimension count.
func (g *Grid[C]) Dimensions() int { return g.dimensions }

// Precision returns the cell edge length.
func (g *Grid[C]) Precision() int64 { return g.precision }

// Quantize returns the cell containing point.
func (g *Grid[C]) Quantize(point []C) (Cell, error) {
	if err := g.checkDimensions(point); err != nil {
		return nil, err
	}
	return Point(point, g.precision), nil
}

// SameCell reports whether two points quantize to the same cell.
func (g *Grid[C]) SameCell(a, b []C) (bool, error) {
	if err := g.checkDimensions(a); err != nil {
		return false, err
	}
	if err := g.checkDimensions(b); err != nil {
		return false, err
	}
	for i := range a {
		if Value(a[i], g.precision) != Value(b[i], g.precision) {
			return false, nil
		}
	}
	return true, nil
}

// CellsInRange enumerates every cell touched by the axis-aligned box spanned
// by min and max (inclusive on both ends). The walk covers
// ((quantize(max_i)-quantize(min_i))>>shift)+1 steps per dimension, so the
// result size is the product of the per-dimension step counts; callers keep
// this bounded by choosing precision relative to their query extents.
//
// A box with max < min in any dimension yields no cells.
func (g *Grid[C]) CellsInRange(min, max []C) ([]Cell, error) {
	if err := g.checkDimensions(min); err != nil {
		return nil, err
	}
	if err := g.checkDimensions(max); err != nil {
		return nil, err
	}

	start := make([]int64, g.dimensions)
	steps := make([]int64, g.dimensions)
	total := int64(1)
	for i := 0; i < g.dimensions; i++ {
		lo := Value(min[i], g.precision)
		hi := Value(max[i], g.precision)
		if hi < lo {
			return nil, nil
		}
		start[i] = lo
		steps[i] = ((hi - lo) >> g.shift) + 1
		total *= steps[i]
	}

	cells := make([]Cell, 0, total)
	indices := make([]int64, g.dimensions)
	for {
		cell := make(Cell, g.dimensions)
		for i := range cell {
			cell[i] = start[i] + indices[i]<<g.shift
		}
		cells = append(cells, cell)

		// Odometer increment across dimensions.
		i := 0
		for ; i < g.dimensions; i++ {
			indices[i]++
			if indices[i] < steps[i] {
				break
			}
			indices[i] = 0
		}
		if i == g.dimensions {
			break
		}
	}
	return cells, nil
}

// CellsWithinDistance enumerates every cell that could intersect the
// hypersphere of the given center and radius, by circumscribing it with its
// bounding hypercube [center-radius, center+radius] per dimension. The result
// over-approximates the sphere; callers apply an exact distance filter on the
// candidates afterwards.
//
// With an unsigned coordinate type, a radius larger than a center coordinate
// wraps the lower bound; such configurations are the caller's responsibility
// to avoid.
func (g *Grid[C]) CellsWithinDistance(center []C, radius C) ([]Cell, error) {
	if err := g.checkDimensions(center); err != nil {
		return nil, err
	}

	lower := make([]C, g.dimensions)
	upper := make([]C, g.dimensions)
	for i := 0; i < g.dimensions; i++ {
		lower[i] = center[i] - radius
		upper[i] = center[i] + radius
	}
	return g.CellsInRange(lower, upper)
}

func (g *Grid[C]) checkDimensions(point []C) error {
	if len(point) != g.dimensions {
		return &ErrDimensionMismatch{Expected: g.dimensions, Actual: len(point)}
	}
	return nil
}
