package imaging

import (
	"image"
	"math"

	"github.com/tsawler/gridscan/model"
)

// Contour is an ordered sequence of boundary points of a connected
// region, produced by Moore-neighbor tracing. The curve is implicitly
// closed (the last point connects back to the first).
type Contour []model.Point

// RetrievalMode selects which boundaries FindContours reports.
type RetrievalMode int

const (
	// RetrieveExternal reports only the outer boundaries of top-level
	// foreground components: components enclosed by another component's
	// holes are skipped.
	RetrieveExternal RetrievalMode = iota

	// RetrieveAll reports the outer boundary of every foreground
	// component plus the boundary of every hole (an enclosed background
	// region). Hole boundaries are what cell extraction feeds on: each
	// table cell is a background region enclosed by ruling lines.
	RetrieveAll
)

// FindContours traces region boundaries in a binary image (nonzero =
// foreground). Foreground connectivity is 8-way, hole connectivity 4-way.
// Contours are reported in scan order of their topmost-leftmost pixel.
func FindContours(binary *image.Gray, mode RetrievalMode) []Contour {
	w := binary.Bounds().Dx()
	h := binary.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil
	}

	fg := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && binary.Pix[y*binary.Stride+x] != 0
	}

	outside := labelOutside(binary, w, h)
	visited := make([]bool, w*h)

	var contours []Contour
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] {
				continue
			}
			if fg(x, y) {
				// (x,y) is the topmost-leftmost pixel of a new
				// foreground component; its left neighbor is always
				// background or out of bounds.
				topLevel := x == 0 || outside[idx-1]
				if mode == RetrieveAll || topLevel {
					contours = append(contours, traceBoundary(fg, x, y, w, h))
				}
				floodFill(visited, fg, x, y, w, h, true)
			} else if mode == RetrieveAll && !outside[idx] {
				// Start of a hole: enclosed background region. The
				// trace is restricted to this hole's own 4-connected
				// component; the Moore walk inspects diagonal
				// neighbors, and a looser predicate would let it step
				// onto outside background (or a neighboring hole)
				// touching the hole only corner to corner.
				member := holeComponent(binary, outside, x, y, w, h)
				inHole := func(px, py int) bool {
					return px >= 0 && px < w && py >= 0 && py < h && member[py*w+px]
				}
				contours = append(contours, traceBoundary(inHole, x, y, w, h))
				floodFill(visited, inHole, x, y, w, h, false)
			} else {
				visited[idx] = true
			}
		}
	}
	return contours
}

// labelOutside marks the background region reachable from the image
// border with 4-connectivity. Background pixels left unmarked are holes.
func labelOutside(binary *image.Gray, w, h int) []bool {
	outside := make([]bool, w*h)
	var stack []model.Point

	push := func(x, y int) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		idx := y*w + x
		if outside[idx] || binary.Pix[y*binary.Stride+x] != 0 {
			return
		}
		outside[idx] = true
		stack = append(stack, model.Point{X: x, Y: y})
	}

	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		push(p.X-1, p.Y)
		push(p.X+1, p.Y)
		push(p.X, p.Y-1)
		push(p.X, p.Y+1)
	}
	return outside
}

// holeComponent marks the 4-connected background component containing
// (sx,sy). Outside background is excluded, so the marked pixels are
// exactly one hole.
func holeComponent(binary *image.Gray, outside []bool, sx, sy, w, h int) []bool {
	member := make([]bool, w*h)
	floodFill(member, func(x, y int) bool {
		return !outside[y*w+x] && binary.Pix[y*binary.Stride+x] == 0
	}, sx, sy, w, h, false)
	return member
}

// floodFill marks every pixel of the region containing (x,y) as visited.
// Foreground regions use 8-connectivity, background regions 4-connectivity.
func floodFill(visited []bool, inRegion func(x, y int) bool, x, y, w, h int, eightConn bool) {
	var stack []model.Point

	push := func(px, py int) {
		if px < 0 || px >= w || py < 0 || py >= h {
			return
		}
		idx := py*w + px
		if visited[idx] || !inRegion(px, py) {
			return
		}
		visited[idx] = true
		stack = append(stack, model.Point{X: px, Y: py})
	}

	push(x, y)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		push(p.X-1, p.Y)
		push(p.X+1, p.Y)
		push(p.X, p.Y-1)
		push(p.X, p.Y+1)
		if eightConn {
			push(p.X-1, p.Y-1)
			push(p.X+1, p.Y-1)
			push(p.X-1, p.Y+1)
			push(p.X+1, p.Y+1)
		}
	}
}

// moore neighborhood in clockwise order starting at west
var mooreDirs = [8]model.Point{
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
}

// traceBoundary walks the boundary of the region containing the start
// pixel using Moore-neighbor tracing. The start pixel must be the
// topmost-leftmost pixel of its region.
func traceBoundary(inRegion func(x, y int) bool, sx, sy, w, h int) Contour {
	start := model.Point{X: sx, Y: sy}
	contour := Contour{start}

	p := start
	backtrack := model.Point{X: sx - 1, Y: sy}
	startBacktrack := backtrack

	// Bounded by the number of boundary traversal steps possible.
	maxSteps := 4 * (w + 2) * (h + 2)
	for step := 0; step < maxSteps; step++ {
		dirIdx := 0
		for i, d := range mooreDirs {
			if p.X+d.X == backtrack.X && p.Y+d.Y == backtrack.Y {
				dirIdx = i
				break
			}
		}

		found := false
		for k := 1; k <= 8; k++ {
			j := (dirIdx + k) % 8
			n := model.Point{X: p.X + mooreDirs[j].X, Y: p.Y + mooreDirs[j].Y}
			if inRegion(n.X, n.Y) {
				backtrack = model.Point{X: p.X + mooreDirs[(j+7)%8].X, Y: p.Y + mooreDirs[(j+7)%8].Y}
				p = n
				found = true
				break
			}
		}
		if !found {
			// isolated single-pixel region
			break
		}
		if p == start && backtrack == startBacktrack {
			break
		}
		contour = append(contour, p)
	}

	// Drop the duplicated closing point if the walk re-entered the start.
	if len(contour) > 1 && contour[len(contour)-1] == start {
		contour = contour[:len(contour)-1]
	}
	return contour
}

// Perimeter returns the length of the closed boundary polyline.
func (c Contour) Perimeter() float64 {
	if len(c) < 2 {
		return 0
	}
	total := 0.0
	for i := range c {
		next := c[(i+1)%len(c)]
		total += math.Hypot(float64(next.X-c[i].X), float64(next.Y-c[i].Y))
	}
	return total
}

// Area returns the enclosed area of the closed boundary via the shoelace
// formula. For a ring-shaped region this is the area the outer boundary
// encloses, interior holes included.
func (c Contour) Area() float64 {
	if len(c) < 3 {
		return 0
	}
	sum := 0.0
	for i := range c {
		next := c[(i+1)%len(c)]
		sum += float64(c[i].X*next.Y - next.X*c[i].Y)
	}
	return math.Abs(sum) / 2
}

// BoundingRect returns the smallest axis-aligned rectangle containing
// every point of the contour. Width and height include the boundary
// pixels themselves.
func (c Contour) BoundingRect() model.Rect {
	if len(c) == 0 {
		return model.Rect{}
	}
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	for _, p := range c[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return model.NewRect(minX, minY, maxX-minX+1, maxY-minY+1)
}

// ApproxPolyDP approximates a closed contour with a polygon whose
// vertices deviate from the original curve by at most epsilon, using the
// Douglas-Peucker algorithm. The curve is split at its two most distant
// points and each half simplified independently.
func ApproxPolyDP(c Contour, epsilon float64) Contour {
	if len(c) < 3 || epsilon <= 0 {
		out := make(Contour, len(c))
		copy(out, c)
		return out
	}

	// Anchor the split at the point farthest from c[0], then at the
	// point farthest from that one.
	a := farthestFrom(c, 0)
	b := farthestFrom(c, a)
	if a == b {
		out := make(Contour, len(c))
		copy(out, c)
		return out
	}
	if a > b {
		a, b = b, a
	}

	first := simplifyChain(c[a:b+1], epsilon)

	second := make(Contour, 0, len(c)-b+a+1)
	second = append(second, c[b:]...)
	second = append(second, c[:a+1]...)
	second = simplifyChain(second, epsilon)

	// Endpoints are shared between the chains; drop the duplicates.
	out := make(Contour, 0, len(first)+len(second)-2)
	out = append(out, first...)
	out = append(out, second[1:len(second)-1]...)
	return out
}

func farthestFrom(c Contour, idx int) int {
	best, bestDist := idx, -1.0
	for i, p := range c {
		d := math.Hypot(float64(p.X-c[idx].X), float64(p.Y-c[idx].Y))
		if d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// simplifyChain applies Douglas-Peucker to an open polyline, always
// keeping both endpoints.
func simplifyChain(chain Contour, epsilon float64) Contour {
	if len(chain) < 3 {
		out := make(Contour, len(chain))
		copy(out, chain)
		return out
	}

	keep := make([]bool, len(chain))
	keep[0] = true
	keep[len(chain)-1] = true

	type span struct{ lo, hi int }
	stack := []span{{0, len(chain) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist, maxIdx := 0.0, -1
		for i := s.lo + 1; i < s.hi; i++ {
			d := pointSegmentDistance(chain[i], chain[s.lo], chain[s.hi])
			if d > maxDist {
				maxDist, maxIdx = d, i
			}
		}
		if maxDist > epsilon {
			keep[maxIdx] = true
			stack = append(stack, span{s.lo, maxIdx}, span{maxIdx, s.hi})
		}
	}

	var out Contour
	for i, k := range keep {
		if k {
			out = append(out, chain[i])
		}
	}
	return out
}

func pointSegmentDistance(p, a, b model.Point) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	px, py := float64(p.X), float64(p.Y)

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// BoundingRects maps each contour to its bounding rectangle.
func BoundingRects(contours []Contour) []model.Rect {
	rects := make([]model.Rect, 0, len(contours))
	for _, c := range contours {
		rects = append(rects, c.BoundingRect())
	}
	return rects
}
