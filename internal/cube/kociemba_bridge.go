package cube

import (
	"fmt"
	"sync"
	"time"

	"github.com/behrlich/cube/internal/kociemba"
	"github.com/behrlich/cube/internal/tables"
)

// colorToFacelet maps a sticker's color to its home face symbol under
// the package's canonical orientation (Yellow=Up, Blue=Front, Red=Right,
// White=Down, Orange=Left, Green=Back; see internal/cfen's orientation
// mapping, which this mirrors).
var colorToFacelet = map[Color]kociemba.Facelet{
	Yellow: kociemba.FU,
	Red:    kociemba.FR,
	Blue:   kociemba.FF,
	White:  kociemba.FD,
	Orange: kociemba.FL,
	Green:  kociemba.FB,
}

// faceletBlockFaces gives, in facelet-string block order (U,R,F,D,L,B),
// the internal cube face holding that block's stickers.
var faceletBlockFaces = [6]Face{Up, Right, Front, Down, Left, Back}

// axisToFace maps a kociemba move axis to the equivalent cube face.
var axisToFace = map[kociemba.Axis]Face{
	kociemba.AxisU: Up,
	kociemba.AxisR: Right,
	kociemba.AxisF: Front,
	kociemba.AxisD: Down,
	kociemba.AxisL: Left,
	kociemba.AxisB: Back,
}

// toFacelets renders a 3x3x3 cube as a 54-character kociemba facelet
// string, in U(9)R(9)F(9)D(9)L(9)B(9) row-major block order.
func toFacelets(c *Cube) (kociemba.FaceletCube, error) {
	if c.Size != 3 {
		return kociemba.FaceletCube{}, fmt.Errorf("kociemba solver only supports 3x3x3 cubes, got %dx%dx%d", c.Size, c.Size, c.Size)
	}

	var fc kociemba.FaceletCube
	idx := 0
	for _, face := range faceletBlockFaces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				color := c.Faces[face][row][col]
				f, ok := colorToFacelet[color]
				if !ok {
					return fc, fmt.Errorf("unrecognized sticker color %v", color)
				}
				fc[idx] = f
				idx++
			}
		}
	}
	return fc, nil
}

// ExportFacelets renders a 3x3x3 cube as a 54-character kociemba
// facelet string, for callers outside this package that need strict
// cube-state validation (e.g. the CLI's identify --kociemba flag).
func ExportFacelets(c *Cube) (string, error) {
	fc, err := toFacelets(c)
	if err != nil {
		return "", err
	}
	return fc.String(), nil
}

// toMove converts a kociemba Move into the package's own Move type.
func toMove(m kociemba.Move) Move {
	move := Move{Face: axisToFace[m.Axis]}
	switch m.Power {
	case kociemba.Half:
		move.Double = true
		move.Clockwise = true
	case kociemba.CounterQuarter:
		move.Clockwise = false
	default:
		move.Clockwise = true
	}
	return move
}

var (
	kociembaTablesOnce sync.Once
	kociembaTables     *kociemba.Tables
	kociembaTablesErr  error
)

// loadKociembaTables builds (or loads from the on-disk cache) the move
// and pruning tables exactly once per process.
func loadKociembaTables() (*kociemba.Tables, error) {
	kociembaTablesOnce.Do(func() {
		db, err := tables.OpenDefault()
		if err != nil {
			kociembaTablesErr = fmt.Errorf("failed to open table cache: %w", err)
			return
		}
		defer db.Close()

		kociembaTables, kociembaTablesErr = db.LoadOrBuild()
	})
	return kociembaTables, kociembaTablesErr
}

// kociembaMaxDepth bounds the total search depth kociembaSolver will
// attempt before reporting failure; 0 selects the package default.
var kociembaMaxDepth = 0

// SetKociembaMaxDepth overrides the depth budget used by the Kociemba
// solver for the remainder of the process (0 restores the default).
func SetKociembaMaxDepth(n int) {
	kociembaMaxDepth = n
}

func (s *KociembaSolver) solveViaTables(cube *Cube) (*SolverResult, error) {
	start := time.Now()

	facelets, err := toFacelets(cube)
	if err != nil {
		return nil, err
	}

	tbl, err := loadKociembaTables()
	if err != nil {
		return nil, fmt.Errorf("kociemba: %w", err)
	}

	solved, err := kociemba.Solve(facelets.String(), tbl, kociembaMaxDepth)
	if err != nil {
		if kind, ok := kociemba.KindOf(err); ok {
			return nil, fmt.Errorf("kociemba: invalid cube (%s)", kind)
		}
		return nil, err
	}

	solution := make([]Move, len(solved))
	for i, m := range solved {
		solution[i] = toMove(m)
	}

	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}
