package kociemba

import (
	"bytes"
	"encoding/gob"
)

// pruneSentinel marks an unlabelled cell during BFS construction.
const pruneSentinel = 0xFF

// PruneTable packs a lower bound on moves-to-goal for a pair of
// coordinates, stored as one byte per cell (a distance of at most
// ~14 easily fits, so nibble-packing is not required for correctness;
// byte storage keeps lookups branch-free).
type PruneTable struct {
	sizeA, sizeB int
	cells        []uint8
}

func newPruneTable(sizeA, sizeB int) PruneTable {
	cells := make([]uint8, sizeA*sizeB)
	for i := range cells {
		cells[i] = pruneSentinel
	}
	return PruneTable{sizeA: sizeA, sizeB: sizeB, cells: cells}
}

func (p PruneTable) index(a, b int) int { return a*p.sizeB + b }

// Get returns the lower bound on remaining moves to bring (a, b) to
// (0, 0) simultaneously.
func (p PruneTable) Get(a, b int) int {
	v := p.cells[p.index(a, b)]
	if v == pruneSentinel {
		panic("kociemba: prune table queried at unreachable/unbuilt cell")
	}
	return int(v)
}

// buildPruneTable runs the BFS of §4.5: seed (0,0) with distance 0,
// then repeatedly expand every labelled cell through every legal move
// in this phase until nothing new is reached.
func buildPruneTable(sizeA, sizeB int, moveA, moveB MoveTable, moves []int) PruneTable {
	p := newPruneTable(sizeA, sizeB)
	p.cells[p.index(0, 0)] = 0

	frontier := [][2]int{{0, 0}}
	for dist := uint8(0); len(frontier) > 0; dist++ {
		next := make([][2]int, 0, len(frontier))
		for _, cell := range frontier {
			a, b := cell[0], cell[1]
			for _, m := range moves {
				na := int(moveA[a][m])
				nb := int(moveB[b][m])
				idx := p.index(na, nb)
				if p.cells[idx] == pruneSentinel {
					p.cells[idx] = dist + 1
					next = append(next, [2]int{na, nb})
				}
			}
		}
		frontier = next
	}
	return p
}

// pruneTableWire is PruneTable's gob wire form; gob can't see unexported
// fields directly, so persistence (internal/tables) round-trips through
// this instead.
type pruneTableWire struct {
	SizeA, SizeB int
	Cells        []uint8
}

func (p PruneTable) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(pruneTableWire{p.sizeA, p.sizeB, p.cells}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *PruneTable) GobDecode(data []byte) error {
	var w pruneTableWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	p.sizeA, p.sizeB, p.cells = w.SizeA, w.SizeB, w.Cells
	return nil
}
