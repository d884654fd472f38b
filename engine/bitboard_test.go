package engine

import "testing"

func TestFileMask(t *testing.T) {
	if got := FileMask(0); got != 0x0101010101010101 {
		t.Fatalf("file a mask: got %016x", got)
	}
	if got := FileMask(7); got != 0x8080808080808080 {
		t.Fatalf("file h mask: got %016x", got)
	}
	for file := 0; file < 8; file++ {
		mask := FileMask(file)
		if PopCount(mask) != 8 {
			t.Errorf("file %d: expected 8 squares, got %d", file, PopCount(mask))
		}
		if mask&(uint64(1)<<uint(file)) == 0 {
			t.Errorf("file %d: first-rank square missing", file)
		}
	}
}

func TestPopCount(t *testing.T) {
	cases := map[uint64]int{
		0:                   0,
		1:                   1,
		0xffffffffffffffff:  64,
		centerSquares:       4,
		squares("a4", "h4"): 2,
	}
	for bb, want := range cases {
		if got := PopCount(bb); got != want {
			t.Errorf("PopCount(%016x): got %d want %d", bb, got, want)
		}
	}
}

func TestAdjacentFilesMaskEdges(t *testing.T) {
	if got := adjacentFilesMask(0); got != FileMask(0)|FileMask(1) {
		t.Fatalf("file a band: got %016x", got)
	}
	if got := adjacentFilesMask(7); got != FileMask(6)|FileMask(7) {
		t.Fatalf("file h band: got %016x", got)
	}
	if got := adjacentFilesMask(3); got != FileMask(2)|FileMask(3)|FileMask(4) {
		t.Fatalf("file d band: got %016x", got)
	}
}

func TestDiagonalShiftsDoNotWrap(t *testing.T) {
	aFile := squares("a4")
	hFile := squares("h4")
	if northWest(aFile) != 0 || southWest(aFile) != 0 {
		t.Fatalf("a-file pawn wrapped west")
	}
	if northEast(hFile) != 0 || southEast(hFile) != 0 {
		t.Fatalf("h-file pawn wrapped east")
	}
	if northEast(aFile) != squares("b5") || southEast(aFile) != squares("b3") {
		t.Fatalf("a-file pawn east shifts wrong")
	}
	if northWest(hFile) != squares("g5") || southWest(hFile) != squares("g3") {
		t.Fatalf("h-file pawn west shifts wrong")
	}
}

func TestFlipRanks(t *testing.T) {
	if got := flipRanks(squares("a1", "e2")); got != squares("a8", "e7") {
		t.Fatalf("flipRanks: got %016x", got)
	}
	if flipRanks(centerSquares) != centerSquares {
		t.Fatalf("center mask should be rank symmetric")
	}
}
