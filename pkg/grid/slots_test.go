package grid

import "testing"

func TestSlotsAllFree(t *testing.T) {
	g, err := New("...\n...\n...")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	slots := g.Slots()
	if len(slots) != 6 {
		t.Fatalf("len(Slots()) = %d, want 6", len(slots))
	}
	for i, s := range slots {
		if s.Index != i {
			t.Errorf("slot %d: Index = %d, want %d", i, s.Index, i)
		}
	}
	for _, s := range slots[:3] {
		if s.Direction != Across {
			t.Errorf("slot %d: Direction = %v, want Across", s.Index, s.Direction)
		}
	}
	for _, s := range slots[3:] {
		if s.Direction != Down {
			t.Errorf("slot %d: Direction = %v, want Down", s.Index, s.Direction)
		}
	}
}

func TestSlotsWithBlocks(t *testing.T) {
	g, err := New(".#.\n...\n..#")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	slots := g.Slots()
	var across, down int
	for _, s := range slots {
		if s.Direction == Across {
			across++
		} else {
			down++
		}
	}
	// Row 0 (".#.") has no run of length >= 2; row 1 ("...") is one run;
	// row 2 ("..#") has one run of length 2.
	if across != 2 {
		t.Errorf("across slot count = %d, want 2", across)
	}
	// Column 0 ("...") is one run of length 3; column 1 ("#..") and
	// column 2 ("..#") each have one run of length 2.
	if down == 0 {
		t.Errorf("expected at least one down slot")
	}
}

func TestSlotsEmptyGrid(t *testing.T) {
	g, err := New("")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(g.Slots()) != 0 {
		t.Errorf("len(Slots()) = %d, want 0", len(g.Slots()))
	}
}

func TestSlotPositions(t *testing.T) {
	s := Slot{Direction: Across, Start: 1, End: 4, Offset: 1}
	want := []Pos{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}
	got := s.Positions()
	if len(got) != len(want) {
		t.Fatalf("len(Positions()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	d := Slot{Direction: Down, Start: 1, End: 4, Offset: 1}
	wantDown := []Pos{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}}
	gotDown := d.Positions()
	for i := range wantDown {
		if gotDown[i] != wantDown[i] {
			t.Errorf("Positions()[%d] = %v, want %v", i, gotDown[i], wantDown[i])
		}
	}
}

func TestSlotLength(t *testing.T) {
	s := Slot{Start: 2, End: 7}
	if got := s.Length(); got != 5 {
		t.Errorf("Length() = %d, want 5", got)
	}
}
