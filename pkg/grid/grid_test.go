package grid

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"all free cells", "...\n...\n...", false},
		{"asymmetrical rows", "...\n..", true},
		{"invalid character", "___", true},
		{"blocks and letters", ".#.\n...\n..#", false},
		{"empty input", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestGridDimensions(t *testing.T) {
	g, err := New("...\n...")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := g.RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}
	if got := g.ColCount(); got != 3 {
		t.Errorf("ColCount() = %d, want 3", got)
	}
}

func TestLetterAt(t *testing.T) {
	g, err := New("A#.\n...")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := g.LetterAt(0, 0); got != 'A' {
		t.Errorf("LetterAt(0,0) = %q, want 'A'", got)
	}
	if got := g.LetterAt(0, 1); got != Block {
		t.Errorf("LetterAt(0,1) = %q, want Block", got)
	}
	if got := g.LetterAt(0, 2); got != Empty {
		t.Errorf("LetterAt(0,2) = %q, want Empty", got)
	}
}
