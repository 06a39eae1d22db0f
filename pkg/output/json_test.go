package output

import (
	"encoding/json"
	"testing"
)

func TestFormatSolution(t *testing.T) {
	got := FormatSolution("AB\nC#")
	want := [][]string{{"A", "B"}, {"C", "#"}}
	if len(got.Grid) != len(want) {
		t.Fatalf("Grid rows = %d, want %d", len(got.Grid), len(want))
	}
	for y := range want {
		for x := range want[y] {
			if got.Grid[y][x] != want[y][x] {
				t.Errorf("Grid[%d][%d] = %q, want %q", y, x, got.Grid[y][x], want[y][x])
			}
		}
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON("..", []string{"AB", "BA"})
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	var result ResultJSON
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if result.Pattern != ".." {
		t.Errorf("Pattern = %q, want \"..\"", result.Pattern)
	}
	if len(result.Solutions) != 2 {
		t.Fatalf("len(Solutions) = %d, want 2", len(result.Solutions))
	}
}

func TestToJSONNoSolutions(t *testing.T) {
	data, err := ToJSON("..", nil)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	var result ResultJSON
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(result.Solutions) != 0 {
		t.Errorf("len(Solutions) = %d, want 0", len(result.Solutions))
	}
}
