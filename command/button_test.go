package command

import "testing"

const (
	idle    = true  // pulled up
	pressed = false // active low
)

func TestButton_SingleEdgePerPress(t *testing.T) {
	b := NewButton(0)
	levels := []bool{idle, idle, pressed, pressed, idle}
	want := []bool{false, false, true, false, false}

	edges := 0
	for i, level := range levels {
		got := b.Update(level)
		if got != want[i] {
			t.Errorf("sample %d: Update(%v) = %v, want %v", i, level, got, want[i])
		}
		if got {
			edges++
		}
	}
	if edges != 1 {
		t.Errorf("edges = %d, want 1", edges)
	}
}

func TestButton_RepeatedPresses(t *testing.T) {
	b := NewButton(0)
	levels := []bool{pressed, idle, pressed, idle, pressed}

	edges := 0
	for _, level := range levels {
		if b.Update(level) {
			edges++
		}
	}
	if edges != 3 {
		t.Errorf("edges = %d, want 3", edges)
	}
}

func TestButton_StateAlwaysOverwritten(t *testing.T) {
	b := NewButton(0)
	b.Update(pressed)
	if !b.Pressed() {
		t.Fatal("Pressed() = false after press")
	}
	b.Update(idle)
	if b.Pressed() {
		t.Fatal("Pressed() = true after release")
	}
}

func TestButton_Debounce(t *testing.T) {
	tests := []struct {
		name   string
		stable int
		levels []bool
		edges  int
	}{
		{"bounce without debounce", 0, []bool{pressed, idle, pressed, idle, pressed}, 3},
		{"bounce filtered", 3, []bool{pressed, idle, pressed, idle, pressed}, 0},
		{"clean press", 3, []bool{pressed, pressed, pressed, pressed}, 1},
		{"press after bounce", 2, []bool{pressed, idle, pressed, pressed, pressed}, 1},
		{"release then press", 2, []bool{pressed, pressed, idle, idle, pressed, pressed}, 2},
		{"short release ignored", 2, []bool{pressed, pressed, idle, pressed, pressed}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewButton(tt.stable)
			edges := 0
			for _, level := range tt.levels {
				if b.Update(level) {
					edges++
				}
			}
			if edges != tt.edges {
				t.Errorf("edges = %d, want %d", edges, tt.edges)
			}
		})
	}
}

func TestButton_Reset(t *testing.T) {
	b := NewButton(0)
	b.Update(pressed)
	b.Reset()
	if !b.Update(pressed) {
		t.Error("Update(pressed) after Reset = false, want edge")
	}
}
