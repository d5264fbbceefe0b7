package ui

import (
	"testing"
)

func TestSlider_Update(t *testing.T) {
	s := NewSlider(10, 20, 100, "Align", 0, 4, 1)
	if s.Changed() {
		t.Error("a new slider should not report a change")
	}

	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{"Released over the bar keeps value", Input{X: 60, Y: 25}, 1},
		{"Press in the middle", Input{X: 60, Y: 25, Pressed: true}, 2},
		{"Press on the right edge", Input{X: 110, Y: 25, Pressed: true}, 4},
		{"Press outside is ignored", Input{X: 300, Y: 25, Pressed: true}, 4},
		{"Press on the left edge", Input{X: 10, Y: 30, Pressed: true}, 0},
	}
	for _, tt := range tests {
		s.Update(tt.in)
		if s.Value != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, s.Value)
		}
	}
	if !s.Changed() || s.Changed() {
		t.Error("Changed should fire once after moves")
	}
}

func TestSlider_SetClamps(t *testing.T) {
	s := NewSlider(0, 0, 100, "Radius", 1, 20, 50)
	if s.Value != 20 {
		t.Errorf("Expected initial value clamped to 20, got %v", s.Value)
	}
	s.Set(-3)
	if s.Value != 1 {
		t.Errorf("Expected 1, got %v", s.Value)
	}
	if got := s.Text(); got != "Radius: 1.00" {
		t.Errorf("Unexpected text %q", got)
	}
}

func TestCheckbox_TogglesOncePerPress(t *testing.T) {
	c := NewCheckbox(0, 0, "FOV", false)
	press := Input{X: 5, Y: 5, Pressed: true}

	c.Update(press)
	c.Update(press) // still held
	if !c.Value {
		t.Fatal("Expected checkbox to be checked after one press")
	}
	c.Update(Input{X: 5, Y: 5})
	c.Update(press)
	if c.Value {
		t.Error("Expected second press to uncheck")
	}
	if !c.Changed() || c.Changed() {
		t.Error("Changed should fire once")
	}
}

func TestButton_ClickOnce(t *testing.T) {
	clicks := 0
	b := NewButton(0, 0, 50, 20, "Reset", func() { clicks++ })
	b.Update(Input{X: 10, Y: 10, Pressed: true})
	b.Update(Input{X: 10, Y: 10, Pressed: true})
	b.Update(Input{X: 10, Y: 10})
	b.Update(Input{X: 10, Y: 10, Pressed: true})
	b.Update(Input{X: 80, Y: 10, Pressed: true})
	if clicks != 2 {
		t.Errorf("Expected 2 clicks, got %d", clicks)
	}
}

func TestPanel_LayoutAndScroll(t *testing.T) {
	p := NewPanel(0, 0, 200, 150, "Tuning")
	p.AddSection("Weights")
	first := p.AddSlider("Align", 0, 4, 1)
	second := p.AddSlider("Cohere", 0, 4, 2)
	p.AddSection("Options")
	box := p.AddCheckbox("FOV", false)
	for i := 0; i < 6; i++ {
		p.AddSlider("Extra", 0, 1, 0)
	}

	if !(first.Y < second.Y && second.Y < box.Y) {
		t.Fatalf("Widgets are not stacked: %v %v %v", first.Y, second.Y, box.Y)
	}
	if first.Y != titleHeight+sectionHeight+labelHeight {
		t.Errorf("Unexpected first slider position %v", first.Y)
	}

	before := first.Y
	p.Update(Input{X: 50, Y: 50, Wheel: -2})
	if p.ScrollOffset != 2*scrollStep {
		t.Errorf("Expected scroll offset %v, got %v", 2*scrollStep, p.ScrollOffset)
	}
	if first.Y != before-2*scrollStep {
		t.Errorf("Expected widgets to move up with the scroll, got %v", first.Y)
	}

	p.Update(Input{X: 50, Y: 50, Wheel: 100})
	if p.ScrollOffset != 0 {
		t.Errorf("Expected scroll clamped to 0, got %v", p.ScrollOffset)
	}

	// clicking the middle of a visible slider through the panel
	p.Update(Input{X: first.X + first.W/2, Y: first.Y + 1, Pressed: true})
	if first.Value != 2 {
		t.Errorf("Expected 2, got %v", first.Value)
	}
}
