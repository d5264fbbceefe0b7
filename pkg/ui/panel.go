package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelHeight   = 15.0
	scrollStep    = 20.0
)

// Widget is implemented by everything a Panel can hold.
type Widget interface {
	Update(in Input)
	Draw(screen *ebiten.Image)
}

type entry struct {
	widget  Widget
	label   func() string
	height  float64
	section int
}

// PanelSection groups consecutive widgets under a header.
type PanelSection struct {
	Title string
}

// Panel lays widgets out in a scrollable column.
type Panel struct {
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Title         string
	ScrollOffset  float64 // Current scroll position

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	entries  []entry
	sections []PanelSection
}

// NewPanel creates a new UI panel
func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection starts a new group, the following widgets belong to it.
func (p *Panel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{Title: title})
}

func (p *Panel) add(w Widget, label func() string, height float64) {
	p.entries = append(p.entries, entry{widget: w, label: label, height: height, section: len(p.sections) - 1})
	p.layout()
}

// AddSlider adds a slider widget to the panel
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(s, s.Text, labelHeight+s.H+10)
	return s
}

// AddCheckbox adds a checkbox widget to the panel
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(c, func() string { return label }, labelHeight+c.Size+5)
	return c
}

// AddButton adds a full width button to the panel
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 22, label, onClick)
	p.add(b, nil, b.Height+8)
	return b
}

// ContentHeight is the height of everything in the panel, visible or not.
func (p *Panel) ContentHeight() float64 {
	h := titleHeight + float64(len(p.sections))*sectionHeight
	for _, e := range p.entries {
		h += e.height
	}
	return h
}

// layout places every widget for the current scroll offset.
func (p *Panel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	section := -1
	for _, e := range p.entries {
		for section < e.section {
			section++
			y += sectionHeight
		}
		top := y
		if e.label != nil {
			top += labelHeight
		}
		switch w := e.widget.(type) {
		case *Slider:
			w.Y = top
		case *Checkbox:
			w.Y = top
		case *Button:
			w.Y = top
		}
		y += e.height
	}
}

func (p *Panel) visible(top, bottom float64) bool {
	return top >= p.Y+titleHeight-sectionHeight && bottom <= p.Y+p.Height
}

// Update handles scrolling then input for the visible widgets.
func (p *Panel) Update(in Input) {
	if in.Wheel != 0 && in.Inside(p.X, p.Y, p.Width, p.Height) {
		p.ScrollOffset -= in.Wheel * scrollStep

		// Clamp scroll
		maxScroll := max(p.ContentHeight()-p.Height+40, 0)
		p.ScrollOffset = max(0, min(maxScroll, p.ScrollOffset))
		p.layout()
	}

	hidden := Input{X: in.X, Y: in.Y}
	for _, e := range p.entries {
		if p.visible(p.widgetTop(e), p.widgetTop(e)+e.height) {
			e.widget.Update(in)
		} else {
			e.widget.Update(hidden)
		}
	}
}

func (p *Panel) widgetTop(e entry) float64 {
	var y float64
	switch w := e.widget.(type) {
	case *Slider:
		y = w.Y
	case *Checkbox:
		y = w.Y
	case *Button:
		y = w.Y
	}
	if e.label != nil {
		y -= labelHeight
	}
	return y
}

// Draw renders the panel and all widgets
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	section := -1
	for _, e := range p.entries {
		top := p.widgetTop(e)
		for section < e.section {
			section++
			header := top - sectionHeight
			if p.visible(header, top) {
				vector.FillRect(screen,
					float32(p.X+5), float32(header),
					float32(p.Width-10), 20,
					color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
				ebitenutil.DebugPrintAt(screen, p.sections[section].Title, int(p.X+10), int(header+5))
			}
		}
		if !p.visible(top, top+e.height) {
			continue
		}
		if e.label != nil {
			ebitenutil.DebugPrintAt(screen, e.label(), int(p.X+10), int(top))
		}
		e.widget.Draw(screen)
	}
}
