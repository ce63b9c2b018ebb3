package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

var (
	beforeColor = color.NRGBA{R: 33, G: 150, B: 243, A: 220}
	afterColor  = color.NRGBA{R: 244, G: 67, B: 54, A: 220}
	trackColor  = color.NRGBA{R: 128, G: 128, B: 128, A: 60}
)

const (
	barHeight   = 18
	barGap      = 6
	labelWidth  = 56
	barMinWidth = 240
)

// DeformationBar draws the before and after dimensions as two horizontal
// bars on a shared scale, so the shortening of the plate is visible.
type DeformationBar struct {
	widget.BaseWidget
	before string
	after  string
}

func NewDeformationBar() *DeformationBar {
	b := &DeformationBar{}
	b.ExtendBaseWidget(b)
	return b
}

// SetValues replaces the displayed pair. Blank or non-positive values draw
// an empty track.
func (b *DeformationBar) SetValues(before, after string) {
	if b.before == before && b.after == after {
		return
	}
	b.before, b.after = before, after
	b.Refresh()
}

func (b *DeformationBar) CreateRenderer() fyne.WidgetRenderer {
	r := &deformationBarRenderer{bar: b}
	r.before = newBarRow(model.DimensionBefore.Label(), beforeColor)
	r.after = newBarRow(model.DimensionAfter.Label(), afterColor)
	r.objects = append(r.before.objects(), r.after.objects()...)
	r.Refresh()
	return r
}

// barRow is one caption, its background track and the filled bar on top.
type barRow struct {
	caption *canvas.Text
	track   *canvas.Rectangle
	fill    *canvas.Rectangle
	value   *canvas.Text
	length  float64
}

func newBarRow(caption string, fill color.Color) *barRow {
	c := canvas.NewText(caption, theme.Color(theme.ColorNameForeground))
	c.TextSize = 11
	v := canvas.NewText("", color.White)
	v.TextSize = 10
	v.TextStyle = fyne.TextStyle{Bold: true}
	return &barRow{
		caption: c,
		track:   canvas.NewRectangle(trackColor),
		fill:    canvas.NewRectangle(fill),
		value:   v,
	}
}

func (b *barRow) objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{b.caption, b.track, b.fill, b.value}
}

func (b *barRow) layout(y, trackW float32, longest float64) {
	b.caption.Move(fyne.NewPos(0, y+2))
	b.track.Move(fyne.NewPos(labelWidth, y))
	b.track.Resize(fyne.NewSize(trackW, barHeight))

	var w float32
	if b.length > 0 && longest > 0 {
		w = trackW * float32(b.length/longest)
	}
	b.fill.Move(fyne.NewPos(labelWidth, y))
	b.fill.Resize(fyne.NewSize(w, barHeight))
	b.value.Move(fyne.NewPos(labelWidth+4, y+3))
}

func (b *barRow) set(text string) {
	b.length = model.ParseValue(text, 0)
	if b.length > 0 {
		b.value.Text = text + " mm"
	} else {
		b.value.Text = ""
	}
	b.caption.Color = theme.Color(theme.ColorNameForeground)
}

type deformationBarRenderer struct {
	bar     *DeformationBar
	before  *barRow
	after   *barRow
	objects []fyne.CanvasObject
}

func (r *deformationBarRenderer) Layout(size fyne.Size) {
	longest := r.before.length
	if r.after.length > longest {
		longest = r.after.length
	}
	trackW := size.Width - labelWidth
	if trackW < 0 {
		trackW = 0
	}
	r.before.layout(0, trackW, longest)
	r.after.layout(barHeight+barGap, trackW, longest)
}

func (r *deformationBarRenderer) Refresh() {
	r.before.set(r.bar.before)
	r.after.set(r.bar.after)
	r.Layout(r.bar.Size())
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *deformationBarRenderer) Destroy()                     {}
func (r *deformationBarRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *deformationBarRenderer) MinSize() fyne.Size {
	return fyne.NewSize(barMinWidth, 2*barHeight+barGap)
}
