package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
)

// NewProfitTab returns the cumulative profit graph.
func NewProfitTab(r *stats.Report) fyne.CanvasObject {
	if r == nil || len(r.ProfitHistory) == 0 {
		return newEmptyState("No hands imported yet.")
	}

	final := r.ProfitHistory[len(r.ProfitHistory)-1].Profit
	summary := widget.NewLabelWithStyle(
		"Cumulative Profit: "+formatMoney(final),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)

	graph := newProfitGraph(r.ProfitHistory)
	return container.NewBorder(container.NewPadded(summary), nil, nil, nil, graph)
}

// profitGraph draws the profit history as a polyline with a zero baseline.
type profitGraph struct {
	widget.BaseWidget
	points []stats.ProfitPoint
}

func newProfitGraph(points []stats.ProfitPoint) *profitGraph {
	g := &profitGraph{points: points}
	g.ExtendBaseWidget(g)
	return g
}

func (g *profitGraph) CreateRenderer() fyne.WidgetRenderer {
	return &profitGraphRenderer{graph: g}
}

type profitGraphRenderer struct {
	graph    *profitGraph
	segments []*canvas.Line
	baseline *canvas.Line
	size     fyne.Size
}

func (r *profitGraphRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 200)
}

func (r *profitGraphRenderer) Layout(size fyne.Size) {
	r.size = size
	r.rebuild()
}

func (r *profitGraphRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.graph)
}

func (r *profitGraphRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.segments)+1)
	if r.baseline != nil {
		objs = append(objs, r.baseline)
	}
	for _, seg := range r.segments {
		objs = append(objs, seg)
	}
	return objs
}

func (r *profitGraphRenderer) Destroy() {}

// rebuild recomputes the line segments for the current size.
func (r *profitGraphRenderer) rebuild() {
	points := r.graph.points
	if len(points) == 0 || r.size.Width <= 0 || r.size.Height <= 0 {
		r.segments = nil
		r.baseline = nil
		return
	}

	minProfit, maxProfit := int64(0), int64(0)
	for _, p := range points {
		if p.Profit < minProfit {
			minProfit = p.Profit
		}
		if p.Profit > maxProfit {
			maxProfit = p.Profit
		}
	}
	span := maxProfit - minProfit
	if span == 0 {
		span = 1
	}

	const pad float32 = 12
	width := r.size.Width - 2*pad
	height := r.size.Height - 2*pad

	toPos := func(i int, profit int64) fyne.Position {
		var x float32
		if len(points) > 1 {
			x = pad + width*float32(i)/float32(len(points)-1)
		} else {
			x = pad
		}
		y := pad + height*(1-float32(profit-minProfit)/float32(span))
		return fyne.NewPos(x, y)
	}

	zero := toPos(0, 0)
	r.baseline = canvas.NewLine(uiGridColor)
	r.baseline.Position1 = fyne.NewPos(pad, zero.Y)
	r.baseline.Position2 = fyne.NewPos(pad+width, zero.Y)

	lineColor := lineColorFor(points[len(points)-1].Profit)
	r.segments = make([]*canvas.Line, 0, len(points))
	prev := toPos(0, points[0].Profit)
	for i := 1; i < len(points); i++ {
		cur := toPos(i, points[i].Profit)
		seg := canvas.NewLine(lineColor)
		seg.StrokeWidth = 2
		seg.Position1 = prev
		seg.Position2 = cur
		r.segments = append(r.segments, seg)
		prev = cur
	}
	if len(points) == 1 {
		seg := canvas.NewLine(lineColor)
		seg.StrokeWidth = 2
		seg.Position1 = prev
		seg.Position2 = fyne.NewPos(prev.X+1, prev.Y)
		r.segments = append(r.segments, seg)
	}
}

func lineColorFor(profit int64) color.Color {
	if profit < 0 {
		return uiLossColor
	}
	return uiProfitColor
}
