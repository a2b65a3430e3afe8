package chart

import (
	"errors"
	"fmt"
	"os"

	"github.com/pplcc/plotext"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gamma-omg/paper-trader/internal/market"
)

// Chart renders one or more mock price series as stacked line panels sharing
// an X axis. It exists for eyeballing data files, not for the serving path.
type Chart struct {
	plots   []*plot.Plot
	heights []float64
	w       int
	h       int
}

func New(w, h int) *Chart {
	return &Chart{w: w, h: h}
}

func (c *Chart) AddSeries(title string, prices []market.PricePoint) error {
	xys := make(plotter.XYs, len(prices))
	for i, pt := range prices {
		xys[i].X = float64(i)
		xys[i].Y = pt.Price.InexactFloat64()
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to build price line for %s: %w", title, err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "price"
	p.Add(line)

	c.plots = append(c.plots, p)
	c.heights = append(c.heights, 1)
	return nil
}

func (c *Chart) Save(path string) (err error) {
	if len(c.plots) == 0 {
		return errors.New("no series to plot")
	}

	var axis []*plot.Axis
	for _, p := range c.plots {
		axis = append(axis, &p.X)
	}
	plotext.UniteAxisRanges(axis)

	tbl := plotext.Table{
		RowHeights: c.heights,
		ColWidths:  []float64{1},
	}

	var plots2d [][]*plot.Plot
	for _, p := range c.plots {
		plots2d = append(plots2d, []*plot.Plot{p})
	}

	img := vgimg.New(vg.Points(float64(c.w)), vg.Points(float64(c.h*len(c.plots))))
	dc := draw.New(img)

	canvases := tbl.Align(plots2d, dc)
	for i, p := range c.plots {
		p.Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close plot file: %w", cerr))
		}
	}()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write plot to file: %w", err)
	}

	return nil
}
