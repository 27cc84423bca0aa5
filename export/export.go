// Package export renders live plot state to PNG files with gonum/plot,
// turning an animation into a numbered frame sequence that tools like
// ffmpeg can assemble into a movie.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/dynamicdesignlab/liveterm/plot"
	"github.com/dynamicdesignlab/liveterm/render"
)

// Options controls frame rendering.
type Options struct {
	// Dir receives the frame files, named frame-0001.png onward.
	Dir string
	// Width and Height of each frame in inches; zero means 8x6.
	Width, Height float64
	// MaxFrames caps the sequence; zero means run until every plot is
	// exhausted.
	MaxFrames int
	// Progress, when non-nil, receives one line per rendered frame.
	Progress io.Writer
	// Bounds pins the frame axes; zero value means autoscale from the
	// plots' data bounds.
	Bounds render.Bounds
}

// Animate steps the given plots one sample per frame and writes each
// frame as a PNG until every plot is exhausted. All plots are assumed to
// share a timebase, like the interactive tabs.
func Animate(opts Options, plots ...plot.LivePlot) error {
	if len(plots) == 0 {
		return fmt.Errorf("export: no plots to animate")
	}
	if opts.Dir == "" {
		return fmt.Errorf("export: no output directory")
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	frame := 0
	for {
		live := 0
		for _, p := range plots {
			before := p.State().Index
			st, err := p.Advance()
			if err != nil {
				continue
			}
			// Only a consumed sample counts as progress; a pending-only
			// tick would repeat the same frame forever.
			if st == plot.Updated && p.State().Index > before {
				live++
			}
		}
		if live == 0 {
			break
		}
		frame++
		path := filepath.Join(opts.Dir, fmt.Sprintf("frame-%04d.png", frame))
		if err := SaveFrame(path, opts, plots...); err != nil {
			return err
		}
		if opts.Progress != nil {
			fmt.Fprintf(opts.Progress, "rendered %s\n", path)
		}
		if opts.MaxFrames > 0 && frame >= opts.MaxFrames {
			break
		}
	}
	return nil
}

// SaveFrame renders the plots' current drawable state into one PNG.
func SaveFrame(path string, opts Options, plots ...plot.LivePlot) error {
	p := gplot.New()
	p.Title.Text = filepath.Base(path)

	if opts.Bounds != (render.Bounds{}) {
		p.X.Min, p.X.Max = opts.Bounds.XMin, opts.Bounds.XMax
		p.Y.Min, p.Y.Max = opts.Bounds.YMin, opts.Bounds.YMax
	} else {
		for _, lp := range plots {
			if b, ok := lp.DataBounds(); ok {
				if p.X.Min == p.X.Max {
					p.X.Min, p.X.Max = b.XMin, b.XMax
					p.Y.Min, p.Y.Max = b.YMin, b.YMax
				} else {
					p.X.Min = min(p.X.Min, b.XMin)
					p.X.Max = max(p.X.Max, b.XMax)
					p.Y.Min = min(p.Y.Min, b.YMin)
					p.Y.Max = max(p.Y.Max, b.YMax)
				}
			}
		}
	}

	for _, lp := range plots {
		if err := addState(p, lp.State()); err != nil {
			return fmt.Errorf("export: %s plot %s: %w", lp.Kind(), lp.ID(), err)
		}
	}

	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 8
	}
	if h <= 0 {
		h = 6
	}
	if err := p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// addState maps one plot's tagged drawable state onto gonum plotters.
func addState(p *gplot.Plot, st plot.State) error {
	if st.Frame != nil {
		c := st.Box
		img := plotter.NewImage(st.Frame, c.X-c.W/2, c.Y-c.H/2, c.X+c.W/2, c.Y+c.H/2)
		p.Add(img)
		return nil
	}
	if st.Box.W > 0 && st.Box.H > 0 {
		corners := st.Box.Corners()
		xys := make(plotter.XYs, 4)
		for i, c := range corners {
			xys[i] = plotter.XY{X: c.X, Y: c.Y}
		}
		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return err
		}
		p.Add(poly)
	}
	if len(st.Trail) > 1 {
		xys := make(plotter.XYs, len(st.Trail))
		for i, pt := range st.Trail {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		p.Add(line)
	}
	if len(st.Points) > 0 {
		xys := make(plotter.XYs, len(st.Points))
		for i, pt := range st.Points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		p.Add(sc)
	}
	if len(st.Bars) > 0 {
		// One stacked bar at the current sample index.
		var y float64
		for _, h := range st.Bars {
			x := float64(st.Index - 1)
			xys := plotter.XYs{
				{X: x, Y: y}, {X: x + 1, Y: y},
				{X: x + 1, Y: y + h}, {X: x, Y: y + h},
			}
			poly, err := plotter.NewPolygon(xys)
			if err != nil {
				return err
			}
			p.Add(poly)
			y += h
		}
	}
	return nil
}
