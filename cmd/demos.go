package cmd

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/plot"
	"github.com/dynamicdesignlab/liveterm/render"
	"github.com/dynamicdesignlab/liveterm/window"
)

// scene is a built demo: the window to run interactively plus the flat
// plot list for headless export.
type scene struct {
	win   *window.Window
	plots []plot.LivePlot
}

// buildScene assembles the requested demo. src, when non-nil, replaces
// the line demo's generated samples (replay mode); rec, when non-nil,
// tees the line demo's samples to it (record mode).
func buildScene(cfg Config, src data.Source, rec io.Writer) (*scene, error) {
	win := window.New("liveterm", window.WithInterval(cfg.Interval))
	s := &scene{win: win}

	var err error
	switch cfg.Demo {
	case "line":
		err = s.addLineTab(src, rec)
	case "comet":
		err = s.addCometTab()
	case "rectangle":
		err = s.addRectangleTab()
	case "vehicle":
		err = s.addVehicleTab()
	case "image":
		err = s.addImageTab()
	case "stackbar":
		err = s.addStackBarTab()
	case "dashboard":
		if err = s.addLineTab(nil, nil); err == nil {
			if err = s.addCometTab(); err == nil {
				err = s.addVehicleTab()
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *scene) register(t *window.Tab, plots ...plot.LivePlot) error {
	for _, p := range plots {
		if err := t.RegisterPlot(p); err != nil {
			return err
		}
		s.plots = append(s.plots, p)
	}
	return s.win.RegisterTab(t)
}

// addLineTab shows a marker and a time cursor sweeping a sine trace.
func (s *scene) addLineTab(src data.Source, rec io.Writer) error {
	const n = 400
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * 0.05
		ys[i] = math.Sin(xs[i])
	}

	t := window.NewTab("line")
	ax, err := t.AddAxis(1, 1, 1, render.WithTitle("sin(x)"))
	if err != nil {
		return err
	}
	if err := ax.Plot(xs, ys); err != nil {
		return err
	}

	var line *plot.Line
	if src != nil {
		line, err = plot.NewLineSource(ax, src)
	} else if rec != nil {
		cols, cerr := data.Columns(xs, ys)
		if cerr != nil {
			return cerr
		}
		line, err = plot.NewLineSource(ax, data.NewRecorder(cols, rec))
	} else {
		line, err = plot.NewLine(ax, xs, ys)
	}
	if err != nil {
		return err
	}

	cursor, err := plot.NewVLine(ax, xs)
	if err != nil {
		return err
	}
	return s.register(t, line, cursor)
}

// addCometTab grows a spiral one sample at a time.
func (s *scene) addCometTab() error {
	const n = 300
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		th := float64(i) * 0.08
		r := 0.2 + th*0.35
		xs[i] = r * math.Cos(th)
		ys[i] = r * math.Sin(th)
	}

	t := window.NewTab("comet")
	ax, err := t.AddAxis(1, 1, 1, render.WithTitle("spiral"))
	if err != nil {
		return err
	}
	comet, err := plot.NewComet(ax, xs, ys)
	if err != nil {
		return err
	}
	return s.register(t, comet)
}

// addRectangleTab pulses a box around a circular orbit.
func (s *scene) addRectangleTab() error {
	const n = 240
	xs := make([]float64, n)
	ys := make([]float64, n)
	ws := make([]float64, n)
	hs := make([]float64, n)
	for i := range xs {
		th := float64(i) * 2 * math.Pi / n
		xs[i] = 4 * math.Cos(th)
		ys[i] = 4 * math.Sin(th)
		ws[i] = 1.5 + math.Sin(th*3)
		hs[i] = 1.0 + 0.5*math.Cos(th*2)
	}

	t := window.NewTab("rectangle")
	ax, err := t.AddAxis(1, 1, 1, render.WithTitle("orbit"))
	if err != nil {
		return err
	}
	rect, err := plot.NewRectangle(ax, xs, ys, ws, hs)
	if err != nil {
		return err
	}
	return s.register(t, rect)
}

// addVehicleTab drives a car around a figure eight with a comet trail.
func (s *scene) addVehicleTab() error {
	const n = 500
	xs := make([]float64, n)
	ys := make([]float64, n)
	heading := make([]float64, n)
	steering := make([]float64, n)
	for i := range xs {
		th := float64(i) * 2 * math.Pi / n
		xs[i] = 12 * math.Sin(th)
		ys[i] = 8 * math.Sin(2*th)
	}
	for i := range xs {
		j := (i + 1) % n
		// Heading 0 points up the y axis, so measure from +y.
		heading[i] = math.Atan2(-(xs[j] - xs[i]), ys[j]-ys[i]) * 180 / math.Pi
		steering[i] = 20 * math.Sin(float64(i)*0.1)
	}

	t := window.NewTab("vehicle")
	ax, err := t.AddAxis(1, 1, 1, render.WithTitle("figure eight"))
	if err != nil {
		return err
	}
	trail, err := plot.NewComet(ax, xs, ys)
	if err != nil {
		return err
	}
	veh, err := plot.NewVehicle(ax, xs, ys, heading, steering, plot.VehicleConfig{})
	if err != nil {
		return err
	}
	return s.register(t, trail, veh)
}

// addImageTab cycles generated gradient frames.
func (s *scene) addImageTab() error {
	const frames = 60
	imgs := make([]image.Image, frames)
	for f := range imgs {
		img := image.NewRGBA(image.Rect(0, 0, 64, 64))
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				phase := float64(f) * 2 * math.Pi / frames
				v := uint8(127 + 127*math.Sin(float64(x+y)/10+phase))
				img.Set(x, y, color.RGBA{R: v, G: 64, B: 255 - v, A: 255})
			}
		}
		imgs[f] = img
	}

	t := window.NewTab("image")
	ax, err := t.AddAxis(1, 1, 1, render.WithTitle("frames"))
	if err != nil {
		return err
	}
	img, err := plot.NewImageFrames(ax, imgs, render.Bounds{XMin: 0, XMax: 10, YMin: 0, YMax: 10})
	if err != nil {
		return err
	}
	return s.register(t, img)
}

// addStackBarTab stacks three phased waves, one bar per tick.
func (s *scene) addStackBarTab() error {
	const n = 80
	layers := make([][]float64, 3)
	for l := range layers {
		layers[l] = make([]float64, n)
		for i := range layers[l] {
			layers[l][i] = 2 + math.Sin(float64(i)*0.2+float64(l))
		}
	}

	t := window.NewTab("stackbar")
	ax, err := t.AddAxis(1, 1, 1, render.WithTitle("stacked"))
	if err != nil {
		return err
	}
	sb, err := plot.NewStackBar(ax, layers...)
	if err != nil {
		return err
	}
	return s.register(t, sb)
}
