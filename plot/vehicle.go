package plot

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/render"
)

// VehicleConfig controls the drawn proportions of a vehicle, in axis
// units. Zero values fall back to DefaultVehicleConfig.
type VehicleConfig struct {
	BodyWidth  float64
	BodyLength float64
	TireWidth  float64
	TireLength float64
}

// DefaultVehicleConfig mirrors a compact car footprint.
func DefaultVehicleConfig() VehicleConfig {
	return VehicleConfig{
		BodyWidth:  2.0,
		BodyLength: 4.5,
		TireWidth:  0.2,
		TireLength: 1.125,
	}
}

// tireMounts places the four tires in the vehicle frame: longitudinal
// offset along the body length, lateral across the width, and whether
// the tire steers. Heading 0 points along positive y.
type tireMount struct {
	long, lat float64
	steers    bool
}

// Vehicle draws a top-down car: body outline plus four tires, following
// an x/y/heading/steering pose stream. Heading and steering are degrees
// counter-clockwise; heading 0 points up the y axis and steering is
// relative to the heading.
type Vehicle struct {
	base
	cfg        VehicleConfig
	bodyStyle  lipgloss.Style
	tireStyle  lipgloss.Style
	mounts     [4]tireMount
	pose       Point
	heading    float64
	steering   float64
	has        bool
}

// NewVehicle binds a vehicle to ax. All four streams must have the same
// length.
func NewVehicle(ax *render.Axis, xs, ys, headingDeg, steeringDeg []float64, cfg VehicleConfig) (*Vehicle, error) {
	if err := sameLen(KindVehicle,
		[]string{"x", "y", "heading", "steering"},
		[]int{len(xs), len(ys), len(headingDeg), len(steeringDeg)}); err != nil {
		return nil, err
	}
	if cfg == (VehicleConfig{}) {
		cfg = DefaultVehicleConfig()
	}
	src, err := data.Columns(xs, ys, headingDeg, steeringDeg)
	if err != nil {
		return nil, configErrf(KindVehicle, "%v", err)
	}
	b, cerr := newBase(KindVehicle, ax, src)
	if cerr != nil {
		return nil, cerr
	}
	long := cfg.BodyLength/2 - cfg.TireLength/2
	lat := cfg.BodyWidth/2 - cfg.TireWidth
	p := &Vehicle{
		base:      b,
		cfg:       cfg,
		bodyStyle: render.SeriesStyle(0),
		tireStyle: render.DimStyle,
		mounts: [4]tireMount{
			{long: long, lat: -lat, steers: true},
			{long: long, lat: lat, steers: true},
			{long: -long, lat: -lat},
			{long: -long, lat: lat},
		},
	}
	p.base.apply = p.applySample
	p.seedBounds(xs, ys)
	return p, nil
}

// SetStyles overrides the body and tire styles.
func (p *Vehicle) SetStyles(body, tire lipgloss.Style) {
	p.bodyStyle, p.tireStyle = body, tire
}

func (p *Vehicle) applySample(row []float64) error {
	if len(row) < 4 {
		return configErrf(KindVehicle, "sample has %d values, need x, y, heading, steering", len(row))
	}
	p.pose = Point{row[0], row[1]}
	p.heading = row[2]
	p.steering = row[3]
	p.has = true
	p.include(p.pose)
	return nil
}

func (p *Vehicle) State() State {
	st := State{Kind: KindVehicle, Index: p.idx, Exhausted: p.exhausted}
	if p.has {
		st.Points = []Point{p.pose}
		st.Box = Box{X: p.pose.X, Y: p.pose.Y, W: p.cfg.BodyWidth, H: p.cfg.BodyLength, AngleDeg: p.heading}
	}
	return st
}

func (p *Vehicle) Render(ctx *render.Context) {
	if !p.has {
		return
	}
	drawBox(ctx, Box{
		X: p.pose.X, Y: p.pose.Y,
		W: p.cfg.BodyWidth, H: p.cfg.BodyLength,
		AngleDeg: p.heading,
	}, p.bodyStyle)

	sin, cos := math.Sincos(p.heading * math.Pi / 180)
	for _, m := range p.mounts {
		angle := p.heading
		if m.steers {
			angle += p.steering
		}
		drawBox(ctx, Box{
			X:        p.pose.X + m.lat*cos - m.long*sin,
			Y:        p.pose.Y + m.lat*sin + m.long*cos,
			W:        p.cfg.TireWidth,
			H:        p.cfg.TireLength,
			AngleDeg: angle,
		}, p.tireStyle)
	}
}
