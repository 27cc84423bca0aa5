package data

import "fmt"

// Status reports the outcome of one pull from a Source.
type Status int

const (
	// OK means a fresh sample was produced.
	OK Status = iota
	// Pending means no sample is ready yet, but the source is still live.
	Pending
	// Done means the source is exhausted. Done is sticky: once returned,
	// every later pull returns Done again.
	Done
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Pending:
		return "pending"
	default:
		return "done"
	}
}

// Source is a pull-based adapter over a sequence of numeric samples.
// Each sample is a vector of values; what the values mean is up to the
// plot consuming them (x/y pair, pose, box geometry, bar heights).
type Source interface {
	Next() ([]float64, Status)
}

// Seeker is implemented by sources backed by in-memory data that support
// random access. The window uses it for interactive scrolling.
type Seeker interface {
	// Seek positions the source so the next pull returns sample i,
	// clamped to the valid range.
	Seek(i int)
	// Index returns the index of the next sample to be pulled.
	Index() int
	// Len returns the total number of samples.
	Len() int
}

// SliceSource iterates equal-length columns row by row.
type SliceSource struct {
	cols [][]float64
	idx  int
}

// Columns wraps one or more equal-length float columns as a Source.
// Sample i is the vector of the i-th element of every column.
func Columns(cols ...[]float64) (*SliceSource, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("data: no columns given")
	}
	n := len(cols[0])
	for i, c := range cols[1:] {
		if len(c) != n {
			return nil, fmt.Errorf("data: column %d has %d samples, column 0 has %d", i+1, len(c), n)
		}
	}
	return &SliceSource{cols: cols}, nil
}

// Next returns the current row and advances, or Done past the end.
func (s *SliceSource) Next() ([]float64, Status) {
	if s.idx >= s.Len() {
		return nil, Done
	}
	row := make([]float64, len(s.cols))
	for i, c := range s.cols {
		row[i] = c[s.idx]
	}
	s.idx++
	return row, OK
}

func (s *SliceSource) Seek(i int) {
	if i < 0 {
		i = 0
	}
	if i > s.Len() {
		i = s.Len()
	}
	s.idx = i
}

func (s *SliceSource) Index() int { return s.idx }

func (s *SliceSource) Len() int { return len(s.cols[0]) }

// FuncSource computes n samples on demand.
type FuncSource struct {
	n   int
	idx int
	f   func(i int) []float64
}

// FromFunc wraps a sample generator producing n samples.
func FromFunc(n int, f func(i int) []float64) *FuncSource {
	return &FuncSource{n: n, f: f}
}

func (s *FuncSource) Next() ([]float64, Status) {
	if s.idx >= s.n {
		return nil, Done
	}
	row := s.f(s.idx)
	s.idx++
	return row, OK
}

func (s *FuncSource) Seek(i int) {
	if i < 0 {
		i = 0
	}
	if i > s.n {
		i = s.n
	}
	s.idx = i
}

func (s *FuncSource) Index() int { return s.idx }

func (s *FuncSource) Len() int { return s.n }

// ChannelSource drains samples from a channel without ever blocking the
// caller. While the channel is open but empty it reports Pending.
type ChannelSource struct {
	ch   <-chan []float64
	done bool
}

// Channel wraps a sample channel as a Source. The source reports Done
// once the channel is closed and fully drained.
func Channel(ch <-chan []float64) *ChannelSource {
	return &ChannelSource{ch: ch}
}

func (s *ChannelSource) Next() ([]float64, Status) {
	if s.done {
		return nil, Done
	}
	select {
	case row, ok := <-s.ch:
		if !ok {
			s.done = true
			return nil, Done
		}
		return row, OK
	default:
		return nil, Pending
	}
}
