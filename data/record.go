package data

import (
	"bufio"
	"encoding/json"
	"io"
	"time"
)

// recordFrame is one sample frame written to disk.
type recordFrame struct {
	At     time.Time `json:"at"`
	Sample []float64 `json:"sample"`
}

// Recorder wraps a source and records every pulled sample to a writer as
// JSON lines, so a session can be replayed later with a Player.
type Recorder struct {
	inner  Source
	writer *json.Encoder
}

// NewRecorder creates a recorder that tees src's samples to w.
func NewRecorder(src Source, w io.Writer) *Recorder {
	return &Recorder{inner: src, writer: json.NewEncoder(w)}
}

// Next pulls from the wrapped source and records fresh samples.
// Encode errors do not fail the pull; a lost frame is better than a
// stalled tick.
func (r *Recorder) Next() ([]float64, Status) {
	row, st := r.inner.Next()
	if st == OK {
		_ = r.writer.Encode(recordFrame{At: time.Now(), Sample: row})
	}
	return row, st
}

// Player replays recorded frames as a seekable source.
type Player struct {
	frames []recordFrame
	idx    int
}

// NewPlayer reads all frames from a recorded JSON-lines stream.
// Malformed lines are skipped so a truncated recording still replays.
func NewPlayer(r io.Reader) (*Player, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var frames []recordFrame
	for sc.Scan() {
		var f recordFrame
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			continue
		}
		frames = append(frames, f)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Player{frames: frames}, nil
}

func (p *Player) Next() ([]float64, Status) {
	if p.idx >= len(p.frames) {
		return nil, Done
	}
	row := p.frames[p.idx].Sample
	p.idx++
	return row, OK
}

func (p *Player) Seek(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(p.frames) {
		i = len(p.frames)
	}
	p.idx = i
}

func (p *Player) Index() int { return p.idx }

func (p *Player) Len() int { return len(p.frames) }
