package data

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FollowSource tails a growing text file of numeric samples, one sample
// per line with whitespace or comma separated values. Appended lines
// become samples; pulls never block. Lines that fail to parse are skipped.
type FollowSource struct {
	inner   *ChannelSource
	ch      chan []float64
	watcher *fsnotify.Watcher
	file    *os.File
	carry   []byte
}

// Follow starts tailing path. Lines already present in the file are
// queued immediately; new lines arrive as the file grows. Close releases
// the watch and exhausts the source.
func Follow(path string) (*FollowSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data: follow %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("data: follow %s: %w", path, err)
	}
	if err := w.Add(path); err != nil {
		f.Close()
		w.Close()
		return nil, fmt.Errorf("data: follow %s: %w", path, err)
	}

	s := &FollowSource{
		ch:      make(chan []float64, 1024),
		watcher: w,
		file:    f,
	}
	s.inner = Channel(s.ch)
	s.drain()
	go s.watch()
	return s, nil
}

// Next returns the oldest queued sample, Pending when the file has not
// grown, and Done once the source is closed and drained.
func (s *FollowSource) Next() ([]float64, Status) {
	return s.inner.Next()
}

// Close stops watching the file. Samples already queued remain readable;
// after they drain the source reports Done.
func (s *FollowSource) Close() error {
	return s.watcher.Close()
}

// watch forwards appended lines until the watcher is closed.
func (s *FollowSource) watch() {
	defer s.file.Close()
	defer close(s.ch)
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) {
				s.drain()
			}
		case _, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// drain reads everything appended since the last read and queues complete
// lines. A trailing partial line is carried over to the next drain.
func (s *FollowSource) drain() {
	buf := make([]byte, 64*1024)
	for {
		n, err := s.file.Read(buf)
		if n > 0 {
			s.carry = append(s.carry, buf[:n]...)
		}
		if err == io.EOF || n == 0 {
			break
		}
		if err != nil {
			return
		}
	}
	for {
		nl := strings.IndexByte(string(s.carry), '\n')
		if nl < 0 {
			return
		}
		line := string(s.carry[:nl])
		s.carry = s.carry[nl+1:]
		if row, ok := parseSampleLine(line); ok {
			select {
			case s.ch <- row:
			default:
				// Queue full: drop the sample rather than block the watcher.
			}
		}
	}
}

// parseSampleLine parses one whitespace/comma separated line of floats.
func parseSampleLine(line string) ([]float64, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) == 0 {
		return nil, false
	}
	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		row = append(row, v)
	}
	return row, true
}
