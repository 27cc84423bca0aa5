package data

import (
	"bytes"
	"testing"
)

func TestRecorderRoundTripsThroughPlayer(t *testing.T) {
	src, err := Columns([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}

	var buf bytes.Buffer
	rec := NewRecorder(src, &buf)
	for {
		if _, st := rec.Next(); st == Done {
			break
		}
	}

	player, err := NewPlayer(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if player.Len() != 3 {
		t.Fatalf("player has %d frames, want 3", player.Len())
	}
	for i := 0; i < 3; i++ {
		row, st := player.Next()
		if st != OK || row[0] != float64(i+1) || row[1] != float64(i+4) {
			t.Fatalf("frame %d: got %v (%v)", i, row, st)
		}
	}
	if _, st := player.Next(); st != Done {
		t.Fatal("expected Done after replaying all frames")
	}
}

func TestPlayerSkipsMalformedLines(t *testing.T) {
	stream := `{"at":"2026-01-02T15:04:05Z","sample":[1]}
not json at all
{"at":"2026-01-02T15:04:06Z","sample":[2]}
`
	player, err := NewPlayer(bytes.NewReader([]byte(stream)))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if player.Len() != 2 {
		t.Fatalf("player has %d frames, want 2", player.Len())
	}
}

func TestPlayerToleratesTruncatedFinalLine(t *testing.T) {
	stream := `{"sample":[1]}
{"sample":[2]}
{"sample":[3`
	player, err := NewPlayer(bytes.NewReader([]byte(stream)))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if player.Len() != 2 {
		t.Fatalf("player has %d frames, want 2 from the complete lines", player.Len())
	}
	row, st := player.Next()
	if st != OK || row[0] != 1 {
		t.Fatalf("first frame: got %v (%v)", row, st)
	}
}

func TestPlayerSeek(t *testing.T) {
	stream := `{"sample":[0]}
{"sample":[1]}
{"sample":[2]}
`
	player, err := NewPlayer(bytes.NewReader([]byte(stream)))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	player.Seek(2)
	row, st := player.Next()
	if st != OK || row[0] != 2 {
		t.Fatalf("after Seek(2): got %v (%v)", row, st)
	}

	player.Seek(-1)
	if player.Index() != 0 {
		t.Fatalf("Seek(-1): index %d, want 0", player.Index())
	}
}
