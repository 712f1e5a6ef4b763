package broadcast

import (
	"fmt"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dkovacs/asciivid/internal/ascii"
	"github.com/dkovacs/asciivid/internal/encoder"
)

func testFrame() *ascii.Frame {
	f := &ascii.Frame{Width: 3, Height: 2, Cells: make([]ascii.Cell, 6)}
	for i := range f.Cells {
		f.Cells[i] = ascii.Cell{Char: '#', Color: color.RGBA{R: 255, A: 255}}
	}
	return f
}

func TestPublishWithoutViewers(t *testing.T) {
	s := NewServer(encoder.NewANSIEncoder())
	// No Start: Publish with no clients must be a no-op.
	s.Publish(testFrame())
}

func TestViewerReceivesFrames(t *testing.T) {
	s := NewServer(encoder.NewANSIEncoder())
	if err := s.Start("127.0.0.1:0"); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Close()

	url := fmt.Sprintf("ws://%s/watch", s.Addr())
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Registration races the dial returning; publish until a frame lands.
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.Publish(testFrame())
			}
		}
	}()
	defer close(done)

	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	msg := string(data)
	if !strings.HasPrefix(msg, "\x1b[H") {
		t.Fatalf("frame does not start with cursor home: %q", msg)
	}
	if !strings.Contains(msg, "###") {
		t.Fatalf("frame characters missing: %q", msg)
	}
}
