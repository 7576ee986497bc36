package server

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"cellshade/internal/shade"
	"cellshade/internal/universe"
)

var testColors = shade.ColorPair{
	Alive: shade.RGBA{R: 1, G: 1, B: 1, A: 1},
	Dead:  shade.RGBA{R: 0, G: 0, B: 0, A: 1},
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	world := universe.NewWorld()
	world.SetCell(0, 0, true)
	s := New(world, testColors, 2, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestServeFrame(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/frame.png")
	if err != nil {
		t.Fatalf("get frame: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	// One chunk at scale 2.
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 128 || h != 128 {
		t.Fatalf("frame is %dx%d, want 128x128", w, h)
	}
}

func TestServeIndex(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get index: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "/ws") {
		t.Fatal("index page does not reference the websocket endpoint")
	}

	resp2, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("get unknown path: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown path status = %d, want 404", resp2.StatusCode)
	}
}

func TestWebsocketReceivesSeedFrame(t *testing.T) {
	_, ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()

	if err := ws.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	kind, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", kind)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode pushed frame: %v", err)
	}
	if w := img.Bounds().Dx(); w != 128 {
		t.Fatalf("pushed frame width = %d, want 128", w)
	}
}

func TestCurrentFrameSkipsUnchangedWorld(t *testing.T) {
	world := universe.NewWorld()
	world.SetCell(3, 3, true)
	s := New(world, testColors, 1, nil)

	first, changed := s.currentFrame()
	if !changed || first == nil {
		t.Fatal("first render reported no change")
	}
	if _, changed := s.currentFrame(); changed {
		t.Fatal("unchanged world re-rendered")
	}

	s.Update(func(w *universe.World) { w.SetCell(5, 5, true) })
	second, changed := s.currentFrame()
	if !changed {
		t.Fatal("mutated world did not re-render")
	}
	if bytes.Equal(first, second) {
		t.Fatal("new frame identical to old frame")
	}
}
