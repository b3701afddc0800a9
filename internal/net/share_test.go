package net

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newTestHost(t *testing.T) (*Broadcaster, string) {
	t.Helper()
	b := NewBroadcaster()
	mux := http.NewServeMux()
	mux.HandleFunc(WatchPath, b.handleWatch)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + WatchPath
	return b, url
}

func dialViewer(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestPublishReachesViewer(t *testing.T) {
	b, url := newTestHost(t)
	conn := dialViewer(t, url)

	waitForViewers(t, b, 1)
	frame := []byte{1, 2, 3, 4}
	b.Publish(frame)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if msgType != websocket.BinaryMessage || !bytes.Equal(data, frame) {
		t.Fatalf("received %v (type %d), want the published frame", data, msgType)
	}
}

func TestLateViewerGetsLatestFrame(t *testing.T) {
	b, url := newTestHost(t)
	b.Publish([]byte("stale"))
	b.Publish([]byte("fresh"))

	conn := dialViewer(t, url)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "fresh" {
		t.Fatalf("late viewer received %q, want latest frame", data)
	}
}

func TestViewerCountTracksDisconnect(t *testing.T) {
	b, url := newTestHost(t)
	conn := dialViewer(t, url)
	waitForViewers(t, b, 1)

	conn.Close()
	waitForViewers(t, b, 0)
}

func waitForViewers(t *testing.T, b *Broadcaster, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if b.ViewerCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("viewer count = %d, want %d", b.ViewerCount(), want)
}
