// Package net implements the one-way live canvas share: a sharing host
// broadcasts PNG-encoded snapshots of the artwork to websocket viewers on
// the local network, discovered over mDNS.
package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// WatchPath is the websocket endpoint a viewer connects to.
const WatchPath = "/watch"

// Broadcaster is used by the sharing host to manage viewer connections and
// fan snapshot frames out to them.
type Broadcaster struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	viewers  map[*websocket.Conn]bool
	latest   []byte
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		upgrader: websocket.Upgrader{
			// Viewers connect from arbitrary LAN hosts.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		viewers: make(map[*websocket.Conn]bool),
	}
}

// Serve listens on the given port and accepts viewer connections until the
// process exits. Run it on its own goroutine.
func (b *Broadcaster) Serve(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc(WatchPath, b.handleWatch)
	addr := fmt.Sprintf(":%d", port)
	log.Printf("share host listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("share server: %w", err)
	}
	return nil
}

func (b *Broadcaster) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("viewer upgrade failed: %v", err)
		return
	}

	// A new viewer gets the current artwork before joining the broadcast
	// set, so no Publish can interleave with this write.
	b.mu.RLock()
	frame := b.latest
	b.mu.RUnlock()
	if frame != nil {
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			conn.Close()
			return
		}
	}

	b.mu.Lock()
	b.viewers[conn] = true
	b.mu.Unlock()
	log.Printf("viewer connected: %s", conn.RemoteAddr())

	// Viewers never send application data; this read loop only detects
	// disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				b.drop(conn)
				return
			}
		}
	}()
}

func (b *Broadcaster) drop(conn *websocket.Conn) {
	b.mu.Lock()
	delete(b.viewers, conn)
	b.mu.Unlock()
	conn.Close()
	log.Printf("viewer disconnected: %s", conn.RemoteAddr())
}

// Publish stores the frame as the latest artwork and sends it to every
// connected viewer. The frame bytes must not be mutated after the call.
func (b *Broadcaster) Publish(frame []byte) {
	b.mu.Lock()
	b.latest = frame
	conns := make([]*websocket.Conn, 0, len(b.viewers))
	for c := range b.viewers {
		conns = append(conns, c)
	}
	b.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			log.Printf("error sending to %s: %v", c.RemoteAddr(), err)
			b.drop(c)
		}
	}
}

// ViewerCount returns the number of connected viewers.
func (b *Broadcaster) ViewerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.viewers)
}

// Watch connects to a sharing host and invokes onFrame for every snapshot
// received, until the connection drops; the returned error explains why.
func Watch(hostAddr string, onFrame func(frame []byte)) error {
	url := fmt.Sprintf("ws://%s%s", hostAddr, WatchPath)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("connect to host %s: %w", hostAddr, err)
	}
	defer conn.Close()
	log.Printf("watching %s", hostAddr)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("host connection lost: %w", err)
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		onFrame(data)
	}
}
