package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"PixelPad/internal/export"
	pixelnet "PixelPad/internal/net"
	"PixelPad/internal/prefs"
	"PixelPad/internal/state"
	"PixelPad/internal/ui"
)

func main() {
	watch := flag.Bool("watch", false, "connect to a sharing host as a view-only viewer")
	host := flag.String("host", "", "host address (ip:port) to watch; discovered via mDNS when empty")
	noShare := flag.Bool("no-share", false, "disable the live share host")
	flag.Parse()

	if *watch {
		runViewer(*host)
	} else {
		runEditor(!*noShare)
	}
}

func runEditor(share bool) {
	log.Println("Starting editor")
	p := prefs.Load()

	st := state.NewEditorState(p.GridWidth, p.GridHeight)
	st.SetBrushSize(p.BrushSize)
	sess := state.NewSession(st)

	shareLink := ""
	if share {
		shareLink = startShareHost(sess, p.SharePort)
	}

	ui.RunApp(sess, p, shareLink)

	if err := p.Save(); err != nil {
		log.Printf("could not save preferences: %v", err)
	}
}

// startShareHost wires the session's commit stream into the websocket
// broadcaster and announces the host over mDNS. Frames are handed to the
// pump as already-encoded immutable bytes; the UI thread never blocks on a
// viewer's connection.
func startShareHost(sess *state.Session, port int) string {
	broadcaster := pixelnet.NewBroadcaster()

	frames := make(chan []byte, 1)
	sess.OnCommit = func(*state.Snapshot) {
		var buf bytes.Buffer
		if err := export.EncodePNG(&buf, sess.Buffer); err != nil {
			log.Printf("could not encode share frame: %v", err)
			return
		}
		// Latest frame wins; drop a stale one still waiting.
		select {
		case <-frames:
		default:
		}
		frames <- buf.Bytes()
	}

	go func() {
		for frame := range frames {
			broadcaster.Publish(frame)
		}
	}()

	go func() {
		if err := broadcaster.Serve(port); err != nil {
			log.Printf("share host stopped: %v", err)
		}
	}()

	sessionID := uuid.NewString()
	// The mDNS server runs until process exit; the handle is not needed.
	if _, err := pixelnet.Advertise(port, sessionID); err != nil {
		log.Printf("mDNS advertise failed: %v", err)
	}

	hostIP, err := pixelnet.OutgoingIP()
	if err != nil {
		hostIP = "127.0.0.1"
	}
	link := fmt.Sprintf("%s:%d", hostIP, port)
	log.Printf("sharing session %s at %s", sessionID, link)
	return link
}

func runViewer(hostAddr string) {
	log.Println("Starting viewer")

	if hostAddr == "" {
		found := make(chan string, 1)
		if err := pixelnet.Browse(func(addr string) {
			select {
			case found <- addr:
			default:
			}
		}); err != nil {
			log.Printf("mDNS browse failed: %v", err)
		}
		select {
		case hostAddr = <-found:
			log.Printf("discovered host %s", hostAddr)
		case <-time.After(3 * time.Second):
			log.Fatal("no sharing host found on the local network; pass -host ip:port")
		}
	}

	ui.RunViewer(hostAddr, func(onFrame func([]byte)) {
		for {
			if err := pixelnet.Watch(hostAddr, onFrame); err != nil {
				log.Printf("watch: %v", err)
			}
			time.Sleep(2 * time.Second)
		}
	})
}
