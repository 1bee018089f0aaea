package sse

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func waitForClients(t *testing.T, b *Broker, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if b.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count never reached %d", want)
}

func TestSubscribePublishUnsubscribe(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	waitForClients(t, b, 1)

	b.Publish(BuildCompleted(3))

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: build.completed") {
			t.Errorf("unexpected event frame: %q", s)
		}
		if !strings.Contains(s, `"terms":3`) {
			t.Errorf("unexpected payload: %q", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}

	b.Unsubscribe(ch)
	waitForClients(t, b, 0)
}

func TestBuildFailedEvent(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	waitForClients(t, b, 1)

	b.Publish(BuildFailed(errFake{}))

	select {
	case msg := <-ch:
		if !strings.Contains(string(msg), "event: build.failed") {
			t.Errorf("unexpected event frame: %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

type errFake struct{}

func (errFake) Error() string { return "boom" }

func TestCloseClosesClientChannels(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	waitForClients(t, b, 1)

	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel never closed")
	}

	// Operations after Close must not panic or block.
	b.Publish(BuildCompleted(1))
	b.Unsubscribe(ch)
	if got := b.ClientCount(); got != 0 {
		t.Errorf("ClientCount after close = %d", got)
	}
}

func TestServeHTTPStreamsEvents(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	srv := httptest.NewServer(b)
	defer srv.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	frames := make(chan string, 1)
	go func() {
		defer wg.Done()
		resp, err := srv.Client().Get(srv.URL)
		if err != nil {
			t.Error(err)
			return
		}
		defer resp.Body.Close()
		if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
			t.Errorf("content type = %q", ct)
		}
		buf := make([]byte, 1024)
		n, _ := resp.Body.Read(buf)
		frames <- string(buf[:n])
	}()

	waitForClients(t, b, 1)
	b.Publish(BuildCompleted(2))

	select {
	case frame := <-frames:
		if !strings.Contains(frame, "build.completed") {
			t.Errorf("frame missing event: %q", frame)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no frame received")
	}
	wg.Wait()
}
