package ws

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeConn stands in for a websocket connection; writes land on a channel the
// test drains.
type fakeConn struct {
	mu       sync.Mutex
	messages chan []byte
	closed   bool
	// gate, when set, blocks every write until the channel is closed.
	gate chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{messages: make(chan []byte, 256)}
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	if f.gate != nil {
		<-f.gate
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	f.messages <- cp
	return nil
}

func (f *fakeConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func recvEvent(t *testing.T, conn *fakeConn) SerializedMessage {
	t.Helper()
	select {
	case data := <-conn.messages:
		var msg SerializedMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("failed to decode event: %v", err)
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return SerializedMessage{}
	}
}

func expectNoEvent(t *testing.T, conn *fakeConn) {
	t.Helper()
	select {
	case data := <-conn.messages:
		t.Fatalf("expected no event, got %s", data)
	case <-time.After(100 * time.Millisecond):
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestJoinIsIdempotent(t *testing.T) {
	hub := NewHub()
	conn := newFakeConn()
	hub.Register("c1", conn)
	defer hub.Unregister("c1")

	hub.Join("c1", ArticleRoom(7))
	hub.Join("c1", ArticleRoom(7))

	members := hub.Members(ArticleRoom(7))
	if len(members) != 1 || !contains(members, "c1") {
		t.Errorf("expected single membership for c1, got %v", members)
	}
}

func TestJoinUnknownConnectionIsNoop(t *testing.T) {
	hub := NewHub()
	hub.Join("ghost", ArticleRoom(1))

	if members := hub.Members(ArticleRoom(1)); len(members) != 0 {
		t.Errorf("expected empty room, got %v", members)
	}
}

func TestLeaveWithoutMembershipIsNoop(t *testing.T) {
	hub := NewHub()
	conn := newFakeConn()
	hub.Register("c1", conn)
	defer hub.Unregister("c1")

	// Never joined; must not error or disturb anything.
	hub.Leave("c1", ArticleRoom(3))
	hub.Leave("never-registered", ArticleRoom(3))

	if members := hub.Members(ArticleRoom(3)); len(members) != 0 {
		t.Errorf("expected empty room, got %v", members)
	}
}

func TestLeaveAllClearsEveryMembership(t *testing.T) {
	hub := NewHub()
	conn := newFakeConn()
	hub.Register("c1", conn)
	defer hub.Unregister("c1")

	hub.Join("c1", ArticleRoom(1))
	hub.Join("c1", ArticleRoom(2))
	hub.Join("c1", ArticleRoom(3))

	hub.LeaveAll("c1")

	for _, id := range []uint{1, 2, 3} {
		if members := hub.Members(ArticleRoom(id)); len(members) != 0 {
			t.Errorf("room %d still has members after LeaveAll: %v", id, members)
		}
	}

	// LeaveAll on a connection with no memberships is fine.
	hub.LeaveAll("c1")
}

func TestUnregisterRemovesFromAllRooms(t *testing.T) {
	hub := NewHub()
	c1, c2 := newFakeConn(), newFakeConn()
	hub.Register("c1", c1)
	hub.Register("c2", c2)
	defer hub.Unregister("c2")

	hub.Join("c1", ArticleRoom(1))
	hub.Join("c2", ArticleRoom(1))
	hub.Join("c1", ArticleRoom(2))

	hub.Unregister("c1")

	if members := hub.Members(ArticleRoom(1)); len(members) != 1 || !contains(members, "c2") {
		t.Errorf("expected only c2 in room 1, got %v", members)
	}
	if members := hub.Members(ArticleRoom(2)); len(members) != 0 {
		t.Errorf("expected empty room 2, got %v", members)
	}
	if hub.Count() != 1 {
		t.Errorf("expected 1 connection, got %d", hub.Count())
	}

	// Double unregister is a no-op.
	hub.Unregister("c1")
}

func TestMembersUnknownRoomIsEmptyNotError(t *testing.T) {
	hub := NewHub()
	members := hub.Members("article:999")
	if members == nil || len(members) != 0 {
		t.Errorf("expected empty slice, got %v", members)
	}
}

func TestPublishReachesOnlyCurrentMembers(t *testing.T) {
	hub := NewHub()
	inRoomA := newFakeConn()
	inRoomB := newFakeConn()
	outside := newFakeConn()
	hub.Register("a", inRoomA)
	hub.Register("b", inRoomB)
	hub.Register("x", outside)
	defer func() {
		hub.Unregister("a")
		hub.Unregister("b")
		hub.Unregister("x")
	}()

	hub.Join("a", ArticleRoom(5))
	hub.Join("b", ArticleRoom(5))
	hub.Join("x", ArticleRoom(6))

	hub.PublishViews(5, 30001)

	for _, conn := range []*fakeConn{inRoomA, inRoomB} {
		msg := recvEvent(t, conn)
		if msg.Type != EventViewCountUpdated {
			t.Errorf("expected %s event, got %s", EventViewCountUpdated, msg.Type)
		}
		var payload ViewCountPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload.ArticleID != 5 || payload.Views != 30001 {
			t.Errorf("unexpected payload: %+v", payload)
		}
	}
	expectNoEvent(t, outside)
}

func TestPublishIsNotReplayedToLateJoiners(t *testing.T) {
	hub := NewHub()
	early := newFakeConn()
	late := newFakeConn()
	hub.Register("early", early)
	hub.Register("late", late)
	defer func() {
		hub.Unregister("early")
		hub.Unregister("late")
	}()

	hub.Join("early", ArticleRoom(1))
	hub.PublishViews(1, 42)
	recvEvent(t, early)

	hub.Join("late", ArticleRoom(1))
	expectNoEvent(t, late)

	// Both see events published after the late join.
	hub.PublishViews(1, 43)
	recvEvent(t, early)
	recvEvent(t, late)
}

func TestPublishPreservesPerSubscriberOrder(t *testing.T) {
	hub := NewHub()
	conn := newFakeConn()
	hub.Register("c1", conn)
	defer hub.Unregister("c1")
	hub.Join("c1", ArticleRoom(1))

	const n = 50
	for i := 0; i < n; i++ {
		hub.PublishViews(1, int64(i))
	}

	for i := 0; i < n; i++ {
		msg := recvEvent(t, conn)
		var payload ViewCountPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload.Views != int64(i) {
			t.Fatalf("event %d out of order: got views=%d", i, payload.Views)
		}
	}
}

func TestPublishNeverBlocksOnSlowConnection(t *testing.T) {
	hub := NewHub()
	slow := newFakeConn()
	slow.gate = make(chan struct{})
	hub.Register("slow", slow)
	hub.Join("slow", ArticleRoom(1))

	done := make(chan struct{})
	go func() {
		// Overflow the queue; excess events are dropped for this
		// connection, the publisher must not stall.
		for i := 0; i < hub.sendBuffer*2; i++ {
			hub.PublishViews(1, int64(i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow connection")
	}

	close(slow.gate)
	hub.Unregister("slow")
}

func TestPublishAfterDisconnectDeliversToRemaining(t *testing.T) {
	hub := NewHub()
	gone := newFakeConn()
	stays := newFakeConn()
	hub.Register("gone", gone)
	hub.Register("stays", stays)
	defer hub.Unregister("stays")

	hub.Join("gone", ArticleRoom(9))
	hub.Join("stays", ArticleRoom(9))

	hub.Unregister("gone")
	hub.PublishViews(9, 100)

	msg := recvEvent(t, stays)
	if msg.Type != EventViewCountUpdated {
		t.Errorf("expected %s event, got %s", EventViewCountUpdated, msg.Type)
	}
	expectNoEvent(t, gone)
}

func TestSendToUnknownConnectionIsNoop(t *testing.T) {
	hub := NewHub()
	hub.SendTo("nobody", []byte(`{"type":"error"}`))
}

func TestConcurrentJoinLeavePublish(t *testing.T) {
	hub := NewHub()
	const conns = 16
	for i := 0; i < conns; i++ {
		hub.Register(fmt.Sprintf("c%d", i), newFakeConn())
	}

	var wg sync.WaitGroup
	for i := 0; i < conns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("c%d", i)
			for j := 0; j < 50; j++ {
				hub.Join(id, ArticleRoom(uint(j%3)))
				hub.PublishViews(uint(j%3), int64(j))
				hub.Leave(id, ArticleRoom(uint(j%3)))
			}
			hub.LeaveAll(id)
		}(i)
	}
	wg.Wait()

	for i := 0; i < conns; i++ {
		hub.Unregister(fmt.Sprintf("c%d", i))
	}
	if hub.Count() != 0 {
		t.Errorf("expected 0 connections, got %d", hub.Count())
	}
}
