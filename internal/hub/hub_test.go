package hub

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesOnlySubscribedRoom(t *testing.T) {
	h := NewHub()
	inRoom := make(Client, 1)
	otherRoom := make(Client, 1)
	h.Subscribe("12345", inRoom)
	h.Subscribe("54321", otherRoom)

	h.Broadcast("12345", Event{Type: EventMemberList, Payload: []string{"Alice"}})

	msg := <-inRoom
	var got Event
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, EventMemberList, got.Type)

	select {
	case <-otherRoom:
		t.Fatal("event leaked into another room")
	default:
	}
}

func TestBroadcastToUnknownRoomIsNoOp(t *testing.T) {
	h := NewHub()
	h.Broadcast("99999", Event{Type: EventRefreshList})
}

func TestBroadcastSkipsFullClients(t *testing.T) {
	h := NewHub()
	full := make(Client) // unbuffered, nobody reading
	ok := make(Client, 1)
	h.Subscribe("12345", full)
	h.Subscribe("12345", ok)

	h.Broadcast("12345", Event{Type: EventRefreshList})

	// The healthy client still gets the event.
	assert.NotEmpty(t, <-ok)
}

func TestUnsubscribeClosesChannelAndDropsEmptyRoom(t *testing.T) {
	h := NewHub()
	c := make(Client, 1)
	h.Subscribe("12345", c)

	h.Unsubscribe("12345", c)

	_, open := <-c
	assert.False(t, open)

	// Broadcasting after the room emptied must not panic or send.
	h.Broadcast("12345", Event{Type: EventRefreshList})
}

func TestUnsubscribeUnknownClientIsNoOp(t *testing.T) {
	h := NewHub()
	c := make(Client, 1)
	h.Subscribe("12345", c)

	h.Unsubscribe("12345", make(Client))
	h.Unsubscribe("99999", c)

	// Original subscription untouched.
	h.Broadcast("12345", Event{Type: EventRefreshList})
	assert.NotEmpty(t, <-c)
}
