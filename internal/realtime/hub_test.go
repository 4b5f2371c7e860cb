package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	received [][]byte
	ok       bool
}

func (c *fakeClient) Send(message []byte) bool {
	c.received = append(c.received, message)
	return c.ok
}

func (c *fakeClient) Close() {}

func TestBroadcast_OnlyReachesOwnUser(t *testing.T) {
	h := New()
	mine := &fakeClient{ok: true}
	theirs := &fakeClient{ok: true}

	h.Register(1, mine)
	h.Register(2, theirs)

	h.Broadcast(1, []byte("hello"))

	require.Len(t, mine.received, 1)
	require.Empty(t, theirs.received)
}

func TestBroadcast_AllClientsOfUser(t *testing.T) {
	h := New()
	a := &fakeClient{ok: true}
	b := &fakeClient{ok: true}

	h.Register(1, a)
	h.Register(1, b)

	h.Broadcast(1, []byte("ping"))

	require.Len(t, a.received, 1)
	require.Len(t, b.received, 1)
}

func TestUnregister(t *testing.T) {
	h := New()
	c := &fakeClient{ok: true}

	h.Register(1, c)
	h.Unregister(1, c)
	h.Broadcast(1, []byte("gone"))

	require.Empty(t, c.received)
}

func TestBroadcast_NoClientsIsNoOp(t *testing.T) {
	h := New()
	h.Broadcast(42, []byte("into the void"))
}
