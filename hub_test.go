package main

import "testing"

func TestHubSkipsBroadcastsWithoutClients(t *testing.T) {
	h := NewHub()
	h.BroadcastStatus(GameSnapshot{})
	h.BroadcastReset(GameSnapshot{})
	h.BroadcastConfig(Config{})
	if len(h.broadcastStatus)+len(h.broadcastReset)+len(h.broadcastConfig) != 0 {
		t.Fatalf("an empty hub must not queue broadcasts")
	}

	client := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(client)
	if !h.HasClients() {
		t.Fatalf("expected a registered client")
	}
	h.BroadcastStatus(GameSnapshot{})
	if len(h.broadcastStatus) != 1 {
		t.Fatalf("expected the broadcast to be queued for a connected client")
	}

	h.Unregister(client)
	if h.HasClients() {
		t.Fatalf("expected no clients after unregister")
	}
}
