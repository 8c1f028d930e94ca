// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devtools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactivecore/core/core"
	"github.com/reactivecore/core/system/offscreen"
)

func TestServeHTTPStreamsSnapshots(t *testing.T) {
	plat := offscreen.NewPlatform(800, 600)
	app := core.NewApp(plat, 16, 1)

	srv := NewServer(app, 10*time.Millisecond)
	ts := httptest.NewServer(http.HandlerFunc(srv.ServeHTTP))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var snap core.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
}

func TestRemoveClientOnWriteFailure(t *testing.T) {
	plat := offscreen.NewPlatform(800, 600)
	app := core.NewApp(plat, 16, 1)
	srv := NewServer(app, time.Hour)

	ts := httptest.NewServer(http.HandlerFunc(srv.ServeHTTP))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	// Give the server goroutine a moment to register the client before
	// the client closes its side, so broadcast below observes a stale
	// connection rather than one never added.
	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return len(srv.clients) == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		srv.broadcast(app.Snapshot())
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return len(srv.clients) == 0
	}, time.Second, 10*time.Millisecond, "a write to a closed connection must drop it from the client set")
}
