package ledclient

import (
	"bufio"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/led-coordinator/internal/render"
)

// echoServer accepts one connection and responds to every request with resp,
// standing in for the coordinator's IPC server so the client can be tested without
// a real queue/coordinator.
func echoServer(t *testing.T, socketPath string, resp wireResponse) {
	t.Helper()
	ln, err := net.Listen("unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			b, _ := json.Marshal(resp)
			b = append(b, '\n')
			conn.Write(b)
		}
	}()
}

func TestClientSendRoundTripsSuccessfully(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "client.sock")
	echoServer(t, socketPath, wireResponse{Success: true, Message: "ok"})

	c := New(socketPath)
	defer c.Close()

	res, err := c.send("show_symbol", "MEDIUM", map[string]string{"symbol": "wifi"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "ok", res.Message)
}

func TestClientSendSurfacesErrorResponse(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "client.sock")
	errCode := "InvalidParams"
	echoServer(t, socketPath, wireResponse{Success: false, Message: "bad", Error: &errCode})

	c := New(socketPath)
	defer c.Close()

	res, err := c.send("show_symbol", "MEDIUM", map[string]string{"symbol": "bogus"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "InvalidParams", res.Error)
}

func TestClientSendFailsAfterExhaustingReconnectsWhenNoServer(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "nobody-listening.sock")
	c := New(socketPath)
	defer c.Close()

	_, err := c.send("clear", "", nil)
	assert.Error(t, err)
}

func TestMockClientNeverDialsAndAlwaysSucceeds(t *testing.T) {
	c := NewMock(zerolog.Nop())
	res, err := c.ShowSymbol(render.SymbolWifi, High, 0)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestShowSymbolRejectsUnknownSymbolClientSide(t *testing.T) {
	c := NewMock(zerolog.Nop())
	_, err := c.ShowSymbol("not_a_real_symbol", Medium, 0)
	assert.Error(t, err)
}

func TestShowAnimationRejectsUnknownAnimationClientSide(t *testing.T) {
	c := NewMock(zerolog.Nop())
	_, err := c.ShowAnimation("not_a_real_animation", Medium, 0, 0)
	assert.Error(t, err)
}

func TestShowLayoutRejectsUnknownLayoutClientSide(t *testing.T) {
	c := NewMock(zerolog.Nop())
	_, err := c.ShowLayout(render.LayoutPayload{Layout: "bogus_layout"}, Medium)
	assert.Error(t, err)
}
