// Package ledclient is the thin, strictly-typed facade producers use to submit
// commands to the LED Display Coordinator (§4.7).
package ledclient

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// MaxReconnectAttempts and CommandTimeout match §4.7/§5: reconnect on broken pipe up
// to 3 attempts, with a 2-second per-command end-to-end timeout.
const (
	MaxReconnectAttempts = 3
	CommandTimeout       = 2 * time.Second
)

// ErrTimeout is returned when a command's acknowledgment does not arrive within
// CommandTimeout. The command may still execute server-side (§5).
var ErrTimeout = fmt.Errorf("ledclient: timeout waiting for acknowledgment")

// Result is the typed acknowledgment surfaced to callers (§4.7).
type Result struct {
	Success bool
	Message string
	Error   string
}

// Client is a lazily-connecting facade around the IPC protocol (§4.6). It is safe for
// concurrent use: requests are serialized over a single mutex-guarded connection, the
// same way a single persistent connection serializes request/response pairs
// server-side.
type Client struct {
	socketPath string
	mu         sync.Mutex
	conn       net.Conn
	reader     *bufio.Scanner

	mock       bool
	mockLogger zerolog.Logger
}

// New returns a Client that will lazily dial socketPath on first use.
func New(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

func (c *Client) ensureConn() error {
	if c.conn != nil {
		return nil
	}
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return err
	}
	c.conn = conn
	c.reader = bufio.NewScanner(conn)
	return nil
}

func (c *Client) resetConn() {
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

type wireRequest struct {
	Command  string      `json:"command"`
	Priority string      `json:"priority,omitempty"`
	Params   interface{} `json:"params"`
}

type wireResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Error   *string `json:"error"`
}

// send submits one request and waits for its response, making up to
// MaxReconnectAttempts attempts (reconnecting after a broken connection). A timeout
// is returned at once as ErrTimeout and the request is not re-sent (§4.7, §5).
func (c *Client) send(command, priority string, params interface{}) (Result, error) {
	if c.mock {
		return c.mockSend(command, priority, params)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	req := wireRequest{Command: command, Priority: priority, Params: params}
	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, err
	}
	body = append(body, '\n')

	var lastErr error
	for attempt := 0; attempt < MaxReconnectAttempts; attempt++ {
		if err := c.ensureConn(); err != nil {
			lastErr = err
			time.Sleep(50 * time.Millisecond)
			continue
		}

		result, err := c.roundTrip(body)
		if err == nil {
			return result, nil
		}
		if err == ErrTimeout {
			c.resetConn()
			return Result{}, err
		}
		lastErr = err
		c.resetConn()
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("ledclient: exhausted reconnect attempts")
	}
	return Result{}, lastErr
}

func (c *Client) roundTrip(body []byte) (Result, error) {
	c.conn.SetDeadline(time.Now().Add(CommandTimeout))

	if _, err := c.conn.Write(body); err != nil {
		return Result{}, err
	}

	if !c.reader.Scan() {
		if err := c.reader.Err(); err != nil {
			var netErr net.Error
			if ok := asNetTimeout(err, &netErr); ok && netErr.Timeout() {
				return Result{}, ErrTimeout
			}
			return Result{}, err
		}
		return Result{}, fmt.Errorf("ledclient: connection closed")
	}

	var resp wireResponse
	if err := json.Unmarshal(c.reader.Bytes(), &resp); err != nil {
		return Result{}, err
	}
	result := Result{Success: resp.Success, Message: resp.Message}
	if resp.Error != nil {
		result.Error = *resp.Error
	}
	return result, nil
}

func asNetTimeout(err error, out *net.Error) bool {
	if ne, ok := err.(net.Error); ok {
		*out = ne
		return true
	}
	return false
}

// Close closes the underlying connection, if any.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}
