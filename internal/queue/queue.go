// Package queue implements the priority-ordered FIFO-within-priority Command Queue
// (§3, §4.4).
package queue

import (
	"errors"
	"sync"
)

// ErrQueueFull is returned by Push when the bounded queue has reached capacity.
var ErrQueueFull = errors.New("queue: full")

// Priority is one of Low, Medium, High (§3).
type Priority int

const (
	Low Priority = iota
	Medium
	High
)

func (p Priority) String() string {
	switch p {
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case High:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// ParsePriority parses the wire-level priority strings from §6.
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "LOW":
		return Low, true
	case "MEDIUM":
		return Medium, true
	case "HIGH":
		return High, true
	default:
		return 0, false
	}
}

// Queue is a bounded, priority-ordered FIFO-within-priority structure (§4.4). Pop
// always yields a Command of the highest priority currently present, preserving FIFO
// order within a priority.
type Queue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	closed   bool
	capacity int
	lanes    [3][]Command

	// preemptHook is the preemption coupling from §4.4: called with the priority of
	// every successfully pushed command, outside the queue's own lock, so the
	// coordinator can signal the Animation Engine to stop when appropriate.
	preemptHook func(Priority)
}

// SetPreemptHook registers the preemption hook invoked after each successful Push.
func (q *Queue) SetPreemptHook(hook func(Priority)) {
	q.mu.Lock()
	q.preemptHook = hook
	q.mu.Unlock()
}

// New returns an empty Queue bounded to capacity total pending commands across all
// priorities. capacity <= 0 means unbounded.
func New(capacity int) *Queue {
	q := &Queue{capacity: capacity}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

func (q *Queue) lenLocked() int {
	n := 0
	for _, l := range q.lanes {
		n += len(l)
	}
	return n
}

// Push enqueues cmd. It returns ErrQueueFull if the bound is reached. StopAnimation
// and Shutdown are always treated as High regardless of caller-supplied priority
// (§3): Push applies NormalizePriority before choosing the lane.
func (q *Queue) Push(cmd Command) error {
	cmd = cmd.NormalizePriority()
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return errors.New("queue: closed")
	}
	if q.capacity > 0 && q.lenLocked() >= q.capacity {
		return ErrQueueFull
	}
	q.lanes[cmd.Priority] = append(q.lanes[cmd.Priority], cmd)
	q.notEmpty.Signal()
	hook := q.preemptHook
	q.mu.Unlock()
	if hook != nil {
		hook(cmd.Priority)
	}
	q.mu.Lock() // re-acquired for the deferred Unlock
	return nil
}

// Pop blocks until a command is available or the queue is closed, then returns the
// oldest command of the highest present priority. The bool is false if the queue was
// closed with nothing left to drain.
func (q *Queue) Pop() (Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.lenLocked() == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	for p := High; p >= Low; p-- {
		if len(q.lanes[p]) > 0 {
			cmd := q.lanes[p][0]
			q.lanes[p] = q.lanes[p][1:]
			return cmd, true
		}
	}
	return Command{}, false
}

// PeekPriority returns the priority of the head command, if any.
func (q *Queue) PeekPriority() (Priority, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for p := High; p >= Low; p-- {
		if len(q.lanes[p]) > 0 {
			return p, true
		}
	}
	return 0, false
}

// Close wakes any blocked Pop callers; after Close, Pop drains remaining commands and
// then returns ok=false.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.notEmpty.Broadcast()
}
