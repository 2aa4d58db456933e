// Package acquire coordinates course acquisition: the dual title/content
// request race and the guard that keeps stale async results from touching a
// session that has since been reset.
package acquire

import (
	"github.com/abhisek/corelearn/internal/course"
)

// Session is an opaque token identifying one acquisition attempt. Async
// results carry the token back; results from a superseded session are
// discarded.
type Session uint64

// Controller owns the acquisition lifecycle for the application. Only one
// acquisition is ever in flight: starting a new one (or resetting) bumps the
// session counter, which conceptually cancels interest in older results —
// last-applicable-result-wins, checked against the current session.
//
// Controller is driven entirely from the TUI event loop and needs no locking.
type Controller struct {
	current Session
	active  bool

	topic  string
	title  string // early display title, best-effort
	course *course.Course
	err    error
}

// New creates an idle Controller.
func New() *Controller {
	return &Controller{}
}

// Begin starts a new acquisition for topic and returns its session token.
// Any previously in-flight results become stale.
func (c *Controller) Begin(topic string) Session {
	c.current++
	c.active = true
	c.topic = topic
	c.title = ""
	c.course = nil
	c.err = nil
	return c.current
}

// Reset abandons the active session and returns the controller to idle. An
// in-flight provider call is not interrupted; its result will simply fail
// the session check when it lands.
func (c *Controller) Reset() {
	c.current++
	c.active = false
	c.topic = ""
	c.title = ""
	c.course = nil
	c.err = nil
}

// Stale reports whether a result tagged with s should be discarded.
func (c *Controller) Stale(s Session) bool {
	return !c.active || s != c.current
}

// ApplyTitle records the early display title. Title generation is
// best-effort: a stale or failed result is dropped without surfacing
// anything.
func (c *Controller) ApplyTitle(s Session, title string, err error) {
	if c.Stale(s) || err != nil {
		return
	}
	c.title = title
}

// ApplyCourse records the outcome of the full-course request. A failure is
// fatal to the acquisition: the error is kept for display and no partial
// course is ever exposed. Returns true if the result was accepted.
func (c *Controller) ApplyCourse(s Session, crs *course.Course, err error) bool {
	if c.Stale(s) {
		return false
	}
	if err != nil {
		c.err = err
		c.course = nil
		c.active = false
		return true
	}
	c.course = crs
	return true
}

// Loading reports whether an acquisition is in flight (no course and no
// fatal error yet).
func (c *Controller) Loading() bool {
	return c.active && c.course == nil && c.err == nil
}

// Topic returns the topic of the active session.
func (c *Controller) Topic() string { return c.topic }

// Title returns the early display title, or "" if it has not arrived.
func (c *Controller) Title() string { return c.title }

// Course returns the acquired course, or nil while loading or after failure.
func (c *Controller) Course() *course.Course { return c.course }

// Err returns the fatal acquisition error, or nil.
func (c *Controller) Err() error { return c.err }
