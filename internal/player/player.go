// Package player plays lesson videos with an external command (mpv by default).
// One video plays at a time; starting another stops the current one.
package player

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"hamgaman/internal/logger"
)

// ErrNoSource is returned when a lesson has nothing to play.
var ErrNoSource = errors.New("no video source")

// quitKey asks mpv to exit.
const quitKey = "q"

const defaultStopTimeout = 2 * time.Second

// Option configures a Player.
type Option func(*Player)

// WithStarter overrides how processes are spawned.
func WithStarter(s Starter) Option {
	return func(p *Player) { p.starter = s }
}

// WithStopTimeout sets how long Stop waits after sending the quit key before killing.
func WithStopTimeout(d time.Duration) Option {
	return func(p *Player) { p.stopTimeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(p *Player) { p.log = l }
}

// Player owns at most one playback session. Safe for concurrent use.
type Player struct {
	command     string
	args        []string
	starter     Starter
	stopTimeout time.Duration
	log         *logger.Logger

	mu      sync.Mutex
	current *session
	size    Size
}

type session struct {
	source string
	proc   Process
	done   chan struct{}
}

// New returns a player that runs command with args followed by the source.
func New(command string, args []string, opts ...Option) *Player {
	p := &Player{
		command:     command,
		args:        append([]string(nil), args...),
		starter:     PTYStarter{},
		stopTimeout: defaultStopTimeout,
		log:         logger.Nop(),
		size:        Size{Rows: 24, Cols: 80},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play stops any current session and starts source. The returned channel is
// closed when the new session ends.
func (p *Player) Play(source string) (<-chan struct{}, error) {
	if source == "" {
		return nil, ErrNoSource
	}
	if p.command == "" {
		return nil, fmt.Errorf("play %s: no player command configured", source)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	args := append(append([]string(nil), p.args...), source)
	proc, err := p.starter.Start(p.command, args, p.size)
	if err != nil {
		return nil, fmt.Errorf("play %s: %w", source, err)
	}
	s := &session{source: source, proc: proc, done: make(chan struct{})}
	p.current = s
	go func() {
		if err := proc.Wait(); err != nil {
			p.log.Debug("player exited", "source", source, "error", err)
		}
		_ = proc.Close()
		close(s.done)
	}()
	p.log.Info("player started", "command", p.command, "source", source)
	return s.done, nil
}

// Playing returns the source of the running session.
func (p *Player) Playing() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return "", false
	}
	select {
	case <-p.current.done:
		return "", false
	default:
		return p.current.source, true
	}
}

// Resize sets the terminal size for the running and future sessions.
func (p *Player) Resize(size Size) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.size = size
	if p.current != nil {
		_ = p.current.proc.Resize(size)
	}
}

// Stop ends the running session, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Close stops playback. The player stays usable.
func (p *Player) Close() error {
	p.Stop()
	return nil
}

func (p *Player) stopLocked() {
	s := p.current
	if s == nil {
		return
	}
	p.current = nil
	select {
	case <-s.done:
		return
	default:
	}
	_, _ = s.proc.Write([]byte(quitKey))
	select {
	case <-s.done:
	case <-time.After(p.stopTimeout):
		p.log.Warn("player ignored quit, killing", "source", s.source)
		_ = s.proc.Kill()
		<-s.done
	}
	p.log.Info("player stopped", "source", s.source)
}
