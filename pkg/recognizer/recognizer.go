package recognizer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/adrianliechti/toolify/pkg/errdefs"
)

var ErrClosed = errors.New("recognizer closed")

// Engine is a text recognition engine instance. Implementations need not be
// safe for concurrent use; the Manager serializes calls.
type Engine interface {
	Recognize(ctx context.Context, img image.Image, language string) (string, error)
	Close() error
}

type Factory func(ctx context.Context) (Engine, error)

type ReleasePolicy string

const (
	// ReleaseAfterUse shuts the engine down as soon as no caller holds it.
	ReleaseAfterUse ReleasePolicy = "release"

	// KeepWarm keeps the engine alive until the Manager is closed.
	KeepWarm ReleasePolicy = "keep-warm"
)

const DefaultLanguage = "eng"

// Manager owns the lifecycle of one shared recognition engine.
type Manager struct {
	factory Factory
	policy  ReleasePolicy
	logger  *slog.Logger

	preprocess PreprocessOptions

	mu     sync.Mutex
	refs   int
	init   *initCall
	closed bool

	drained chan struct{}

	use sync.Mutex
}

type initCall struct {
	done chan struct{}

	engine Engine
	err    error
}

type Option func(*Manager)

func WithPolicy(policy ReleasePolicy) Option {
	return func(m *Manager) {
		m.policy = policy
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

func WithPreprocess(options PreprocessOptions) Option {
	return func(m *Manager) {
		m.preprocess = options
	}
}

func New(factory Factory, options ...Option) *Manager {
	m := &Manager{
		factory: factory,
		policy:  ReleaseAfterUse,
		logger:  slog.Default(),

		preprocess: DefaultPreprocess,
	}

	for _, option := range options {
		option(m)
	}

	return m
}

// Lease is a claim on the shared engine. Release must be called once done.
type Lease struct {
	m      *Manager
	engine Engine

	once sync.Once
}

func (l *Lease) Engine() Engine {
	return l.engine
}

func (l *Lease) Release() {
	l.once.Do(l.m.release)
}

// Acquire returns the shared engine, creating it on first use. Concurrent
// callers share one in-flight initialization.
func (m *Manager) Acquire(ctx context.Context) (*Lease, error) {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}

	m.refs++

	call := m.init

	if call == nil {
		call = &initCall{
			done: make(chan struct{}),
		}

		m.init = call

		go m.initialize(context.WithoutCancel(ctx), call)
	}

	m.mu.Unlock()

	select {
	case <-call.done:
	case <-ctx.Done():
		m.release()
		return nil, ctx.Err()
	}

	if call.err != nil {
		m.mu.Lock()

		if m.init == call {
			m.init = nil
		}

		m.mu.Unlock()

		m.release()
		return nil, call.err
	}

	return &Lease{
		m:      m,
		engine: call.engine,
	}, nil
}

func (m *Manager) initialize(ctx context.Context, call *initCall) {
	start := time.Now()

	m.logger.Info("recognizer.init.start")

	call.engine, call.err = m.factory(ctx)

	if call.err != nil {
		m.logger.Error("recognizer.init.error", "error", call.err)
	} else {
		m.logger.Info("recognizer.init.done", "duration_ms", time.Since(start).Milliseconds())
	}

	close(call.done)
}

func (m *Manager) release() {
	m.mu.Lock()

	m.refs--

	if m.refs == 0 && m.drained != nil {
		close(m.drained)
		m.drained = nil
	}

	var engine Engine

	if m.refs == 0 && m.policy != KeepWarm && m.init != nil {
		select {
		case <-m.init.done:
			engine = m.init.engine
			m.init = nil
		default:
		}
	}

	m.mu.Unlock()

	if engine != nil {
		if err := engine.Close(); err != nil {
			m.logger.Warn("recognizer.release.error", "error", err)
			return
		}

		m.logger.Info("recognizer.release")
	}
}

// InFlight reports the callers currently holding or waiting for the engine.
func (m *Manager) InFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.refs
}

// Recognize preprocesses an encoded image and runs it through the shared
// engine. Engine use is serialized.
func (m *Manager) Recognize(ctx context.Context, data []byte, language string) (string, error) {
	if language == "" {
		language = DefaultLanguage
	}

	img, err := Preprocess(data, m.preprocess)

	if err != nil {
		return "", err
	}

	lease, err := m.Acquire(ctx)

	if err != nil {
		return "", fmt.Errorf("%w: %w", errdefs.ErrExtraction, err)
	}

	defer lease.Release()

	m.use.Lock()
	defer m.use.Unlock()

	start := time.Now()

	text, err := lease.Engine().Recognize(ctx, img, language)

	if err != nil {
		m.logger.Error("recognizer.recognize.error", "language", language, "error", err)
		return "", fmt.Errorf("%w: %w", errdefs.ErrExtraction, err)
	}

	text = strings.TrimSpace(text)

	m.logger.Info("recognizer.recognize",
		"language", language,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
		"chars", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return text, nil
}

// Close shuts down the engine regardless of policy once every outstanding
// lease is released. Acquire fails afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()

	m.closed = true

	call := m.init
	m.init = nil

	var drained chan struct{}

	if m.refs > 0 {
		if m.drained == nil {
			m.drained = make(chan struct{})
		}

		drained = m.drained
	}

	m.mu.Unlock()

	if drained != nil {
		<-drained
	}

	if call == nil {
		return nil
	}

	<-call.done

	if call.err != nil || call.engine == nil {
		return nil
	}

	return call.engine.Close()
}
