package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/taskfarm/internal/logger"
)

// ResilientConfig configures subscriber retries
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	// DeadLetterPath empty means exhausted deliveries are only logged
	DeadLetterPath string
	// QueueSize zero means RetryQueueBufferSize
	QueueSize int
}

// ResilientPublisher is a Bus whose subscribers get retried.
//
// Subscribe wraps each handler: a failed delivery is queued and sent again to
// that handler alone, so the other subscribers never see the event twice.
// Retries back off exponentially from RetryDelay and run one at a time in
// queue order. A delivery still failing after MaxRetries retries, or that
// finds the queue full or the publisher shut down, goes to the dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	mu         sync.RWMutex // held for reading while sending on retryQueue
	closed     bool
	retryQueue chan retryEntry
	shutdown   chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

type retryEntry struct {
	ctx      context.Context
	event    Event
	handler  Handler
	attempts int
	lastErr  error
	due      time.Time
}

// NewResilientPublisher wraps bus and starts the retry worker. Call Shutdown
// to stop it.
func NewResilientPublisher(bus Bus, cfg ResilientConfig) (*ResilientPublisher, error) {
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf(ErrMsgNegativeRetriesFmt, cfg.MaxRetries)
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = RetryQueueBufferSize
	}

	p := &ResilientPublisher{
		bus:        bus,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		retryQueue: make(chan retryEntry, queueSize),
		shutdown:   make(chan struct{}),
	}
	if cfg.DeadLetterPath != "" {
		dl, err := NewDeadLetterWriter(cfg.DeadLetterPath)
		if err != nil {
			return nil, err
		}
		p.deadLetter = dl
	}

	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// CalculateRetryDelay doubles base for every attempt after the first
func CalculateRetryDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return base * time.Duration(1<<(attempt-1))
}

// Publish delivers through the wrapped bus. Errors from guarded handlers never
// reach the caller; they are retried instead.
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	return p.bus.Publish(ctx, evt)
}

// Subscribe registers a retrying wrapper around handler on the wrapped bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, p.guard(handler))
}

func (p *ResilientPublisher) guard(handler Handler) Handler {
	return func(ctx context.Context, evt Event) error {
		err := handler(ctx, evt)
		if err == nil {
			return nil
		}
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
			LogFieldEventType, evt.Type, LogFieldRetries, p.maxRetries, "error", err)
		p.enqueue(retryEntry{
			ctx:      context.WithoutCancel(ctx),
			event:    evt,
			handler:  handler,
			attempts: 1,
			lastErr:  err,
		})
		return nil
	}
}

// enqueue schedules the next retry of e, or dead-letters it
func (p *ResilientPublisher) enqueue(e retryEntry) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch {
	case e.attempts > p.maxRetries:
		p.deadLetterEntry(e, LogMsgEventRetryExhausted)
	case p.closed:
		p.deadLetterEntry(e, LogMsgEventDroppedShutdown)
	default:
		e.due = time.Now().Add(CalculateRetryDelay(p.retryDelay, e.attempts))
		select {
		case p.retryQueue <- e:
		default:
			p.deadLetterEntry(e, LogMsgRetryQueueFull)
		}
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.shutdown:
			p.drain()
			return
		case e := <-p.retryQueue:
			if !p.waitUntil(e.due) {
				p.deadLetterEntry(e, LogMsgEventDroppedShutdown)
				p.drain()
				return
			}
			p.retry(e)
		}
	}
}

// waitUntil blocks until due. It returns false if shutdown comes first.
func (p *ResilientPublisher) waitUntil(due time.Time) bool {
	d := time.Until(due)
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-p.shutdown:
		return false
	}
}

func (p *ResilientPublisher) retry(e retryEntry) {
	err := e.handler(e.ctx, e.event)
	log := logger.FromContext(e.ctx).With(LogFieldEventType, e.event.Type, LogFieldAttempt, e.attempts)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded)
		return
	}
	log.Warn(LogMsgEventRetryFailed, "error", err)
	e.attempts++
	e.lastErr = err
	p.enqueue(e)
}

// drain dead-letters whatever is still queued. Only the worker calls it,
// after closed is set, so nothing else can be sent.
func (p *ResilientPublisher) drain() {
	n := 0
	for {
		select {
		case e := <-p.retryQueue:
			p.deadLetterEntry(e, LogMsgEventDroppedShutdown)
			n++
		default:
			if n > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "events", n)
			}
			return
		}
	}
}

func (p *ResilientPublisher) deadLetterEntry(e retryEntry, reason string) {
	log := logger.FromContext(e.ctx)
	log.Warn(reason, LogFieldEventType, e.event.Type, LogFieldAttempts, e.attempts, "error", e.lastErr)
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(e.event, e.attempts, e.lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, LogFieldEventType, e.event.Type, "error", err)
	}
}

// Shutdown stops retrying. Queued deliveries are dead-lettered immediately.
// It waits for the worker until ctx is done; the dead-letter file is closed
// only once the worker has exited. Safe to call more than once.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.shutdown)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	dl := p.deadLetter
	p.deadLetter = nil
	if dl == nil {
		return nil
	}
	return dl.Close()
}
