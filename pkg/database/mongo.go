package database

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/pkg/apperrors"
)

type State string

const (
	StateDisconnected  State = "disconnected"
	StateConnecting    State = "connecting"
	StateConnected     State = "connected"
	StateDisconnecting State = "disconnecting"
)

const connectTimeout = 15 * time.Second

type attempt struct {
	done   chan struct{}
	client *mongo.Client
	err    error
}

// Manager owns the single mongo client for the process. The first caller
// dials; callers arriving while the dial is in flight wait on that same
// attempt instead of starting their own. A failed attempt is cleared so the
// next caller retries.
type Manager struct {
	uri    string
	dbName string
	log    *zap.SugaredLogger

	mu      sync.Mutex
	client  *mongo.Client
	pending *attempt
	state   State
}

func NewManager(uri, dbName string, log *zap.SugaredLogger) *Manager {
	return &Manager{
		uri:    uri,
		dbName: dbName,
		log:    log,
		state:  StateDisconnected,
	}
}

// Get returns the live client, connecting first if needed. ctx only bounds
// this caller's wait; the dial itself runs under its own timeout so that one
// cancelled request cannot fail an attempt other requests are waiting on.
func (m *Manager) Get(ctx context.Context) (*mongo.Client, error) {
	m.mu.Lock()
	if m.client != nil {
		client := m.client
		m.mu.Unlock()
		return client, nil
	}
	if at := m.pending; at != nil {
		m.mu.Unlock()
		select {
		case <-at.done:
			return at.client, at.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.uri == "" {
		m.mu.Unlock()
		return nil, apperrors.ErrMissingMongoURI
	}

	at := &attempt{done: make(chan struct{})}
	m.pending = at
	m.state = StateConnecting
	m.mu.Unlock()

	client, err := m.dial()
	at.client, at.err = client, err

	m.mu.Lock()
	m.pending = nil
	if err != nil {
		m.state = StateDisconnected
	} else {
		m.client = client
		m.state = StateConnected
	}
	m.mu.Unlock()
	close(at.done)

	return client, err
}

func (m *Manager) dial() (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(m.uri).
		SetConnectTimeout(connectTimeout).
		// Fail fast instead of queueing operations while unreachable.
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		m.log.Errorw("mongo connect failed", "error", err)
		return nil, &apperrors.ConnectionError{Err: err}
	}
	if err := client.Ping(ctx, nil); err != nil {
		m.log.Errorw("mongo ping failed", "error", err)
		_ = client.Disconnect(context.Background())
		return nil, &apperrors.ConnectionError{Err: err}
	}

	m.log.Info("mongo connected")
	return client, nil
}

// Collection resolves a collection handle, connecting on first use.
func (m *Manager) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	client, err := m.Get(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(m.dbName).Collection(name), nil
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	if client == nil {
		m.mu.Unlock()
		return nil
	}
	m.client = nil
	m.state = StateDisconnecting
	m.mu.Unlock()

	err := client.Disconnect(ctx)

	m.mu.Lock()
	m.state = StateDisconnected
	m.mu.Unlock()
	return err
}
