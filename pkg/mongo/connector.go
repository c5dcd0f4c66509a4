package mongo

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/bookpoint/bookpoint/pkg/async"
)

// Connector owns the lazily-established, process-wide database connection.
//
// The first Connect call starts the dial; concurrent callers share the same
// in-flight attempt instead of racing to open duplicate connections. A failed
// attempt is discarded so a later call can retry.
type Connector struct {
	cfg Config

	mu       sync.Mutex
	db       *mongo.Database
	inflight *async.Future[*mongo.Database]
}

// NewConnector returns a Connector for the configured database.
// No connection is made until Connect is called.
func NewConnector(cfg Config) *Connector {
	return &Connector{cfg: cfg}
}

// Connect returns the shared database handle, dialing on first use.
// It is safe to call concurrently; all callers of the same attempt receive
// the same result.
func (c *Connector) Connect(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	if c.db != nil {
		db := c.db
		c.mu.Unlock()
		return db, nil
	}
	if c.inflight == nil {
		// The dial must not be tied to a single request's lifetime: a
		// canceled request would poison the shared connection attempt.
		c.inflight = async.Async(context.WithoutCancel(ctx), c.cfg, NewWithDatabase)
	}
	attempt := c.inflight
	c.mu.Unlock()

	db, err := attempt.Await()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		if c.inflight == attempt {
			c.inflight = nil
		}
		return nil, err
	}
	c.db = db
	return db, nil
}

// IsReady reports whether a connection has been established.
func (c *Connector) IsReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db != nil
}
