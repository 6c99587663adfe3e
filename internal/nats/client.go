package nats

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/saviobatista/route-builder/internal/types"
)

const (
	SubjectRouteTable = "routes.table"
	StreamRoutes      = "ROUTES"

	// Route tables are held in memory only, for consumers that are online
	// around the time of a run.
	streamMaxAge  = time.Hour
	streamMaxMsgs = 100
)

// streamConfig describes the in-memory stream carrying route tables
func streamConfig() *nats.StreamConfig {
	return &nats.StreamConfig{
		Name:     StreamRoutes,
		Subjects: []string{SubjectRouteTable},
		Storage:  nats.MemoryStorage,
		MaxAge:   streamMaxAge,
		MaxMsgs:  streamMaxMsgs,
	}
}

// Client represents a NATS client
type Client struct {
	conn *nats.Conn
	js   nats.JetStreamContext
}

// New creates a new NATS client
func New(url string) (*Client, error) {
	nc, err := nats.Connect(url, nats.Name("route-builder"), nats.Timeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to get JetStream context: %w", err)
	}

	// Create stream if it doesn't exist
	_, err = js.AddStream(streamConfig())
	if err != nil && !strings.Contains(err.Error(), "stream name already in use") {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	return &Client{
		conn: nc,
		js:   js,
	}, nil
}

// PublishRoutes publishes a finished route table to NATS
func (c *Client) PublishRoutes(msg *types.RouteTableMessage) error {
	if c.js == nil {
		return fmt.Errorf("NATS client not connected")
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal route table: %w", err)
	}

	_, err = c.js.Publish(SubjectRouteTable, data)
	if err != nil {
		return fmt.Errorf("failed to publish route table: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
