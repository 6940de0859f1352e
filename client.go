package litescheme

import (
	"context"
	"errors"
	"fmt"

	"github.com/litetable/litetable-scheme/internal/config"
	"github.com/litetable/litetable-scheme/internal/scheme"
	"github.com/litetable/litetable-scheme/internal/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
)

// Client reads and writes the rows of one Scheme on a LiteTable server. It is safe for concurrent
// use.
type Client struct {
	scheme *scheme.Scheme
	conn   *grpc.ClientConn
	store  store.Client
	sink   scheme.RowSink
}

// Open connects using the LiteTable configuration file of the current user.
func Open(s *Scheme) (*Client, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	return OpenConfig(cfg, s)
}

// OpenConfig connects to the server described by cfg. Reads go through the gRPC service and
// writes through gRPC or, for families carrying null cells, the text protocol.
func OpenConfig(cfg *StoreConfig, s *Scheme) (*Client, error) {
	var errGrp []error
	if cfg == nil {
		errGrp = append(errGrp, errors.New("store config required"))
	}
	if s == nil {
		errGrp = append(errGrp, errors.New("scheme required"))
	}
	if err := errors.Join(errGrp...); err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())

	lines, err := store.DialProtocol(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := store.Connect(cfg)
	if err != nil {
		return nil, err
	}

	client := store.NewClient(conn)
	writer, err := store.NewWriter(&store.WriterConfig{
		Client: client,
		Lines:  lines,
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Debug().Msgf("scheme client ready for families %v", s.Families())
	return newClient(s, client, writer, conn), nil
}

func newClient(s *scheme.Scheme, client store.Client, sink scheme.RowSink, conn *grpc.ClientConn) *Client {
	return &Client{
		scheme: s,
		conn:   conn,
		store:  client,
		sink:   sink,
	}
}

// Scheme returns the scheme the client encodes with.
func (c *Client) Scheme() *Scheme {
	return c.scheme
}

// Get decodes the rows stored under keys, in key order. Keys without any declared cell are
// skipped.
func (c *Client) Get(ctx context.Context, keys ...string) ([]Tuple, error) {
	return c.read(ctx, &store.ReaderConfig{Keys: keys})
}

// Scan decodes every row whose key starts with prefix, in key order.
func (c *Client) Scan(ctx context.Context, prefix string) ([]Tuple, error) {
	return c.read(ctx, &store.ReaderConfig{Prefix: prefix})
}

func (c *Client) read(ctx context.Context, cfg *store.ReaderConfig) ([]Tuple, error) {
	cfg.Client = c.store
	cfg.Columns = c.scheme.Cells()

	r, err := store.NewReader(cfg)
	if err != nil {
		return nil, err
	}

	var rows []Tuple
	for {
		row, ok, err := c.scheme.Source(ctx, r)
		if err != nil {
			return nil, err
		}
		if !ok {
			return rows, nil
		}
		rows = append(rows, row)
	}
}

// Put encodes and writes entries in order, stopping at the first failure.
func (c *Client) Put(ctx context.Context, entries ...Entry) error {
	for i, entry := range entries {
		if err := c.scheme.Sink(ctx, entry, c.sink); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

// Close releases the server connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
