package store

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/litetable/litetable-scheme/internal/config"
	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/rs/zerolog/log"
)

// maxResponseSize bounds how much of a server answer is read. Write answers echo the written
// cells as JSON.
const maxResponseSize = 4 << 20

// Dialer opens a connection to the text protocol listener. *net.Dialer and *tls.Dialer both
// satisfy it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// LineWriter is a row sink speaking the LiteTable text protocol. The server answers one query
// per connection, so every family of a mutation is written over its own connection. Unlike the
// gRPC service, the text protocol keeps zero-length values.
type LineWriter struct {
	address string
	dialer  Dialer
}

type LineWriterConfig struct {
	Address string
	Dialer  Dialer
}

func (c *LineWriterConfig) validate() error {
	var errGrp []error
	if c.Address == "" {
		errGrp = append(errGrp, errors.New("address required"))
	}
	if c.Dialer == nil {
		errGrp = append(errGrp, errors.New("dialer required"))
	}
	return errors.Join(errGrp...)
}

// NewLineWriter creates a text protocol row sink.
func NewLineWriter(cfg *LineWriterConfig) (*LineWriter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &LineWriter{
		address: cfg.Address,
		dialer:  cfg.Dialer,
	}, nil
}

// DialProtocol creates a LineWriter for the text protocol listener described by cfg, using TLS
// when cfg asks for it. Nothing is dialed until the first write.
func DialProtocol(cfg *config.Config) (*LineWriter, error) {
	if cfg == nil {
		return nil, errors.New("config required")
	}

	var dialer Dialer = &net.Dialer{}
	if cfg.TLS {
		tlsCfg, err := newTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		dialer = &tls.Dialer{Config: tlsCfg}
	}

	return NewLineWriter(&LineWriterConfig{
		Address: cfg.ProtocolTarget(),
		Dialer:  dialer,
	})
}

// Collect writes every family of m. The routing key is ignored.
func (w *LineWriter) Collect(ctx context.Context, _ []byte, m *litetable.Mutation) error {
	if m == nil {
		return errors.New("mutation required")
	}

	for _, family := range m.Families() {
		if err := w.writeFamily(ctx, m, family); err != nil {
			return err
		}
	}
	return nil
}

func (w *LineWriter) writeFamily(ctx context.Context, m *litetable.Mutation, family string) error {
	line := m.WriteLine(family)
	log.Debug().Msgf("writing family %s row %s over the text protocol", family, m.Key)

	resp, err := w.roundTrip(ctx, line)
	if err != nil {
		return fmt.Errorf("failed to write family %s row %s: %w", family, m.Key, err)
	}
	if msg, failed := bytes.CutPrefix(resp, []byte(litetable.ErrorPrefix)); failed {
		return fmt.Errorf("server rejected family %s row %s: %s", family, m.Key,
			bytes.TrimSpace(msg))
	}
	return nil
}

// roundTrip sends one query and reads the answer until the server closes the connection.
func (w *LineWriter) roundTrip(ctx context.Context, line []byte) ([]byte, error) {
	conn, err := w.dialer.DialContext(ctx, "tcp", w.address)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Debug().Msgf("error closing connection: %v", err)
		}
	}()

	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			return nil, err
		}
	}

	if _, err = conn.Write(line); err != nil {
		return nil, err
	}

	resp, err := io.ReadAll(io.LimitReader(conn, maxResponseSize))
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		return nil, errors.New("empty response")
	}
	return resp, nil
}
