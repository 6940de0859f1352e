package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/rs/zerolog/log"
)

// ErrEmptyValue is returned for a zero-length cell that has no way to reach the server: the
// gRPC service drops empty values and then rejects the write.
var ErrEmptyValue = errors.New("zero-length value cannot be written over gRPC")

// Writer is a row sink persisting mutations to a LiteTable server, one write per family.
// Families holding a zero-length cell are written through the text protocol instead.
type Writer struct {
	client Client
	lines  *LineWriter
}

type WriterConfig struct {
	Client Client
	// Lines carries families with zero-length cells. Without it such families fail with
	// ErrEmptyValue.
	Lines *LineWriter
}

func (c *WriterConfig) validate() error {
	var errGrp []error
	if c.Client == nil {
		errGrp = append(errGrp, errors.New("client required"))
	}
	return errors.Join(errGrp...)
}

// NewWriter creates a row sink.
func NewWriter(cfg *WriterConfig) (*Writer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Writer{client: cfg.Client, lines: cfg.Lines}, nil
}

// Collect writes every family of m. The row key is taken from the mutation; key is a routing key
// the server has no use for and is ignored.
func (w *Writer) Collect(ctx context.Context, key []byte, m *litetable.Mutation) error {
	if m == nil {
		return errors.New("mutation required")
	}
	if key != nil {
		log.Debug().Msgf("ignoring routing key %q for row %s", key, m.Key)
	}

	for _, family := range m.Families() {
		if m.HasEmptyValue(family) {
			if w.lines == nil {
				return fmt.Errorf("family %s row %s: %w", family, m.Key, ErrEmptyValue)
			}
			if err := w.lines.writeFamily(ctx, m, family); err != nil {
				return err
			}
			continue
		}

		req := convertToWriteRequest(m, family)
		log.Debug().Msgf("writing %d qualifiers to family %s row %s", len(req.GetQualifiers()),
			family, m.Key)

		if _, err := w.client.Write(ctx, req); err != nil {
			return fmt.Errorf("failed to write family %s row %s: %w", family, m.Key, err)
		}
	}
	return nil
}
