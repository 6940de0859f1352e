// Package store connects the scheme codec to a LiteTable server. Reader is a row source that
// fetches only the declared columns, Writer is a row sink that persists mutations, and Memory is an
// in-process table implementing both for local pipelines.
package store

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/litetable/litetable-db/pkg/proto"
	"github.com/litetable/litetable-scheme/internal/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

//go:generate mockgen -destination=store_mock.go -package=store -source=store.go

// Client is the part of the LiteTable gRPC API the row source and sink use.
type Client interface {
	Read(ctx context.Context, in *proto.ReadRequest, opts ...grpc.CallOption) (*proto.LitetableData, error)
	Write(ctx context.Context, in *proto.WriteRequest, opts ...grpc.CallOption) (*proto.LitetableData, error)
}

// Connect creates a client connection to the server described by cfg. The connection is
// established lazily on the first call.
func Connect(cfg *config.Config) (*grpc.ClientConn, error) {
	if cfg == nil {
		return nil, errors.New("config required")
	}

	creds := insecure.NewCredentials()
	if cfg.TLS {
		tlsCfg, err := newTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		creds = credentials.NewTLS(tlsCfg)
	}

	conn, err := grpc.NewClient(cfg.Target(), grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", cfg.Target(), err)
	}

	log.Debug().Msgf("LiteTable client targeting %s (tls=%t)", cfg.Target(), cfg.TLS)
	return conn, nil
}

// newTLSConfig builds the client side TLS settings, pinning cfg.CertFile as the only root CA when
// it is set.
func newTLSConfig(cfg *config.Config) (*tls.Config, error) {
	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if cfg.CertFile == "" {
		return tlsCfg, nil
	}

	pem, err := os.ReadFile(cfg.CertFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", cfg.CertFile)
	}
	tlsCfg.RootCAs = pool
	return tlsCfg, nil
}

// NewClient wraps a connection in the LiteTable service client.
func NewClient(conn grpc.ClientConnInterface) Client {
	return proto.NewLitetableServiceClient(conn)
}

// isNotFound reports whether the server answered that no row matched. The server reports these
// as internal errors with a descriptive message. An unknown family is a configuration problem and
// is not treated as an empty answer.
func isNotFound(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	if st.Code() == codes.NotFound {
		return true
	}
	msg := st.Message()
	return strings.Contains(msg, "row not found") ||
		strings.Contains(msg, "no rows found") ||
		strings.Contains(msg, "no matching rows")
}
