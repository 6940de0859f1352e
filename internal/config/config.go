package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/rs/zerolog"
)

const (
	configFileName = "litetable.conf"

	defaultServerAddress = "127.0.0.1"
	defaultServerPort    = "9443"
	defaultGRPCPort      = "50051"
)

// Config is the connection configuration of the LiteTable store the row source and sink talk to.
// It is read from the same litetable.conf the server uses.
type Config struct {
	ServerAddress string
	// ServerPort is the text protocol listener, GRPCPort the gRPC service.
	ServerPort string
	GRPCPort   string

	// TLS dials the server with transport security. CertFile optionally pins the CA certificate.
	TLS      bool
	CertFile string

	Debug bool
}

func (c *Config) validate() error {
	var errGrp []error
	if c.ServerAddress == "" {
		errGrp = append(errGrp, errors.New("server address required"))
	}
	if err := validatePort("server", c.ServerPort); err != nil {
		errGrp = append(errGrp, err)
	}
	if err := validatePort("grpc", c.GRPCPort); err != nil {
		errGrp = append(errGrp, err)
	}
	if c.CertFile != "" && !c.TLS {
		errGrp = append(errGrp, errors.New("cert_file requires tls"))
	}
	return errors.Join(errGrp...)
}

func validatePort(name, port string) error {
	if port == "" {
		return fmt.Errorf("%s port required", name)
	}
	if p, err := strconv.Atoi(port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid %s port: %s", name, port)
	}
	return nil
}

// NewConfig reads litetable.conf from the LiteTable directory.
func NewConfig() (*Config, error) {
	configPath, err := litetable.GetLitetableFile(configFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to get LiteTable directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("LiteTable is not installed or configuration file not found")
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads key = value lines. Unknown keys are ignored since the file is shared with the server.
func Parse(r io.Reader) (*Config, error) {
	config := &Config{
		ServerAddress: defaultServerAddress,
		ServerPort:    defaultServerPort,
		GRPCPort:      defaultGRPCPort,
	}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "server_address":
			config.ServerAddress = value
		case "server_port":
			config.ServerPort = value
		case "grpc_port":
			config.GRPCPort = value
		case "debug":
			config.Debug = value == "true"
		case "tls":
			config.TLS = value == "true"
		case "cert_file":
			config.CertFile = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Target is the host:port the gRPC client dials.
func (c *Config) Target() string {
	return net.JoinHostPort(c.ServerAddress, c.GRPCPort)
}

// ProtocolTarget is the host:port of the text protocol listener.
func (c *Config) ProtocolTarget() string {
	return net.JoinHostPort(c.ServerAddress, c.ServerPort)
}

// LogLevel maps the debug flag onto a zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
