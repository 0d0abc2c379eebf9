package printer

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/epos-dev/go-epos/logger"
	"github.com/epos-dev/go-epos/soap"
)

// Config represents the configuration parameters for a printer client.
type Config struct {
	mu sync.RWMutex

	// endpoint is the device service URL: the caller-supplied base URL with the
	// fixed service path applied.
	endpoint *url.URL

	// deviceID identifies the target device on the endpoint.
	// On most devices the local printer is "local_printer".
	// Defaults to "local_printer".
	deviceID string

	// deviceTimeout is the print timeout in milliseconds passed to the device as
	// the timeout query parameter. It bounds the device-side parser/print, and is
	// unrelated to network-level cancellation, which is driven by the request
	// context. Defaults to 60000.
	deviceTimeout uint

	// httpClient performs the HTTP exchanges.
	// Defaults to http.DefaultClient.
	httpClient *http.Client

	// autoJobID controls whether a print job ID is generated for each job and
	// sent in the envelope header. Defaults to false.
	autoJobID bool

	// jobHistorySize is the number of completed jobs retained for lookup by job
	// ID. It is only relevant when autoJobID is enabled. Defaults to 32.
	jobHistorySize int

	// logger provides a logger instance for logging dispatch events and errors.
	logger logger.Logger
}

// NewConfig creates a new client configuration with the given device base URL
// and optional functional options.
//
// The endpoint parameter is the base URL of the device, e.g.
// "http://192.168.1.194"; the fixed service path is applied to it. The opts
// parameter accepts a list of Option functions to customize the configuration.
//
// Returns a pointer to the initialized Config and an error if any occurred
// during the configuration process.
func NewConfig(endpoint string, opts ...Option) (*Config, error) {
	cfg := &Config{
		deviceID:       "local_printer",
		deviceTimeout:  60000,
		httpClient:     http.DefaultClient,
		jobHistorySize: 32,
		logger:         logger.GetLogger(),
	}

	if err := withEndpoint(endpoint).apply(cfg); err != nil {
		return cfg, err
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// Endpoint returns the device service URL.
func (cfg *Config) Endpoint() *url.URL {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	return cfg.endpoint
}

// DeviceID returns the target device ID.
func (cfg *Config) DeviceID() string {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	return cfg.deviceID
}

// DeviceTimeout returns the device-side print timeout in milliseconds.
func (cfg *Config) DeviceTimeout() uint {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	return cfg.deviceTimeout
}

// Option represents a functional option for configuring a Config.
type Option interface {
	apply(*Config) error
}

type optFunc struct {
	name      string
	applyFunc func(*Config) error
}

func (o *optFunc) apply(cfg *Config) error { return o.applyFunc(cfg) }

func newOptFunc(name string, f func(*Config) error) *optFunc {
	return &optFunc{
		name:      name,
		applyFunc: f,
	}
}

// withEndpoint parses and validates the device base URL and applies the fixed
// service path.
func withEndpoint(endpoint string) Option {
	return newOptFunc("withEndpoint", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		u, err := url.Parse(endpoint)
		if err != nil {
			return fmt.Errorf("invalid endpoint: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid endpoint scheme %q, should be http or https", u.Scheme)
		}
		if u.Host == "" {
			return errors.New("invalid endpoint, host is empty")
		}

		u.Path = soap.Endpoint
		cfg.endpoint = u

		return nil
	})
}

// WithDeviceID sets the target device ID sent as the devid query parameter.
// An error is returned if the device ID is empty or the configuration is nil.
//
// The default device ID is "local_printer".
func WithDeviceID(deviceID string) Option {
	return newOptFunc("WithDeviceID", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if deviceID == "" {
			return errors.New("device ID is empty")
		}
		cfg.deviceID = deviceID

		return nil
	})
}

// WithDeviceTimeout sets the device-side print timeout in milliseconds, sent as
// the timeout query parameter. It should be between 1000 and 600000.
// An error is returned if the value is out of range or the configuration is nil.
//
// This timeout bounds the device's own parsing and printing; network-level
// cancellation is controlled by the context passed to Print.
//
// The default timeout is 60000.
func WithDeviceTimeout(ms uint) Option {
	return newOptFunc("WithDeviceTimeout", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if ms < 1000 || ms > 600000 {
			return errors.New("device timeout is out of range [1000, 600000]")
		}
		cfg.deviceTimeout = ms

		return nil
	})
}

// WithHTTPClient sets the HTTP client used for dispatch. Use it to control
// network timeouts, TLS configuration and proxies.
// An error is returned if the client is nil or the configuration is nil.
func WithHTTPClient(client *http.Client) Option {
	return newOptFunc("WithHTTPClient", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if client == nil {
			return errors.New("http client is nil")
		}
		cfg.httpClient = client

		return nil
	})
}

// WithJobID enables generating a print job ID for each job. The ID is sent in
// the envelope header, echoed by the device, and used to retain the job result
// for lookup with Client.Job.
//
// Disabled by default.
func WithJobID(enable bool) Option {
	return newOptFunc("WithJobID", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.autoJobID = enable

		return nil
	})
}

// WithJobHistorySize sets the number of completed jobs retained for lookup by
// job ID. It should be between 1 and 4096.
// An error is returned if the value is out of range or the configuration is nil.
//
// The default size is 32.
func WithJobHistorySize(size int) Option {
	return newOptFunc("WithJobHistorySize", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if size < 1 || size > 4096 {
			return errors.New("job history size is out of range [1, 4096]")
		}
		cfg.jobHistorySize = size

		return nil
	})
}

// WithLogger sets the logger instance used by the client.
// An error is returned if the logger is nil or the configuration is nil.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if l == nil {
			return errors.New("logger is nil")
		}
		cfg.logger = l

		return nil
	})
}
