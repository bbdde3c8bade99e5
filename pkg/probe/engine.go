package probe

import (
	"context"
	"crypto/tls"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/projectdiscovery/gologger"
)

// DefaultTimeout bounds each phase of a probe attempt: the TCP dial and
// the TLS handshake each get their own window of this length.
const DefaultTimeout = time.Second

// Result is a successful probe: a candidate address and the wall-clock
// time from dial start to completed TLS handshake.
type Result struct {
	IP      string
	Latency time.Duration
}

// Engine probes candidate addresses by dialing address:port and
// performing a TLS handshake that verifies the configured hostname.
type Engine struct {
	host    string
	port    int
	timeout time.Duration

	// tlsConfig is cloned per attempt. Left nil, a config verifying
	// against the system root pool is used.
	tlsConfig *tls.Config
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTimeout overrides the per-phase timeout.
func WithTimeout(timeout time.Duration) EngineOption {
	return func(e *Engine) {
		if timeout > 0 {
			e.timeout = timeout
		}
	}
}

// WithTLSConfig overrides the TLS client configuration. The server name
// is still forced to the engine's target host.
func WithTLSConfig(cfg *tls.Config) EngineOption {
	return func(e *Engine) {
		e.tlsConfig = cfg
	}
}

// NewEngine creates a probe engine targeting host identity on port.
func NewEngine(host string, port int, opts ...EngineOption) *Engine {
	engine := &Engine{
		host:    host,
		port:    port,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Probe attempts every candidate address concurrently and returns the
// successful attempts with their measured latency, in completion order.
//
// Each attempt gets one goroutine, there is no concurrency cap and no
// cross-attempt cancellation: a hung attempt only delays its own result.
// Probe blocks until every attempt has finished or timed out. Individual
// failures are absorbed, the engine itself never fails.
func (e *Engine) Probe(ctx context.Context, ips []string) []Result {
	if len(ips) == 0 {
		return nil
	}

	var (
		mu      sync.Mutex
		results []Result
		wg      sync.WaitGroup
	)

	for _, ip := range ips {
		wg.Add(1)
		go func(ip string) {
			defer wg.Done()

			result, ok := e.attempt(ctx, ip)
			if !ok {
				return
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(ip)
	}
	wg.Wait()

	return results
}

// attempt dials ip:port and completes a TLS handshake against the target
// hostname. Both phases run under independent timeout windows. Latency
// covers dial start through handshake completion.
func (e *Engine) attempt(ctx context.Context, ip string) (Result, bool) {
	addr := net.JoinHostPort(ip, strconv.Itoa(e.port))

	start := time.Now()
	dialer := &net.Dialer{Timeout: e.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		gologger.Debug().Msgf("dial %s: %s", addr, err)
		return Result{}, false
	}

	// Fresh window for the handshake phase, independent of however much
	// of the dial window was used.
	if err := conn.SetDeadline(time.Now().Add(e.timeout)); err != nil {
		_ = conn.Close()
		return Result{}, false
	}

	tlsConn := tls.Client(conn, e.clientConfig())
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		gologger.Debug().Msgf("handshake %s (%s): %s", addr, e.host, err)
		_ = conn.Close()
		return Result{}, false
	}
	latency := time.Since(start)
	_ = tlsConn.Close()

	return Result{IP: ip, Latency: latency}, true
}

func (e *Engine) clientConfig() *tls.Config {
	var cfg *tls.Config
	if e.tlsConfig != nil {
		cfg = e.tlsConfig.Clone()
	} else {
		cfg = &tls.Config{MinVersion: tls.VersionTLS13}
	}
	cfg.ServerName = e.host
	return cfg
}
