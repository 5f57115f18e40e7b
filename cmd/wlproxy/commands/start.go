package commands

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mahkoh/wl-proxy-sub012/internal/engine"
	"github.com/mahkoh/wl-proxy-sub012/internal/logger"
	"github.com/mahkoh/wl-proxy-sub012/internal/metrics"
	"github.com/mahkoh/wl-proxy-sub012/pkg/config"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Wayland proxy",
	Long: `Start wlproxy: dial the upstream compositor socket, listen for
downstream clients on the proxy's own socket, and relay protocol traffic
between them.

Use --config to specify a custom configuration file, or it will use the
default location at $XDG_CONFIG_HOME/wlproxy/config.yaml.

Examples:
  # Start with default config location
  wlproxy start

  # Start with a custom config file
  wlproxy start --config /etc/wlproxy/config.yaml

  # Override settings with environment variables
  WLPROXY_LOGGING_LEVEL=DEBUG wlproxy start`,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	upstreamPath, err := resolveUpstreamPath(cfg)
	if err != nil {
		return err
	}
	listenPath, err := resolveListenPath(cfg)
	if err != nil {
		return err
	}

	logger.Info("dialing upstream compositor", "path", upstreamPath)
	upstream, err := net.DialTimeout("unix", upstreamPath, cfg.Upstream.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("failed to dial upstream compositor at %s: %w", upstreamPath, err)
	}
	upstreamConn, ok := upstream.(*net.UnixConn)
	if !ok {
		return fmt.Errorf("upstream connection at %s is not a unix socket", upstreamPath)
	}

	state := engine.NewState(upstreamConn, cfg.Logging.Level == "DEBUG")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
		logger.Info("metrics server listening", "addr", cfg.Metrics.Addr)
	}

	eng := engine.NewEngine(state, m)

	if err := os.Remove(listenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale socket %s: %w", listenPath, err)
	}
	listener, err := net.Listen("unix", listenPath)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", listenPath, err)
	}
	defer listener.Close()
	if unixListener, ok := listener.(*net.UnixListener); ok {
		unixListener.SetUnlinkOnClose(true)
	}

	logger.Info("listening for clients", "path", listenPath, "backlog", cfg.Listen.Backlog)

	upstreamDone := make(chan error, 1)
	go func() { upstreamDone <- eng.ServeUpstream() }()

	acceptDone := make(chan error, 1)
	go func() { acceptDone <- acceptLoop(eng, listener) }()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("wlproxy is running. Press Ctrl+C to stop.")

	select {
	case <-sigChan:
		signal.Stop(sigChan)
		logger.Info("shutdown signal received")
	case err := <-upstreamDone:
		// Loss of the upstream socket is the only fatal
		// condition. Tear down every client endpoint and exit.
		logger.Error("upstream connection lost", "error", err)
	case err := <-acceptDone:
		logger.Error("accept loop stopped", "error", err)
	}

	_ = listener.Close()
	eng.Shutdown()
	_ = upstreamConn.Close()

	logger.Info("wlproxy stopped")
	return nil
}

// acceptLoop accepts downstream client connections and hands each one to
// its own Engine.ServeClient goroutine. Socket acceptance itself -
// AF_UNIX peer credentials, backlog tuning beyond listen(2)'s default -
// is deliberately out of the engine's core scope; this loop
// is the minimal amount needed to drive the engine end to end.
func acceptLoop(eng *engine.Engine, listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		unixConn, ok := conn.(*net.UnixConn)
		if !ok {
			conn.Close()
			continue
		}

		ep := engine.NewEndpoint(eng.State.NextEndpointID(), unixConn)
		logger.Info("client connected", "endpoint_id", ep.ID, "trace_id", ep.TraceID)

		go func() {
			err := eng.ServeClient(ep)
			logger.Info("client disconnected", "endpoint_id", ep.ID, "trace_id", ep.TraceID, "error", err)
		}()
	}
}

// resolveUpstreamPath follows the same convention libwayland clients use
// to find the real compositor: an explicit socket_path if configured,
// otherwise $XDG_RUNTIME_DIR/$WAYLAND_DISPLAY (display name defaults to
// "wayland-0").
func resolveUpstreamPath(cfg *config.Config) (string, error) {
	if cfg.Upstream.SocketPath != "" {
		return cfg.Upstream.SocketPath, nil
	}

	runtimeDir, err := xdgRuntimeDir()
	if err != nil {
		return "", err
	}
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}
	if filepath.IsAbs(display) {
		return display, nil
	}
	return filepath.Join(runtimeDir, display), nil
}

// resolveListenPath computes the path of the proxy's own client-facing
// socket, using the same XDG_RUNTIME_DIR convention as the upstream.
func resolveListenPath(cfg *config.Config) (string, error) {
	dir := cfg.Listen.Dir
	if dir == "" {
		runtimeDir, err := xdgRuntimeDir()
		if err != nil {
			return "", err
		}
		dir = runtimeDir
	}
	return filepath.Join(dir, cfg.Listen.DisplayName), nil
}

func xdgRuntimeDir() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir, nil
	}
	return "", fmt.Errorf("XDG_RUNTIME_DIR is not set and no explicit socket path was configured")
}
