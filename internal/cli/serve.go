package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cipherstack/cipherstack/internal/api"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cipher pipeline over HTTP",
		Long: `Serve the cipher pipeline as a JSON API.

Endpoints:
  POST /v1/encrypt     {"text": "...", "layers": [{"algorithm": "shift", "key": "3"}]}
  POST /v1/decrypt     same body; layers are undone in reverse
  POST /v1/diagram     {"layers": [...], "format": "svg"}
  GET  /v1/algorithms  supported algorithms
  GET  /healthz        liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Addr
			}
			w := cmd.ErrOrStderr()
			printKeyValue(w, "Listening", "http://"+displayAddr(addr))
			printKeyValue(w, "Max input", fmt.Sprintf("%d bytes", c.Config.MaxInput))
			printKeyValue(w, "Diagrams", fmt.Sprintf("%d cached", c.Config.DiagramCacheSize))
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from CIPHERSTACK_ADDR or :8080)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := c.Logger.WithPrefix("api")
	srv := api.New(api.Options{
		Logger:           logger,
		MaxInput:         c.Config.MaxInput,
		DiagramCacheSize: c.Config.DiagramCacheSize,
	})
	defer srv.Close()

	server := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// displayAddr turns a bare ":port" into "localhost:port" for display.
func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
