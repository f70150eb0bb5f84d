package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/omarselim0/shopmate/internal/server"
	"github.com/omarselim0/shopmate/internal/support"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server with the support and document chat APIs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		if servePort != 0 {
			cfg.Port = servePort
		}

		cat, err := loadCatalog(cfg)
		exitOnError(err)

		database, err := openDatabase(cfg)
		exitOnError(err)
		defer database.Close()

		ctx := cmd.Context()
		engine, err := createDocChatEngine(ctx, cfg, database)
		if err != nil {
			// The support API works without document chat.
			fmt.Fprintf(os.Stderr, "document chat disabled: %v\n", err)
			engine = nil
		}

		srv := server.New(
			server.Config{Port: cfg.Port, AllowAll: serveAllowAll},
			support.NewResponder(cat),
			support.NewSessionStore(database),
			engine,
		)

		// Shut down cleanly on SIGINT/SIGTERM.
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-stop
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			exitOnError(err)
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
