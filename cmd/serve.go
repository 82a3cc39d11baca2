package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/schemasite/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a generated report over HTTP",
	Long:  `Starts a local HTTP server over the report directory so the pages can be browsed with working links.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port for the local server")
	serveCmd.Flags().String("dir", "", "report directory (defaults to output_dir from config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("cors-all", false, "allow requests from any origin")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir = cfg.OutputDir
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("report directory not found at %s\nRun `schemasite generate` first", dir)
	}

	port, _ := cmd.Flags().GetInt("port")
	open, _ := cmd.Flags().GetBool("open")
	allowAll, _ := cmd.Flags().GetBool("cors-all")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Serving at http://localhost:%d, press Ctrl+C to stop\n", port)
	if err := site.Serve(ctx, site.ServeConfig{Dir: dir, Port: port, Open: open, AllowAll: allowAll}, logger); err != nil {
		return fmt.Errorf("serving report: %w", err)
	}
	return nil
}
