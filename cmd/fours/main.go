package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/glabrego/fours-cli/internal/app"
	"github.com/glabrego/fours-cli/internal/board"
	"github.com/glabrego/fours-cli/internal/config"
	"github.com/glabrego/fours-cli/internal/fourchan"
	"github.com/glabrego/fours-cli/internal/logger"
	"github.com/glabrego/fours-cli/internal/terminal"
	"github.com/glabrego/fours-cli/internal/tui"
)

type flags struct {
	board      string
	subject    string
	id         int64
	pager      bool
	banner     bool
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("fours: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "fours",
		Short: "Read 4chan threads in the terminal",
		Long: `fours fetches a board catalog and either writes a thread to a file,
shows it in a pager, or lets you browse the catalog interactively.

With --subject the first thread whose subject contains the text is used.
With --id the thread is fetched directly. With neither, the catalog opens
in an interactive browser.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, f)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	fl := cmd.Flags()
	fl.StringVarP(&f.board, "board", "b", "", "board to read, e.g. g")
	fl.StringVarP(&f.subject, "subject", "s", "", "open the first thread whose subject contains this text")
	fl.Int64VarP(&f.id, "id", "i", 0, "open the thread with this id")
	fl.BoolVarP(&f.pager, "pager", "p", false, "show the thread in a pager instead of writing it to a file")
	fl.BoolVar(&f.banner, "banner", false, "surround the rendered thread with its URL")
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	_ = cmd.MarkFlagRequired("board")
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, f flags) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if cmd.Flags().Changed("banner") {
		cfg.Banner = f.banner
	}

	logCloser, err := logger.Open(cfg.Log.File, cfg.Log.Level, cfg.Log.Format == "json")
	if err != nil {
		return err
	}
	defer logCloser.Close()

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	client := fourchan.NewClient(cfg.APIBaseURL, cfg.Links(), cfg.RequestInterval, httpClient)
	service := app.NewService(client, cfg.RenderOptions(), cfg.OutputDir,
		app.WithTUIOptions(tui.WithNumbers(cfg.Numbers), tui.WithTheme(cfg.UITheme())),
	)

	var thread *board.Thread
	switch {
	case f.subject != "":
		thread, err = service.FindThread(ctx, f.board, f.subject)
	case f.id != 0:
		thread, err = service.Thread(ctx, f.board, f.id)
	default:
		if err := requireTTY(); err != nil {
			return err
		}
		return service.Browse(ctx, f.board)
	}
	if errors.Is(err, board.ErrNotFound) {
		slog.Info("no matching thread", "board", f.board, "subject", f.subject)
		fmt.Fprintf(cmd.ErrOrStderr(), "no thread on /%s/ matches %q\n", f.board, f.subject)
		return nil
	}
	if err != nil {
		return err
	}

	if f.pager {
		if err := requireTTY(); err != nil {
			return err
		}
		return service.Page(ctx, thread)
	}
	path, err := service.Write(thread)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func requireTTY() error {
	if err := terminal.Require(os.Stdin); err != nil {
		return err
	}
	return terminal.Require(os.Stdout)
}
