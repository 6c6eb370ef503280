package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/information-sharing-networks/rightsignature-go/internal/config"
	"github.com/information-sharing-networks/rightsignature-go/internal/logger"
	"github.com/information-sharing-networks/rightsignature-go/internal/version"
	"github.com/information-sharing-networks/rightsignature-go/pkg/rightsignature"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once configuration is loaded
type app struct {
	cfg       *config.ClientEnvironment
	appLogger *slog.Logger
	client    *rightsignature.Client

	// fs is where documents and options files are read from
	fs afero.Fs
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	rootCmd := &cobra.Command{
		Use:               "rsclient",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "RightSignature API client",
		Long:              `Manage RightSignature templates and documents from the command line`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.cfg, err = config.NewClientConfig()
			if err != nil {
				log.Printf("failed to load configuration: %v", err.Error())
				return err
			}

			a.appLogger = logger.InitLogger(logger.ParseLogLevel(a.cfg.LogLevel), a.cfg.Environment)
			a.appLogger.Debug("Configuration loaded",
				slog.String("ENVIRONMENT", a.cfg.Environment),
				slog.String("RIGHTSIGNATURE_BASE_URL", a.cfg.BaseURL),
				slog.Duration("HTTP_TIMEOUT", a.cfg.HTTPTimeout),
				slog.Int("RATE_LIMIT_RPS", int(a.cfg.RateLimitRPS)),
			)

			a.client = rightsignature.New(a.cfg.APIToken,
				rightsignature.WithBaseURL(a.cfg.BaseURL),
				rightsignature.WithHTTPClient(&http.Client{Timeout: a.cfg.HTTPTimeout}),
				rightsignature.WithRateLimit(float64(a.cfg.RateLimitRPS), int(a.cfg.RateLimitBurst)),
				rightsignature.WithLogger(a.appLogger),
				rightsignature.WithFs(a.fs),
			)
			return nil
		},
	}

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	rootCmd.AddCommand(newTemplateCmd(a))
	rootCmd.AddCommand(newDocumentCmd(a))
	return rootCmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
