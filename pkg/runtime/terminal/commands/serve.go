package commands

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/server"
)

type ServeCmd struct {
	addr            string
	shutdownTimeout time.Duration
	session         *Session
}

func NewServeCmd(session *Session) *cobra.Command {
	sc := &ServeCmd{session: session}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the responder on a local HTTP endpoint (POST /api/v1/findings)",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.addr, "addr", "127.0.0.1:8080", "Address to listen on")
	cmd.Flags().DurationVar(&sc.shutdownTimeout, "shutdown-timeout", 10*time.Second, "Graceful shutdown deadline")

	return cmd
}

func (sc *ServeCmd) run(cmd *cobra.Command, _ []string) error {
	logger := sc.session.Logger
	ctx := logger.WithContext(cmd.Context())

	handler, err := sc.session.Factory(ctx, sc.session.Settings)
	if err != nil {
		return err
	}

	if sc.session.Settings.TopicARN == "" {
		logger.Warn().Msg("SNS_TOPIC_ARN is not set; every finding will fail after the instance is stopped")
	}

	api := server.NewWebAPI(server.Config{
		Addr:            sc.addr,
		ShutdownTimeout: sc.shutdownTimeout,
		Dependencies: server.Dependencies{
			Responder: handler,
			Logger:    logger,
		},
	})
	return api.Start()
}
