package terminal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/runtime/logging"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/runtime/terminal/commands"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/config"
)

// CLI represents the command-line interface
type CLI struct {
	session   *commands.Session
	viper     *viper.Viper
	logOutput io.Writer
	rootCmd   *cobra.Command

	configPath string
	envFile    string
	jsonOutput bool
}

// Options contain configuration for the CLI
type Options struct {
	Factory   commands.ResponderFactory
	Input     io.Reader
	Output    io.Writer
	LogOutput io.Writer
	Args      []string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		session:   &commands.Session{Factory: opts.Factory},
		viper:     config.NewViper(),
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	if opts.Input != nil {
		cli.rootCmd.SetIn(opts.Input)
	}
	if opts.Args != nil {
		cli.rootCmd.SetArgs(opts.Args)
	}
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "responder",
		Short:             "GuardDuty finding responder",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.loadSession,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.configPath, "config", "c", "", "Path to a settings file (yaml, json or toml)")
	flags.StringVar(&cli.envFile, "env-file", ".env", "Dotenv file loaded into the environment when present")
	flags.BoolVar(&cli.jsonOutput, "json", false, "Print the raw outcome document")
	flags.String("topic-arn", "", "SNS topic receiving alerts (overrides SNS_TOPIC_ARN)")
	flags.String("profile", "", "AWS shared config profile")
	flags.String("region", "", "AWS region")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	_ = cli.viper.BindPFlag(config.KeyTopicARN, flags.Lookup("topic-arn"))
	_ = cli.viper.BindPFlag(config.KeyAWSProfile, flags.Lookup("profile"))
	_ = cli.viper.BindPFlag(config.KeyAWSRegion, flags.Lookup("region"))
	_ = cli.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	cmd.AddCommand(commands.NewInvokeCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewServeCmd(cli.session))

	return cmd
}

func (cli *CLI) loadSession(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(cli.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", cli.envFile, err)
	}

	settings, err := config.LoadSettings(cli.viper, cli.configPath)
	if err != nil {
		return err
	}

	cli.session.Settings = *settings
	cli.session.Logger = logging.New(cli.logOutput, settings.LogLevel)
	return nil
}

func (cli *CLI) reporter(cmd *cobra.Command) commands.OutcomeReporter {
	return NewReporter(cmd.OutOrStdout(), cli.jsonOutput)
}
