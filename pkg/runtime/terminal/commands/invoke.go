package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
)

type InvokeCmd struct {
	eventPath string
	session   *Session
	reporter  func(cmd *cobra.Command) OutcomeReporter
}

func NewInvokeCmd(session *Session, reporter func(cmd *cobra.Command) OutcomeReporter) *cobra.Command {
	ic := &InvokeCmd{session: session, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run the responder once against a GuardDuty finding event",
		Long: "Reads an EventBridge GuardDuty finding event, stops the instance it names and " +
			"publishes the alert, exactly as the Lambda function would.",
		RunE: ic.run,
	}

	cmd.Flags().StringVarP(&ic.eventPath, "event", "e", "-", "Path to the event JSON file (- for stdin)")

	return cmd
}

func (ic *InvokeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := ic.session.Logger.WithContext(cmd.Context())

	payload, err := ic.readEvent(cmd)
	if err != nil {
		return err
	}

	handler, err := ic.session.Factory(ctx, ic.session.Settings)
	if err != nil {
		return err
	}

	outcome, err := handler.Handle(ctx, json.RawMessage(payload))
	if err != nil {
		return fmt.Errorf("responder failed: %w", err)
	}

	if err := ic.reporter(cmd).Handle(outcome); err != nil {
		return err
	}
	if outcome.StatusCode != domain.StatusSuccess {
		return fmt.Errorf("responder returned status %d", outcome.StatusCode)
	}
	return nil
}

func (ic *InvokeCmd) readEvent(cmd *cobra.Command) ([]byte, error) {
	if ic.eventPath == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read event from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(ic.eventPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file %s: %w", ic.eventPath, err)
	}
	return data, nil
}
