package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"eduai/internal/client"
	"eduai/internal/ui"
)

const (
	ENV_PREFIX       = "EDUAI"
	ENV_ENDPOINT     = "ENDPOINT"
	DEFAULT_ENDPOINT = "http://localhost:5050"
)

func RootCommand(svc Services) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "eduai",
		Short: "Ask the eduAI educational assistant questions from the command line.",
		Args:  cobra.NoArgs,
		Example: `
eduai                                   # Interactive chat
eduai -m "Explain Newton's laws"        # Ask one question
echo "What is HTTPS?" | eduai --plain   # Line mode, one question per line
	`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, svc)
		},
	}

	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().String("endpoint", DEFAULT_ENDPOINT,
		fmt.Sprintf("Base URL of the eduAI server. (env: %s_%s)", ENV_PREFIX, ENV_ENDPOINT))
	rootCmd.Flags().StringP("message", "m", "", "Ask a single question and print the reply.")
	rootCmd.Flags().Bool("plain", false, "Read questions line by line from stdin instead of the interactive UI.")

	v.BindPFlag(ENV_ENDPOINT, rootCmd.Flags().Lookup("endpoint"))
	v.SetEnvPrefix(ENV_PREFIX)
	v.AutomaticEnv()

	return rootCmd
}

func run(cmd *cobra.Command, v *viper.Viper, svc Services) error {
	endpoint := v.GetString(ENV_ENDPOINT)
	message, _ := cmd.Flags().GetString("message")
	plain, _ := cmd.Flags().GetBool("plain")

	session := client.NewSession(svc.NewTransport(endpoint))
	terminal := svc.IsTerminal()

	if message != "" {
		if !session.Submit(cmd.Context(), message) {
			return errors.New("message must be a non-empty string")
		}
		return printOutcome(cmd.OutOrStdout(), session, terminal, svc)
	}

	if terminal && !plain {
		model := ui.InitialModel(ui.InitialModelOptions{
			Session: session,
			Context: cmd.Context(),
			Render:  svc.FormatMarkdown,
		})
		if _, err := svc.TUI.Run(model); err != nil {
			return fmt.Errorf("error running interactive mode: %v", err)
		}
		return nil
	}

	return runLines(cmd, session, terminal, svc)
}

func runLines(cmd *cobra.Command, session *client.Session, terminal bool, svc Services) error {
	var failed bool
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if !session.Submit(cmd.Context(), scanner.Text()) {
			continue
		}
		if err := printOutcome(cmd.OutOrStdout(), session, terminal, svc); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %v", err)
	}
	if failed {
		return errors.New(client.GenericErrorMessage)
	}
	return nil
}

// printOutcome writes the latest reply, or returns the session's error.
func printOutcome(w io.Writer, session *client.Session, terminal bool, svc Services) error {
	if e := session.LastError(); e != "" {
		return errors.New(e)
	}

	transcript := session.Transcript()
	reply := transcript[len(transcript)-1].Content
	if terminal {
		if out, err := svc.FormatMarkdown(reply); err == nil {
			reply = out
		}
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(reply, "\n"))
	return err
}
