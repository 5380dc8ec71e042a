package cli

import (
	"bufio"
	"fmt"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

func (a *App) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands read from standard input against one open bus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				words, err := shlex.Split(scanner.Text())
				if err != nil {
					fmt.Fprintln(out, "error:", err)
					continue
				}
				if len(words) == 0 {
					continue
				}
				if words[0] == "exit" || words[0] == "quit" {
					return nil
				}
				sub := &cobra.Command{
					Use:           "rtcctl",
					SilenceErrors: true,
					SilenceUsage:  true,
				}
				sub.AddCommand(a.commands()...)
				sub.SetArgs(words)
				sub.SetOut(out)
				sub.SetErr(out)
				if err := sub.Execute(); err != nil {
					fmt.Fprintln(out, "error:", err)
				}
			}
		},
	}
}
