package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/solvelysaid/orderdesk/internal/chat"
	"github.com/solvelysaid/orderdesk/internal/llm"
)

func newChatCmd() *cobra.Command {
	var (
		configPath string
		language   string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the ordering assistant from the terminal",
		Long: `Runs a local REPL against the live completion backend with an in-memory
session. Useful for trying prompts and classifier commands without the API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, configPath, language)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "orderdesk.yaml", "path to Orderdesk config file")
	cmd.Flags().StringVarP(&language, "language", "l", chat.LangThai, "conversation language (th or en)")
	return cmd
}

func runChat(cmd *cobra.Command, configPath, language string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	llmClient, err := llm.New(llm.Opts{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      os.Getenv(cfg.LLM.APIKeyEnv),
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
	})
	if err != nil {
		return err
	}

	engine, err := chat.NewEngine(chat.EngineOpts{
		Store:              chat.NewMemoryStore(),
		LLM:                llmClient,
		LLMTimeout:         cfg.LLMTimeout(),
		MaxTranscriptTurns: cfg.Sessions.MaxTranscriptTurns,
	})
	if err != nil {
		return err
	}

	t := term.NewTerminal(os.Stdin, "> ")
	fmt.Fprintf(t, "Orderdesk REPL (%s) — Ctrl-D to quit\n", language)

	for {
		line, err := readLine(t)
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(t, "Fatal:", err)
			}
			return nil
		}
		if line == "" {
			continue
		}

		reply, err := engine.Process(cmd.Context(), "repl", line, language)
		if err != nil {
			fmt.Fprintln(t, "Error:", err)
			continue
		}
		fmt.Fprintln(t, reply)
	}
}

// readLine reads one line with the terminal in raw mode, restoring it before
// returning so the reply prints normally.
func readLine(t *term.Terminal) (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}

	if width, height, err := term.GetSize(fd); err == nil {
		t.SetSize(width, height)
	}

	line, readErr := t.ReadLine()
	if restoreErr := term.Restore(fd, oldState); restoreErr != nil {
		return "", restoreErr
	}
	return line, readErr
}
