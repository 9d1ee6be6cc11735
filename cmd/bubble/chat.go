package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/bubble/conversation"
	"honnef.co/go/bubble/internal/chatui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive terminal chat",
	Long: `Starts a terminal chat. Typed text appears as a bubble right away, Enter
sends it, and sent messages disappear after the configured expiry.

Keys: enter sends, ctrl+l clears, esc or ctrl+c quits.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	conv := conversation.New(
		conversation.WithExpiry(cfg.Expiry),
		conversation.WithLogger(logger.Named("conversation")),
	)
	defer conv.Close()

	logger.Info("Starting chat", zap.Duration("expiry", cfg.Expiry))
	return chatui.Run(ctx, chatui.New(conv, palette, logger.Named("chatui")))
}
