package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"deskpilot/config"
	"deskpilot/internal/app"
	"deskpilot/internal/model"
	"deskpilot/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build pipeline: ", err)
		return
	}

	fmt.Println("deskpilot ready. Type a command, 'stats', 'clear', or 'exit'.")

	scope := model.NewScope()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			fmt.Println("Goodbye.")
			return
		case "stats":
			s := router.Stats()
			fmt.Printf("local=%d multi=%d goal=%d full=%d chat=%d tokens_saved=%d learned=%d\n",
				s.LocalCommands, s.MultiTask, s.GoalDriven, s.GeminiFull, s.GeminiChat,
				s.TokensSaved, s.CapabilitiesLearned)
			continue
		case "clear":
			router.ClearHistory()
			fmt.Println("Conversation history cleared.")
			continue
		}

		scope = scope.NextRequest()
		reqCtx := context.WithValue(ctx, log.RequestIDKey, scope.RequestID)

		out := router.Process(reqCtx, line)
		status := "ok"
		if !out.Success {
			status = "failed"
		}
		fmt.Printf("[%s] %s\n", status, out.Response)
	}
}
