// Command humanizectl sends text to a running humanize-engine and prints the result.
//
//	echo "text" | humanizectl -addr http://localhost:8080
//	humanizectl -brief -text "a barber booking app"
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"humanize-engine/internal/engineclient"
)

func main() {
	addr := flag.String("addr", envOr("HUMANIZE_ENGINE_URL", "http://localhost:8080"), "humanize-engine base URL")
	text := flag.String("text", "", "input text (stdin is read when empty)")
	brief := flag.Bool("brief", false, "generate a product brief from the input idea")
	fallback := flag.Bool("fallback", false, "print the original text when humanizing fails")
	timeout := flag.Duration("timeout", engineclient.DefaultTimeout, "request timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	input := *text
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
			os.Exit(1)
		}
		input = string(data)
	}
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(os.Stderr, "no input text")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	client := engineclient.New(*addr, nil, logger)

	var (
		out string
		err error
	)
	switch {
	case *brief:
		out, err = client.ProductBrief(ctx, input)
	case *fallback:
		out = client.HumanizeOrOriginal(ctx, input)
	default:
		out, err = client.Humanize(ctx, input)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "humanizectl: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
