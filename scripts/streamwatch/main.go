// Command streamwatch tails the reminder stream of a running server and
// prints every broadcast frame. Useful when tuning trigger cadences locally.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "server base URL")
	prefix := flag.String("prefix", "/api", "API prefix")
	quiet := flag.Bool("quiet", false, "suppress heartbeat frames")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	endpoint := strings.TrimRight(*baseURL, "/") + *prefix + "/notifications/stream"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("unexpected status %s", resp.Status)
	}
	fmt.Fprintf(os.Stderr, "connected to %s\n", endpoint)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var event string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if *quiet && event == "ping" {
				continue
			}
			fmt.Printf("%s  %-14s %s\n",
				time.Now().Format("15:04:05"),
				event,
				strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		log.Fatalf("stream read: %v", err)
	}
}
