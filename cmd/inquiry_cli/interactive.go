package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cloud-inquiry-balance-web/internal/platform/correlation"
	"github.com/cloud-inquiry-balance-web/internal/screen"
)

const prompt = "account> "

// interactive drives a single screen from stdin. Each line starts a new inquiry without
// waiting for the previous one; only the latest one is printed.
func interactive(ctx context.Context, sc *screen.Screen, stdin io.Reader, stdout io.Writer, out *renderer) int {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	emit := func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		fn()
		fmt.Fprint(stdout, prompt)
	}

	fmt.Fprintln(stdout, `Enter an account number, "reset" to clear or "quit" to exit.`)
	fmt.Fprint(stdout, prompt)

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "quit", "exit":
			sc.Reset()
			wg.Wait()
			return exitOK
		case "reset":
			sc.Reset()
			emit(func() { fmt.Fprintln(stdout, "Cleared.") })
			continue
		}

		// generations are taken in input order
		pending := sc.Begin(correlation.WithID(ctx, correlation.NewID()), line)

		wg.Add(1)
		go func() {
			defer wg.Done()

			state, err := pending.Wait()
			if errors.Is(err, screen.ErrSuperseded) {
				return
			}

			emit(func() {
				switch state.Phase {
				case screen.PhaseSuccess:
					_ = out.response(state.Response)
				case screen.PhaseFailure:
					_ = out.failure(state.Err)
				}
			})
		}()
	}

	wg.Wait()
	return exitOK
}
