package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloud-inquiry-balance-web/internal/config"
	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/cloud-inquiry-balance-web/internal/inquiry/batch"
	"github.com/cloud-inquiry-balance-web/internal/inquiry/client"
	"github.com/cloud-inquiry-balance-web/internal/inquiry/publishing"
	"github.com/cloud-inquiry-balance-web/internal/logger"
	"github.com/cloud-inquiry-balance-web/internal/platform/correlation"
	"github.com/cloud-inquiry-balance-web/internal/platform/messaging/consumers"
	"github.com/cloud-inquiry-balance-web/internal/platform/messaging/producers"
	"github.com/cloud-inquiry-balance-web/internal/screen"
	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"
)

// Exit codes
const (
	exitOK          = 0
	exitUsage       = 1
	exitFailed      = 2
	exitUnavailable = 3
)

type options struct {
	account     string
	interactive bool
	health      bool
	watch       bool
	asJSON      bool
	accounts    []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	cfg, err := config.LoadConfigWithOutput("inquiry_cli", stderr)
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return exitUsage
	}

	log := logger.New(stderr, cfg)
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := &renderer{out: stdout, asJSON: opts.asJSON, defaultCurrency: cfg.UI.DefaultCurrency}

	if opts.watch {
		return watch(ctx, log, cfg, out)
	}

	publisher, err := producers.NewEventPublisher(ctx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize inquiry event publisher", "error", err)
		return exitUsage
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Error closing inquiry event publisher", "error", err)
		}
	}()

	inquirer := publishing.New(client.New(log, &cfg.Backend), publisher, "cli", log)

	switch {
	case opts.health:
		return healthCheck(ctx, inquirer, out)
	case opts.interactive:
		return interactive(ctx, screen.New(inquirer, log), stdin, stdout, out)
	case opts.account != "":
		return inquireOne(ctx, inquirer, opts.account, out)
	default:
		return inquireBatch(ctx, log, cfg, inquirer, opts.accounts, out)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("inquiry_cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.account, "account", "a", "", "account number for a single inquiry")
	fs.BoolVarP(&opts.interactive, "interactive", "i", false, "read account numbers from stdin, one per line")
	fs.BoolVar(&opts.health, "health", false, "print the backend health payload")
	fs.BoolVarP(&opts.watch, "watch", "w", false, "tail inquiry outcome events from Kafka")
	fs.BoolVar(&opts.asJSON, "json", false, "print raw JSON instead of formatted text")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: inquiry_cli [flags] [account ...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.accounts = fs.Args()

	if !opts.health && !opts.interactive && !opts.watch && opts.account == "" && len(opts.accounts) == 0 {
		fs.Usage()
		return opts, fmt.Errorf("no account given")
	}
	return opts, nil
}

func inquireOne(ctx context.Context, inquirer inquiry.Inquirer, account string, out *renderer) int {
	ctx = correlation.WithID(ctx, correlation.NewID())

	resp, err := inquirer.InquiryBalance(ctx, account)
	if err != nil {
		_ = out.failure(inquiry.AsAPIError(err))
		return exitCode(err)
	}
	if err := out.response(resp); err != nil {
		return exitFailed
	}
	return exitOK
}

func inquireBatch(ctx context.Context, log *slog.Logger, cfg *config.Config, inquirer inquiry.Inquirer, accounts []string, out *renderer) int {
	svc, err := batch.NewService(inquirer, cfg.WorkerPool, log)
	if err != nil {
		log.Error("Failed to initialize worker pool", "error", err)
		return exitUsage
	}
	defer svc.Shutdown()

	results := svc.InquireAll(ctx, accounts)
	if err := out.results(results); err != nil {
		return exitFailed
	}

	code := exitOK
	for _, res := range results {
		if res.Err != nil {
			code = max(code, exitCode(res.Err))
		}
	}
	return code
}

func healthCheck(ctx context.Context, inquirer inquiry.Inquirer, out *renderer) int {
	status, err := inquirer.HealthCheck(ctx)
	if err != nil {
		_ = out.failure(inquiry.AsAPIError(err))
		return exitCode(err)
	}
	if err := out.health(status); err != nil {
		return exitFailed
	}
	return exitOK
}

func watch(ctx context.Context, log *slog.Logger, cfg *config.Config, out *renderer) int {
	if !cfg.Kafka.Enabled {
		log.Error("Event watch requires KAFKA_ENABLED=true")
		return exitUsage
	}

	consumer := consumers.NewEventConsumer(log, &cfg.Kafka)
	defer func() {
		if err := consumer.Close(); err != nil {
			log.Error("Error closing inquiry event consumer", "error", err)
		}
	}()

	if err := consumer.Consume(ctx, func(_ context.Context, event *inquiry.Event) error {
		return out.event(event)
	}); err != nil {
		log.Error("Event watch stopped", "error", err)
		return exitFailed
	}
	return exitOK
}

func exitCode(err error) int {
	if client.IsUnavailable(err) {
		return exitUnavailable
	}
	return exitFailed
}
