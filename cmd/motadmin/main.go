// motadmin is the terminal admin console for MOT Booker. It talks to the
// booking backend directly, keeping the staff session in a cookie jar.
package main

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/stpnv0/MOTBooker/internal/backend"
	"github.com/stpnv0/MOTBooker/internal/config"
	"github.com/stpnv0/MOTBooker/internal/liststate"
	"github.com/stpnv0/MOTBooker/internal/refund"
	"github.com/stpnv0/MOTBooker/internal/service"
	"github.com/stpnv0/MOTBooker/internal/tui"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const listPath = "/admin/bookings"

type options struct {
	backendURL string
	timeout    time.Duration
	debounce   time.Duration
	page       int
	pageSize   int
	search     string
	view       string
	actor      string
	logLevel   string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	var opts options
	flagSet := pflag.NewFlagSet("motadmin", pflag.ContinueOnError)
	flagSet.StringVar(&opts.backendURL, "backend-url", envOr("BACKEND_BASE_URL", "http://localhost:5000"), "booking backend base URL")
	flagSet.DurationVar(&opts.timeout, "timeout", 120*time.Second, "timeout of every backend call")
	flagSet.DurationVar(&opts.debounce, "debounce", liststate.DefaultDebounce, "search input debounce window")
	flagSet.IntVar(&opts.page, "page", 0, "zero-based page index to open")
	flagSet.IntVar(&opts.pageSize, "page-size", liststate.DefaultPageSize, "rows per page")
	flagSet.StringVar(&opts.search, "search", "", "initial search term")
	flagSet.StringVar(&opts.view, "view", "", "shared list URL or query string (page=..&pageSize=..&search=..)")
	flagSet.StringVar(&opts.actor, "user", os.Getenv("USER"), "name recorded as the acting staff member")
	flagSet.StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	initial, err := initialView(flagSet, opts)
	if err != nil {
		return err
	}

	log, err := logger.InitLogger(
		logger.Engine("slog"),
		"MOTBooker-admin",
		"release",
		logger.WithLevel(config.LoggerConfig{Level: opts.logLevel}.LogLevel()),
	)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("cookie jar: %w", err)
	}
	client, err := backend.New(opts.backendURL, opts.timeout,
		backend.WithCookieJar(jar),
		backend.WithRetry(retry.Strategy{Attempts: 3, Delay: 300 * time.Millisecond, Backoff: 2}),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(service.WithActor(context.Background(), opts.actor))
	defer cancel()

	bookings := service.NewBookingService(client, refund.NewDefaultRegistry(client), nil, nil, log)
	slots := service.NewSlotService(client, nil, nil, log)
	auth := service.NewAuthService(client, log)

	list := liststate.New(ctx, bookings, bookings, initial, log, liststate.WithDebounce(opts.debounce))
	defer list.Close()

	program := tea.NewProgram(tui.NewModel(ctx, list, slots, auth), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}

	// Leave the current view behind so it can be reopened or shared.
	fmt.Println(list.Snapshot().View.URL(listPath))
	return nil
}

// initialView restores the list view from --view, then applies any
// explicitly set page flags on top.
func initialView(flagSet *pflag.FlagSet, opts options) (liststate.ViewState, error) {
	q := url.Values{}
	if opts.view != "" {
		raw := opts.view
		if u, err := url.Parse(raw); err == nil && u.RawQuery != "" {
			raw = u.RawQuery
		}
		parsed, err := url.ParseQuery(raw)
		if err != nil {
			return liststate.ViewState{}, fmt.Errorf("parse --view: %w", err)
		}
		q = parsed
	}

	if flagSet.Changed("page") || !q.Has(liststate.ParamPage) {
		q.Set(liststate.ParamPage, strconv.Itoa(opts.page))
	}
	if flagSet.Changed("page-size") || !q.Has(liststate.ParamPageSize) {
		q.Set(liststate.ParamPageSize, strconv.Itoa(opts.pageSize))
	}
	if flagSet.Changed("search") {
		q.Set(liststate.ParamSearch, opts.search)
	}

	return liststate.FromQuery(q), nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
