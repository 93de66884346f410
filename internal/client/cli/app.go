package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophaccount/internal/client/appctx"
	"github.com/dmitrijs2005/gophaccount/internal/client/client"
	"github.com/dmitrijs2005/gophaccount/internal/client/config"
	"github.com/dmitrijs2005/gophaccount/internal/client/flows"
	"github.com/dmitrijs2005/gophaccount/internal/client/models"
	"github.com/dmitrijs2005/gophaccount/internal/client/navigation"
	"github.com/dmitrijs2005/gophaccount/internal/logging"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	api          client.Client
	appCtx       *appctx.Context
	nav          *navigation.Stack
	registration *flows.Registration
	settings     *flows.Settings
	reader       *bufio.Reader
	out          io.Writer

	bannerMu   sync.Mutex
	lastBanner models.Notification
}

// NewApp builds the client from c: a text logger on stderr and an HTTP
// user-service client on c.APIURL.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel, "text")

	api, err := client.NewHTTPClient(c.APIURL, c.RequestTimeout, client.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("api client init error: %w", err)
	}

	return newApp(c, api, logger, flows.RealClock, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, api client.Client, logger logging.Logger, clock flows.Clock, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		logger: logger,
		api:    api,
		appCtx: appctx.New(c.DarkMode),
		nav:    navigation.NewStack(navigation.ScreenLogin),
		reader: reader,
		out:    out,
	}

	a.registration = flows.NewRegistration(api, a.nav, logger)
	a.settings = flows.NewSettings(api, a.appCtx, a.nav,
		flows.WithClock(clock),
		flows.WithNotificationTTL(c.NotificationTTL),
		flows.WithLogger(logger),
		flows.WithOnChange(a.trackBanner),
	)
	return a
}

// Run starts the REPL and releases the API client when it returns.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.api.Close(); err != nil {
			a.logger.Warn(ctx, "close api client", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) screen() navigation.Screen {
	return a.nav.Current()
}

// trackBanner logs banner transitions, including silent expiry.
func (a *App) trackBanner(v flows.SettingsView) {
	a.bannerMu.Lock()
	prev := a.lastBanner
	a.lastBanner = v.Notification
	a.bannerMu.Unlock()

	if v.Notification != prev {
		a.logger.Debug(context.Background(), "banner changed", "from", prev.String(), "to", v.Notification.String())
	}
}
