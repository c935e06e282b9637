// Package bot assembles the hotel search bot: infrastructure bootstrap,
// domain services and Telegram wiring.
package bot

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/staybot/bot/flow"
	"github.com/m3rciful/staybot/bot/history"
	"github.com/m3rciful/staybot/bot/hotels"
	"github.com/m3rciful/staybot/bot/session"
	"github.com/m3rciful/staybot/core/bootstrap"
	coreconfig "github.com/m3rciful/staybot/core/config"
	tg "github.com/m3rciful/staybot/core/telegram"
	"github.com/m3rciful/staybot/core/telegram/router"
)

// Carrier adapts a loaded configuration to the runner contract.
type Carrier struct {
	cfg *coreconfig.Config
}

// LoadConfig reads and validates the configuration file.
func LoadConfig(path string) (*Carrier, error) {
	cfg, err := coreconfig.Load(path)
	if err != nil {
		return nil, err
	}
	return &Carrier{cfg: cfg}, nil
}

// CoreConfig exposes the embedded configuration.
func (c *Carrier) CoreConfig() *coreconfig.Config {
	return c.cfg
}

// App is the fully assembled bot, ready to produce Telegram run options.
type App struct {
	cfg  *coreconfig.Config
	db   *sqlx.DB
	flow *flow.Flow
	reg  *tg.Registry
}

// New bootstraps infrastructure (logger, database, migrations) and wires
// the conversation flow into a command/callback registry.
func New(cfg *coreconfig.Config) (*App, error) {
	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg,
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	store := session.NewStore()
	client := hotels.NewClient(cfg.Hotels)
	repo := history.NewRepo(res.DB)
	fl := flow.New(cfg, store, client, repo)

	reg := tg.NewRegistry()
	fl.Register(reg)

	return &App{
		cfg:  cfg,
		db:   res.DB,
		flow: fl,
		reg:  reg,
	}, nil
}

// CoreConfig exposes the application configuration.
func (a *App) CoreConfig() *coreconfig.Config {
	return a.cfg
}

// TelegramRunOptions builds the run options for the shared bot runtime.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	routes := router.CommandRoutes(a.reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.TextRoutes(a.flow, a.reg, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(a.reg, router.CallbackOptions{}))

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    a.reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg, a.flow.RateLimited),
		Routes:      routes,
		OnStop: func(ctx context.Context, rt tg.Runtime) error {
			return a.db.Close()
		},
	}, nil
}
