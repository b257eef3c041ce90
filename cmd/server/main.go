package main

import (
	"context"
	"os"
	"time"

	httpadapter "github.com/pablohpsilva/Botking-sub000/internal/adapter/http"
	metricsinmem "github.com/pablohpsilva/Botking-sub000/internal/adapter/metrics/inmemory"
	gormrepo "github.com/pablohpsilva/Botking-sub000/internal/adapter/repo/gorm"
	"github.com/pablohpsilva/Botking-sub000/internal/adapter/repo/memory"
	"github.com/pablohpsilva/Botking-sub000/internal/app/accounts"
	"github.com/pablohpsilva/Botking-sub000/internal/app/assembly"
	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/app/roster"
	"github.com/pablohpsilva/Botking-sub000/internal/app/trading"
	"github.com/pablohpsilva/Botking-sub000/internal/config"
	"github.com/pablohpsilva/Botking-sub000/internal/observability"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/sirupsen/logrus"
)

type repoSet struct {
	TxManager ports.TxManager
	Bots      ports.BotRepository
	Accounts  ports.AccountRepository
	Stacks    ports.StackRepository
	Offers    ports.OfferRepository
	Events    ports.EventRepository
	Execs     ports.AssemblyExecutionRepository
}

func main() {
	cfg, err := config.Load(os.Getenv("BOTKING_CONFIG"))
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := observability.New(cfg.LogLevel, cfg.LogFormat)

	repos := mustBuildRepos(cfg, log)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		CreateUC: assembly.CreateUseCase{
			TxManager: repos.TxManager,
			BotRepo:   repos.Bots,
			EventRepo: repos.Events,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		LoadoutUC: assembly.LoadoutUseCase{
			TxManager: repos.TxManager,
			BotRepo:   repos.Bots,
			ExecRepo:  repos.Execs,
			EventRepo: repos.Events,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		RosterUC: roster.UseCase{BotRepo: repos.Bots, EventRepo: repos.Events},
		TradingUC: trading.UseCase{
			TxManager: repos.TxManager,
			OfferRepo: repos.Offers,
			StackRepo: repos.Stacks,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		AccountsUC: accounts.UseCase{AccountRepo: repos.Accounts, Now: time.Now},
		KPI:        kpiRecorder,
		Log:        log,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.WithField("addr", cfg.Addr).Info("botking server listening")
	s.Spin()
}

// mustBuildRepos wires Postgres when a DSN is configured and falls back to
// the in-memory store otherwise.
func mustBuildRepos(cfg config.Config, log *logrus.Logger) repoSet {
	if cfg.DatabaseDSN == "" {
		log.Warn("no database DSN configured, using in-memory repositories")
		store := memory.NewStore()
		return repoSet{
			TxManager: memory.NewTxManager(store),
			Bots:      memory.NewBotRepo(store),
			Accounts:  memory.NewAccountRepo(store),
			Stacks:    memory.NewStackRepo(store),
			Offers:    memory.NewOfferRepo(store),
			Events:    memory.NewEventRepo(store),
			Execs:     memory.NewAssemblyExecutionRepo(store),
		}
	}

	db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return repoSet{
		TxManager: gormrepo.NewTxManager(db),
		Bots:      gormrepo.NewBotRepo(db),
		Accounts:  gormrepo.NewAccountRepo(db),
		Stacks:    gormrepo.NewStackRepo(db),
		Offers:    gormrepo.NewOfferRepo(db),
		Events:    gormrepo.NewEventRepo(db),
		Execs:     gormrepo.NewAssemblyExecutionRepo(db),
	}
}
