package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "gildworks/internal/adapter/http"
	staticmarket "gildworks/internal/adapter/market/static"
	metricsinmem "gildworks/internal/adapter/metrics/inmemory"
	gormrepo "gildworks/internal/adapter/repo/gorm"
	"gildworks/internal/adapter/repo/memory"
	"gildworks/internal/app/commands"
	"gildworks/internal/app/engine"
	"gildworks/internal/app/observe"
	"gildworks/internal/app/offline"
	"gildworks/internal/app/ports"
	"gildworks/internal/app/prestige"
	"gildworks/internal/domain/tycoon"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	stateRepo, eventRepo, txManager := mustBuildRepos()

	state, persistedVersion := mustLoadState(stateRepo, eventRepo, txManager)
	kpiRecorder := metricsinmem.NewRecorder()
	market := staticmarket.NewMarket(rand.New(rand.NewSource(time.Now().UnixNano())))
	market.Regenerate(state.PlayerLevel, state.Prestige.Resets)

	eng := engine.New(engine.Config{
		State:            state,
		PersistedVersion: persistedVersion,
		Interval:         durationEnv("GILDWORKS_TICK_INTERVAL", time.Second),
		StateRepo:        stateRepo,
		EventRepo:        eventRepo,
		Metrics:          kpiRecorder,
	})

	offlineUC := offline.UseCase{Engine: eng}
	if res, err := offlineUC.Claim(); err == nil && res.Amount > 0 {
		log.Printf("offline earnings granted: %s gold (%ds effective, capped=%v)",
			res.Amount, res.EffectiveSeconds, res.Capped)
	}
	eng.Start()

	h := httpadapter.Handler{
		ObserveUC:  observe.UseCase{Engine: eng},
		CommandUC:  commands.UseCase{Engine: eng, Market: market},
		OfflineUC:  offlineUC,
		PrestigeUC: prestige.UseCase{Engine: eng},
		Market:     market,
		Events:     eventRepo,
		KPI:        kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("GILDWORKS_HTTP_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("gildworks server listening on %s", addr)
	s.Spin()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := eng.Stop(shutdownCtx); err != nil {
		log.Printf("final save failed: %v", err)
	}
}

func mustBuildRepos() (ports.GameStateRepository, ports.EventRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("GILDWORKS_DB_DSN"))
	if dsn == "" {
		log.Println("GILDWORKS_DB_DSN not set, using in-memory persistence")
		store := memory.NewStore()
		return memory.NewGameStateRepo(store), memory.NewEventRepo(store), memory.NewTxManager()
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	migrationsDir := strings.TrimSpace(os.Getenv("GILDWORKS_MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = "./migrations"
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return gormrepo.NewGameStateRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

// mustLoadState loads the save slot, seeding a fresh run on first
// boot. The seed row and its creation event commit atomically.
func mustLoadState(repo ports.GameStateRepository, events ports.EventRepository, tx ports.TxManager) (*tycoon.GameState, int64) {
	ctx := context.Background()
	state, err := repo.Load(ctx)
	if err == nil {
		return state, state.Version
	}
	if !errors.Is(err, ports.ErrNotFound) {
		log.Fatalf("load game state: %v", err)
	}

	now := time.Now()
	state = tycoon.NewGameState(now)
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.SaveWithVersion(ctx, state, 0); err != nil {
			return err
		}
		return events.Append(ctx, []tycoon.DomainEvent{{
			Type:       tycoon.EventGameCreated,
			OccurredAt: now,
			Payload:    map[string]any{"version": state.Version},
		}})
	})
	if err != nil {
		log.Fatalf("seed game state: %v", err)
	}
	log.Println("seeded a fresh game state")
	return state, state.Version
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return fallback
}
