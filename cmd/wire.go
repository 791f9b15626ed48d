package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/RogueScr1be/fast-food-sub004/internal/adapters/idgen"
	renderadapter "github.com/RogueScr1be/fast-food-sub004/internal/adapters/render/decision"
	sqliterepo "github.com/RogueScr1be/fast-food-sub004/internal/adapters/repo/sqlite"
	tomlrepo "github.com/RogueScr1be/fast-food-sub004/internal/adapters/repo/toml"
	"github.com/RogueScr1be/fast-food-sub004/internal/application"
	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/RogueScr1be/fast-food-sub004/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	eventsPathKey     = "events.path"
	rotationDaysKey   = "rotation.window_days"
	householdKeyKey   = "household.key"
	defaultEventsFile = "events.db"
)

type app struct {
	catalogRepo      *tomlrepo.CatalogRepository
	inventoryRepo    *tomlrepo.InventoryRepository
	events           *sqliterepo.EventStore
	arbiter          *application.Arbiter
	decisionRenderer func(domain.DecisionResponse, renderadapter.RenderOptions) (string, error)
	household        domain.HouseholdKey
	rotationDays     int
	now              func() time.Time
	logger           *zap.Logger
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetEnvPrefix("FFSUB")
	cfg.AutomaticEnv()

	catalogRepo, err := tomlrepo.NewCatalogRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire catalog repository: %w", err)
	}

	inventoryRepo, err := tomlrepo.NewInventoryRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire inventory repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault(eventsPathKey, filepath.Join(homeDir, ".ffsub", defaultEventsFile))
	cfg.SetDefault(rotationDaysKey, application.DefaultRotationWindowDays)
	cfg.SetDefault(householdKeyKey, "default")

	eventsPath := cfg.GetString(eventsPathKey)
	if err := os.MkdirAll(filepath.Dir(eventsPath), 0o700); err != nil {
		return nil, fmt.Errorf("create events directory: %w", err)
	}

	logger := zap.NewNop()
	if os.Getenv("FFSUB_DEBUG") != "" {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("build debug logger: %w", err)
		}
	}

	events, err := sqliterepo.NewEventStore(eventsPath, logger)
	if err != nil {
		return nil, fmt.Errorf("wire decision event store: %w", err)
	}

	rotationDays := cfg.GetInt(rotationDaysKey)

	a := &app{
		catalogRepo:      catalogRepo,
		inventoryRepo:    inventoryRepo,
		events:           events,
		decisionRenderer: renderadapter.Render,
		household:        domain.HouseholdKey(cfg.GetString(householdKeyKey)),
		rotationDays:     rotationDays,
		now:              time.Now,
		logger:           logger,
	}
	a.arbiter = a.arbiterWith(rotationDays)

	return a, nil
}

// arbiterWith builds an arbiter with an overridden rotation window, reusing
// the wired repositories.
func (a *app) arbiterWith(rotationDays int) *application.Arbiter {
	return application.NewArbiter(
		a.catalogRepo,
		a.inventoryRepo,
		a.events,
		idgen.UUIDGenerator{},
		ports.SystemClock{},
		application.ArbiterConfig{RotationWindowDays: rotationDays},
		a.logger,
	)
}
