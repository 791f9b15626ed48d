package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/RogueScr1be/fast-food-sub004/internal/ports"
)

const (
	catalogPathKey     = "catalog.path"
	catalogFile        = "catalog.toml"
	catalogTempPattern = ".catalog-*.toml.tmp"
)

type CatalogRepository struct {
	catalogPath string
	mu          *sync.RWMutex
}

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(cfg *viper.Viper) (*CatalogRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDirName, catalogFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(catalogPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	catalogPath := cfg.GetString(catalogPathKey)
	if catalogPath == "" {
		return nil, errors.New("catalog path is empty")
	}
	catalogPath, err = normalizeStorePath(catalogPath)
	if err != nil {
		return nil, err
	}

	return &CatalogRepository{catalogPath: catalogPath, mu: lockForPath(catalogPath)}, nil
}

func (r *CatalogRepository) Path() string { return r.catalogPath }

func (r *CatalogRepository) ListMeals(ctx context.Context) ([]domain.MealDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	meals := make([]domain.MealDefinition, 0, len(file.Meals))
	for _, entry := range file.Meals {
		meal, _ := fromMealSchema(entry)
		meals = append(meals, meal)
	}

	return meals, nil
}

func (r *CatalogRepository) ListActiveMeals(ctx context.Context) ([]domain.MealDefinition, error) {
	meals, err := r.ListMeals(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]domain.MealDefinition, 0, len(meals))
	for _, meal := range meals {
		if meal.Active {
			active = append(active, meal)
		}
	}

	return active, nil
}

func (r *CatalogRepository) ListIngredients(ctx context.Context) ([]domain.IngredientRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	var rows []domain.IngredientRow
	for _, entry := range file.Meals {
		_, mealRows := fromMealSchema(entry)
		rows = append(rows, mealRows...)
	}

	return rows, nil
}

func (r *CatalogRepository) ReplaceCatalog(ctx context.Context, meals []domain.MealDefinition, ingredients []domain.IngredientRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, meal := range meals {
		if err := meal.Validate(); err != nil {
			return fmt.Errorf("invalid meal %q: %w", meal.Key, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := catalogSchema{Version: currentSchemaVersion}
	for _, meal := range meals {
		file.Meals = append(file.Meals, toMealSchema(meal, ingredients))
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}

	return writeFileAtomic(r.catalogPath, data, catalogTempPattern)
}

func (r *CatalogRepository) readSchema() (catalogSchema, error) {
	data, err := os.ReadFile(r.catalogPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return catalogSchema{}, nil
		}
		return catalogSchema{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return catalogSchema{}, fmt.Errorf("decode catalog file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return catalogSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
