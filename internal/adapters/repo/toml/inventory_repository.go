package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/RogueScr1be/fast-food-sub004/internal/ports"
)

const (
	inventoryPathKey     = "inventory.path"
	inventoryFile        = "inventory.toml"
	inventoryTempPattern = ".inventory-*.toml.tmp"
)

type InventoryRepository struct {
	inventoryPath string
	mu            *sync.RWMutex
}

var _ ports.InventoryRepository = (*InventoryRepository)(nil)

func NewInventoryRepository(cfg *viper.Viper) (*InventoryRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDirName, inventoryFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(inventoryPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	inventoryPath := cfg.GetString(inventoryPathKey)
	if inventoryPath == "" {
		return nil, errors.New("inventory path is empty")
	}
	inventoryPath, err = normalizeStorePath(inventoryPath)
	if err != nil {
		return nil, err
	}

	return &InventoryRepository{inventoryPath: inventoryPath, mu: lockForPath(inventoryPath)}, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	items := make([]domain.InventoryItem, 0, len(file.Items))
	for _, entry := range file.Items {
		items = append(items, fromItemSchema(entry))
	}

	return items, nil
}

func (r *InventoryRepository) Upsert(ctx context.Context, item domain.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid inventory item: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toItemSchema(item)
	updated := false
	for i := range file.Items {
		if strings.EqualFold(file.Items[i].Name, encoded.Name) {
			file.Items[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Items = append(file.Items, encoded)
	}

	return r.writeSchema(file)
}

func (r *InventoryRepository) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	kept := make([]itemSchema, 0, len(file.Items))
	removed := false
	for _, entry := range file.Items {
		if strings.EqualFold(entry.Name, name) {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}

	if !removed {
		return domain.ErrItemNotFound
	}

	file.Items = kept
	return r.writeSchema(file)
}

// Replace overwrites the whole inventory, used by seeding.
func (r *InventoryRepository) Replace(ctx context.Context, items []domain.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("invalid inventory item %q: %w", item.Name, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := inventorySchema{Version: currentSchemaVersion}
	for _, item := range items {
		file.Items = append(file.Items, toItemSchema(item))
	}

	return r.writeSchema(file)
}

func (r *InventoryRepository) readSchema() (inventorySchema, error) {
	data, err := os.ReadFile(r.inventoryPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return inventorySchema{}, nil
		}
		return inventorySchema{}, fmt.Errorf("read inventory file: %w", err)
	}

	var file inventorySchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return inventorySchema{}, fmt.Errorf("decode inventory file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return inventorySchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *InventoryRepository) writeSchema(file inventorySchema) error {
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode inventory file: %w", err)
	}

	return writeFileAtomic(r.inventoryPath, data, inventoryTempPattern)
}
