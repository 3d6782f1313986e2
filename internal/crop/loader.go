package crop

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/logger"
	"github.com/osse101/taskfarm/internal/validation"
)

//go:embed schemas/crops.schema.json
var catalogSchema []byte

var (
	schemaOnce      sync.Once
	schemaValidator validation.SchemaValidator
	schemaErr       error
)

func catalogValidator() (validation.SchemaValidator, error) {
	schemaOnce.Do(func() {
		schemaValidator = validation.NewSchemaValidator()
		schemaErr = schemaValidator.Register(CatalogSchemaName, catalogSchema)
	})
	return schemaValidator, schemaErr
}

// Sentinel errors for crop loader
var (
	ErrDuplicateCropID = errors.New("duplicate crop id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for crops
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	Crops []Def `json:"crops" validate:"required,min=1,dive"`
}

// Def represents a single crop definition in the JSON
type Def struct {
	ID              string  `json:"id" validate:"required,max=50"`
	Name            string  `json:"name" validate:"required,max=100"`
	GrowthStages    int     `json:"growth_stages" validate:"gte=1"`
	TotalGrowthTime float64 `json:"total_growth_time" validate:"gt=0"`
	HarvestReward   int     `json:"harvest_reward" validate:"gte=0"`
	Cost            int     `json:"cost" validate:"gte=0"`
}

func (d Def) toDomain() domain.CropDefinition {
	return domain.CropDefinition{
		ID:              d.ID,
		Name:            d.Name,
		GrowthStages:    d.GrowthStages,
		TotalGrowthTime: d.TotalGrowthTime,
		HarvestReward:   d.HarvestReward,
		Cost:            d.Cost,
	}
}

var validate = validator.New()

func validateDefinition(def domain.CropDefinition) error {
	d := Def{
		ID:              def.ID,
		Name:            def.Name,
		GrowthStages:    def.GrowthStages,
		TotalGrowthTime: def.TotalGrowthTime,
		HarvestReward:   def.HarvestReward,
		Cost:            def.Cost,
	}
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: crop %q: %v", ErrInvalidConfig, def.ID, err)
	}
	return nil
}

// Load reads and parses a crops JSON file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read crop catalog %s: %w", path, err)
	}

	sv, err := catalogValidator()
	if err != nil {
		return nil, err
	}
	if err := sv.ValidateBytes(data, CatalogSchemaName); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the version and every definition in the config
func Validate(cfg *Config) error {
	if cfg.Version != CatalogSchemaVersion {
		return fmt.Errorf("%w: unsupported version %q (expected %s)", ErrInvalidConfig, cfg.Version, CatalogSchemaVersion)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadCatalog builds a catalog from path, or the built-in catalog when path is empty
func LoadCatalog(ctx context.Context, path string) (*Catalog, error) {
	log := logger.FromContext(ctx)
	if path == "" {
		log.Info(LogMsgCatalogFallback)
		return Default(), nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	defs := make([]domain.CropDefinition, 0, len(cfg.Crops))
	for _, d := range cfg.Crops {
		defs = append(defs, d.toDomain())
	}

	catalog, err := NewCatalog(defs)
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgCatalogLoaded, "path", path, "crops", catalog.Len())
	return catalog, nil
}
