package crop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/taskfarm/internal/domain"
)

// Catalog is the immutable registry of crop definitions.
// It is safe for concurrent use because it is never mutated after construction.
type Catalog struct {
	byID  map[string]domain.CropDefinition
	order []string
}

// NewCatalog builds a catalog from the given definitions, preserving their order
func NewCatalog(defs []domain.CropDefinition) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[string]domain.CropDefinition, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		if err := validateDefinition(def); err != nil {
			return nil, err
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCropID, def.ID)
		}
		c.byID[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	return c, nil
}

// Lookup returns the crop registered under id
func (c *Catalog) Lookup(id string) (domain.CropDefinition, error) {
	def, ok := c.byID[id]
	if ok {
		return def, nil
	}
	if suggestion, found := c.Suggest(id); found {
		return domain.CropDefinition{}, fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrUnknownCrop, id, suggestion)
	}
	return domain.CropDefinition{}, fmt.Errorf("%w: %q", domain.ErrUnknownCrop, id)
}

// List returns every definition in registration order
func (c *Catalog) List() []domain.CropDefinition {
	out := make([]domain.CropDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of registered crops
func (c *Catalog) Len() int {
	return len(c.order)
}

// Suggest finds the registered id closest to input by edit distance.
// Returns false when nothing is close enough to be a plausible typo.
func (c *Catalog) Suggest(input string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if len(input) < minSuggestLength {
		return "", false
	}

	type candidate struct {
		id   string
		dist int
	}
	var cands []candidate
	for _, id := range c.order {
		dist := levenshtein.ComputeDistance(input, id)
		if dist > suggestLimit(len(id)) {
			continue
		}
		cands = append(cands, candidate{id: id, dist: dist})
	}
	if len(cands) == 0 {
		return "", false
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].id < cands[j].id
		}
		return cands[i].dist < cands[j].dist
	})
	return cands[0].id, true
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// DefaultDefinitions returns the built-in crop set
func DefaultDefinitions() []domain.CropDefinition {
	return []domain.CropDefinition{
		{ID: "wheat", Name: "Wheat", GrowthStages: 4, TotalGrowthTime: 30, HarvestReward: 5, Cost: 2},
		{ID: "carrot", Name: "Carrot", GrowthStages: 3, TotalGrowthTime: 45, HarvestReward: 8, Cost: 3},
		{ID: "tomato", Name: "Tomato", GrowthStages: 4, TotalGrowthTime: 60, HarvestReward: 12, Cost: 5},
		{ID: "sunflower", Name: "Sunflower", GrowthStages: 4, TotalGrowthTime: 75, HarvestReward: 15, Cost: 6},
		{ID: "corn", Name: "Corn", GrowthStages: 5, TotalGrowthTime: 90, HarvestReward: 20, Cost: 8},
		{ID: "pumpkin", Name: "Pumpkin", GrowthStages: 5, TotalGrowthTime: 120, HarvestReward: 32, Cost: 12},
	}
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := NewCatalog(DefaultDefinitions())
	if err != nil {
		// the built-in set is static; failing here is a programming error
		panic(fmt.Sprintf("invalid built-in crop catalog: %v", err))
	}
	return c
}
