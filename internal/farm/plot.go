package farm

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/economy"
)

// CropLookup resolves crop ids to definitions
type CropLookup interface {
	Lookup(id string) (domain.CropDefinition, error)
}

// Plot is one grid cell. Its state only changes through Plant, Accelerate,
// Harvest and the engine's tick advance, so crop is set iff status is not empty.
type Plot struct {
	id        int
	crop      *domain.CropDefinition
	progress  float64
	status    domain.PlotStatus
	plantedAt time.Time
}

func newPlot(id int) *Plot {
	return &Plot{id: id, status: domain.PlotStatusEmpty}
}

// ID returns the plot's grid index
func (p *Plot) ID() int { return p.id }

// Status returns the plot's lifecycle state
func (p *Plot) Status() domain.PlotStatus { return p.status }

// Progress returns growth progress in [0, 100]
func (p *Plot) Progress() float64 { return p.progress }

// Crop returns the planted crop, if any
func (p *Plot) Crop() (domain.CropDefinition, bool) {
	if p.crop == nil {
		return domain.CropDefinition{}, false
	}
	return *p.crop, true
}

// View returns a detached snapshot of the plot
func (p *Plot) View() domain.PlotView {
	v := domain.PlotView{
		ID:       p.id,
		Progress: p.progress,
		Status:   p.status,
	}
	if p.crop != nil {
		v.CropID = p.crop.ID
		planted := p.plantedAt
		v.PlantedAt = &planted
	}
	return v
}

func (p *Plot) stateError() error {
	return fmt.Errorf(ErrMsgPlotStateFmt, domain.ErrInvalidPlotState, p.id, p.status)
}

// Plant puts cropID into an empty plot and debits its cost.
// Nothing is mutated unless every check passes.
func (p *Plot) Plant(cropID string, catalog CropLookup, wallet *economy.Wallet, now time.Time) (domain.CropDefinition, error) {
	if p.status != domain.PlotStatusEmpty {
		return domain.CropDefinition{}, p.stateError()
	}
	def, err := catalog.Lookup(cropID)
	if err != nil {
		return domain.CropDefinition{}, err
	}
	if err := wallet.Debit(def.Cost); err != nil {
		return domain.CropDefinition{}, err
	}

	p.crop = &def
	p.status = domain.PlotStatusGrowing
	p.progress = 0
	p.plantedAt = now
	return def, nil
}

// Accelerate pays AccelerationCost to add AccelerationAmount progress.
// Reaching MaxProgress here leaves the plot growing; only a tick promotes it.
func (p *Plot) Accelerate(wallet *economy.Wallet) error {
	if p.status != domain.PlotStatusGrowing {
		return p.stateError()
	}
	if err := wallet.Debit(AccelerationCost); err != nil {
		return err
	}
	p.progress = math.Min(MaxProgress, p.progress+AccelerationAmount)
	return nil
}

// Harvest credits the crop's reward and resets the plot to empty
func (p *Plot) Harvest(wallet *economy.Wallet) (domain.CropDefinition, error) {
	if p.status != domain.PlotStatusReady {
		return domain.CropDefinition{}, p.stateError()
	}
	def := *p.crop
	if err := wallet.Credit(def.HarvestReward); err != nil {
		return domain.CropDefinition{}, err
	}
	p.reset()
	return def, nil
}

func (p *Plot) reset() {
	p.crop = nil
	p.progress = 0
	p.status = domain.PlotStatusEmpty
	p.plantedAt = time.Time{}
}
