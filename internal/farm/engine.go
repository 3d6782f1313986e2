package farm

import (
	"math"

	"github.com/osse101/taskfarm/internal/domain"
)

// Engine provides pure growth logic (no locking, no clock)
type Engine struct{}

// NewEngine creates a new growth engine
func NewEngine() *Engine {
	return &Engine{}
}

// GrowthDelta returns the progress a crop gains over deltaSeconds at multiplier m.
// A delta or multiplier that is not a finite positive number yields no growth.
func (e *Engine) GrowthDelta(def domain.CropDefinition, deltaSeconds, multiplier float64) float64 {
	if def.TotalGrowthTime <= 0 || !positiveFinite(deltaSeconds) || !positiveFinite(multiplier) {
		return 0
	}
	perSecond := MaxProgress / def.TotalGrowthTime
	return perSecond * deltaSeconds * GrowthTimeScale * multiplier
}

// Advance grows every growing plot and returns the plots promoted to ready.
// Empty and ready plots are untouched. Negative, NaN and infinite deltas count
// as zero, so progress stays within [0, MaxProgress].
func (e *Engine) Advance(plots []*Plot, deltaSeconds, multiplier float64) []*Plot {
	if !positiveFinite(deltaSeconds) {
		deltaSeconds = 0
	}

	var promoted []*Plot
	for _, p := range plots {
		if p.status != domain.PlotStatusGrowing || p.crop == nil {
			continue
		}
		next := math.Min(MaxProgress, p.progress+e.GrowthDelta(*p.crop, deltaSeconds, multiplier))
		if next >= MaxProgress {
			p.progress = MaxProgress
			p.status = domain.PlotStatusReady
			promoted = append(promoted, p)
			continue
		}
		p.progress = next
	}
	return promoted
}

// TimeToReady estimates seconds until the plot matures at multiplier m.
// It returns 0 for ready plots and +Inf when the plot cannot grow.
func (e *Engine) TimeToReady(p *Plot, multiplier float64) float64 {
	switch {
	case p.status == domain.PlotStatusReady:
		return 0
	case p.status != domain.PlotStatusGrowing || p.crop == nil:
		return math.Inf(1)
	}
	rate := e.GrowthDelta(*p.crop, 1, multiplier)
	if rate <= 0 {
		return math.Inf(1)
	}
	return (MaxProgress - p.progress) / rate
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
