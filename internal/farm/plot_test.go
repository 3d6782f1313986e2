package farm

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/economy"
)

type stubCatalog map[string]domain.CropDefinition

func (c stubCatalog) Lookup(id string) (domain.CropDefinition, error) {
	def, ok := c[id]
	if !ok {
		return domain.CropDefinition{}, fmt.Errorf("%w: %s", domain.ErrUnknownCrop, id)
	}
	return def, nil
}

var testCrops = stubCatalog{
	"wheat": {ID: "wheat", Name: "Wheat", GrowthStages: 4, TotalGrowthTime: 30, HarvestReward: 5, Cost: 2},
	"gold":  {ID: "gold", Name: "Gold", GrowthStages: 1, TotalGrowthTime: 10, HarvestReward: 100, Cost: 90},
}

func newWallet(t *testing.T, balance int) *economy.Wallet {
	t.Helper()
	w, err := economy.NewWallet(balance)
	require.NoError(t, err)
	return w
}

func assertPlotInvariants(t *testing.T, p *Plot) {
	t.Helper()
	_, hasCrop := p.Crop()
	switch p.Status() {
	case domain.PlotStatusEmpty:
		assert.False(t, hasCrop, "empty plot must not hold a crop")
		assert.Zero(t, p.Progress())
	case domain.PlotStatusGrowing:
		assert.True(t, hasCrop)
		assert.GreaterOrEqual(t, p.Progress(), 0.0)
		assert.LessOrEqual(t, p.Progress(), MaxProgress)
	case domain.PlotStatusReady:
		assert.True(t, hasCrop)
		assert.Equal(t, MaxProgress, p.Progress())
	}
}

func TestPlot_Plant(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success debits cost", func(t *testing.T) {
		p := newPlot(0)
		w := newWallet(t, 50)

		def, err := p.Plant("wheat", testCrops, w, now)
		require.NoError(t, err)
		assert.Equal(t, "wheat", def.ID)
		assert.Equal(t, 48, w.Balance())
		assert.Equal(t, domain.PlotStatusGrowing, p.Status())
		assert.Zero(t, p.Progress())
		require.NotNil(t, p.View().PlantedAt)
		assert.Equal(t, now, *p.View().PlantedAt)
		assertPlotInvariants(t, p)
	})

	t.Run("occupied plot", func(t *testing.T) {
		p := newPlot(0)
		w := newWallet(t, 50)
		_, err := p.Plant("wheat", testCrops, w, now)
		require.NoError(t, err)

		_, err = p.Plant("wheat", testCrops, w, now)
		assert.ErrorIs(t, err, domain.ErrInvalidPlotState)
		assert.Equal(t, 48, w.Balance())
	})

	t.Run("unknown crop", func(t *testing.T) {
		p := newPlot(0)
		w := newWallet(t, 50)
		_, err := p.Plant("kale", testCrops, w, now)
		assert.ErrorIs(t, err, domain.ErrUnknownCrop)
		assert.Equal(t, 50, w.Balance())
		assert.Equal(t, domain.PlotStatusEmpty, p.Status())
	})

	t.Run("insufficient funds leaves plot empty", func(t *testing.T) {
		p := newPlot(0)
		w := newWallet(t, 50)
		_, err := p.Plant("gold", testCrops, w, now)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, 50, w.Balance())
		assertPlotInvariants(t, p)
		assert.Equal(t, domain.PlotStatusEmpty, p.Status())
	})
}

func TestPlot_Accelerate(t *testing.T) {
	t.Run("adds fixed amount", func(t *testing.T) {
		p := newPlot(0)
		w := newWallet(t, 10)
		_, err := p.Plant("wheat", testCrops, w, time.Now())
		require.NoError(t, err)

		require.NoError(t, p.Accelerate(w))
		assert.Equal(t, AccelerationAmount, p.Progress())
		assert.Equal(t, 7, w.Balance())
	})

	t.Run("clamps at max and stays growing", func(t *testing.T) {
		p := newPlot(0)
		w := newWallet(t, 100)
		_, err := p.Plant("wheat", testCrops, w, time.Now())
		require.NoError(t, err)
		p.progress = 98

		require.NoError(t, p.Accelerate(w))
		assert.Equal(t, MaxProgress, p.Progress())
		assert.Equal(t, domain.PlotStatusGrowing, p.Status())
	})

	t.Run("insufficient funds", func(t *testing.T) {
		p := newPlot(0)
		w := newWallet(t, 2)
		_, err := p.Plant("wheat", testCrops, w, time.Now())
		require.NoError(t, err)

		err = p.Accelerate(w)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Zero(t, p.Progress())
	})

	t.Run("empty and ready plots reject", func(t *testing.T) {
		w := newWallet(t, 10)
		empty := newPlot(0)
		assert.ErrorIs(t, empty.Accelerate(w), domain.ErrInvalidPlotState)

		ready := newPlot(1)
		_, err := ready.Plant("wheat", testCrops, w, time.Now())
		require.NoError(t, err)
		ready.progress = MaxProgress
		ready.status = domain.PlotStatusReady
		balance := w.Balance()

		assert.ErrorIs(t, ready.Accelerate(w), domain.ErrInvalidPlotState)
		assert.Equal(t, balance, w.Balance())
	})
}

func TestPlot_Harvest(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		p := newPlot(0)
		w := newWallet(t, 10)
		_, err := p.Harvest(w)
		assert.ErrorIs(t, err, domain.ErrInvalidPlotState)

		_, err = p.Plant("wheat", testCrops, w, time.Now())
		require.NoError(t, err)
		_, err = p.Harvest(w)
		assert.ErrorIs(t, err, domain.ErrInvalidPlotState)
		assert.Equal(t, 8, w.Balance())
	})

	t.Run("ready credits reward and resets", func(t *testing.T) {
		p := newPlot(0)
		w := newWallet(t, 10)
		_, err := p.Plant("wheat", testCrops, w, time.Now())
		require.NoError(t, err)
		NewEngine().Advance([]*Plot{p}, 100, 1.0)
		require.Equal(t, domain.PlotStatusReady, p.Status())

		def, err := p.Harvest(w)
		require.NoError(t, err)
		assert.Equal(t, "wheat", def.ID)
		assert.Equal(t, 13, w.Balance())
		assert.Equal(t, domain.PlotStatusEmpty, p.Status())
		assert.Nil(t, p.View().PlantedAt)
		assert.Empty(t, p.View().CropID)
		assertPlotInvariants(t, p)
	})
}
