// Package qrlp builds the Quality-aware Recipe Linear Program: it enumerates
// activities, assembles mass-balance constraints, builds the objective, and
// hands the result to the Solver Driver.
package qrlp

import (
	"math"

	"github.com/kvoss/qrlp/pkg/domain/entities"
)

// Numeric constant tables, process-wide read-only data (spec.md §9),
// indexed [moduleTier-1][qualityLevel]. Verbatim from spec.md §6.
var (
	QualityProbabilities = [3][5]float64{
		{.01, .013, .016, .019, .025},
		{.02, .026, .032, .038, .05},
		{.025, .032, .04, .047, .062},
	}
	ProdBonuses = [3][5]float64{
		{.04, .05, .06, .07, .1},
		{.06, .07, .09, .11, .15},
		{.1, .13, .16, .19, .25},
	}
	SpeedBonuses = [3][5]float64{
		{0.2, 0.26, 0.32, 0.38, 0.5},
		{0.3, 0.39, 0.48, 0.57, 0.75},
		{0.5, 0.65, 0.8, 0.95, 1.25},
	}
	SpeedPenaltiesPerQualityModule = [3]float64{.05, .05, .05}
	SpeedPenaltiesPerProdModule    = [3]float64{.05, .1, .15}
	QualityPenaltiesPerSpeedModule = [3]float64{.01, .015, .025}
)

// BeaconEfficiency and the beacon-sharing formula (spec.md §6).
const BeaconEfficiency = 1.5

// EffectiveSpeedModules returns the effective speed-module count for n
// modules spread across ceil(n/2) beacons, per spec.md §4.3.
func EffectiveSpeedModules(nBeaconedSpeedModules int) float64 {
	if nBeaconedSpeedModules == 0 {
		return 0
	}
	numBeacons := math.Ceil(float64(nBeaconedSpeedModules) / 2)
	return float64(nBeaconedSpeedModules) * BeaconEfficiency * math.Pow(numBeacons, -0.5)
}

// BeaconCounts returns the configured beacon-count set: {0} by default, or
// 0..16 when check_speed_modules is enabled (spec.md §6).
func BeaconCounts(checkSpeedModules bool) []int {
	if !checkSpeedModules {
		return []int{0}
	}
	counts := make([]int, 17)
	for i := range counts {
		counts[i] = i
	}
	return counts
}

// ModuleProfile resolves a SolverConfig's module-tier/quality selections
// into the scalar bonuses the Activity Enumerator consumes.
type ModuleProfile struct {
	QualityProbability     float64
	ProdBonus              float64
	SpeedBonus             float64
	SpeedPenaltyPerQuality float64
	SpeedPenaltyPerProd    float64
	QualityPenaltyPerSpeed float64
	BuildingQuality        float64
}

// ResolveModuleProfile reads the 3x5 constant tables using the tier/quality
// selections of a SolverConfig, per linear_solver.py.__init__ (lines 136-153).
func ResolveModuleProfile(cfg entities.SolverConfig) (ModuleProfile, error) {
	qualityLevel, err := entities.ParseTier(cfg.QualityModuleQuality)
	if err != nil {
		return ModuleProfile{}, err
	}
	prodLevel, err := entities.ParseTier(cfg.ProdModuleQuality)
	if err != nil {
		return ModuleProfile{}, err
	}
	speedLevel, err := entities.ParseTier(cfg.SpeedModuleQuality)
	if err != nil {
		return ModuleProfile{}, err
	}
	if cfg.QualityModuleTier < 1 || cfg.QualityModuleTier > 3 {
		return ModuleProfile{}, &entities.ConfigError{Reason: "quality_module_tier must be 1, 2, or 3"}
	}
	if cfg.ProdModuleTier < 1 || cfg.ProdModuleTier > 3 {
		return ModuleProfile{}, &entities.ConfigError{Reason: "prod_module_tier must be 1, 2, or 3"}
	}
	if cfg.SpeedModuleTier < 1 || cfg.SpeedModuleTier > 3 {
		return ModuleProfile{}, &entities.ConfigError{Reason: "speed_module_tier must be 1, 2, or 3"}
	}

	// building_quality is an external crafting-speed multiplier (spec.md §6);
	// an unset (zero) value leaves speed unscaled rather than zeroing it out.
	buildingQuality := cfg.BuildingQuality
	if buildingQuality == 0 {
		buildingQuality = 1.0
	}

	return ModuleProfile{
		QualityProbability:     QualityProbabilities[cfg.QualityModuleTier-1][qualityLevel],
		ProdBonus:              ProdBonuses[cfg.ProdModuleTier-1][prodLevel],
		SpeedBonus:             SpeedBonuses[cfg.SpeedModuleTier-1][speedLevel],
		SpeedPenaltyPerQuality: SpeedPenaltiesPerQualityModule[cfg.QualityModuleTier-1],
		SpeedPenaltyPerProd:    SpeedPenaltiesPerProdModule[cfg.ProdModuleTier-1],
		QualityPenaltyPerSpeed: QualityPenaltiesPerSpeedModule[cfg.SpeedModuleTier-1],
		BuildingQuality:        buildingQuality,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
