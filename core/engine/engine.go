// Package engine orchestrates the forecast pipeline. The engine is the
// primary API; CLI and HTTP surfaces are thin wrappers around it.
//
// A run is pure: validate the assumptions, build the roster, project
// every entity independently, allocate shared costs year by year,
// consolidate, and compute coverage. Identical inputs produce
// byte-identical results.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"go.uber.org/zap"

	"charter-forecast/core/allocation"
	"charter-forecast/core/consolidation"
	"charter-forecast/core/coverage"
	"charter-forecast/core/projection"
	"charter-forecast/core/roster"
	"charter-forecast/core/types"
	"charter-forecast/internal/errors"
	"charter-forecast/internal/logging"
)

// Result is the complete output of one forecast run
type Result struct {
	// Assumptions echoes the validated scenario inputs
	Assumptions types.Assumptions `json:"assumptions"`

	// Rows is the full augmented table, year-ascending then fleet order
	Rows []types.YearRow `json:"rows"`

	// Consolidated is the per-year home-office view
	Consolidated []types.ConsolidatedYear `json:"consolidated"`

	// Coverage is the per-year approximate coverage view
	Coverage []types.CoverageYear `json:"coverage"`

	// Metadata describes the run
	Metadata Metadata `json:"metadata"`
}

// Metadata describes a run for reproducibility checks
type Metadata struct {
	// Entities is the number of schools in the fleet
	Entities int `json:"entities"`

	// Years is the forecast horizon
	Years int `json:"years"`

	// InputHash is a deterministic hash of the assumptions
	InputHash string `json:"input_hash"`
}

// Engine runs forecast scenarios
type Engine struct{}

// New creates a forecast engine
func New() *Engine {
	return &Engine{}
}

// Run executes the full pipeline for one scenario
func (e *Engine) Run(a types.Assumptions) (*Result, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	profiles := roster.Build(a)
	logging.Debug("starting forecast run",
		zap.Int("entities", len(profiles)),
		zap.Int("years", types.Horizon))

	// Projection: each entity independently, fleet order preserved.
	byYear := make([][]types.YearRow, types.Horizon+1)
	for _, p := range profiles {
		rows, err := projection.Project(p, a, types.Horizon)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			byYear[r.Year] = append(byYear[r.Year], r)
		}
	}

	// Allocation: year by year, each year independent.
	all := make([]types.YearRow, 0, len(profiles)*types.Horizon)
	for year := 1; year <= types.Horizon; year++ {
		allocated, err := allocation.AllocateYear(byYear[year], a, year)
		if err != nil {
			return nil, err
		}
		all = append(all, allocated...)
	}

	result := &Result{
		Assumptions:  a,
		Rows:         all,
		Consolidated: consolidation.Consolidate(all, a),
		Coverage:     coverage.Proxy(all),
		Metadata: Metadata{
			Entities: len(profiles),
			Years:    types.Horizon,
		},
	}

	hash, err := inputHash(a)
	if err != nil {
		return nil, errors.Internal("failed to hash assumptions", err)
	}
	result.Metadata.InputHash = hash

	logging.Debug("forecast run complete", zap.Int("rows", len(all)))
	return result, nil
}

// inputHash produces a deterministic digest of the assumptions
func inputHash(a types.Assumptions) (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
