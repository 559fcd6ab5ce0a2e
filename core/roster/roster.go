// Package roster defines the fixed fleet of schools the network operates.
// The seven legacy schools are static; the optional growth school is
// appended from the scenario assumptions.
package roster

import (
	"github.com/shopspring/decimal"

	"charter-forecast/core/types"
)

// Year-1 financial bases shared by every legacy school.
var (
	basePerPupilRevenue = decimal.NewFromInt(14000)
	baseTeacherCost     = decimal.NewFromInt(9000)
	baseFixedCost       = decimal.NewFromInt(200000)

	pooledRent = decimal.NewFromInt(550000)
	leasedRent = decimal.NewFromInt(350000)

	// The growth school carries heavier debt when it is built into the
	// Obligated Group than when it leases.
	growthPooledRent = decimal.NewFromInt(600000)
	growthLeasedRent = decimal.NewFromInt(400000)
)

// GrowthEntityName is the display name of the optional ramp-up school
const GrowthEntityName = "Growth CWB"

type legacySeed struct {
	name       string
	enrollment int64
	pooled     bool
}

// The legacy seven: five owned facilities inside the Obligated Group,
// two leased.
var legacy = []legacySeed{
	{"School A", 500, true},
	{"School B", 480, true},
	{"School C", 520, true},
	{"School D", 450, true},
	{"School E", 600, true},
	{"School F", 350, false},
	{"School G", 380, false},
}

// Build returns the entity profiles for a scenario, in stable fleet
// order: the legacy seven, then the growth school if launched.
func Build(a types.Assumptions) []types.EntityProfile {
	profiles := make([]types.EntityProfile, 0, len(legacy)+1)
	for _, s := range legacy {
		rent := leasedRent
		if s.pooled {
			rent = pooledRent
		}
		profiles = append(profiles, types.EntityProfile{
			Name:                    s.name,
			StartEnrollment:         decimal.NewFromInt(s.enrollment),
			IsPooled:                s.pooled,
			BasePerPupilRevenue:     basePerPupilRevenue,
			BaseTeacherCostPerPupil: baseTeacherCost,
			BaseFixedCost:           baseFixedCost,
			BaseRentObligation:      rent,
		})
	}

	if a.LaunchGrowthEntity {
		rent := growthLeasedRent
		if a.GrowthJoinsPool {
			rent = growthPooledRent
		}
		profiles = append(profiles, types.EntityProfile{
			Name:                    GrowthEntityName,
			StartEnrollment:         decimal.NewFromInt(types.RampStartEnrollment),
			IsPooled:                a.GrowthJoinsPool,
			IsRampEntity:            true,
			RampTargetEnrollment:    a.GrowthTargetEnrollment,
			BasePerPupilRevenue:     basePerPupilRevenue,
			BaseTeacherCostPerPupil: baseTeacherCost,
			BaseFixedCost:           baseFixedCost,
			BaseRentObligation:      rent,
		})
	}

	return profiles
}
