package ledger

import (
	"haccp-ledger/internal/models"
	"haccp-ledger/internal/risk"
)

// seedSet is what never-initialized collections read as.
type seedSet struct {
	hazards []models.Hazard
	ccps    []models.CCP
	iso     []models.ISOStandard
}

func seedHazard(h models.Hazard) models.Hazard {
	h.RiskScore, _ = risk.Score(h.Severity, h.Likelihood)
	return h
}

func demoSeeds() seedSet {
	return seedSet{
		hazards: []models.Hazard{
			seedHazard(models.Hazard{
				ID:              "hz-001",
				Name:            "Salmonella in raw poultry",
				Type:            models.HazardBiological,
				Description:     "Pathogen survival when cooking does not reach the required core temperature.",
				Severity:        models.SeverityCritical,
				Likelihood:      models.LikelihoodPossible,
				ControlMeasures: []string{"Cook to 75 °C core temperature", "Segregate raw and cooked product"},
				Responsible:     "Quality Manager",
				DateIdentified:  "2024-01-15",
				Status:          models.HazardActive,
			}),
			seedHazard(models.Hazard{
				ID:              "hz-002",
				Name:            "Undeclared allergen cross-contact",
				Type:            models.HazardChemical,
				Description:     "Peanut residue carried over on shared filling lines.",
				Severity:        models.SeverityHigh,
				Likelihood:      models.LikelihoodUnlikely,
				ControlMeasures: []string{"Validated line clean-down", "Allergen changeover sign-off"},
				Responsible:     "Production Supervisor",
				DateIdentified:  "2024-02-03",
				Status:          models.HazardControlled,
			}),
			seedHazard(models.Hazard{
				ID:              "hz-003",
				Name:            "Metal fragments from slicer",
				Type:            models.HazardPhysical,
				Description:     "Blade wear releasing metal into sliced product.",
				Severity:        models.SeverityMedium,
				Likelihood:      models.LikelihoodRare,
				ControlMeasures: []string{"Metal detection on packing line"},
				Responsible:     "Maintenance Lead",
				DateIdentified:  "2024-03-20",
				Status:          models.HazardResolved,
			}),
		},
		ccps: []models.CCP{
			{
				ID:                  "ccp-001",
				HazardID:            "hz-001",
				Step:                "Cooking",
				CriticalLimit:       "Core temperature ≥ 75 °C for 30 s",
				MonitoringFrequency: "Every batch",
				MonitoringMethod:    "Calibrated probe thermometer",
				CorrectiveActions:   []string{"Continue cooking until limit is met", "Quarantine batch"},
				Verification:        "Daily record review by QA",
				RecordKeeping:       "Cooking log CL-01",
				Responsible:         "Line Cook Supervisor",
				DateEstablished:     "2024-01-20",
				Status:              models.CCPActive,
				LastMonitored:       "2024-06-01",
				Compliance:          models.Compliant,
			},
			{
				ID:                  "ccp-002",
				HazardID:            "hz-003",
				Step:                "Metal detection",
				CriticalLimit:       "Reject Fe ≥ 2.0 mm, SS ≥ 3.0 mm",
				MonitoringFrequency: "Start of shift and hourly",
				MonitoringMethod:    "Test wands through detector",
				CorrectiveActions:   []string{"Re-inspect product since last good check"},
				Verification:        "Weekly detector validation",
				RecordKeeping:       "Metal detector log MD-02",
				Responsible:         "Packing Supervisor",
				DateEstablished:     "2024-03-25",
				Status:              models.CCPActive,
				Compliance:          models.NonCompliant,
			},
		},
		iso: []models.ISOStandard{
			{
				ID:                "iso-22000",
				Code:              "ISO 22000",
				Title:             "Food safety management systems",
				Version:           "2018",
				Status:            models.ISOCertified,
				CertificationBody: "SGS",
				CertifiedOn:       "2023-09-01",
				ExpiresOn:         "2026-08-31",
				Progress:          100,
				Responsible:       "Quality Manager",
			},
			{
				ID:          "iso-9001",
				Code:        "ISO 9001",
				Title:       "Quality management systems",
				Version:     "2015",
				Status:      models.ISOInProgress,
				Progress:    60,
				Responsible: "Operations Director",
			},
		},
	}
}
