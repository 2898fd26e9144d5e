package risk

// recommendations is a fixed lookup keyed by the resulting risk level.
var recommendations = map[StatusRisk][]string{
	StatusNone: {
		"Keep individual trips under 150 days to stay clear of all thresholds.",
	},
	StatusWarning: {
		"Plan your return before reaching 180 days abroad.",
		"Keep evidence of ongoing U.S. ties (lease, employment, tax filings).",
	},
	StatusPresumption: {
		"Prepare evidence to overcome the presumption of abandonment.",
		"Carry proof of U.S. ties (home, job, family, tax returns) when reentering.",
		"Consult an immigration attorney before your next departure.",
	},
	StatusHighRisk: {
		"Return to the United States as soon as possible.",
		"Gather strong evidence of U.S. ties before attempting reentry.",
		"Consult an immigration attorney immediately.",
	},
	StatusAutomaticLoss: {
		"Apply for an SB-1 returning resident visa at a U.S. consulate.",
		"Consult an immigration attorney about options to restore status.",
	},
	StatusProtectedByPermit: {
		"Your reentry permit protects LPR status, but continuous residence for naturalization is still interrupted by absences of 180 days or more.",
	},
}

const permitLimitRecommendation = "Your reentry permit's 730-day cover runs out soon; return before it does."

// RecommendationsFor returns the deterministic recommendation list for a
// risk level, with the approaching-permit-limit warning appended when it
// applies.
func RecommendationsFor(level StatusRisk, permitApproachingLimit bool) []string {
	recs := make([]string, 0, 4)
	recs = append(recs, recommendations[level]...)
	if permitApproachingLimit {
		recs = append(recs, permitLimitRecommendation)
	}
	return recs
}
