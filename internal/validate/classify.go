package validate

// Tier is the qualitative readiness level derived from the success rate.
type Tier string

const (
	// TierExcellent means the environment is ready for deployment.
	TierExcellent Tier = "EXCELLENT"

	// TierGood means mostly ready; warnings should be addressed.
	TierGood Tier = "GOOD"

	// TierFair means issues should be addressed before deployment.
	TierFair Tier = "FAIR"

	// TierNeedsAttention means critical issues must be resolved first.
	TierNeedsAttention Tier = "NEEDS_ATTENTION"
)

// Verdict pairs a readiness tier with operator guidance.
type Verdict struct {
	Tier           Tier   `json:"tier"`
	Recommendation string `json:"recommendation"`
}

// Classify maps aggregate statistics to a Verdict. Boundary values belong
// to the higher tier. An empty run has a success rate of 0 and therefore
// classifies as NEEDS_ATTENTION.
func Classify(stats Stats) Verdict {
	rate := stats.SuccessRate()
	switch {
	case rate >= 90:
		return Verdict{
			Tier:           TierExcellent,
			Recommendation: "Your system is ready for TTS Tool deployment!",
		}
	case rate >= 75:
		return Verdict{
			Tier:           TierGood,
			Recommendation: "Your system is mostly ready. Address warnings for optimal performance.",
		}
	case rate >= 60:
		return Verdict{
			Tier:           TierFair,
			Recommendation: "Your system has issues that should be addressed before deployment.",
		}
	default:
		return Verdict{
			Tier:           TierNeedsAttention,
			Recommendation: "Your system has critical issues that must be resolved before deployment.",
		}
	}
}
