package metrics

import "screenwell/wellness-agent/internal/models"

// EyeStrain assesses eye strain risk from total session minutes. Sessions
// under 20 minutes keep their remaining safe time as the next-break
// countdown; anything longer gets a fixed 5 minutes.
func EyeStrain(totalMinutes float64) models.EyeStrainRisk {
	var risk, message, color string
	switch {
	case totalMinutes < 30:
		risk = models.RiskLow
		message = "Your current session is well within safe limits."
		color = "green"
	case totalMinutes < 60:
		risk = models.RiskModerate
		message = "Consider taking a short eye break soon."
		color = "orange"
	default:
		risk = models.RiskHigh
		message = "Eye strain risk detected. Take a break now."
		color = "red"
	}

	nextBreak := 5.0
	if totalMinutes < 20 {
		nextBreak = 20 - totalMinutes
	}

	return models.EyeStrainRisk{
		Risk:             risk,
		Message:          message,
		Color:            color,
		NextBreakMinutes: nextBreak,
	}
}
