package metrics

// BlueLight suggests blue light filter usage from total screen time and the
// current local hour. The evening window is [startHour, endHour).
func BlueLight(totalMinutes, thresholdMinutes float64, hour, startHour, endHour int) []string {
	var recommendations []string

	if totalMinutes > thresholdMinutes {
		recommendations = append(recommendations,
			"🕶️ Prolonged screen usage detected. Consider enabling a blue light filter to reduce eye strain.")
	}

	if hour >= startHour && hour < endHour {
		recommendations = append(recommendations,
			"🌙 It's evening time! Enable your blue light filter to improve sleep quality.")
	}

	return recommendations
}
