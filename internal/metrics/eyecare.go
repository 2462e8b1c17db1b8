package metrics

import (
	"screenwell/wellness-agent/internal/category"
	"screenwell/wellness-agent/internal/models"
)

// EyeCare builds the personalized eye care routine for a session. The base is
// the 20-20-20 rule; heavy sessions (over 90 minutes) tighten the interval to
// 15 minutes with 30 second breaks, light sessions (under 30 minutes) relax
// it to 30 minutes. Category-specific reminders apply when creative or
// reading-heavy work was observed.
func EyeCare(usage models.CategoryUsage, totalMinutes float64) models.EyeCareRoutine {
	routine := models.EyeCareRoutine{
		Base: models.EyeCareBase{
			IntervalMinutes: 20,
			DistanceFeet:    20,
			DurationSeconds: 20,
			Enabled:         true,
		},
		Exercises: []models.EyeCareExercise{
			{
				Name:            "Eye Rolling",
				Description:     "Roll your eyes in a circular motion, 5 times clockwise and 5 times counterclockwise",
				Benefit:         "Strengthens eye muscles and relieves strain",
				DurationSeconds: 30,
			},
			{
				Name:            "Palming",
				Description:     "Rub your palms together to warm them, then gently place them over your closed eyes",
				Benefit:         "Relaxes the eyes and reduces strain",
				DurationSeconds: 60,
			},
			{
				Name:            "Near-Far Focus",
				Description:     "Focus on your thumb, then focus on something in the distance, repeat 10 times",
				Benefit:         "Improves focus flexibility and reduces eye fatigue",
				DurationSeconds: 45,
			},
		},
		Reminders: []string{
			"Blink frequently when using screens",
			"Adjust screen brightness based on ambient light",
			"Position your screen at arm's length and slightly below eye level",
		},
	}

	if totalMinutes > 90 {
		routine.Base.IntervalMinutes = 15
		routine.Base.DurationSeconds = 30
	} else if totalMinutes < 30 {
		routine.Base.IntervalMinutes = 30
	}

	if _, ok := usage[category.Creative]; ok {
		routine.Reminders = append(routine.Reminders,
			"Creative work detected: Take occasional 2-minute breaks to prevent eye strain during intense focus")
	}

	_, browsers := usage[category.Browsers]
	_, productivity := usage[category.Productivity]
	if browsers || productivity {
		routine.Reminders = append(routine.Reminders,
			"Increase font size for reading to reduce eye strain")
	}

	return routine
}
