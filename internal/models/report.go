package models

import "time"

// UsageRecord is the aggregated view of a single application for one
// tracking session. Minutes is always Seconds/60 exactly so downstream
// ratio math stays exact.
type UsageRecord struct {
	Application string  `json:"application"`
	DisplayName string  `json:"display_name"`
	Seconds     int     `json:"seconds"`
	Minutes     float64 `json:"minutes"`
	Category    string  `json:"category"`
}

// CategoryUsage maps a category name to summed minutes. Categories with no
// usage are absent keys, never explicit zeros.
type CategoryUsage map[string]float64

// Minutes returns the summed minutes for a category, 0 when absent
func (cu CategoryUsage) Minutes(category string) float64 {
	return cu[category]
}

// Ratios are per-category shares of total session time. All zero when the
// session recorded no time.
type Ratios struct {
	Productivity  float64 `json:"productivity"`
	Entertainment float64 `json:"entertainment"`
	Communication float64 `json:"communication"`
}

// WellbeingScore is the synthetic 0-100 wellbeing heuristic. The score is
// not floored, so extreme sessions can push it below zero.
type WellbeingScore struct {
	Score      int      `json:"score"`
	Category   string   `json:"category"`
	Color      string   `json:"color"`
	Deductions []string `json:"deductions"`
}

// EyeStrainRisk is the session-length based eye strain assessment
type EyeStrainRisk struct {
	Risk             string  `json:"risk"`
	Message          string  `json:"message"`
	Color            string  `json:"color"`
	NextBreakMinutes float64 `json:"next_break_minutes"`
}

// Eye strain risk levels
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

// EyeCareBase is the 20-20-20 rule with its adjustable knobs: every
// IntervalMinutes, look DistanceFeet away for DurationSeconds.
type EyeCareBase struct {
	IntervalMinutes int  `json:"interval_minutes"`
	DistanceFeet    int  `json:"distance_feet"`
	DurationSeconds int  `json:"duration_seconds"`
	Enabled         bool `json:"enabled"`
}

// EyeCareExercise is one guided eye exercise
type EyeCareExercise struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Benefit         string `json:"benefit"`
	DurationSeconds int    `json:"duration_seconds"`
}

// EyeCareRoutine is the personalized eye care plan for a session
type EyeCareRoutine struct {
	Base      EyeCareBase       `json:"base_routine"`
	Exercises []EyeCareExercise `json:"exercises"`
	Reminders []string          `json:"custom_reminders"`
}

// SwitchAnalysis summarizes category changes across the usage sequence
type SwitchAnalysis struct {
	Switches          int      `json:"switches"`
	ProdToEntSwitches int      `json:"prod_to_ent_switches"`
	ImpactScore       int      `json:"impact_score"`
	Recommendations   []string `json:"recommendations"`
}

// Insight is a single human-readable observation about the session
type Insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Insight types
const (
	InsightWarning = "warning"
	InsightInfo    = "info"
	InsightHealth  = "health"
)

// FocusSession is one planned work block in a focus session plan
type FocusSession struct {
	Session         int       `json:"session"`
	DurationMinutes int       `json:"duration_minutes"`
	BreakMinutes    int       `json:"break_minutes"`
	FocusApps       []string  `json:"focus_apps"`
	StartTime       time.Time `json:"start_time"`
}

// Goal tracks weekly hours against a per-category target
type Goal struct {
	Category        string   `json:"category"`
	TargetHours     float64  `json:"target_hours"`
	CurrentHours    float64  `json:"current_hours"`
	Progress        int      `json:"progress"`
	Status          string   `json:"status"`
	Recommendations []string `json:"recommendations"`
}

// Goal statuses
const (
	GoalNotStarted     = "Not Started"
	GoalInProgress     = "In Progress"
	GoalAlmostComplete = "Almost Complete"
	GoalCompleted      = "Completed"
)

// Report is the full output of one tracking-and-analysis cycle. It is plain
// structured data with no rendering dependencies; presentation layers
// consume it as-is.
type Report struct {
	RunID           string         `json:"run_id"`
	StartedAt       time.Time      `json:"started_at"`
	EndedAt         time.Time      `json:"ended_at"`
	Records         []UsageRecord  `json:"records"`
	Categories      CategoryUsage  `json:"categories"`
	TotalMinutes    float64        `json:"total_minutes"`
	Ratios          Ratios         `json:"ratios"`
	Wellbeing       WellbeingScore `json:"wellbeing"`
	EyeStrain       EyeStrainRisk  `json:"eye_strain"`
	EyeCare         EyeCareRoutine `json:"eye_care"`
	Switching       SwitchAnalysis `json:"switching"`
	Insights        []Insight      `json:"insights"`
	Recommendations []string       `json:"recommendations"`
	BlueLight       []string       `json:"blue_light"`
	FocusPlan       []FocusSession `json:"focus_plan"`
	Goals           []Goal         `json:"goals"`
}
