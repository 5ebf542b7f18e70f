package models

// Intensity levels for victory (resisted-urge) events. 0 means unset and is
// the only value a slip carries.
const (
	IntensityUnset     = 0
	IntensityEarly     = 1 // early spark
	IntensityHeavyUrge = 2 // heavy urge
	IntensityNearMiss  = 3 // near miss
)

// Event is the sole persisted entity: a single logged slip or victory.
// Timestamp is milliseconds since epoch; legacy rows may store whole seconds,
// which consumers normalize before any date arithmetic.
type Event struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamp int64   `json:"timestamp" gorm:"not null;index"`
	IsVictory bool    `json:"isVictory" gorm:"not null;default:false"`
	Intensity int     `json:"intensity" gorm:"not null;default:0"`
	Note      *string `json:"note,omitempty"`
	Trigger   *string `json:"trigger,omitempty"`
}

// TableName keeps the table name the mobile app used.
func (Event) TableName() string {
	return "slips"
}

// LogEventRequest is the request to record a slip or victory.
// Timestamp defaults to "now" when zero.
type LogEventRequest struct {
	Timestamp int64   `json:"timestamp"`
	IsVictory bool    `json:"isVictory"`
	Intensity int     `json:"intensity"`
	Note      *string `json:"note"`
	Trigger   *string `json:"trigger"`
}

// StreakStats holds the three streak figures derived from the slip log.
type StreakStats struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
	Average int `json:"average"`
}

// CalendarDay is one cell of the dense month grid.
type CalendarDay struct {
	Day      int `json:"day"`
	Relapses int `json:"relapses"`
}

// DaySummary is one row of the reverse-chronological history list.
// LongestStreak is a UI placeholder, not computed by the analytics core.
type DaySummary struct {
	Date          string `json:"date"` // ISO-8601 YYYY-MM-DD
	Relapses      int    `json:"relapses"`
	LongestStreak string `json:"longest_streak"`
}

// Insights holds the descriptive statistics derived from the slip log.
// Nil fields are omitted when a figure cannot be derived.
type Insights struct {
	MostCommonHour  *string `json:"most_common_hour,omitempty"`
	MostCommonDay   *string `json:"most_common_day,omitempty"`
	WeekComparison  *string `json:"week_comparison,omitempty"`
	AverageStreak   *string `json:"average_streak,omitempty"`
	TopTrigger      *string `json:"top_trigger,omitempty"`
	SuggestedAction *string `json:"suggested_action,omitempty"`
}

// InsightsResponse is the API envelope around Insights. DataSufficient is
// false when fewer than MinEventsNeeded slips exist.
type InsightsResponse struct {
	Insights        *Insights `json:"insights,omitempty"`
	DataSufficient  bool      `json:"data_sufficient"`
	MinEventsNeeded int       `json:"min_events_needed,omitempty"`
}

// WeeklyReport counts this week's outcomes. The week starts Monday; today is
// excluded from the clean-day count because it is still in progress.
type WeeklyReport struct {
	SlipsThisWeek     int `json:"slips_this_week"`
	VictoriesThisWeek int `json:"victories_this_week"`
	CleanDaysThisWeek int `json:"clean_days_this_week"`
}

// Milestone is returned when the current clean streak lands exactly on a
// celebrated day count.
type Milestone struct {
	Days    int    `json:"days"`
	Message string `json:"message"`
}

// HomeSummary is the data backing the app's home screen.
type HomeSummary struct {
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	Elapsed       string `json:"elapsed"`
	DailyQuote    string `json:"daily_quote"`
}

// ImportResult reports the outcome of a destructive backup import.
type ImportResult struct {
	Imported int `json:"imported"`
}
