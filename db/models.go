package db

// Event represents a row in the events table: one tagged occurrence
// (a play or phase) within a match session. Events sharing the same
// (Date, HomeTeam, AwayTeam, KickoffMinute) quadruple belong to one
// session even when MatchID is nil.
type Event struct {
	ID               int64
	Date             string // display format dd/mm/yyyy
	HomeTeam         string
	AwayTeam         string
	Player           string
	Minute           string // free-text timecode, varies per event
	KickoffMinute    string // free-text timecode, constant per session
	PhaseType        string
	MainEvent        string
	PossessionOrigin string
	PhaseCount       int
	Zone             string
	Outcome          string
	GainLine         string
	RuckSpeed        string
	Penalty          string
	Comment          string
	VideoURL         string
	MatchID          *int64 // nil means unlinked
}

// Match represents a row in the matches table: a named grouping of
// events sharing one session.
type Match struct {
	ID            int64
	Date          string
	HomeTeam      string
	AwayTeam      string
	KickoffMinute string
	VideoURL      string
	Name          string
}

// MatchSummary is the projection returned by ListMatches.
type MatchSummary struct {
	ID       int64
	Name     string
	Date     string
	HomeTeam string
	AwayTeam string
}

// Classification values. Stored as TEXT; the form widgets offer exactly
// these options, but nothing at the storage layer rejects other strings.

// Phase types
const (
	PhaseAttack     = "Attack"
	PhaseDefense    = "Defense"
	PhaseTransition = "Transition"
)

// Main events
const (
	EventLineout  = "Lineout"
	EventScrum    = "Scrum"
	EventRuck     = "Ruck"
	EventMaul     = "Maul"
	EventKick     = "Kick"
	EventPenalty  = "Penalty"
	EventTry      = "Try"
	EventTurnover = "Turnover"
)

// Possession origins
const (
	OriginLineout     = "Lineout"
	OriginScrum       = "Scrum"
	OriginKick        = "Kick"
	OriginTurnover    = "Turnover"
	OriginStartOfHalf = "Start of half"
)

// Outcomes
const (
	OutcomeNeutral  = "Neutral"
	OutcomeNegative = "Negative"
	OutcomePositive = "Positive"
)

// Gain line results
const (
	GainLineGained  = "Gained"
	GainLineLost    = "Lost"
	GainLineNeutral = "Neutral"
)

// Option lists for form select widgets, in display order.
var (
	PhaseTypes        = []string{PhaseAttack, PhaseDefense, PhaseTransition}
	MainEvents        = []string{EventLineout, EventScrum, EventRuck, EventMaul, EventKick, EventPenalty, EventTry, EventTurnover}
	PossessionOrigins = []string{OriginLineout, OriginScrum, OriginKick, OriginTurnover, OriginStartOfHalf}
	Zones             = []string{"22D", "50D", "50A", "22A"}
	Outcomes          = []string{OutcomeNeutral, OutcomeNegative, OutcomePositive}
	GainLines         = []string{GainLineGained, GainLineLost, GainLineNeutral}
	RuckSpeeds        = []string{"", "Fast", "Medium", "Slow"}
	Penalties         = []string{"", "CP+", "CP-", "S+", "S-", "CL+", "CL-"}
)
