package contract

import "github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"

// StatsScope selects which overlay entries a statistics query covers.
type StatsScope string

const (
	ScopeGlobal      StatsScope = "global"
	ScopeTeam        StatsScope = "team"
	ScopeCoordinator StatsScope = "coordinator"
)

// StatsRequest scopes a statistics query to one shift. TeamID is required
// for ScopeTeam and ignored otherwise.
type StatsRequest struct {
	Shift  domain.Shift
	Scope  StatsScope
	TeamID string
}

// StatsReport holds counts over the recorded overlay entries in scope.
// CompletionPct is Pass/Total*100 rounded to the nearest integer, 0 when no
// entries are recorded.
type StatsReport struct {
	Shift         domain.Shift
	Scope         StatsScope
	TeamID        string
	Total         int
	Pass          int
	Fail          int
	Absent        int
	Unset         int
	CompletionPct int
}
