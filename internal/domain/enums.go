package domain

type Area string

const (
	AreaEngineering    Area = "engineering"
	AreaProduct        Area = "product"
	AreaInfrastructure Area = "infrastructure"
)

// Areas is the closed set of owning areas, in display order. Dashboard
// metrics are always reported against exactly this set, even for areas
// with zero items.
var Areas = []Area{AreaEngineering, AreaProduct, AreaInfrastructure}

func (a Area) Valid() bool {
	for _, v := range Areas {
		if a == v {
			return true
		}
	}
	return false
}

type ItemStatus string

const (
	StatusTodo       ItemStatus = "todo"
	StatusInProgress ItemStatus = "in_progress"
	StatusDone       ItemStatus = "done"
)

var ItemStatuses = []ItemStatus{StatusTodo, StatusInProgress, StatusDone}

func (s ItemStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type RiskTier string

const (
	TierLow    RiskTier = "low"
	TierMedium RiskTier = "medium"
	TierHigh   RiskTier = "high"
)

type AlertKind string

const (
	AlertRisk     AlertKind = "risk"
	AlertDeadline AlertKind = "deadline"
	AlertInfo     AlertKind = "info"
)

func (k AlertKind) Valid() bool {
	switch k {
	case AlertRisk, AlertDeadline, AlertInfo:
		return true
	}
	return false
}

// IssueType values match the tracker's issue type names verbatim.
type IssueType string

const (
	IssueEpic  IssueType = "Epic"
	IssueStory IssueType = "Story"
	IssueTask  IssueType = "Task"
)
