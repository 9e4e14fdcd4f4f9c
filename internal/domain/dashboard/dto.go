package dashboard

// Stats is the one-call summary the admin dashboard renders.
// PresentToday includes late arrivals; AbsentToday is derived from the
// active headcount rather than read from storage.
type Stats struct {
	TotalEmployees  int64 `json:"total_employees"`
	ActiveEmployees int64 `json:"active_employees"`
	PresentToday    int64 `json:"present_today"`
	LateToday       int64 `json:"late_today"`
	OnLeaveToday    int64 `json:"on_leave_today"`
	AbsentToday     int64 `json:"absent_today"`
	PendingLeaves   int64 `json:"pending_leaves"`
	PendingMembers  int64 `json:"pending_members"`
}
