package dashboard

import "context"

// Repository holds the aggregate count queries the stats endpoint
// needs in one round trip each.
type Repository interface {
	TotalEmployees(ctx context.Context) (int64, error)
	ActiveEmployees(ctx context.Context) (int64, error)
	PendingLeaves(ctx context.Context) (int64, error)
	PendingMembers(ctx context.Context) (int64, error)
}
