package supabase

import "context"

// QueryOptions narrows a query beyond the single equality filter. Select
// defaults to "*", Limit of zero means no limit parameter.
type QueryOptions struct {
	Select string
	Limit  int
}

// SupabaseClient issues read-only queries against the remote data store.
// Every call is one GET with an equality filter on one field; the result is
// the decoded JSON array. The client never interprets an empty array — that
// is the caller's business.
type SupabaseClient interface {
	Select(ctx context.Context, resource, filterField, filterValue string, opts *QueryOptions) ([]map[string]interface{}, error)
}
