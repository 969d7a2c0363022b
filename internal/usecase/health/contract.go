package health

import "context"

// DBPinger checks search store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}
