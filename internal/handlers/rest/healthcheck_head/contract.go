package healthcheck_head

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}
