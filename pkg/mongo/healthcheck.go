package mongo

import (
	"context"
	"errors"
)

// Healthcheck returns a health check function suitable for HTTP health
// endpoints. It reports healthy while the lazy connection has not yet been
// established, and pings the server once it has.
func Healthcheck(connector *Connector) func(context.Context) error {
	return func(ctx context.Context) error {
		if !connector.IsReady() {
			return nil
		}
		db, err := connector.Connect(ctx)
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if err := db.Client().Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
