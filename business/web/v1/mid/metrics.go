package mid

import (
	"context"
	"expvar"
	"net/http"
	"runtime"

	"github.com/certchain/certledger/foundation/web"
)

// counters holds the expvar counters published by the debug endpoint.
type counters struct {
	goroutines *expvar.Int
	requests   *expvar.Int
	errors     *expvar.Int
	panics     *expvar.Int
}

func (c *counters) addPanics() {
	c.panics.Add(1)
}

var metrics = counters{
	goroutines: expvar.NewInt("goroutines"),
	requests:   expvar.NewInt("requests"),
	errors:     expvar.NewInt("errors"),
	panics:     expvar.NewInt("panics"),
}

// Metrics updates program counters.
func Metrics() web.Middleware {

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			err := handler(ctx, w, r)

			// Increment the request counter and update the goroutine
			// count on an interval of the requests.
			metrics.requests.Add(1)
			if metrics.requests.Value()%100 == 0 {
				metrics.goroutines.Set(int64(runtime.NumGoroutine()))
			}

			// Increment the errors counter if an error occurred on
			// this request.
			if err != nil {
				metrics.errors.Add(1)
			}

			// Return the error so it can be handled further up the chain.
			return err
		}

		return h
	}

	return m
}
