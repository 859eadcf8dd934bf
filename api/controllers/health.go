package controllers

import (
	"context"
	"net/http"

	"github.com/aurelioguzman/tendermarket-backend/api/responses"
	"github.com/aurelioguzman/tendermarket-backend/pkg/config"
	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
	"go.uber.org/multierr"
)

const envHeader = "X-Tendermarket-Env"

// Pinger is a dependency that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every backing dependency and reports 503 with the
// combined failure when any is down.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, redis Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx := r.Context()
		var combined error
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				combined = multierr.Append(combined, err)
			}
		}
		if redis != nil {
			if err := redis.Ping(ctx); err != nil {
				combined = multierr.Append(combined, err)
			}
		}

		if combined != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "dependency check failed"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
