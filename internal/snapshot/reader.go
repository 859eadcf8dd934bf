package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	pkgerrors "github.com/aurelioguzman/tendermarket-backend/pkg/errors"
	pkgredis "github.com/aurelioguzman/tendermarket-backend/pkg/redis"
)

// snapshotReader is the redis surface used for serving snapshots.
type snapshotReader interface {
	Get(ctx context.Context, key string) (string, error)
	SnapshotKey(name string) string
}

// Reader serves the last published dashboard snapshot.
type Reader struct {
	store snapshotReader
}

// NewReader builds a Reader over the redis client.
func NewReader(store snapshotReader) (*Reader, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	return &Reader{store: store}, nil
}

// LatestDashboard returns the most recent snapshot, or a not-found error when
// no worker has published one within the TTL.
func (r *Reader) LatestDashboard(ctx context.Context) (*analytics.DashboardReport, error) {
	raw, err := r.store.Get(ctx, r.store.SnapshotKey(DashboardSnapshotName))
	if err != nil {
		if errors.Is(err, pkgredis.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no dashboard snapshot available yet")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading dashboard snapshot")
	}

	var dashboard analytics.DashboardReport
	if err := json.Unmarshal([]byte(raw), &dashboard); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding dashboard snapshot")
	}
	return &dashboard, nil
}
