package testutil

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/yungbote/talentswap-backend/internal/data/aggregates"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
)

// FailingCommitRunner runs the body in a real transaction and, when FailCommit
// is set, rolls it back after a successful body as if the commit had failed.
type FailingCommitRunner struct {
	DB         *gorm.DB
	FailCommit error

	mu        sync.Mutex
	Commits   int
	Rollbacks int
}

var _ aggregates.TxRunner = (*FailingCommitRunner)(nil)

func (r *FailingCommitRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(dbctx.Context{Ctx: ctx, Tx: tx}); err != nil {
			return err
		}
		return r.FailCommit
	})
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.Rollbacks++
	} else {
		r.Commits++
	}
	return err
}
