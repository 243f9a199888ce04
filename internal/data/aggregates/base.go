package aggregates

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/talentswap-backend/internal/domain/aggregates"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
	"github.com/yungbote/talentswap-backend/internal/platform/logger"
)

const tracerName = "github.com/yungbote/talentswap-backend/internal/data/aggregates"

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	return d
}

// Executor runs service operations inside the unit of work and reports their outcome.
type Executor struct {
	deps BaseDeps
}

func NewExecutor(deps BaseDeps) *Executor {
	return &Executor{deps: deps.withDefaults()}
}

// Run executes fn in one transaction named op. Any error rolls back every write
// fn made and comes back mapped to an aggregate error.
func (e *Executor) Run(ctx context.Context, op string, fn func(dbc dbctx.Context) error) error {
	return executeWrite(ctx, e.deps, op, fn)
}

func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate.write"
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	err := deps.Runner.InTx(ctx, fn)
	mapped := MapError(op, err)

	status := "success"
	if mapped != nil {
		status = aggregateErrorStatus(mapped)
		// Business outcomes such as ALREADY_LIKED carry a reason and are not write conflicts.
		if domainagg.IsCode(mapped, domainagg.CodeConflict) && domainagg.ReasonOf(mapped) == "" {
			deps.Hooks.IncConflict(op)
		}
		if domainagg.IsCode(mapped, domainagg.CodeRetryable) {
			deps.Hooks.IncRetry(op)
		}
		span.SetStatus(codes.Error, mapped.Error())
		if reason := domainagg.ReasonOf(mapped); reason != "" {
			span.SetAttributes(attribute.String("business.reason", string(reason)))
		}
		if deps.Log != nil && status == string(domainagg.CodeInternal) {
			deps.Log.Error("aggregate operation failed", "op", op, "error", err)
		}
	}
	span.SetAttributes(attribute.String("aggregate.status", status))
	deps.Hooks.ObserveOperation(op, status, time.Since(start))
	return mapped
}

func aggregateErrorStatus(err error) string {
	if err == nil {
		return "success"
	}
	code := strings.TrimSpace(string(domainagg.CodeOf(err)))
	if code == "" {
		code = strings.TrimSpace(string(domainagg.CodeOf(MapError("aggregate.status", err))))
	}
	if code == "" {
		return "failure"
	}
	return code
}
