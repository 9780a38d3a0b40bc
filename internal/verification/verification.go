// Package verification runs external payment and identity checks as
// asynchronous tasks. The only gateway today is a simulation that approves
// everything after a fixed delay; a real payment gateway plugs in behind the
// same Gateway interface.
package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindPurchase Kind = "purchase"
	KindKyc      Kind = "kyc"
	KindSupport  Kind = "support"
)

type Request struct {
	Kind      Kind
	UserID    string
	Amount    decimal.Decimal
	Reference string
}

type Result struct {
	Request     Request
	Approved    bool
	Reason      string
	CompletedAt time.Time
}

// Err is nil for an approved result and wraps domain.ErrVerificationFailed otherwise.
func (r Result) Err() error {
	if r.Approved {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrVerificationFailed, r.Reason)
}

type Gateway interface {
	Verify(ctx context.Context, req Request) (Result, error)
}

// GatewayFunc adapts a plain function to Gateway.
type GatewayFunc func(ctx context.Context, req Request) (Result, error)

func (f GatewayFunc) Verify(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}

type SimulatedGateway struct {
	delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) Verify(ctx context.Context, req Request) (Result, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	return Result{
		Request:     req,
		Approved:    true,
		CompletedAt: time.Now(),
	}, nil
}

// Future is the pending outcome of a submitted verification.
type Future struct {
	done   chan struct{}
	result Result
	err    error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) complete(result Result, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the verification finishes or ctx is done. Giving up
// on a future does not roll anything back: nothing is applied until the
// caller acts on the result.
func (f *Future) Await(ctx context.Context) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-f.done:
		return f.result, f.err
	}
}

type Processor struct {
	gateway Gateway
	pool    WorkerPoolI
}

func NewProcessor(gateway Gateway, pool WorkerPoolI) *Processor {
	return &Processor{
		gateway: gateway,
		pool:    pool,
	}
}

func (p *Processor) Submit(ctx context.Context, req Request) (*Future, error) {
	f := newFuture()
	err := p.pool.AddTask(ctx, func() error {
		res, err := p.gateway.Verify(ctx, req)
		f.complete(res, err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			zap.L().Debug("verification abandoned", zap.String("kind", string(req.Kind)), zap.String("userID", req.UserID))
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Verify submits req and waits for an approved result.
func (p *Processor) Verify(ctx context.Context, req Request) (Result, error) {
	f, err := p.Submit(ctx, req)
	if err != nil {
		return Result{}, err
	}
	res, err := f.Await(ctx)
	if err != nil {
		return Result{}, err
	}
	return res, res.Err()
}

func (p *Processor) Close() {
	p.pool.Close()
}
