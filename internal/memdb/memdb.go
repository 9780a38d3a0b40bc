package memdb

import (
	"context"
	"slices"
	"sync"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

// State is the process-wide application state. Every collection is owned
// here; other records reference users by id only. Ordered collections are
// kept newest first, except Transactions: the ledger is append-only and
// stored oldest first. Entries already in it are never rewritten.
type State struct {
	Users        []domain.User
	Transactions []domain.Transaction
	Withdrawals  []domain.WithdrawalRequest
	Bundles      []domain.SemBundle
	Results      []domain.DrawResult
	Banners      []domain.Banner
	UpiDetails   []domain.UpiDetail
	QrCodes      []domain.QrCodeDetail
	Winners      []domain.Winner
	Feed         []domain.RecentPurchase
	Tickets      []domain.SupportTicket
	AboutUs      string
}

func NewState() *State {
	return &State{}
}

// snapshot copies every mutable collection. The ledger is only appended to,
// so its current slice header is enough to restore it. Nested pointers and
// slices inside records are shared, records are replaced rather than
// mutated in place.
func (s *State) snapshot() *State {
	return &State{
		Users:        slices.Clone(s.Users),
		Transactions: s.Transactions[:len(s.Transactions):len(s.Transactions)],
		Withdrawals:  slices.Clone(s.Withdrawals),
		Bundles:      slices.Clone(s.Bundles),
		Results:      slices.Clone(s.Results),
		Banners:      slices.Clone(s.Banners),
		UpiDetails:   slices.Clone(s.UpiDetails),
		QrCodes:      slices.Clone(s.QrCodes),
		Winners:      slices.Clone(s.Winners),
		Feed:         slices.Clone(s.Feed),
		Tickets:      slices.Clone(s.Tickets),
		AboutUs:      s.AboutUs,
	}
}

type Database interface {
	View(ctx context.Context, fn func(s *State) error) error
	Update(ctx context.Context, fn func(s *State) error) error
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// DB guards State with a single RW lock. Update callbacks must validate
// before mutating: outside Begin there is no rollback.
type DB struct {
	mu    sync.RWMutex
	state *State
}

func New(state *State) *DB {
	if state == nil {
		state = NewState()
	}
	return &DB{state: state}
}

func (db *DB) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*DB)
	return ok && owner == db
}

func (db *DB) View(ctx context.Context, fn func(s *State) error) error {
	if db.inTx(ctx) {
		return fn(db.state)
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	return fn(db.state)
}

func (db *DB) Update(ctx context.Context, fn func(s *State) error) error {
	if db.inTx(ctx) {
		return fn(db.state)
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(db.state)
}

type TxManager struct {
	db *DB
}

func NewTXManager(db *DB) *TxManager {
	return &TxManager{db: db}
}

// Begin runs fn holding the write lock. Any error or panic from fn restores
// the state captured on entry. Nested calls join the outer transaction.
func (m *TxManager) Begin(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if m.db.inTx(ctx) {
		return fn(ctx)
	}

	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	snapshot := m.db.state.snapshot()
	defer func() {
		if r := recover(); r != nil {
			m.db.state = snapshot
			panic(r)
		}
		if err != nil {
			m.db.state = snapshot
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, m.db))
}
