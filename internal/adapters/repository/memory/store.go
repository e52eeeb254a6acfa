// Package memory はプロセス内メモリで台帳ストアを提供します。ローカル開発とテストで利用します。
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/ogurasousui/benefit-ledger/internal/core/employee"
)

// Store は会社・社員・預入のテーブルを保持します。
// エンティティは保存時に複製され、更新はポインタの差し替えで行います。
type Store struct {
	// txMu は WithinReadWrite の間保持され、書き込みトランザクションを直列化します。
	txMu sync.RWMutex
	mu   sync.RWMutex
	data tables
}

type tables struct {
	companies     map[string]*company.Company
	credentials   map[string]string
	companyEmails map[string]string
	companyOrder  []string

	employees        map[string]*employee.Employee
	employeesByOwner map[string][]string

	deposits           map[string]*deposit.Deposit
	depositsByEmployee map[string][]string
}

// New は空の Store を生成します。
func New() *Store {
	return &Store{data: tables{
		companies:          make(map[string]*company.Company),
		credentials:        make(map[string]string),
		companyEmails:      make(map[string]string),
		employees:          make(map[string]*employee.Employee),
		employeesByOwner:   make(map[string][]string),
		deposits:           make(map[string]*deposit.Deposit),
		depositsByEmployee: make(map[string][]string),
	}}
}

// Companies は会社リポジトリを返します。
func (s *Store) Companies() *CompanyRepository { return &CompanyRepository{store: s} }

// Employees は社員リポジトリを返します。
func (s *Store) Employees() *EmployeeRepository { return &EmployeeRepository{store: s} }

// Deposits は預入リポジトリを返します。
func (s *Store) Deposits() *DepositRepository { return &DepositRepository{store: s} }

// TransactionManager はトランザクションマネージャを返します。
func (s *Store) TransactionManager() *TransactionManager { return &TransactionManager{store: s} }

// Ping は常に成功します。
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) snapshot() tables {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := tables{
		companies:          maps.Clone(s.data.companies),
		credentials:        maps.Clone(s.data.credentials),
		companyEmails:      maps.Clone(s.data.companyEmails),
		companyOrder:       slices.Clone(s.data.companyOrder),
		employees:          maps.Clone(s.data.employees),
		employeesByOwner:   make(map[string][]string, len(s.data.employeesByOwner)),
		deposits:           maps.Clone(s.data.deposits),
		depositsByEmployee: make(map[string][]string, len(s.data.depositsByEmployee)),
	}
	for k, v := range s.data.employeesByOwner {
		snap.employeesByOwner[k] = slices.Clone(v)
	}
	for k, v := range s.data.depositsByEmployee {
		snap.depositsByEmployee[k] = slices.Clone(v)
	}
	return snap
}

func (s *Store) restore(snap tables) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = snap
}

type txContextKey struct{}

// TransactionManager は Store 全体に対するトランザクションを提供します。
// 書き込みトランザクションは排他で実行され、fn がエラーを返すと開始時点の状態へ戻します。
type TransactionManager struct {
	store *Store
}

// WithinReadOnly は読み取りトランザクション内で fn を実行します。
func (m *TransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	if inTransaction(ctx) {
		return fn(ctx)
	}

	m.store.txMu.RLock()
	defer m.store.txMu.RUnlock()

	return fn(context.WithValue(ctx, txContextKey{}, true))
}

// WithinReadWrite は書き込みトランザクション内で fn を実行します。
func (m *TransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	if inTransaction(ctx) {
		return fn(ctx)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	snap := m.store.snapshot()
	if err := fn(context.WithValue(ctx, txContextKey{}, true)); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

func inTransaction(ctx context.Context) bool {
	v, _ := ctx.Value(txContextKey{}).(bool)
	return v
}

func page[T any](items []T, limit, offset int) ([]T, int) {
	if offset >= len(items) {
		return []T{}, -1
	}
	end := offset + limit
	if end >= len(items) {
		return items[offset:], -1
	}
	return items[offset:end], end
}
