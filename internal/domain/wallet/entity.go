package wallet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTopUpOutOfRange   = errors.New("top-up amount out of allowed range")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNonPositiveAmount = errors.New("transaction amount must be positive")
)

// Top-up bounds, inclusive. Amounts outside are rejected before any
// transaction is appended.
const (
	MinTopUp int64 = 500
	MaxTopUp int64 = 100000
)

type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// Transaction is immutable once appended; the account balance is always the
// running sum of all transactions and can be recomputed for audit.
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Amount      int64
	Date        time.Time
	Description string
}

// Account holds a performer's balance and ordered transaction history.
// Mutations append; the balance never goes below zero.
type Account struct {
	performerID  uuid.UUID
	balance      int64
	transactions []Transaction
}

func NewAccount(performerID uuid.UUID) *Account {
	return &Account{performerID: performerID}
}

func ReconstructAccount(performerID uuid.UUID, balance int64, transactions []Transaction) *Account {
	return &Account{
		performerID:  performerID,
		balance:      balance,
		transactions: transactions,
	}
}

func (a *Account) PerformerID() uuid.UUID { return a.performerID }
func (a *Account) Balance() int64         { return a.balance }

func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// RecomputedBalance re-derives the balance from the full history, for audit.
func (a *Account) RecomputedBalance() int64 {
	var sum int64
	for _, tx := range a.transactions {
		switch tx.Type {
		case TypeCredit:
			sum += tx.Amount
		case TypeDebit:
			sum -= tx.Amount
		}
	}
	return sum
}

// TopUp validates bounds before anything is appended; on failure the account
// is untouched.
func (a *Account) TopUp(amount int64, now time.Time) (Transaction, error) {
	if amount < MinTopUp || amount > MaxTopUp {
		return Transaction{}, ErrTopUpOutOfRange
	}
	tx := Transaction{
		ID:          uuid.New(),
		Type:        TypeCredit,
		Amount:      amount,
		Date:        now,
		Description: "wallet top-up",
	}
	a.transactions = append(a.transactions, tx)
	a.balance += amount
	return tx, nil
}

// Debit appends a debit transaction, refusing any mutation that would take
// the balance negative.
func (a *Account) Debit(amount int64, description string, now time.Time) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrNonPositiveAmount
	}
	if a.balance-amount < 0 {
		return Transaction{}, ErrInsufficientFunds
	}
	tx := Transaction{
		ID:          uuid.New(),
		Type:        TypeDebit,
		Amount:      amount,
		Date:        now,
		Description: description,
	}
	a.transactions = append(a.transactions, tx)
	a.balance -= amount
	return tx, nil
}
