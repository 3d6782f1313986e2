package economy

import (
	"fmt"

	"github.com/osse101/taskfarm/internal/domain"
)

// Wallet holds a single sun energy balance.
// It has no lock of its own: the owning farm session serializes access.
type Wallet struct {
	balance int
}

// NewWallet creates a wallet with the given starting balance
func NewWallet(starting int) (*Wallet, error) {
	if starting < 0 {
		return nil, fmt.Errorf(ErrMsgNegativeAmountFmt, domain.ErrInvalidAmount, starting)
	}
	return &Wallet{balance: starting}, nil
}

// Balance returns the current balance
func (w *Wallet) Balance() int {
	return w.balance
}

// CanAfford reports whether amount could be debited right now
func (w *Wallet) CanAfford(amount int) bool {
	return amount >= 0 && amount <= w.balance
}

// Debit removes amount from the balance. The balance is left untouched on error.
func (w *Wallet) Debit(amount int) error {
	if amount < 0 {
		return fmt.Errorf(ErrMsgNegativeAmountFmt, domain.ErrInvalidAmount, amount)
	}
	if amount > w.balance {
		return fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, amount, w.balance)
	}
	w.balance -= amount
	return nil
}

// Credit adds amount to the balance
func (w *Wallet) Credit(amount int) error {
	if amount < 0 {
		return fmt.Errorf(ErrMsgNegativeAmountFmt, domain.ErrInvalidAmount, amount)
	}
	w.balance += amount
	return nil
}
