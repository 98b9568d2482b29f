package assets

import "errors"

// ErrInsufficientBalance is returned by Currency.Reserve when the depositor
// does not hold enough free balance to cover the reservation.
var ErrInsufficientBalance = errors.New("currency: insufficient free balance")

// Currency is the narrow native-currency capability this module consumes for
// deposit accounting. The embedding runtime's real ledger sits
// behind this interface; the engine never inspects balances beyond it.
type Currency interface {
	// Reserve moves amount from who's free balance into their reserved
	// balance. Fails with ErrInsufficientBalance if free balance is short.
	Reserve(who AccountId, amount uint64) error
	// Unreserve moves amount from who's reserved balance back to free.
	Unreserve(who AccountId, amount uint64) error
	// RepatriateReserved moves amount from from's reserved balance directly
	// into to's reserved balance (used when a deposit moves to a new owner).
	RepatriateReserved(from, to AccountId, amount uint64) error
	// MinimumBalance returns the chain's existential deposit for the native
	// currency (not this module's per-asset MinBalance).
	MinimumBalance() uint64
	// Balance returns who's current free balance.
	Balance(who AccountId) uint64
}

// InMemoryCurrency is a reference Currency implementation for tests and the
// CLI demo. Grounded on the reserve bookkeeping in
// internal/core/tx/apply_context.go's AccountReserve/CheckReserveIncrease.
type InMemoryCurrency struct {
	free     map[AccountId]uint64
	reserved map[AccountId]uint64
	minBal   uint64
}

// NewInMemoryCurrency creates a reference currency ledger with the given
// existential deposit.
func NewInMemoryCurrency(minBalance uint64) *InMemoryCurrency {
	return &InMemoryCurrency{
		free:     make(map[AccountId]uint64),
		reserved: make(map[AccountId]uint64),
		minBal:   minBalance,
	}
}

// SetBalance seeds who's free balance (test/demo helper).
func (c *InMemoryCurrency) SetBalance(who AccountId, amount uint64) {
	c.free[who] = amount
}

func (c *InMemoryCurrency) Reserve(who AccountId, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if c.free[who] < amount {
		return ErrInsufficientBalance
	}
	c.free[who] -= amount
	c.reserved[who] += amount
	return nil
}

func (c *InMemoryCurrency) Unreserve(who AccountId, amount uint64) error {
	if amount == 0 {
		return nil
	}
	have := c.reserved[who]
	if amount > have {
		amount = have
	}
	c.reserved[who] -= amount
	c.free[who] += amount
	return nil
}

func (c *InMemoryCurrency) RepatriateReserved(from, to AccountId, amount uint64) error {
	if amount == 0 {
		return nil
	}
	have := c.reserved[from]
	if amount > have {
		amount = have
	}
	c.reserved[from] -= amount
	c.reserved[to] += amount
	return nil
}

func (c *InMemoryCurrency) MinimumBalance() uint64 {
	return c.minBal
}

func (c *InMemoryCurrency) Balance(who AccountId) uint64 {
	return c.free[who]
}

// ReservedOf reports who's total reserved balance (test/demo helper).
func (c *InMemoryCurrency) ReservedOf(who AccountId) uint64 {
	return c.reserved[who]
}
