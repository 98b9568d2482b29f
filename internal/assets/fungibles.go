package assets

// Fungibles is the capability surface other modules consume to inspect and
// move balances without going through a signed command: it wraps an Engine
// and calls its decision logic directly rather than dispatching back through
// a command, so none of these methods re-enters the command layer.
type Fungibles struct {
	engine *Engine
}

// NewFungibles exposes engine's stores through the inspect/mutate/approve
// capability surface.
func NewFungibles(engine *Engine) *Fungibles {
	return &Fungibles{engine: engine}
}

func (f *Fungibles) view(fn func(t Txn)) {
	t := f.engine.store.Begin()
	fn(t)
	t.Rollback()
}

// TotalIssuance reports an asset class's current supply, or 0 if unknown.
func (f *Fungibles) TotalIssuance(id AssetId) uint64 {
	var out uint64
	f.view(func(t Txn) {
		if d, ok := t.Asset(id); ok {
			out = d.Supply
		}
	})
	return out
}

// MinimumBalance reports an asset class's min_balance, or 0 if unknown.
func (f *Fungibles) MinimumBalance(id AssetId) uint64 {
	var out uint64
	f.view(func(t Txn) {
		if d, ok := t.Asset(id); ok {
			out = d.MinBalance
		}
	})
	return out
}

// Balance reports who's balance of id, or 0 if they hold no account.
func (f *Fungibles) Balance(id AssetId, who AccountId) uint64 {
	var out uint64
	f.view(func(t Txn) {
		if a, ok := t.Account(id, who); ok {
			out = a.Balance
		}
	})
	return out
}

// ReducibleBalance reports how much of who's balance can be withdrawn: the
// full balance, or the full balance minus min_balance if keepAlive demands
// the account survive and a debit of everything would otherwise reap it.
func (f *Fungibles) ReducibleBalance(id AssetId, who AccountId, keepAlive bool) uint64 {
	var out uint64
	f.view(func(t Txn) {
		d, ok := t.Asset(id)
		if !ok {
			return
		}
		a, ok := t.Account(id, who)
		if !ok || d.IsFrozen || a.IsFrozen {
			return
		}
		if keepAlive && a.Balance >= d.MinBalance {
			out = a.Balance - d.MinBalance
			return
		}
		out = a.Balance
	})
	return out
}

// CanDeposit reports whether amount could currently be credited to who
// without error.
func (f *Fungibles) CanDeposit(id AssetId, who AccountId, amount uint64) bool {
	ok := false
	f.view(func(t Txn) {
		details, exists := t.Asset(id)
		if !exists {
			return
		}
		acct, hasAcct := t.Account(id, who)
		var acctPtr *AssetAccount
		if hasAcct {
			acctPtr = &acct
		}
		ok = f.engine.canIncrease(t, id, details, who, acctPtr, amount) == nil
	})
	return ok
}

// CanWithdraw reports whether amount could currently be debited from who
// without error, honoring keepAlive the same way a keep-alive transfer would.
func (f *Fungibles) CanWithdraw(id AssetId, who AccountId, amount uint64, keepAlive bool) bool {
	ok := false
	f.view(func(t Txn) {
		details, exists := t.Asset(id)
		if !exists {
			return
		}
		acct, hasAcct := t.Account(id, who)
		var acctPtr *AssetAccount
		if hasAcct {
			acctPtr = &acct
		}
		_, err := f.engine.canDecrease(details, acctPtr, amount, DecreaseFlags{KeepAlive: keepAlive})
		ok = err == nil
	})
	return ok
}

// AssetExists reports whether id names a live asset class.
func (f *Fungibles) AssetExists(id AssetId) bool {
	exists := false
	f.view(func(t Txn) {
		_, exists = t.Asset(id)
	})
	return exists
}

// Allowance reports the amount owner has approved delegate to move, or 0 if
// no approval is in place.
func (f *Fungibles) Allowance(id AssetId, owner, delegate AccountId) uint64 {
	var out uint64
	f.view(func(t Txn) {
		if a, ok := t.Approval(id, owner, delegate); ok {
			out = a.Amount
		}
	})
	return out
}

// MintInto credits who directly, bypassing the issuer permission check that
// gates the Mint command — for use by other modules acting as the asset's
// effective issuer.
func (f *Fungibles) MintInto(id AssetId, who AccountId, amount uint64) ([]Event, error) {
	return f.engine.run(func(t Txn) ([]Event, error) {
		if err := f.engine.creditAccount(t, id, who, amount); err != nil {
			return nil, err
		}
		return []Event{newEvent(EventIssued, id, map[string]any{"owner": who, "amount": amount})}, nil
	})
}

// BurnFrom debits who directly, bypassing the custodian permission check
// that gates the Burn command.
func (f *Fungibles) BurnFrom(id AssetId, who AccountId, amount uint64) ([]Event, error) {
	return f.engine.run(func(t Txn) ([]Event, error) {
		return f.engine.burnFrom(t, id, who, amount)
	})
}

// Transfer moves amount of id from source to dest, bypassing the
// source-must-equal-caller check that gates the Transfer/ForceTransfer
// commands.
func (f *Fungibles) Transfer(id AssetId, source, dest AccountId, amount uint64, keepAlive bool) ([]Event, error) {
	return f.engine.run(func(t Txn) ([]Event, error) {
		flags := TransferFlags{DecreaseFlags: DecreaseFlags{KeepAlive: keepAlive}}
		actual, err := f.engine.doTransfer(t, id, source, dest, amount, flags)
		if err != nil {
			return nil, err
		}
		return []Event{newEvent(EventTransferred, id, map[string]any{"from": source, "to": dest, "amount": actual})}, nil
	})
}

// Approve grants delegate an allowance over owner's holdings of id, the same
// way ApproveTransfer does.
func (f *Fungibles) Approve(id AssetId, owner, delegate AccountId, amount uint64) ([]Event, error) {
	return f.engine.ApproveTransfer(owner, id, delegate, amount)
}

// TransferFrom consumes delegate's standing approval from owner to move
// amount to dest, the same way TransferApproved does.
func (f *Fungibles) TransferFrom(id AssetId, owner, delegate, dest AccountId, amount uint64) ([]Event, error) {
	return f.engine.TransferApproved(delegate, id, owner, dest, amount)
}
