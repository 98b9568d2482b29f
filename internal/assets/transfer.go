package assets

// Mint credits amount to the asset's owner. caller must be the asset's
// issuer — the custodian for permissionlessly-created assets, or whichever
// account ForceCreate declared.
func (e *Engine) Mint(caller AccountId, id AssetId, amount uint64) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if caller != details.Issuer {
			return nil, ErrNoPermission
		}
		beneficiary := details.Owner
		if err := e.creditAccount(t, id, beneficiary, amount); err != nil {
			return nil, err
		}
		return []Event{newEvent(EventIssued, id, map[string]any{"owner": beneficiary, "amount": amount})}, nil
	})
}

// creditAccount is the permission-agnostic core of Mint: it increases
// supply and credits who's account (creating it if needed), applying
// can_increase's decision table. Callers that need a permission check make
// it before calling this.
func (e *Engine) creditAccount(t Txn, id AssetId, who AccountId, amount uint64) error {
	details, ok := t.Asset(id)
	if !ok {
		return ErrUnknown
	}

	acct, hasAcct := t.Account(id, who)
	var acctPtr *AssetAccount
	if hasAcct {
		acctPtr = &acct
	}
	if err := e.canIncrease(t, id, details, who, acctPtr, amount); err != nil {
		return err
	}
	if details.Supply > ^uint64(0)-amount {
		return ErrOverflow
	}
	details.Supply += amount

	if hasAcct {
		acct.Balance += amount
		t.PutAccount(id, who, acct)
	} else if err := e.creditNewAccount(t, id, &details, who, amount); err != nil {
		return err
	}
	t.PutAsset(id, details)
	return nil
}

// burnFrom is the shared body of Burn and SelfBurn: debit who by amount
// (ErrBalanceLow if who holds less; reaping on dust per decreaseBalance, which
// removes the whole balance), reduce supply by the actual
// amount removed, record the commanded amount against who's burn
// certificate, and emit Burned (actual) plus CarbonCreditsBurned (commanded).
func (e *Engine) burnFrom(t Txn, id AssetId, who AccountId, amount uint64) ([]Event, error) {
	details, ok := t.Asset(id)
	if !ok {
		return nil, ErrUnknown
	}

	flags := DecreaseFlags{KeepAlive: false, BestEffort: false}
	actual, _, err := e.decreaseBalance(t, id, &details, who, amount, flags)
	if err != nil {
		return nil, err
	}
	if actual > details.Supply {
		details.Supply = 0
	} else {
		details.Supply -= actual
	}
	t.PutAsset(id, details)

	cert := t.Certificate(who, id) + amount
	t.PutCertificate(who, id, cert)

	return []Event{
		newEvent(EventBurned, id, map[string]any{"owner": who, "balance": actual}),
		newEvent(EventCarbonCreditsBurned, id, map[string]any{"account": who, "amount": amount}),
	}, nil
}

// Burn debits who by amount, or by the whole balance when the remainder would
// fall below min_balance. caller must be the custodian.
func (e *Engine) Burn(caller AccountId, id AssetId, who AccountId, amount uint64) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		custodian, _ := t.Custodian()
		if caller != custodian {
			return nil, ErrNoPermission
		}
		return e.burnFrom(t, id, who, amount)
	})
}

// SelfBurn debits caller's own account by amount, or by the whole balance
// when the remainder would fall below min_balance.
func (e *Engine) SelfBurn(caller AccountId, id AssetId, amount uint64) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		return e.burnFrom(t, id, caller, amount)
	})
}

// doTransfer is the shared body behind Transfer, TransferKeepAlive and
// ForceTransfer. It checks no caller permission itself; ForceTransfer checks
// the admin before calling it, and there the caller need not be source.
func (e *Engine) doTransfer(t Txn, id AssetId, source, dest AccountId, amount uint64, flags TransferFlags) (uint64, error) {
	details, ok := t.Asset(id)
	if !ok {
		return 0, ErrUnknown
	}
	if details.IsFrozen {
		return 0, ErrFrozen
	}

	actual, reaped, err := e.decreaseBalance(t, id, &details, source, amount, flags.DecreaseFlags)
	if err != nil {
		return 0, err
	}

	credited := actual
	if reaped {
		dust := actual - amount
		if flags.BurnDust && dust > 0 {
			details.Supply -= dust
			credited = amount
		}
	}

	destAcct, hasDest := t.Account(id, dest)
	var destPtr *AssetAccount
	if hasDest {
		destPtr = &destAcct
	}
	if err := e.canIncrease(t, id, details, dest, destPtr, credited); err != nil {
		return 0, err
	}
	if hasDest {
		destAcct.Balance += credited
		t.PutAccount(id, dest, destAcct)
	} else if err := e.creditNewAccount(t, id, &details, dest, credited); err != nil {
		return 0, err
	}

	t.PutAsset(id, details)
	return credited, nil
}

// Transfer moves amount from caller to target. The source account may be
// reaped if the debit would leave it holding dust below min_balance.
func (e *Engine) Transfer(caller AccountId, id AssetId, target AccountId, amount uint64) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		flags := TransferFlags{}
		actual, err := e.doTransfer(t, id, caller, target, amount, flags)
		if err != nil {
			return nil, err
		}
		return []Event{newEvent(EventTransferred, id, map[string]any{"from": caller, "to": target, "amount": actual})}, nil
	})
}

// TransferKeepAlive moves amount from caller to target, refusing the debit
// outright rather than reaping caller's account.
func (e *Engine) TransferKeepAlive(caller AccountId, id AssetId, target AccountId, amount uint64) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		flags := TransferFlags{DecreaseFlags: DecreaseFlags{KeepAlive: true}}
		actual, err := e.doTransfer(t, id, caller, target, amount, flags)
		if err != nil {
			return nil, err
		}
		return []Event{newEvent(EventTransferred, id, map[string]any{"from": caller, "to": target, "amount": actual})}, nil
	})
}

// ForceTransfer moves amount from source to dest on the admin's authority;
// source need not be caller.
func (e *Engine) ForceTransfer(caller AccountId, id AssetId, source, dest AccountId, amount uint64) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if caller != details.Admin {
			return nil, ErrNoPermission
		}
		flags := TransferFlags{}
		actual, err := e.doTransfer(t, id, source, dest, amount, flags)
		if err != nil {
			return nil, err
		}
		return []Event{newEvent(EventTransferred, id, map[string]any{"from": source, "to": dest, "amount": actual})}, nil
	})
}

// Freeze marks a single account as frozen, blocking its outbound transfers
// and approvals. caller must be the asset's freezer.
func (e *Engine) Freeze(caller AccountId, id AssetId, who AccountId) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if caller != details.Freezer {
			return nil, ErrNoPermission
		}
		acct, ok := t.Account(id, who)
		if !ok {
			return nil, ErrNoAccount
		}
		acct.IsFrozen = true
		t.PutAccount(id, who, acct)
		return []Event{newEvent(EventFrozen, id, map[string]any{"who": who})}, nil
	})
}

// Thaw reverses Freeze. caller must be the asset's admin.
func (e *Engine) Thaw(caller AccountId, id AssetId, who AccountId) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if caller != details.Admin {
			return nil, ErrNoPermission
		}
		acct, ok := t.Account(id, who)
		if !ok {
			return nil, ErrNoAccount
		}
		acct.IsFrozen = false
		t.PutAccount(id, who, acct)
		return []Event{newEvent(EventThawed, id, map[string]any{"who": who})}, nil
	})
}

// Touch creates a zero-balance account for caller backed by an explicit
// AssetAccountDeposit reservation, for assets that are neither sufficient
// nor backed by an external provider reference.
func (e *Engine) Touch(caller AccountId, id AssetId) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if _, exists := t.Account(id, caller); exists {
			return nil, ErrAlreadyExists
		}
		if err := e.currency.Reserve(caller, e.cfg.AssetAccountDeposit); err != nil {
			return nil, err
		}
		details.Accounts++
		t.PutAccount(id, caller, AssetAccount{Reason: ReasonDepositHeld, Deposit: e.cfg.AssetAccountDeposit})
		t.PutAsset(id, details)
		return nil, nil
	})
}

// Refund reclaims caller's AssetAccountDeposit, removing their account. Only
// valid for a DepositHeld account; a non-zero balance requires allowBurn,
// which burns the residual balance from supply and unreserves the deposit in
// the same atomic step.
func (e *Engine) Refund(caller AccountId, id AssetId, allowBurn bool) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		acct, ok := t.Account(id, caller)
		if !ok {
			return nil, ErrNoAccount
		}
		if acct.Reason != ReasonDepositHeld {
			return nil, ErrNoPermission
		}
		if acct.Balance > 0 && !allowBurn {
			return nil, ErrWouldBurn
		}
		if acct.Balance > details.Supply {
			details.Supply = 0
		} else {
			details.Supply -= acct.Balance
		}
		e.reapAccount(t, id, &details, caller, acct)
		t.PutAsset(id, details)
		return nil, nil
	})
}
