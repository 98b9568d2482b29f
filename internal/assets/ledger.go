package assets

// DecreaseFlags tune how a debit is evaluated.
type DecreaseFlags struct {
	// KeepAlive rejects a debit that would reap the source account.
	KeepAlive bool
	// BestEffort caps amount to the available balance instead of failing.
	BestEffort bool
}

// TransferFlags extend DecreaseFlags for the transfer/mint/burn engine.
type TransferFlags struct {
	DecreaseFlags
	// BurnDust burns residual dust below min_balance from supply on reap
	// instead of sweeping it into the destination.
	BurnDust bool
}

// canIncrease classifies whether amount can be credited to who's account in
// asset, mirroring the reference pallet's can_increase decision table. acct is nil
// when who has no existing account.
func (e *Engine) canIncrease(t Txn, asset AssetId, details AssetDetails, who AccountId, acct *AssetAccount, amount uint64) error {
	if details.IsFrozen && acct == nil {
		return ErrFrozen
	}
	if acct != nil {
		if acct.Balance > ^uint64(0)-amount {
			return ErrOverflow
		}
		return nil
	}

	// New account.
	if amount < details.MinBalance {
		return ErrBelowMinimum
	}
	if !details.IsSufficient && !e.lifecycle.HasProvider(who) {
		return ErrCannotCreate
	}
	return nil
}

// canDecrease classifies whether amount can be debited from who's account in
// asset, mirroring the reference pallet's can_decrease decision table.
func (e *Engine) canDecrease(details AssetDetails, acct *AssetAccount, amount uint64, flags DecreaseFlags) (uint64, error) {
	if acct == nil {
		return 0, ErrNoAccount
	}
	if details.IsFrozen || acct.IsFrozen {
		return 0, ErrFrozen
	}

	available := acct.Balance
	toDebit := amount
	if flags.BestEffort && toDebit > available {
		toDebit = available
	}
	if toDebit > available {
		return 0, ErrBalanceLow
	}
	remainder := available - toDebit
	if flags.KeepAlive && remainder < details.MinBalance {
		return 0, ErrWouldDie
	}
	return toDebit, nil
}

// creationReason implements the reference pallet's account-creation rule: a
// fresh account's Reason is determined by the asset's sufficiency and the
// holder's external provider reference. Returns ErrCannotCreate if neither
// condition is met — the holder must touch(id) first.
func (e *Engine) creationReason(details AssetDetails, who AccountId) (Reason, error) {
	if details.IsSufficient {
		return ReasonSufficient, nil
	}
	if e.lifecycle.HasProvider(who) {
		return ReasonConsumer, nil
	}
	return 0, ErrCannotCreate
}

// creditNewAccount creates who's account in asset with the given balance,
// attributing Reason per creationReason and bumping the asset's accounts /
// sufficients refcounts and the external lifecycle references in lockstep.
func (e *Engine) creditNewAccount(t Txn, asset AssetId, details *AssetDetails, who AccountId, balance uint64) error {
	reason, err := e.creationReason(*details, who)
	if err != nil {
		return err
	}
	switch reason {
	case ReasonSufficient:
		e.lifecycle.IncSufficient(who)
		details.Sufficients++
	case ReasonConsumer:
		e.lifecycle.IncConsumer(who)
	}
	details.Accounts++
	t.PutAccount(asset, who, AssetAccount{Balance: balance, Reason: reason})
	return nil
}

// reapAccount removes who's account from asset, releasing whatever
// reference it held and firing the engine's died hook. Any residual balance
// must already have been accounted for by the caller (burned or
// transferred) — reapAccount only updates refcounts and storage.
func (e *Engine) reapAccount(t Txn, asset AssetId, details *AssetDetails, who AccountId, acct AssetAccount) {
	switch acct.Reason {
	case ReasonSufficient:
		e.lifecycle.DecSufficient(who)
		if details.Sufficients > 0 {
			details.Sufficients--
		}
	case ReasonConsumer:
		e.lifecycle.DecConsumer(who)
	case ReasonDepositHeld:
		_ = e.currency.Unreserve(who, acct.Deposit)
	}
	if details.Accounts > 0 {
		details.Accounts--
	}
	t.DeleteAccount(asset, who)
	if e.died != nil {
		e.died(asset, who)
	}
}

// decreaseBalance debits who's account in asset by up to amount per flags,
// folding in the reap-on-dust rule shared by burn, self_burn and the source
// side of transfer: if what remains after the debit is non-zero but below
// min_balance, the whole remainder is swept away too and the account is
// reaped. Returns the amount actually removed from the account (which is
// amount plus any swept dust). details.Supply is adjusted by the caller,
// since burn reduces supply by the full actual amount while transfer only
// does so when burn_dust is requested.
func (e *Engine) decreaseBalance(t Txn, asset AssetId, details *AssetDetails, who AccountId, amount uint64, flags DecreaseFlags) (actual uint64, reaped bool, err error) {
	acct, ok := t.Account(asset, who)
	if !ok {
		return 0, false, ErrNoAccount
	}
	toDebit, err := e.canDecrease(*details, &acct, amount, flags)
	if err != nil {
		return 0, false, err
	}

	remainder := acct.Balance - toDebit
	if remainder > 0 && remainder < details.MinBalance {
		toDebit = acct.Balance
		remainder = 0
	}

	if remainder == 0 {
		e.reapAccount(t, asset, details, who, acct)
		return toDebit, true, nil
	}
	acct.Balance = remainder
	t.PutAccount(asset, who, acct)
	return toDebit, false, nil
}
