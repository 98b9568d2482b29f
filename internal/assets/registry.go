package assets

// DestroyWitness bounds the work a destroy call can perform: the caller must
// supply the live reference counts it observed so the engine can refuse to
// silently reap more state than the caller accounted for.
type DestroyWitness struct {
	Accounts    uint32
	Sufficients uint32
	Approvals   uint32
}

// SetCustodian installs or replaces the singleton custodian. Privileged only;
// the runtime is expected to have already checked the calling origin before
// invoking this.
func (e *Engine) SetCustodian(newCustodian AccountId) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		t.SetCustodian(newCustodian)
		return []Event{newEvent(EventCustodianSet, AssetId{}, map[string]any{
			"custodian": newCustodian,
		})}, nil
	})
}

// Create mints a new asset class owned by caller. A custodian must already be
// set, becomes issuer/admin/freezer of the new class, and caller pays
// AssetDeposit plus the metadata deposit owed on name/symbol in one
// reservation.
func (e *Engine) Create(caller AccountId, name, symbol []byte) (AssetId, []Event, error) {
	var newID AssetId
	events, err := e.run(func(t Txn) ([]Event, error) {
		custodian, ok := t.Custodian()
		if !ok {
			return nil, ErrNoCustodian
		}
		if !boundedStringOK(e.cfg.StringLimit, name) || !boundedStringOK(e.cfg.StringLimit, symbol) {
			return nil, ErrBadMetadata
		}

		id, err := e.ids.NewAssetId(caller, func(candidate AssetId) bool {
			_, exists := t.Asset(candidate)
			return exists
		})
		if err != nil {
			return nil, err
		}

		metaDeposit := e.cfg.MetadataDepositBase + e.cfg.MetadataDepositPerByte*uint64(len(name)+len(symbol))
		if err := e.currency.Reserve(caller, e.cfg.AssetDeposit+metaDeposit); err != nil {
			return nil, err
		}

		t.PutAsset(id, AssetDetails{
			Owner:      caller,
			Issuer:     custodian,
			Admin:      custodian,
			Freezer:    custodian,
			MinBalance: 1,
			Deposit:    e.cfg.AssetDeposit,
		})
		t.PutMetadata(id, AssetMetadata{
			Name:     append([]byte(nil), name...),
			Symbol:   append([]byte(nil), symbol...),
			Decimals: e.cfg.MetadataDecimals,
			Deposit:  metaDeposit,
		})

		newID = id
		return []Event{
			newEvent(EventCreated, id, map[string]any{"creator": caller}),
			newEvent(EventMetadataSet, id, map[string]any{"name": name, "symbol": symbol, "decimals": e.cfg.MetadataDecimals}),
		}, nil
	})
	return newID, events, err
}

// ForceCreate installs a new asset class without taking any deposit. owner
// becomes issuer, admin and freezer as well; those roles change later only
// through ForceAssetStatus (TransferOwnership moves the owner role alone). id
// must not already be in use.
func (e *Engine) ForceCreate(id AssetId, owner AccountId, isSufficient bool, minBalance uint64) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		if _, exists := t.Asset(id); exists {
			return nil, ErrInUse
		}
		if minBalance == 0 {
			return nil, ErrMinBalanceZero
		}
		t.PutAsset(id, AssetDetails{
			Owner:        owner,
			Issuer:       owner,
			Admin:        owner,
			Freezer:      owner,
			MinBalance:   minBalance,
			IsSufficient: isSufficient,
		})
		return []Event{newEvent(EventForceCreated, id, map[string]any{"owner": owner})}, nil
	})
}

// Destroy removes an asset class in full: every account is reaped (firing
// died once per account removed), every approval deposit is refunded, the
// metadata entry and its deposit are cleared, and finally the registry entry
// itself is removed. witness must not under-report any of the three live
// reference counts — it exists to bound the caller's expectation of how much
// work this call performs, not to police the engine's own bookkeeping.
//
// caller must either be privileged or the asset's owner.
func (e *Engine) Destroy(caller AccountId, id AssetId, witness DestroyWitness, privileged bool) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if !privileged && caller != details.Owner {
			return nil, ErrNoPermission
		}
		if witness.Accounts < details.Accounts || witness.Sufficients < details.Sufficients || witness.Approvals < details.Approvals {
			return nil, ErrBadWitness
		}

		t.ForEachAccount(id, func(who AccountId, acct AssetAccount) bool {
			e.reapAccount(t, id, &details, who, acct)
			return true
		})

		t.ForEachApproval(id, func(owner, delegate AccountId, a Approval) bool {
			_ = e.currency.Unreserve(owner, a.Deposit)
			t.DeleteApproval(id, owner, delegate)
			if details.Approvals > 0 {
				details.Approvals--
			}
			return true
		})

		if md, ok := t.Metadata(id); ok {
			_ = e.currency.Unreserve(details.Owner, md.Deposit)
			t.DeleteMetadata(id)
		}
		_ = e.currency.Unreserve(details.Owner, details.Deposit)
		t.DeleteAsset(id)

		return []Event{newEvent(EventDestroyed, id, nil)}, nil
	})
}

// TransferOwnership moves ownership of id from caller to newOwner, carrying
// the asset deposit and the metadata deposit to the new owner's reservation
// in the same transaction. A no-op (but still permission-checked) when
// newOwner already owns the asset.
func (e *Engine) TransferOwnership(caller AccountId, id AssetId, newOwner AccountId) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if caller != details.Owner {
			return nil, ErrNoPermission
		}
		if details.Owner == newOwner {
			return nil, nil
		}

		metaDeposit := uint64(0)
		if md, ok := t.Metadata(id); ok {
			metaDeposit = md.Deposit
		}
		if err := e.currency.RepatriateReserved(details.Owner, newOwner, details.Deposit+metaDeposit); err != nil {
			return nil, err
		}

		details.Owner = newOwner
		t.PutAsset(id, details)
		return []Event{newEvent(EventOwnerChanged, id, map[string]any{"owner": newOwner})}, nil
	})
}

// ForceAssetStatus overwrites every role and tuning field on an existing
// asset class. Privileged only. Accounts whose balance now sits below the new
// min_balance are left untouched and are never reaped retroactively. They are
// not barred from outbound transfer: a later debit from such an account
// removes its whole balance and reaps it; only a keep-alive debit is refused.
func (e *Engine) ForceAssetStatus(id AssetId, owner, issuer, admin, freezer AccountId, minBalance uint64, isSufficient, isFrozen bool) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		details.Owner = owner
		details.Issuer = issuer
		details.Admin = admin
		details.Freezer = freezer
		details.MinBalance = minBalance
		details.IsSufficient = isSufficient
		details.IsFrozen = isFrozen
		t.PutAsset(id, details)
		return []Event{newEvent(EventAssetStatusChanged, id, nil)}, nil
	})
}

// FreezeAsset blocks all permissionless transfers, approvals and self-burns
// on id. caller must be the asset's freezer.
func (e *Engine) FreezeAsset(caller AccountId, id AssetId) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if caller != details.Freezer {
			return nil, ErrNoPermission
		}
		details.IsFrozen = true
		t.PutAsset(id, details)
		return []Event{newEvent(EventAssetFrozen, id, nil)}, nil
	})
}

// ThawAsset reverses FreezeAsset. caller must be the asset's admin.
func (e *Engine) ThawAsset(caller AccountId, id AssetId) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if caller != details.Admin {
			return nil, ErrNoPermission
		}
		details.IsFrozen = false
		t.PutAsset(id, details)
		return []Event{newEvent(EventAssetThawed, id, nil)}, nil
	})
}
