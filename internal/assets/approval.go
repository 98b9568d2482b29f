package assets

// ApproveTransfer grants delegate permission to move up to amount of id on
// caller's behalf. A first-time approval reserves ApprovalDeposit from
// caller and bumps the asset's approvals count; a repeat call simply adds
// amount to the existing allowance. caller need not hold amount of the asset
// at the time of approval.
func (e *Engine) ApproveTransfer(caller AccountId, id AssetId, delegate AccountId, amount uint64) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if details.IsFrozen {
			return nil, ErrFrozen
		}

		approval, exists := t.Approval(id, caller, delegate)
		if exists {
			approval.Amount += amount
		} else {
			if err := e.currency.Reserve(caller, e.cfg.ApprovalDeposit); err != nil {
				return nil, err
			}
			approval = Approval{Amount: amount, Deposit: e.cfg.ApprovalDeposit}
			details.Approvals++
			t.PutAsset(id, details)
		}
		t.PutApproval(id, caller, delegate, approval)

		return []Event{newEvent(EventApprovedTransfer, id, map[string]any{"owner": caller, "delegate": delegate, "amount": amount})}, nil
	})
}

// CancelApproval removes caller's approval to delegate outright, unreserving
// its deposit. Unknown if no such approval exists.
func (e *Engine) CancelApproval(caller AccountId, id AssetId, delegate AccountId) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		return e.doCancelApproval(t, id, caller, delegate)
	})
}

// ForceCancelApproval has the same effect as CancelApproval but is invoked
// by the asset's admin (or a privileged origin) on owner's behalf.
func (e *Engine) ForceCancelApproval(caller AccountId, id AssetId, owner, delegate AccountId, privileged bool) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		details, ok := t.Asset(id)
		if !ok {
			return nil, ErrUnknown
		}
		if !privileged && caller != details.Admin {
			return nil, ErrNoPermission
		}
		return e.doCancelApproval(t, id, owner, delegate)
	})
}

func (e *Engine) doCancelApproval(t Txn, id AssetId, owner, delegate AccountId) ([]Event, error) {
	details, ok := t.Asset(id)
	if !ok {
		return nil, ErrUnknown
	}
	approval, ok := t.Approval(id, owner, delegate)
	if !ok {
		return nil, ErrUnknown
	}
	_ = e.currency.Unreserve(owner, approval.Deposit)
	t.DeleteApproval(id, owner, delegate)
	if details.Approvals > 0 {
		details.Approvals--
	}
	t.PutAsset(id, details)
	return []Event{newEvent(EventApprovalCancelled, id, map[string]any{"owner": owner, "delegate": delegate})}, nil
}

// TransferApproved moves amount of id from owner to destination on
// delegate's (caller's) authority, consuming that much of owner's standing
// approval to delegate. Fails Unapproved if the approval doesn't cover
// amount. A fully-drained approval is removed and its deposit returned to
// owner.
func (e *Engine) TransferApproved(caller AccountId, id AssetId, owner, destination AccountId, amount uint64) ([]Event, error) {
	return e.run(func(t Txn) ([]Event, error) {
		approval, ok := t.Approval(id, owner, caller)
		if !ok {
			return nil, ErrUnknown
		}
		if approval.Amount < amount {
			return nil, ErrUnapproved
		}

		flags := TransferFlags{}
		actual, err := e.doTransfer(t, id, owner, destination, amount, flags)
		if err != nil {
			return nil, err
		}

		events := []Event{newEvent(EventTransferredApproved, id, map[string]any{
			"owner": owner, "delegate": caller, "destination": destination, "amount": actual,
		})}

		consumed := actual
		if consumed > approval.Amount {
			consumed = approval.Amount
		}
		approval.Amount -= consumed
		if approval.Amount == 0 {
			_ = e.currency.Unreserve(owner, approval.Deposit)
			t.DeleteApproval(id, owner, caller)
			details, _ := t.Asset(id)
			if details.Approvals > 0 {
				details.Approvals--
			}
			t.PutAsset(id, details)
		} else {
			t.PutApproval(id, owner, caller, approval)
		}

		return events, nil
	})
}
