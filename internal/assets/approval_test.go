package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveTransferRepeatCallsAccumulateOneDeposit(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)
	_, err := e.Mint(custodian, id, 100)
	require.NoError(t, err)

	delegate := mkAccount(2)
	reservedBefore := currency.ReservedOf(owner)
	_, err = e.ApproveTransfer(owner, id, delegate, 10)
	require.NoError(t, err)
	assert.Equal(t, reservedBefore+DefaultConfig().ApprovalDeposit, currency.ReservedOf(owner))

	_, err = e.ApproveTransfer(owner, id, delegate, 5)
	require.NoError(t, err)
	assert.Equal(t, reservedBefore+DefaultConfig().ApprovalDeposit, currency.ReservedOf(owner))

	f := NewFungibles(e)
	assert.Equal(t, uint64(15), f.Allowance(id, owner, delegate))
}

func TestApproveTransferRejectsFrozenAsset(t *testing.T) {
	e, currency, _, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	_, err := e.FreezeAsset(custodian, id)
	require.NoError(t, err)

	_, err = e.ApproveTransfer(owner, id, mkAccount(2), 10)
	assert.ErrorIs(t, err, ErrFrozen)
}

func TestCancelApprovalUnreservesDeposit(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)
	_, err := e.Mint(custodian, id, 100)
	require.NoError(t, err)

	delegate := mkAccount(2)
	reservedBefore := currency.ReservedOf(owner)
	_, err = e.ApproveTransfer(owner, id, delegate, 10)
	require.NoError(t, err)

	_, err = e.CancelApproval(owner, id, delegate)
	require.NoError(t, err)
	assert.Equal(t, reservedBefore, currency.ReservedOf(owner))

	f := NewFungibles(e)
	assert.Zero(t, f.Allowance(id, owner, delegate))
}

func TestForceCancelApprovalRequiresAdminOrPrivilege(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)
	_, err := e.Mint(custodian, id, 100)
	require.NoError(t, err)

	delegate := mkAccount(2)
	_, err = e.ApproveTransfer(owner, id, delegate, 10)
	require.NoError(t, err)

	stranger := mkAccount(9)
	_, err = e.ForceCancelApproval(stranger, id, owner, delegate, false)
	assert.ErrorIs(t, err, ErrNoPermission)

	_, err = e.ForceCancelApproval(custodian, id, owner, delegate, false)
	require.NoError(t, err)
}

func TestTransferApprovedRejectsAmountAboveAllowanceAndDrainsOnExhaustion(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)
	_, err := e.Mint(custodian, id, 100)
	require.NoError(t, err)

	delegate := mkAccount(2)
	dest := mkAccount(3)
	lifecycle.SetProvider(dest, true)

	reservedBefore := currency.ReservedOf(owner)
	_, err = e.ApproveTransfer(owner, id, delegate, 10)
	require.NoError(t, err)

	_, err = e.TransferApproved(delegate, id, owner, dest, 20)
	assert.ErrorIs(t, err, ErrUnapproved)

	_, err = e.TransferApproved(delegate, id, owner, dest, 10)
	require.NoError(t, err)

	f := NewFungibles(e)
	assert.Equal(t, uint64(10), f.Balance(id, dest))
	assert.Zero(t, f.Allowance(id, owner, delegate))
	assert.Equal(t, reservedBefore, currency.ReservedOf(owner))
}
