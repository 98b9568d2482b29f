package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// totalBalances sums every live account's balance for id, for comparison
// against the asset's recorded supply (invariant 1).
func totalBalances(t *testing.T, e *Engine, id AssetId) uint64 {
	t.Helper()
	var sum uint64
	view := e.store.Begin()
	view.ForEachAccount(id, func(_ AccountId, a AssetAccount) bool {
		sum += a.Balance
		return true
	})
	view.Rollback()
	return sum
}

func TestInvariantSupplyEqualsSumOfBalances(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)

	holder := mkAccount(2)
	lifecycle.SetProvider(holder, true)

	_, err := e.Mint(custodian, id, 100)
	require.NoError(t, err)
	_, err = e.Transfer(owner, id, holder, 40)
	require.NoError(t, err)
	_, err = e.SelfBurn(holder, id, 10)
	require.NoError(t, err)

	f := NewFungibles(e)
	assert.Equal(t, f.TotalIssuance(id), totalBalances(t, e, id))
}

func TestInvariantAccountsCountMatchesLiveAccounts(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)

	holder := mkAccount(2)
	lifecycle.SetProvider(holder, true)

	_, err := e.Mint(custodian, id, 100)
	require.NoError(t, err)
	_, err = e.Transfer(owner, id, holder, 40)
	require.NoError(t, err)

	view := e.store.Begin()
	details, _ := view.Asset(id)
	var live uint32
	view.ForEachAccount(id, func(_ AccountId, _ AssetAccount) bool {
		live++
		return true
	})
	view.Rollback()
	assert.Equal(t, live, details.Accounts)
}

func TestInvariantDepositHeldAccountMatchesReservation(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	visitor := mkAccount(5)
	currency.SetBalance(visitor, 1000)
	_, err := e.Touch(visitor, id)
	require.NoError(t, err)

	view := e.store.Begin()
	acct, ok := view.Account(id, visitor)
	view.Rollback()
	require.True(t, ok)
	assert.Equal(t, acct.Deposit, currency.ReservedOf(visitor))
}

func TestInvariantBurnCertificateNeverDecreases(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)

	_, err := e.Mint(custodian, id, 100)
	require.NoError(t, err)

	_, err = e.SelfBurn(owner, id, 10)
	require.NoError(t, err)
	view := e.store.Begin()
	first := view.Certificate(owner, id)
	view.Rollback()

	_, err = e.SelfBurn(owner, id, 20)
	require.NoError(t, err)
	view = e.store.Begin()
	second := view.Certificate(owner, id)
	view.Rollback()

	assert.Greater(t, second, first)
	assert.Equal(t, first+20, second)
}

func TestInvariantDestroyLeavesNoTraces(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)

	delegate := mkAccount(2)
	_, err := e.Mint(custodian, id, 100)
	require.NoError(t, err)
	_, err = e.ApproveTransfer(owner, id, delegate, 10)
	require.NoError(t, err)

	_, err = e.Destroy(owner, id, DestroyWitness{Accounts: 1, Approvals: 1}, false)
	require.NoError(t, err)

	view := e.store.Begin()
	_, assetOK := view.Asset(id)
	_, metaOK := view.Metadata(id)
	_, acctOK := view.Account(id, owner)
	_, apprOK := view.Approval(id, owner, delegate)
	view.Rollback()

	assert.False(t, assetOK)
	assert.False(t, metaOK)
	assert.False(t, acctOK)
	assert.False(t, apprOK)
}

func TestRoundTripApproveThenCancelRestoresReserveAndCount(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	delegate := mkAccount(2)

	reservedBefore := currency.ReservedOf(owner)
	view := e.store.Begin()
	detailsBefore, _ := view.Asset(id)
	view.Rollback()

	_, err := e.ApproveTransfer(owner, id, delegate, 50)
	require.NoError(t, err)
	_, err = e.CancelApproval(owner, id, delegate)
	require.NoError(t, err)

	assert.Equal(t, reservedBefore, currency.ReservedOf(owner))
	view = e.store.Begin()
	detailsAfter, _ := view.Asset(id)
	view.Rollback()
	assert.Equal(t, detailsBefore.Approvals, detailsAfter.Approvals)
}

func TestRoundTripTouchThenRefundRestoresReserve(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	visitor := mkAccount(5)
	currency.SetBalance(visitor, 1000)
	reservedBefore := currency.ReservedOf(visitor)

	_, err := e.Touch(visitor, id)
	require.NoError(t, err)
	_, err = e.Refund(visitor, id, true)
	require.NoError(t, err)

	assert.Equal(t, reservedBefore, currency.ReservedOf(visitor))
}

func TestRoundTripFreezeThenThawRestoresTransferability(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)
	target := mkAccount(2)
	lifecycle.SetProvider(target, true)

	_, err := e.Mint(custodian, id, 50)
	require.NoError(t, err)

	_, err = e.Freeze(custodian, id, owner)
	require.NoError(t, err)
	_, err = e.Transfer(owner, id, target, 1)
	require.ErrorIs(t, err, ErrFrozen)

	_, err = e.Thaw(custodian, id, owner)
	require.NoError(t, err)
	_, err = e.Transfer(owner, id, target, 1)
	assert.NoError(t, err)
}

func TestBoundaryTransferToExactlyMinBalanceMinusOneReapsUnlessKeepAlive(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createCustomAsset(t, e, owner, 10)
	target := mkAccount(2)

	_, err := e.Mint(owner, id, 100)
	require.NoError(t, err)

	// Leaves owner with exactly min_balance-1 = 9: keep_alive rejects it...
	_, err = e.TransferKeepAlive(owner, id, target, 91)
	assert.ErrorIs(t, err, ErrWouldDie)

	// ...while the default path reaps owner instead of leaving dust.
	_, err = e.Transfer(owner, id, target, 91)
	require.NoError(t, err)
	f := NewFungibles(e)
	assert.Equal(t, uint64(0), f.Balance(id, owner))
}

func TestBoundaryMintBelowMinBalanceIntoFreshAccountFails(t *testing.T) {
	e, _, _, custodian := newTestEngine(t)
	id := createCustomAsset(t, e, custodian, 10)

	_, err := e.Mint(custodian, id, 9)
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestBoundaryApprovingMoreThanSupplyThenTransferFailsBeyondSupply(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)

	_, err := e.Mint(custodian, id, 50)
	require.NoError(t, err)

	delegate := mkAccount(2)
	dest := mkAccount(3)
	lifecycle.SetProvider(dest, true)

	// Approving beyond the current supply is allowed...
	_, err = e.ApproveTransfer(owner, id, delegate, 1000)
	require.NoError(t, err)

	// ...but attempting to actually move more than owner holds fails.
	_, err = e.TransferApproved(delegate, id, owner, dest, 1000)
	assert.ErrorIs(t, err, ErrBalanceLow)
}

// --- concrete scenarios from the original system's worked examples ---

func TestScenarioForceCreateSufficientThenMint(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	var id AssetId // zero id, per the scenario
	owner := mkAccount(1)

	_, err := e.ForceCreate(id, owner, true, 1)
	require.NoError(t, err)
	_, err = e.Mint(owner, id, 100)
	require.NoError(t, err)

	f := NewFungibles(e)
	assert.Equal(t, uint64(100), f.Balance(id, owner))
	assert.Equal(t, uint64(100), f.TotalIssuance(id))
}

func TestScenarioTransferSplitsBalanceEvenly(t *testing.T) {
	e, _, lifecycle, _ := newTestEngine(t)
	var id AssetId
	owner := mkAccount(1)
	lifecycle.SetProvider(owner, true)

	_, err := e.ForceCreate(id, owner, true, 1)
	require.NoError(t, err)
	_, err = e.Mint(owner, id, 100)
	require.NoError(t, err)

	holder2 := mkAccount(2)
	lifecycle.SetProvider(holder2, true)
	_, err = e.Transfer(owner, id, holder2, 50)
	require.NoError(t, err)

	f := NewFungibles(e)
	assert.Equal(t, uint64(50), f.Balance(id, owner))
	assert.Equal(t, uint64(50), f.Balance(id, holder2))

	view := e.store.Begin()
	details, _ := view.Asset(id)
	view.Rollback()
	assert.Equal(t, uint32(2), details.Accounts)
	assert.Equal(t, uint32(2), details.Sufficients)
}

func TestScenarioBurnReducesSupplyAndRecordsCertificate(t *testing.T) {
	e, _, lifecycle, custodian := newTestEngine(t)
	var id AssetId
	owner := mkAccount(1)
	lifecycle.SetProvider(owner, true)
	holder2 := mkAccount(2)
	lifecycle.SetProvider(holder2, true)
	holder3 := mkAccount(3)
	lifecycle.SetProvider(holder3, true)

	_, err := e.ForceCreate(id, owner, true, 1)
	require.NoError(t, err)
	_, err = e.Mint(owner, id, 100)
	require.NoError(t, err)
	_, err = e.Transfer(owner, id, holder2, 50)
	require.NoError(t, err)
	_, err = e.Transfer(holder2, id, holder3, 31)
	require.NoError(t, err)

	// Burn is gated on the ledger's singleton custodian, not the asset's own
	// issuer role, so the caller here is custodian rather than owner.
	_, err = e.Burn(custodian, id, holder3, 31)
	require.NoError(t, err)

	f := NewFungibles(e)
	assert.Equal(t, uint64(69), f.TotalIssuance(id))
	view := e.store.Begin()
	cert := view.Certificate(holder3, id)
	view.Rollback()
	assert.Equal(t, uint64(31), cert)
}

func TestScenarioCreateReservesExactDepositForTenByteNameAndTokenSymbol(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	caller := mkAccount(4)
	currency.SetBalance(caller, 1000)

	_, _, err := e.Create(caller, []byte("Token"), []byte("Token"))
	require.NoError(t, err)

	// MetadataDepositBase(1) + MetadataDepositPerByte(1)*10 bytes = 11;
	// AssetDeposit = 1. Total reserved on caller = 12.
	assert.Equal(t, uint64(12), currency.ReservedOf(caller))
}

func TestScenarioNonIssuerMintFailsThenIssuerMintAndSelfBurn(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	caller := mkAccount(4)
	id := createAsset(t, e, currency, caller, "Token", "Token")
	lifecycle.SetProvider(caller, true)

	stranger := mkAccount(9)
	_, err := e.Mint(stranger, id, 500)
	assert.ErrorIs(t, err, ErrNoPermission)

	_, err = e.Mint(custodian, id, 500)
	require.NoError(t, err)

	_, err = e.SelfBurn(caller, id, 100)
	require.NoError(t, err)

	f := NewFungibles(e)
	assert.Equal(t, uint64(400), f.Balance(id, caller))
	view := e.store.Begin()
	cert := view.Certificate(caller, id)
	view.Rollback()
	assert.Equal(t, uint64(100), cert)
}

func TestScenarioApprovalLifecycleAutoClearsOnFullDrain(t *testing.T) {
	e, currency, lifecycle, _ := newTestEngine(t)
	var id AssetId
	owner := mkAccount(1)
	lifecycle.SetProvider(owner, true)

	_, err := e.ForceCreate(id, owner, true, 1)
	require.NoError(t, err)
	_, err = e.Mint(owner, id, 100)
	require.NoError(t, err)

	delegate := mkAccount(2)
	dest := mkAccount(3)
	lifecycle.SetProvider(dest, true)

	// The first approval reserves ApprovalDeposit from owner.
	currency.SetBalance(owner, 1000)
	_, err = e.ApproveTransfer(owner, id, delegate, 50)
	require.NoError(t, err)

	_, err = e.TransferApproved(delegate, id, owner, dest, 50)
	require.NoError(t, err)

	f := NewFungibles(e)
	assert.Equal(t, uint64(50), f.Balance(id, dest))
	assert.Zero(t, f.Allowance(id, owner, delegate))

	view := e.store.Begin()
	details, _ := view.Asset(id)
	view.Rollback()
	assert.Zero(t, details.Approvals)
}
