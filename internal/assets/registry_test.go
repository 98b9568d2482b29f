package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequiresCustodian(t *testing.T) {
	store := NewMemStore()
	currency := NewInMemoryCurrency(1)
	lifecycle := NewInMemoryLifecycle()
	ids := NewIdentifierService(NewDeterministicBeacon(1), 16)
	e := NewEngine(store, currency, lifecycle, ids, DefaultConfig())

	owner := mkAccount(1)
	currency.SetBalance(owner, 1000)
	_, _, err := e.Create(owner, []byte("Reforestation"), []byte("RFT"))
	assert.ErrorIs(t, err, ErrNoCustodian)
}

func TestCreateReservesDepositAndStampsRoles(t *testing.T) {
	e, currency, _, custodian := newTestEngine(t)
	owner := mkAccount(1)
	currency.SetBalance(owner, 1000)

	id, events, err := e.Create(owner, []byte("Reforestation"), []byte("RFT"))
	require.NoError(t, err)
	require.NotEmpty(t, events)

	expectedDeposit := DefaultConfig().AssetDeposit +
		DefaultConfig().MetadataDepositBase + DefaultConfig().MetadataDepositPerByte*uint64(len("Reforestation")+len("RFT"))
	assert.Equal(t, 1000-expectedDeposit, currency.Balance(owner))
	assert.Equal(t, expectedDeposit, currency.ReservedOf(owner))

	f := NewFungibles(e)
	assert.True(t, f.AssetExists(id))

	view := e.store.Begin()
	details, ok := view.Asset(id)
	view.Rollback()
	require.True(t, ok)
	assert.Equal(t, owner, details.Owner)
	assert.Equal(t, custodian, details.Issuer)
	assert.Equal(t, custodian, details.Admin)
	assert.Equal(t, custodian, details.Freezer)
	assert.Equal(t, uint64(1), details.MinBalance)
}

func TestCreateRejectsOversizeMetadata(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	currency.SetBalance(owner, 1000)

	oversize := make([]byte, DefaultConfig().StringLimit+1)
	_, _, err := e.Create(owner, oversize, []byte("RFT"))
	assert.ErrorIs(t, err, ErrBadMetadata)
}

func TestForceCreateRefusesDuplicateID(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	var id AssetId
	id[0] = 0xAB

	_, err := e.ForceCreate(id, owner, true, 1)
	require.NoError(t, err)

	_, err = e.ForceCreate(id, owner, true, 1)
	assert.ErrorIs(t, err, ErrInUse)
}

func TestForceCreateRejectsZeroMinBalance(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	var id AssetId
	id[0] = 0xAB

	_, err := e.ForceCreate(id, owner, false, 0)
	assert.ErrorIs(t, err, ErrMinBalanceZero)
}

func TestDestroyRequiresOwnerOrPrivilege(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	stranger := mkAccount(9)
	_, err := e.Destroy(stranger, id, DestroyWitness{}, false)
	assert.ErrorIs(t, err, ErrNoPermission)

	_, err = e.Destroy(stranger, id, DestroyWitness{}, true)
	assert.NoError(t, err)
}

func TestDestroyRejectsUnderReportedWitness(t *testing.T) {
	e, currency, lifecycle, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	lifecycle.SetProvider(owner, true)
	_, err := e.Mint(custodianOf(t, e, id), id, 10)
	require.NoError(t, err)

	_, err = e.Destroy(owner, id, DestroyWitness{Accounts: 0}, false)
	assert.ErrorIs(t, err, ErrBadWitness)

	_, err = e.Destroy(owner, id, DestroyWitness{Accounts: 1}, false)
	assert.NoError(t, err)

	f := NewFungibles(e)
	assert.False(t, f.AssetExists(id))
}

func TestDestroyFiresAccountDiedOncePerReapedAccount(t *testing.T) {
	e, currency, lifecycle, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)

	holder := mkAccount(2)
	lifecycle.SetProvider(holder, true)

	_, err := e.Mint(custodianOf(t, e, id), id, 10)
	require.NoError(t, err)
	_, err = e.Transfer(owner, id, holder, 5)
	require.NoError(t, err)

	var died []AccountId
	e.OnAccountDied(func(asset AssetId, who AccountId) {
		died = append(died, who)
	})

	_, err = e.Destroy(owner, id, DestroyWitness{Accounts: 2}, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []AccountId{owner, holder}, died)
}

func TestTransferOwnershipMovesDepositAndIsNoOpForSameOwner(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	events, err := e.TransferOwnership(owner, id, owner)
	require.NoError(t, err)
	assert.Empty(t, events)

	newOwner := mkAccount(2)
	_, err = e.TransferOwnership(owner, id, newOwner)
	require.NoError(t, err)
	assert.Zero(t, currency.ReservedOf(owner))
	assert.Greater(t, currency.ReservedOf(newOwner), uint64(0))
}

func TestForceAssetStatusOverwritesRolesWithoutReaping(t *testing.T) {
	e, currency, lifecycle, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)

	_, err := e.Mint(custodianOf(t, e, id), id, 5)
	require.NoError(t, err)

	newOwner := mkAccount(3)
	_, err = e.ForceAssetStatus(id, newOwner, newOwner, newOwner, newOwner, 100, false, false)
	require.NoError(t, err)

	f := NewFungibles(e)
	assert.Equal(t, uint64(100), f.MinimumBalance(id))
	assert.Equal(t, uint64(5), f.Balance(id, owner))
}

func TestFreezeAssetAndThawAssetPermissions(t *testing.T) {
	e, currency, _, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	_, err := e.FreezeAsset(owner, id)
	assert.ErrorIs(t, err, ErrNoPermission)

	_, err = e.FreezeAsset(custodian, id)
	require.NoError(t, err)

	_, err = e.ThawAsset(owner, id)
	assert.ErrorIs(t, err, ErrNoPermission)

	_, err = e.ThawAsset(custodian, id)
	require.NoError(t, err)
}

// custodianOf reads id's issuer back out of the store, a shortcut so tests
// don't need to thread the custodian through every helper.
func custodianOf(t *testing.T, e *Engine, id AssetId) AccountId {
	t.Helper()
	view := e.store.Begin()
	details, ok := view.Asset(id)
	view.Rollback()
	require.True(t, ok)
	return details.Issuer
}
