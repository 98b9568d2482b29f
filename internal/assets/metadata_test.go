package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetProjectDataRejectedAfterMint(t *testing.T) {
	e, currency, lifecycle, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")
	lifecycle.SetProvider(owner, true)

	_, err := e.SetProjectData(owner, id, []byte("https://example.org"), []byte("Qm123"))
	require.NoError(t, err)

	_, err = e.Mint(custodian, id, 10)
	require.NoError(t, err)

	_, err = e.SetProjectData(owner, id, []byte("https://example.org/v2"), []byte("Qm456"))
	assert.ErrorIs(t, err, ErrCannotChangeAfterMint)
}

func TestSetProjectDataPermittedForOwnerOrCustodian(t *testing.T) {
	e, currency, _, custodian := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	stranger := mkAccount(9)
	_, err := e.SetProjectData(stranger, id, []byte("u"), []byte("d"))
	assert.ErrorIs(t, err, ErrNoPermission)

	_, err = e.SetProjectData(custodian, id, []byte("u"), []byte("d"))
	assert.NoError(t, err)
}

func TestForceSetMetadataPreservesExistingDeposit(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	_, err := e.ForceSetMetadata(id, []byte("New Name"), []byte("NEW"), []byte("u"), []byte("d"), 6, true)
	require.NoError(t, err)

	view := e.store.Begin()
	md, ok := view.Metadata(id)
	view.Rollback()
	require.True(t, ok)
	assert.Equal(t, "New Name", string(md.Name))
	assert.Equal(t, uint8(6), md.Decimals)
	assert.True(t, md.IsFrozen)
	assert.Greater(t, md.Deposit, uint64(0))
}

func TestForceSetMetadataRejectsOversizeString(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	oversize := make([]byte, DefaultConfig().StringLimit+1)
	_, err := e.ForceSetMetadata(id, oversize, []byte("RFT"), nil, nil, 9, false)
	assert.ErrorIs(t, err, ErrBadMetadata)
}

func TestForceClearMetadataRefundsDepositToOwner(t *testing.T) {
	e, currency, _, _ := newTestEngine(t)
	owner := mkAccount(1)
	id := createAsset(t, e, currency, owner, "Reforestation", "RFT")

	reservedBefore := currency.ReservedOf(owner)
	require.Greater(t, reservedBefore, uint64(0))

	_, err := e.ForceClearMetadata(id)
	require.NoError(t, err)

	view := e.store.Begin()
	_, ok := view.Metadata(id)
	view.Rollback()
	assert.False(t, ok)

	assert.Less(t, currency.ReservedOf(owner), reservedBefore)
}
