package assets

import "testing"

// newTestEngine builds an Engine wired against fresh in-memory collaborators,
// with custodian already installed, for use across this package's test files.
func newTestEngine(t *testing.T) (*Engine, *InMemoryCurrency, *InMemoryLifecycle, AccountId) {
	t.Helper()

	store := NewMemStore()
	currency := NewInMemoryCurrency(1)
	lifecycle := NewInMemoryLifecycle()
	beacon := NewDeterministicBeacon(1)
	ids := NewIdentifierService(beacon, 128)

	e := NewEngine(store, currency, lifecycle, ids, DefaultConfig())

	custodian := mkAccount(0xC0)
	if _, err := e.SetCustodian(custodian); err != nil {
		t.Fatalf("SetCustodian: %v", err)
	}
	return e, currency, lifecycle, custodian
}

// mkAccount builds a distinct, deterministic AccountId from a single seed
// byte, for readable test fixtures.
func mkAccount(seed byte) AccountId {
	var a AccountId
	a[len(a)-1] = seed
	return a
}

// createAsset creates an asset owned by owner, funding owner enough to cover
// the deposit, and returns its id.
func createAsset(t *testing.T, e *Engine, currency *InMemoryCurrency, owner AccountId, name, symbol string) AssetId {
	t.Helper()
	currency.SetBalance(owner, 1_000_000)
	id, _, err := e.Create(owner, []byte(name), []byte(symbol))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return id
}
