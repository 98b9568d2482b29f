package assets

// Store is the abstract transactional storage surface the engine reads and
// writes through. It replaces the source pallet's implicit try_mutate macros
// with an explicit transactional scope: Begin() returns a view isolated from
// concurrent readers, and either Commit() publishes every write atomically or
// Rollback() discards them all. No partial writes are ever observable outside
// a transaction.
//
// Modelled on a key-value LedgerView/DB split, generalized from single-key
// byte blobs to typed multi-key entities.
type Store interface {
	// Begin opens a new transaction isolated from the live store until Commit.
	Begin() Txn
}

// Txn is a single logical transaction over the store's typed entities.
type Txn interface {
	// Custodian cell.
	Custodian() (AccountId, bool)
	SetCustodian(id AccountId)

	// Asset registry.
	Asset(id AssetId) (AssetDetails, bool)
	PutAsset(id AssetId, d AssetDetails)
	DeleteAsset(id AssetId)

	// Account ledger, keyed (AssetId, AccountId).
	Account(asset AssetId, who AccountId) (AssetAccount, bool)
	PutAccount(asset AssetId, who AccountId, a AssetAccount)
	DeleteAccount(asset AssetId, who AccountId)
	ForEachAccount(asset AssetId, fn func(who AccountId, a AssetAccount) bool)

	// Metadata store.
	Metadata(id AssetId) (AssetMetadata, bool)
	PutMetadata(id AssetId, m AssetMetadata)
	DeleteMetadata(id AssetId)

	// Approval ledger, keyed (AssetId, owner, delegate).
	Approval(asset AssetId, owner, delegate AccountId) (Approval, bool)
	PutApproval(asset AssetId, owner, delegate AccountId, a Approval)
	DeleteApproval(asset AssetId, owner, delegate AccountId)
	ForEachApproval(asset AssetId, fn func(owner, delegate AccountId, a Approval) bool)

	// Burn certificate register, keyed (AccountId, AssetId).
	Certificate(who AccountId, asset AssetId) uint64
	PutCertificate(who AccountId, asset AssetId, total uint64)

	// Commit publishes every write made in this transaction atomically.
	Commit()
	// Rollback discards every write made in this transaction.
	Rollback()
}

// MemStore is the reference in-memory Store implementation. It is the default
// backing for tests and the CLI demo; internal/ledgerjournal provides an
// optional pebble-backed durability wrapper that persists a MemStore's
// Snapshot between process runs.
type MemStore struct {
	custodian    *AccountId
	assets       map[AssetId]AssetDetails
	accounts     map[AssetId]map[AccountId]AssetAccount
	metadata     map[AssetId]AssetMetadata
	approvals    map[AssetId]map[approvalKey]Approval
	certificates map[AccountId]map[AssetId]uint64
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		assets:       make(map[AssetId]AssetDetails),
		accounts:     make(map[AssetId]map[AccountId]AssetAccount),
		metadata:     make(map[AssetId]AssetMetadata),
		approvals:    make(map[AssetId]map[approvalKey]Approval),
		certificates: make(map[AccountId]map[AssetId]uint64),
	}
}

func (s *MemStore) Begin() Txn {
	return &memTxn{base: s, snapshot: s.clone()}
}

// clone performs a deep copy of every store so a transaction can mutate its
// own snapshot freely and either publish it wholesale (Commit) or drop it
// (Rollback) without the base store ever observing an intermediate state.
func (s *MemStore) clone() *MemStore {
	clone := NewMemStore()
	if s.custodian != nil {
		c := *s.custodian
		clone.custodian = &c
	}
	for id, d := range s.assets {
		clone.assets[id] = d
	}
	for id, accts := range s.accounts {
		m := make(map[AccountId]AssetAccount, len(accts))
		for who, a := range accts {
			cp := a
			if a.Extra != nil {
				cp.Extra = append([]byte(nil), a.Extra...)
			}
			m[who] = cp
		}
		clone.accounts[id] = m
	}
	for id, md := range s.metadata {
		cp := md
		cp.Name = append([]byte(nil), md.Name...)
		cp.Symbol = append([]byte(nil), md.Symbol...)
		cp.URL = append([]byte(nil), md.URL...)
		cp.DataIPFS = append([]byte(nil), md.DataIPFS...)
		clone.metadata[id] = cp
	}
	for id, m := range s.approvals {
		cp := make(map[approvalKey]Approval, len(m))
		for k, v := range m {
			cp[k] = v
		}
		clone.approvals[id] = cp
	}
	for who, m := range s.certificates {
		cp := make(map[AssetId]uint64, len(m))
		for id, v := range m {
			cp[id] = v
		}
		clone.certificates[who] = cp
	}
	return clone
}

// memTxn stages writes against a private snapshot and publishes it to base on
// Commit by swapping base's internal maps for the snapshot's.
type memTxn struct {
	base     *MemStore
	snapshot *MemStore
	done     bool
}

func (t *memTxn) Custodian() (AccountId, bool) {
	if t.snapshot.custodian == nil {
		return AccountId{}, false
	}
	return *t.snapshot.custodian, true
}

func (t *memTxn) SetCustodian(id AccountId) {
	c := id
	t.snapshot.custodian = &c
}

func (t *memTxn) Asset(id AssetId) (AssetDetails, bool) {
	d, ok := t.snapshot.assets[id]
	return d, ok
}

func (t *memTxn) PutAsset(id AssetId, d AssetDetails) {
	t.snapshot.assets[id] = d
}

func (t *memTxn) DeleteAsset(id AssetId) {
	delete(t.snapshot.assets, id)
}

func (t *memTxn) Account(asset AssetId, who AccountId) (AssetAccount, bool) {
	m, ok := t.snapshot.accounts[asset]
	if !ok {
		return AssetAccount{}, false
	}
	a, ok := m[who]
	return a, ok
}

func (t *memTxn) PutAccount(asset AssetId, who AccountId, a AssetAccount) {
	m, ok := t.snapshot.accounts[asset]
	if !ok {
		m = make(map[AccountId]AssetAccount)
		t.snapshot.accounts[asset] = m
	}
	m[who] = a
}

func (t *memTxn) DeleteAccount(asset AssetId, who AccountId) {
	if m, ok := t.snapshot.accounts[asset]; ok {
		delete(m, who)
	}
}

func (t *memTxn) ForEachAccount(asset AssetId, fn func(who AccountId, a AssetAccount) bool) {
	for who, a := range t.snapshot.accounts[asset] {
		if !fn(who, a) {
			return
		}
	}
}

func (t *memTxn) Metadata(id AssetId) (AssetMetadata, bool) {
	m, ok := t.snapshot.metadata[id]
	return m, ok
}

func (t *memTxn) PutMetadata(id AssetId, m AssetMetadata) {
	t.snapshot.metadata[id] = m
}

func (t *memTxn) DeleteMetadata(id AssetId) {
	delete(t.snapshot.metadata, id)
}

func (t *memTxn) Approval(asset AssetId, owner, delegate AccountId) (Approval, bool) {
	m, ok := t.snapshot.approvals[asset]
	if !ok {
		return Approval{}, false
	}
	a, ok := m[approvalKey{Owner: owner, Delegate: delegate}]
	return a, ok
}

func (t *memTxn) PutApproval(asset AssetId, owner, delegate AccountId, a Approval) {
	m, ok := t.snapshot.approvals[asset]
	if !ok {
		m = make(map[approvalKey]Approval)
		t.snapshot.approvals[asset] = m
	}
	m[approvalKey{Owner: owner, Delegate: delegate}] = a
}

func (t *memTxn) DeleteApproval(asset AssetId, owner, delegate AccountId) {
	if m, ok := t.snapshot.approvals[asset]; ok {
		delete(m, approvalKey{Owner: owner, Delegate: delegate})
	}
}

func (t *memTxn) ForEachApproval(asset AssetId, fn func(owner, delegate AccountId, a Approval) bool) {
	for k, a := range t.snapshot.approvals[asset] {
		if !fn(k.Owner, k.Delegate, a) {
			return
		}
	}
}

func (t *memTxn) Certificate(who AccountId, asset AssetId) uint64 {
	return t.snapshot.certificates[who][asset]
}

func (t *memTxn) PutCertificate(who AccountId, asset AssetId, total uint64) {
	m, ok := t.snapshot.certificates[who]
	if !ok {
		m = make(map[AssetId]uint64)
		t.snapshot.certificates[who] = m
	}
	m[asset] = total
}

func (t *memTxn) Commit() {
	if t.done {
		return
	}
	t.done = true
	t.base.custodian = t.snapshot.custodian
	t.base.assets = t.snapshot.assets
	t.base.accounts = t.snapshot.accounts
	t.base.metadata = t.snapshot.metadata
	t.base.approvals = t.snapshot.approvals
	t.base.certificates = t.snapshot.certificates
}

func (t *memTxn) Rollback() {
	t.done = true
	t.snapshot = nil
}

// Snapshot is an exported, serialisation-friendly copy of a MemStore's full
// contents, for callers (such as internal/ledgerjournal) that need to
// persist or inspect state outside the Store/Txn interface.
type Snapshot struct {
	HasCustodian bool
	Custodian    AccountId
	Assets       map[AssetId]AssetDetails
	Accounts     map[AssetId]map[AccountId]AssetAccount
	Metadata     map[AssetId]AssetMetadata
	Approvals    map[AssetId]map[approvalKey]Approval
	Certificates map[AccountId]map[AssetId]uint64
}

// Export copies the store's current contents into a Snapshot.
func (s *MemStore) Export() Snapshot {
	clone := s.clone()
	snap := Snapshot{
		Assets:       clone.assets,
		Accounts:     clone.accounts,
		Metadata:     clone.metadata,
		Approvals:    clone.approvals,
		Certificates: clone.certificates,
	}
	if clone.custodian != nil {
		snap.HasCustodian = true
		snap.Custodian = *clone.custodian
	}
	return snap
}

// Import replaces the store's contents with snap's. Any transaction already
// in flight against this store is unaffected; it was working against its
// own snapshot.
func (s *MemStore) Import(snap Snapshot) {
	if snap.HasCustodian {
		c := snap.Custodian
		s.custodian = &c
	} else {
		s.custodian = nil
	}
	s.assets = snap.Assets
	s.accounts = snap.Accounts
	s.metadata = snap.Metadata
	s.approvals = snap.Approvals
	s.certificates = snap.Certificates
	if s.assets == nil {
		s.assets = make(map[AssetId]AssetDetails)
	}
	if s.accounts == nil {
		s.accounts = make(map[AssetId]map[AccountId]AssetAccount)
	}
	if s.metadata == nil {
		s.metadata = make(map[AssetId]AssetMetadata)
	}
	if s.approvals == nil {
		s.approvals = make(map[AssetId]map[approvalKey]Approval)
	}
	if s.certificates == nil {
		s.certificates = make(map[AccountId]map[AssetId]uint64)
	}
}
