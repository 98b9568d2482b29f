package assets

// AccountLifecycle encapsulates the external provider/consumer/sufficient
// reference-count protocol as a single small adapter: the four reference-count
// operations, audited in pairs around every asset-account lifecycle
// transition, plus the HasProvider query.
type AccountLifecycle interface {
	// HasProvider reports whether who already has a provider reference on the
	// external account ledger (required for non-sufficient assets to create a
	// Consumer-reason account without an explicit deposit).
	HasProvider(who AccountId) bool
	// IncConsumer records a new consumer reference for who.
	IncConsumer(who AccountId)
	// DecConsumer releases a consumer reference for who.
	DecConsumer(who AccountId)
	// IncSufficient records that who is self-sufficient via this asset.
	IncSufficient(who AccountId)
	// DecSufficient releases who's self-sufficient reference.
	DecSufficient(who AccountId)
}

// InMemoryLifecycle is a reference AccountLifecycle for tests and the CLI
// demo.
type InMemoryLifecycle struct {
	providers  map[AccountId]bool
	consumers  map[AccountId]int
	sufficient map[AccountId]int
}

// NewInMemoryLifecycle creates an empty reference lifecycle ledger.
func NewInMemoryLifecycle() *InMemoryLifecycle {
	return &InMemoryLifecycle{
		providers:  make(map[AccountId]bool),
		consumers:  make(map[AccountId]int),
		sufficient: make(map[AccountId]int),
	}
}

// SetProvider marks who as having (or not having) a provider reference
// (test/demo helper — in a real runtime this comes from holding another
// sufficient asset, staking, etc.).
func (l *InMemoryLifecycle) SetProvider(who AccountId, has bool) {
	l.providers[who] = has
}

func (l *InMemoryLifecycle) HasProvider(who AccountId) bool {
	return l.providers[who]
}

func (l *InMemoryLifecycle) IncConsumer(who AccountId) {
	l.consumers[who]++
}

func (l *InMemoryLifecycle) DecConsumer(who AccountId) {
	if l.consumers[who] > 0 {
		l.consumers[who]--
	}
}

func (l *InMemoryLifecycle) IncSufficient(who AccountId) {
	l.sufficient[who]++
}

func (l *InMemoryLifecycle) DecSufficient(who AccountId) {
	if l.sufficient[who] > 0 {
		l.sufficient[who]--
	}
}

// ConsumerRefs reports who's current consumer-reference count (test helper).
func (l *InMemoryLifecycle) ConsumerRefs(who AccountId) int {
	return l.consumers[who]
}

// SufficientRefs reports who's current sufficient-reference count (test helper).
func (l *InMemoryLifecycle) SufficientRefs(who AccountId) int {
	return l.sufficient[who]
}
