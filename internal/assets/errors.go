package assets

import "errors"

// Error kinds surfaced to callers. The engine fails fast at the first violated
// precondition; no writes are observable once one of these is returned.
var (
	// Existence
	ErrUnknown     = errors.New("asset: unknown asset class")
	ErrNoAccount   = errors.New("asset: no such account")
	ErrInUse       = errors.New("asset: asset id already in use")
	ErrAlreadyExists = errors.New("asset: account already exists")
	ErrNoMetadata  = errors.New("asset: no metadata for this asset")
	ErrNoCustodian = errors.New("asset: no custodian has been set")

	// Authorisation
	ErrNoPermission = errors.New("asset: caller lacks permission for this operation")
	ErrBadOrigin    = errors.New("asset: privileged origin required")

	// Arithmetic / bounds
	ErrBalanceLow    = errors.New("asset: balance too low")
	ErrOverflow      = errors.New("asset: arithmetic overflow")
	ErrWouldDie      = errors.New("asset: operation would reap the account")
	ErrWouldBurn     = errors.New("asset: operation would burn a non-zero balance")
	ErrBelowMinimum  = errors.New("asset: balance below min_balance for a new account")
	ErrCannotCreate  = errors.New("asset: cannot create account without a provider or deposit")

	// State
	ErrFrozen        = errors.New("asset: asset class or account is frozen")
	ErrUnapproved    = errors.New("asset: approved amount insufficient")
	ErrMinBalanceZero = errors.New("asset: min_balance must be greater than zero")

	// Inputs
	ErrBadWitness              = errors.New("asset: witness under-reports live reference counts")
	ErrBadMetadata             = errors.New("asset: metadata string exceeds StringLimit")
	ErrCannotChangeAfterMint   = errors.New("asset: metadata is immutable once supply is non-zero")
	ErrCreatingAssetId         = errors.New("asset: generated asset id collided, retry")

	// Resources
	ErrNoProvider = errors.New("asset: account has no external provider reference")
	ErrNoDeposit  = errors.New("asset: no deposit reservation found")

	// Unsupported decrease
	ErrUnsupported = errors.New("asset: decrease not supported for this account state")
)
