package assets

// EventKind names one of the events the engine can emit.
type EventKind string

const (
	EventCreated            EventKind = "Created"
	EventIssued              EventKind = "Issued"
	EventTransferred          EventKind = "Transferred"
	EventBurned               EventKind = "Burned"
	EventTeamChanged          EventKind = "TeamChanged"
	EventOwnerChanged         EventKind = "OwnerChanged"
	EventFrozen               EventKind = "Frozen"
	EventThawed               EventKind = "Thawed"
	EventAssetFrozen          EventKind = "AssetFrozen"
	EventAssetThawed          EventKind = "AssetThawed"
	EventDestroyed            EventKind = "Destroyed"
	EventForceCreated         EventKind = "ForceCreated"
	EventMetadataSet          EventKind = "MetadataSet"
	EventMetadataUpdated      EventKind = "MetadataUpdated"
	EventMetadataCleared      EventKind = "MetadataCleared"
	EventApprovedTransfer     EventKind = "ApprovedTransfer"
	EventApprovalCancelled    EventKind = "ApprovalCancelled"
	EventTransferredApproved  EventKind = "TransferredApproved"
	EventAssetStatusChanged   EventKind = "AssetStatusChanged"
	EventCustodianSet         EventKind = "CustodianSet"
	EventCarbonCreditsBurned  EventKind = "CarbonCreditsBurned"
)

// Event is one emitted effect of a successfully-committed command. Events
// are appended in emission order and carry a stable per-block index,
// assigned by the caller of the engine (the embedding runtime owns block
// context; this module only guarantees emission order.
type Event struct {
	Kind   EventKind
	Asset  AssetId
	Fields map[string]any
}

func newEvent(kind EventKind, asset AssetId, fields map[string]any) Event {
	return Event{Kind: kind, Asset: asset, Fields: fields}
}
