package assets

import (
	"fmt"
	"sync"
)

// CommandName identifies one of the module's commands by its wire name.
type CommandName string

const (
	CmdSetCustodian        CommandName = "set_custodian"
	CmdCreate              CommandName = "create"
	CmdSetProjectData      CommandName = "set_project_data"
	CmdForceCreate         CommandName = "force_create"
	CmdDestroy             CommandName = "destroy"
	CmdMint                CommandName = "mint"
	CmdBurn                CommandName = "burn"
	CmdSelfBurn            CommandName = "self_burn"
	CmdTransfer            CommandName = "transfer"
	CmdTransferKeepAlive   CommandName = "transfer_keep_alive"
	CmdForceTransfer       CommandName = "force_transfer"
	CmdFreeze              CommandName = "freeze"
	CmdThaw                CommandName = "thaw"
	CmdFreezeAsset         CommandName = "freeze_asset"
	CmdThawAsset           CommandName = "thaw_asset"
	CmdTransferOwnership   CommandName = "transfer_ownership"
	CmdApproveTransfer     CommandName = "approve_transfer"
	CmdCancelApproval      CommandName = "cancel_approval"
	CmdForceCancelApproval CommandName = "force_cancel_approval"
	CmdTransferApproved    CommandName = "transfer_approved"
	CmdTouch               CommandName = "touch"
	CmdRefund              CommandName = "refund"
	CmdForceAssetStatus    CommandName = "force_asset_status"
	CmdForceSetMetadata    CommandName = "force_set_metadata"
	CmdForceClearMetadata  CommandName = "force_clear_metadata"
)

// Command is one atomic state transition against an Engine. Every exported
// Engine method has a Command wrapper so a caller driving the module from
// the outside (the CLI, a test harness) can go through one dispatch point
// instead of importing every method by name.
type Command interface {
	Name() CommandName
	Execute(e *Engine) ([]Event, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[CommandName]func() Command)
)

// RegisterCommand adds a command factory under name. Called from this
// package's init() for every built-in command; panics on a duplicate name,
// which only happens if the package itself is miswired.
func RegisterCommand(name CommandName, factory func() Command) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("assets: command %q already registered", name))
	}
	registry[name] = factory
}

// ErrUnknownCommand is returned by NewCommand for a name with no registered
// factory.
var ErrUnknownCommand = fmt.Errorf("asset: unknown command")

// NewCommand constructs a zero-valued Command for name, ready to be
// populated by the caller (typically by unmarshalling CLI flags into it)
// before Dispatch.
func NewCommand(name CommandName) (Command, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrUnknownCommand
	}
	return factory(), nil
}

// Dispatch runs cmd against e inside a single transaction, exactly as if its
// underlying Engine method had been called directly — Command is a
// dispatch-table convenience around the engine's methods, not an
// independent execution path.
func (e *Engine) Dispatch(cmd Command) ([]Event, error) {
	return cmd.Execute(e)
}

func init() {
	RegisterCommand(CmdSetCustodian, func() Command { return &SetCustodianCommand{} })
	RegisterCommand(CmdCreate, func() Command { return &CreateCommand{} })
	RegisterCommand(CmdSetProjectData, func() Command { return &SetProjectDataCommand{} })
	RegisterCommand(CmdForceCreate, func() Command { return &ForceCreateCommand{} })
	RegisterCommand(CmdDestroy, func() Command { return &DestroyCommand{} })
	RegisterCommand(CmdMint, func() Command { return &MintCommand{} })
	RegisterCommand(CmdBurn, func() Command { return &BurnCommand{} })
	RegisterCommand(CmdSelfBurn, func() Command { return &SelfBurnCommand{} })
	RegisterCommand(CmdTransfer, func() Command { return &TransferCommand{} })
	RegisterCommand(CmdTransferKeepAlive, func() Command { return &TransferKeepAliveCommand{} })
	RegisterCommand(CmdForceTransfer, func() Command { return &ForceTransferCommand{} })
	RegisterCommand(CmdFreeze, func() Command { return &FreezeCommand{} })
	RegisterCommand(CmdThaw, func() Command { return &ThawCommand{} })
	RegisterCommand(CmdFreezeAsset, func() Command { return &FreezeAssetCommand{} })
	RegisterCommand(CmdThawAsset, func() Command { return &ThawAssetCommand{} })
	RegisterCommand(CmdTransferOwnership, func() Command { return &TransferOwnershipCommand{} })
	RegisterCommand(CmdApproveTransfer, func() Command { return &ApproveTransferCommand{} })
	RegisterCommand(CmdCancelApproval, func() Command { return &CancelApprovalCommand{} })
	RegisterCommand(CmdForceCancelApproval, func() Command { return &ForceCancelApprovalCommand{} })
	RegisterCommand(CmdTransferApproved, func() Command { return &TransferApprovedCommand{} })
	RegisterCommand(CmdTouch, func() Command { return &TouchCommand{} })
	RegisterCommand(CmdRefund, func() Command { return &RefundCommand{} })
	RegisterCommand(CmdForceAssetStatus, func() Command { return &ForceAssetStatusCommand{} })
	RegisterCommand(CmdForceSetMetadata, func() Command { return &ForceSetMetadataCommand{} })
	RegisterCommand(CmdForceClearMetadata, func() Command { return &ForceClearMetadataCommand{} })
}

// SetCustodianCommand wraps Engine.SetCustodian.
type SetCustodianCommand struct {
	New AccountId
}

func (c *SetCustodianCommand) Name() CommandName { return CmdSetCustodian }
func (c *SetCustodianCommand) Execute(e *Engine) ([]Event, error) {
	return e.SetCustodian(c.New)
}

// CreateCommand wraps Engine.Create. AssetID is populated with the generated
// id after a successful Execute.
type CreateCommand struct {
	Caller       AccountId
	Name, Symbol []byte
	AssetID      AssetId
}

func (c *CreateCommand) Name() CommandName { return CmdCreate }
func (c *CreateCommand) Execute(e *Engine) ([]Event, error) {
	id, events, err := e.Create(c.Caller, c.Name, c.Symbol)
	if err != nil {
		return nil, err
	}
	c.AssetID = id
	return events, nil
}

// SetProjectDataCommand wraps Engine.SetProjectData.
type SetProjectDataCommand struct {
	Caller            AccountId
	Asset             AssetId
	URL, DataIPFS     []byte
}

func (c *SetProjectDataCommand) Name() CommandName { return CmdSetProjectData }
func (c *SetProjectDataCommand) Execute(e *Engine) ([]Event, error) {
	return e.SetProjectData(c.Caller, c.Asset, c.URL, c.DataIPFS)
}

// ForceCreateCommand wraps Engine.ForceCreate.
type ForceCreateCommand struct {
	Asset        AssetId
	Owner        AccountId
	IsSufficient bool
	MinBalance   uint64
}

func (c *ForceCreateCommand) Name() CommandName { return CmdForceCreate }
func (c *ForceCreateCommand) Execute(e *Engine) ([]Event, error) {
	return e.ForceCreate(c.Asset, c.Owner, c.IsSufficient, c.MinBalance)
}

// DestroyCommand wraps Engine.Destroy.
type DestroyCommand struct {
	Caller      AccountId
	Asset       AssetId
	Witness     DestroyWitness
	Privileged  bool
}

func (c *DestroyCommand) Name() CommandName { return CmdDestroy }
func (c *DestroyCommand) Execute(e *Engine) ([]Event, error) {
	return e.Destroy(c.Caller, c.Asset, c.Witness, c.Privileged)
}

// MintCommand wraps Engine.Mint.
type MintCommand struct {
	Caller AccountId
	Asset  AssetId
	Amount uint64
}

func (c *MintCommand) Name() CommandName { return CmdMint }
func (c *MintCommand) Execute(e *Engine) ([]Event, error) {
	return e.Mint(c.Caller, c.Asset, c.Amount)
}

// BurnCommand wraps Engine.Burn.
type BurnCommand struct {
	Caller AccountId
	Asset  AssetId
	Who    AccountId
	Amount uint64
}

func (c *BurnCommand) Name() CommandName { return CmdBurn }
func (c *BurnCommand) Execute(e *Engine) ([]Event, error) {
	return e.Burn(c.Caller, c.Asset, c.Who, c.Amount)
}

// SelfBurnCommand wraps Engine.SelfBurn.
type SelfBurnCommand struct {
	Caller AccountId
	Asset  AssetId
	Amount uint64
}

func (c *SelfBurnCommand) Name() CommandName { return CmdSelfBurn }
func (c *SelfBurnCommand) Execute(e *Engine) ([]Event, error) {
	return e.SelfBurn(c.Caller, c.Asset, c.Amount)
}

// TransferCommand wraps Engine.Transfer.
type TransferCommand struct {
	Caller AccountId
	Asset  AssetId
	Target AccountId
	Amount uint64
}

func (c *TransferCommand) Name() CommandName { return CmdTransfer }
func (c *TransferCommand) Execute(e *Engine) ([]Event, error) {
	return e.Transfer(c.Caller, c.Asset, c.Target, c.Amount)
}

// TransferKeepAliveCommand wraps Engine.TransferKeepAlive.
type TransferKeepAliveCommand struct {
	Caller AccountId
	Asset  AssetId
	Target AccountId
	Amount uint64
}

func (c *TransferKeepAliveCommand) Name() CommandName { return CmdTransferKeepAlive }
func (c *TransferKeepAliveCommand) Execute(e *Engine) ([]Event, error) {
	return e.TransferKeepAlive(c.Caller, c.Asset, c.Target, c.Amount)
}

// ForceTransferCommand wraps Engine.ForceTransfer.
type ForceTransferCommand struct {
	Caller       AccountId
	Asset        AssetId
	Source, Dest AccountId
	Amount       uint64
}

func (c *ForceTransferCommand) Name() CommandName { return CmdForceTransfer }
func (c *ForceTransferCommand) Execute(e *Engine) ([]Event, error) {
	return e.ForceTransfer(c.Caller, c.Asset, c.Source, c.Dest, c.Amount)
}

// FreezeCommand wraps Engine.Freeze.
type FreezeCommand struct {
	Caller AccountId
	Asset  AssetId
	Who    AccountId
}

func (c *FreezeCommand) Name() CommandName { return CmdFreeze }
func (c *FreezeCommand) Execute(e *Engine) ([]Event, error) {
	return e.Freeze(c.Caller, c.Asset, c.Who)
}

// ThawCommand wraps Engine.Thaw.
type ThawCommand struct {
	Caller AccountId
	Asset  AssetId
	Who    AccountId
}

func (c *ThawCommand) Name() CommandName { return CmdThaw }
func (c *ThawCommand) Execute(e *Engine) ([]Event, error) {
	return e.Thaw(c.Caller, c.Asset, c.Who)
}

// FreezeAssetCommand wraps Engine.FreezeAsset.
type FreezeAssetCommand struct {
	Caller AccountId
	Asset  AssetId
}

func (c *FreezeAssetCommand) Name() CommandName { return CmdFreezeAsset }
func (c *FreezeAssetCommand) Execute(e *Engine) ([]Event, error) {
	return e.FreezeAsset(c.Caller, c.Asset)
}

// ThawAssetCommand wraps Engine.ThawAsset.
type ThawAssetCommand struct {
	Caller AccountId
	Asset  AssetId
}

func (c *ThawAssetCommand) Name() CommandName { return CmdThawAsset }
func (c *ThawAssetCommand) Execute(e *Engine) ([]Event, error) {
	return e.ThawAsset(c.Caller, c.Asset)
}

// TransferOwnershipCommand wraps Engine.TransferOwnership.
type TransferOwnershipCommand struct {
	Caller   AccountId
	Asset    AssetId
	NewOwner AccountId
}

func (c *TransferOwnershipCommand) Name() CommandName { return CmdTransferOwnership }
func (c *TransferOwnershipCommand) Execute(e *Engine) ([]Event, error) {
	return e.TransferOwnership(c.Caller, c.Asset, c.NewOwner)
}

// ApproveTransferCommand wraps Engine.ApproveTransfer.
type ApproveTransferCommand struct {
	Caller   AccountId
	Asset    AssetId
	Delegate AccountId
	Amount   uint64
}

func (c *ApproveTransferCommand) Name() CommandName { return CmdApproveTransfer }
func (c *ApproveTransferCommand) Execute(e *Engine) ([]Event, error) {
	return e.ApproveTransfer(c.Caller, c.Asset, c.Delegate, c.Amount)
}

// CancelApprovalCommand wraps Engine.CancelApproval.
type CancelApprovalCommand struct {
	Caller   AccountId
	Asset    AssetId
	Delegate AccountId
}

func (c *CancelApprovalCommand) Name() CommandName { return CmdCancelApproval }
func (c *CancelApprovalCommand) Execute(e *Engine) ([]Event, error) {
	return e.CancelApproval(c.Caller, c.Asset, c.Delegate)
}

// ForceCancelApprovalCommand wraps Engine.ForceCancelApproval.
type ForceCancelApprovalCommand struct {
	Caller           AccountId
	Asset            AssetId
	Owner, Delegate  AccountId
	Privileged       bool
}

func (c *ForceCancelApprovalCommand) Name() CommandName { return CmdForceCancelApproval }
func (c *ForceCancelApprovalCommand) Execute(e *Engine) ([]Event, error) {
	return e.ForceCancelApproval(c.Caller, c.Asset, c.Owner, c.Delegate, c.Privileged)
}

// TransferApprovedCommand wraps Engine.TransferApproved.
type TransferApprovedCommand struct {
	Caller      AccountId
	Asset       AssetId
	Owner       AccountId
	Destination AccountId
	Amount      uint64
}

func (c *TransferApprovedCommand) Name() CommandName { return CmdTransferApproved }
func (c *TransferApprovedCommand) Execute(e *Engine) ([]Event, error) {
	return e.TransferApproved(c.Caller, c.Asset, c.Owner, c.Destination, c.Amount)
}

// TouchCommand wraps Engine.Touch.
type TouchCommand struct {
	Caller AccountId
	Asset  AssetId
}

func (c *TouchCommand) Name() CommandName { return CmdTouch }
func (c *TouchCommand) Execute(e *Engine) ([]Event, error) {
	return e.Touch(c.Caller, c.Asset)
}

// RefundCommand wraps Engine.Refund.
type RefundCommand struct {
	Caller    AccountId
	Asset     AssetId
	AllowBurn bool
}

func (c *RefundCommand) Name() CommandName { return CmdRefund }
func (c *RefundCommand) Execute(e *Engine) ([]Event, error) {
	return e.Refund(c.Caller, c.Asset, c.AllowBurn)
}

// ForceAssetStatusCommand wraps Engine.ForceAssetStatus.
type ForceAssetStatusCommand struct {
	Asset                              AssetId
	Owner, Issuer, Admin, Freezer      AccountId
	MinBalance                         uint64
	IsSufficient, IsFrozen             bool
}

func (c *ForceAssetStatusCommand) Name() CommandName { return CmdForceAssetStatus }
func (c *ForceAssetStatusCommand) Execute(e *Engine) ([]Event, error) {
	return e.ForceAssetStatus(c.Asset, c.Owner, c.Issuer, c.Admin, c.Freezer, c.MinBalance, c.IsSufficient, c.IsFrozen)
}

// ForceSetMetadataCommand wraps Engine.ForceSetMetadata.
type ForceSetMetadataCommand struct {
	Asset                        AssetId
	Name, Symbol, URL, DataIPFS  []byte
	Decimals                     uint8
	IsFrozen                     bool
}

func (c *ForceSetMetadataCommand) Name() CommandName { return CmdForceSetMetadata }
func (c *ForceSetMetadataCommand) Execute(e *Engine) ([]Event, error) {
	return e.ForceSetMetadata(c.Asset, c.Name, c.Symbol, c.URL, c.DataIPFS, c.Decimals, c.IsFrozen)
}

// ForceClearMetadataCommand wraps Engine.ForceClearMetadata.
type ForceClearMetadataCommand struct {
	Asset AssetId
}

func (c *ForceClearMetadataCommand) Name() CommandName { return CmdForceClearMetadata }
func (c *ForceClearMetadataCommand) Execute(e *Engine) ([]Event, error) {
	return e.ForceClearMetadata(c.Asset)
}
