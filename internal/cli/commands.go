package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkuanyshbaev/carbonledger/internal/assets"
)

// mustFlag reads a string flag that MarkFlagRequired already guarantees is
// set by the time RunE runs.
func mustFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// --- demo-only faucet commands, no pallet analogue ---

var (
	fundWho    string
	fundAmount uint64
)

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Seed an account's native free balance (demo only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := parseAccountID(fundWho)
		if err != nil {
			return err
		}
		sess.fund(who, fundAmount)
		fmt.Printf("%s now holds %d free\n", fundWho, fundAmount)
		return nil
	},
}

var (
	provideWho string
	provideHas bool
)

var setProviderCmd = &cobra.Command{
	Use:   "set-provider",
	Short: "Mark an account as holding a provider reference (demo only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := parseAccountID(provideWho)
		if err != nil {
			return err
		}
		sess.setProvider(who, provideHas)
		return nil
	},
}

func init() {
	fundCmd.Flags().StringVar(&fundWho, "who", "", "hex-encoded account id")
	fundCmd.MarkFlagRequired("who")
	fundCmd.Flags().Uint64Var(&fundAmount, "amount", 0, "free balance to seed")
	rootCmd.AddCommand(fundCmd)

	setProviderCmd.Flags().StringVar(&provideWho, "who", "", "hex-encoded account id")
	setProviderCmd.MarkFlagRequired("who")
	setProviderCmd.Flags().BoolVar(&provideHas, "has", true, "whether who holds a provider reference")
	rootCmd.AddCommand(setProviderCmd)
}

// --- custodian / asset-class lifecycle ---

var setCustodianCmd = &cobra.Command{
	Use:   "set-custodian",
	Short: "Install or replace the singleton custodian",
	RunE: func(cmd *cobra.Command, args []string) error {
		newID, err := parseAccountID(mustFlag(cmd, "new"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.SetCustodianCommand{New: newID})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new asset class",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		symbol, _ := cmd.Flags().GetString("symbol")
		c := &assets.CreateCommand{Caller: caller, Name: []byte(name), Symbol: []byte(symbol)}
		events, err := sess.run(c)
		if err != nil {
			return err
		}
		fmt.Printf("asset: %s\n", formatAssetID(c.AssetID))
		printEvents(events)
		return nil
	},
}

var forceCreateCmd = &cobra.Command{
	Use:   "force-create",
	Short: "Install an asset class at a caller-supplied id, no deposit taken",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		owner, err := parseAccountID(mustFlag(cmd, "owner"))
		if err != nil {
			return err
		}
		isSufficient, _ := cmd.Flags().GetBool("sufficient")
		minBalance, _ := cmd.Flags().GetUint64("min-balance")
		events, err := sess.run(&assets.ForceCreateCommand{
			Asset: id, Owner: owner, IsSufficient: isSufficient, MinBalance: minBalance,
		})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var (
	destroyAccounts    uint32
	destroySufficients uint32
	destroyApprovals   uint32
	destroyPrivileged  bool
)

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Destroy an asset class in full",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.DestroyCommand{
			Caller: caller,
			Asset:  id,
			Witness: assets.DestroyWitness{
				Accounts:    destroyAccounts,
				Sufficients: destroySufficients,
				Approvals:   destroyApprovals,
			},
			Privileged: destroyPrivileged,
		})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var setProjectDataCmd = &cobra.Command{
	Use:   "set-project-data",
	Short: "Update an asset's url and data_ipfs fields (owner or custodian, pre-mint only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		url, _ := cmd.Flags().GetString("url")
		dataIPFS, _ := cmd.Flags().GetString("data-ipfs")
		events, err := sess.run(&assets.SetProjectDataCommand{
			Caller: caller, Asset: id, URL: []byte(url), DataIPFS: []byte(dataIPFS),
		})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var transferOwnershipCmd = &cobra.Command{
	Use:   "transfer-ownership",
	Short: "Move ownership of an asset class to a new owner",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		newOwner, err := parseAccountID(mustFlag(cmd, "new-owner"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.TransferOwnershipCommand{Caller: caller, Asset: id, NewOwner: newOwner})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

func init() {
	setCustodianCmd.Flags().String("new", "", "hex-encoded account id")
	setCustodianCmd.MarkFlagRequired("new")
	rootCmd.AddCommand(setCustodianCmd)

	createCmd.Flags().String("caller", "", "hex-encoded account id")
	createCmd.MarkFlagRequired("caller")
	createCmd.Flags().String("name", "", "asset name")
	createCmd.Flags().String("symbol", "", "asset symbol")
	rootCmd.AddCommand(createCmd)

	forceCreateCmd.Flags().String("asset", "", "hex-encoded asset id")
	forceCreateCmd.MarkFlagRequired("asset")
	forceCreateCmd.Flags().String("owner", "", "hex-encoded account id")
	forceCreateCmd.MarkFlagRequired("owner")
	forceCreateCmd.Flags().Bool("sufficient", false, "whether the asset is self-sufficient")
	forceCreateCmd.Flags().Uint64("min-balance", 1, "minimum balance for an account to exist")
	rootCmd.AddCommand(forceCreateCmd)

	destroyCmd.Flags().String("caller", "", "hex-encoded account id")
	destroyCmd.MarkFlagRequired("caller")
	destroyCmd.Flags().String("asset", "", "hex-encoded asset id")
	destroyCmd.MarkFlagRequired("asset")
	destroyCmd.Flags().Uint32Var(&destroyAccounts, "witness-accounts", 0, "observed live account count")
	destroyCmd.Flags().Uint32Var(&destroySufficients, "witness-sufficients", 0, "observed live sufficient-reference count")
	destroyCmd.Flags().Uint32Var(&destroyApprovals, "witness-approvals", 0, "observed live approval count")
	destroyCmd.Flags().BoolVar(&destroyPrivileged, "privileged", false, "bypass the owner check")
	rootCmd.AddCommand(destroyCmd)

	setProjectDataCmd.Flags().String("caller", "", "hex-encoded account id")
	setProjectDataCmd.MarkFlagRequired("caller")
	setProjectDataCmd.Flags().String("asset", "", "hex-encoded asset id")
	setProjectDataCmd.MarkFlagRequired("asset")
	setProjectDataCmd.Flags().String("url", "", "project url")
	setProjectDataCmd.Flags().String("data-ipfs", "", "project data ipfs hash")
	rootCmd.AddCommand(setProjectDataCmd)

	transferOwnershipCmd.Flags().String("caller", "", "hex-encoded account id")
	transferOwnershipCmd.MarkFlagRequired("caller")
	transferOwnershipCmd.Flags().String("asset", "", "hex-encoded asset id")
	transferOwnershipCmd.MarkFlagRequired("asset")
	transferOwnershipCmd.Flags().String("new-owner", "", "hex-encoded account id")
	transferOwnershipCmd.MarkFlagRequired("new-owner")
	rootCmd.AddCommand(transferOwnershipCmd)
}

// --- mint / burn ---

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Credit amount to an asset's owner (issuer only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		amount, _ := cmd.Flags().GetUint64("amount")
		events, err := sess.run(&assets.MintCommand{Caller: caller, Asset: id, Amount: amount})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "Debit who by amount (custodian only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		who, err := parseAccountID(mustFlag(cmd, "who"))
		if err != nil {
			return err
		}
		amount, _ := cmd.Flags().GetUint64("amount")
		events, err := sess.run(&assets.BurnCommand{Caller: caller, Asset: id, Who: who, Amount: amount})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var selfBurnCmd = &cobra.Command{
	Use:   "self-burn",
	Short: "Debit caller's own account by amount",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		amount, _ := cmd.Flags().GetUint64("amount")
		events, err := sess.run(&assets.SelfBurnCommand{Caller: caller, Asset: id, Amount: amount})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{mintCmd, burnCmd, selfBurnCmd} {
		c.Flags().String("caller", "", "hex-encoded account id")
		c.MarkFlagRequired("caller")
		c.Flags().String("asset", "", "hex-encoded asset id")
		c.MarkFlagRequired("asset")
		c.Flags().Uint64("amount", 0, "amount")
	}
	burnCmd.Flags().String("who", "", "hex-encoded account id being debited")
	burnCmd.MarkFlagRequired("who")

	rootCmd.AddCommand(mintCmd, burnCmd, selfBurnCmd)
}

// --- transfers ---

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Move amount from caller to target",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		target, err := parseAccountID(mustFlag(cmd, "target"))
		if err != nil {
			return err
		}
		amount, _ := cmd.Flags().GetUint64("amount")
		events, err := sess.run(&assets.TransferCommand{Caller: caller, Asset: id, Target: target, Amount: amount})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var transferKeepAliveCmd = &cobra.Command{
	Use:   "transfer-keep-alive",
	Short: "Move amount from caller to target, refusing to reap caller's account",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		target, err := parseAccountID(mustFlag(cmd, "target"))
		if err != nil {
			return err
		}
		amount, _ := cmd.Flags().GetUint64("amount")
		events, err := sess.run(&assets.TransferKeepAliveCommand{Caller: caller, Asset: id, Target: target, Amount: amount})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var forceTransferCmd = &cobra.Command{
	Use:   "force-transfer",
	Short: "Move amount from source to dest on the admin's authority",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		source, err := parseAccountID(mustFlag(cmd, "source"))
		if err != nil {
			return err
		}
		dest, err := parseAccountID(mustFlag(cmd, "dest"))
		if err != nil {
			return err
		}
		amount, _ := cmd.Flags().GetUint64("amount")
		events, err := sess.run(&assets.ForceTransferCommand{Caller: caller, Asset: id, Source: source, Dest: dest, Amount: amount})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{transferCmd, transferKeepAliveCmd} {
		c.Flags().String("caller", "", "hex-encoded account id")
		c.MarkFlagRequired("caller")
		c.Flags().String("asset", "", "hex-encoded asset id")
		c.MarkFlagRequired("asset")
		c.Flags().String("target", "", "hex-encoded account id")
		c.MarkFlagRequired("target")
		c.Flags().Uint64("amount", 0, "amount")
	}
	forceTransferCmd.Flags().String("caller", "", "hex-encoded account id")
	forceTransferCmd.MarkFlagRequired("caller")
	forceTransferCmd.Flags().String("asset", "", "hex-encoded asset id")
	forceTransferCmd.MarkFlagRequired("asset")
	forceTransferCmd.Flags().String("source", "", "hex-encoded account id")
	forceTransferCmd.MarkFlagRequired("source")
	forceTransferCmd.Flags().String("dest", "", "hex-encoded account id")
	forceTransferCmd.MarkFlagRequired("dest")
	forceTransferCmd.Flags().Uint64("amount", 0, "amount")

	rootCmd.AddCommand(transferCmd, transferKeepAliveCmd, forceTransferCmd)
}

// --- freezing ---

var freezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "Freeze a single account (asset freezer only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		who, err := parseAccountID(mustFlag(cmd, "who"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.FreezeCommand{Caller: caller, Asset: id, Who: who})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var thawCmd = &cobra.Command{
	Use:   "thaw",
	Short: "Thaw a single account (asset admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		who, err := parseAccountID(mustFlag(cmd, "who"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.ThawCommand{Caller: caller, Asset: id, Who: who})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var freezeAssetCmd = &cobra.Command{
	Use:   "freeze-asset",
	Short: "Freeze an entire asset class (asset freezer only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.FreezeAssetCommand{Caller: caller, Asset: id})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var thawAssetCmd = &cobra.Command{
	Use:   "thaw-asset",
	Short: "Thaw an entire asset class (asset admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.ThawAssetCommand{Caller: caller, Asset: id})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{freezeCmd, thawCmd} {
		c.Flags().String("caller", "", "hex-encoded account id")
		c.MarkFlagRequired("caller")
		c.Flags().String("asset", "", "hex-encoded asset id")
		c.MarkFlagRequired("asset")
		c.Flags().String("who", "", "hex-encoded account id")
		c.MarkFlagRequired("who")
	}
	for _, c := range []*cobra.Command{freezeAssetCmd, thawAssetCmd} {
		c.Flags().String("caller", "", "hex-encoded account id")
		c.MarkFlagRequired("caller")
		c.Flags().String("asset", "", "hex-encoded asset id")
		c.MarkFlagRequired("asset")
	}
	rootCmd.AddCommand(freezeCmd, thawCmd, freezeAssetCmd, thawAssetCmd)
}

// --- approvals ---

var approveTransferCmd = &cobra.Command{
	Use:   "approve-transfer",
	Short: "Grant delegate permission to move up to amount on caller's behalf",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		delegate, err := parseAccountID(mustFlag(cmd, "delegate"))
		if err != nil {
			return err
		}
		amount, _ := cmd.Flags().GetUint64("amount")
		events, err := sess.run(&assets.ApproveTransferCommand{Caller: caller, Asset: id, Delegate: delegate, Amount: amount})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var cancelApprovalCmd = &cobra.Command{
	Use:   "cancel-approval",
	Short: "Remove caller's approval to delegate, unreserving its deposit",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		delegate, err := parseAccountID(mustFlag(cmd, "delegate"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.CancelApprovalCommand{Caller: caller, Asset: id, Delegate: delegate})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var forceCancelApprovalCmd = &cobra.Command{
	Use:   "force-cancel-approval",
	Short: "Cancel owner's approval to delegate on the admin's authority",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		owner, err := parseAccountID(mustFlag(cmd, "owner"))
		if err != nil {
			return err
		}
		delegate, err := parseAccountID(mustFlag(cmd, "delegate"))
		if err != nil {
			return err
		}
		privileged, _ := cmd.Flags().GetBool("privileged")
		events, err := sess.run(&assets.ForceCancelApprovalCommand{
			Caller: caller, Asset: id, Owner: owner, Delegate: delegate, Privileged: privileged,
		})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var transferApprovedCmd = &cobra.Command{
	Use:   "transfer-approved",
	Short: "Move amount from owner to destination on delegate's (caller's) authority",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		owner, err := parseAccountID(mustFlag(cmd, "owner"))
		if err != nil {
			return err
		}
		destination, err := parseAccountID(mustFlag(cmd, "destination"))
		if err != nil {
			return err
		}
		amount, _ := cmd.Flags().GetUint64("amount")
		events, err := sess.run(&assets.TransferApprovedCommand{
			Caller: caller, Asset: id, Owner: owner, Destination: destination, Amount: amount,
		})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

func init() {
	approveTransferCmd.Flags().String("caller", "", "hex-encoded account id")
	approveTransferCmd.MarkFlagRequired("caller")
	approveTransferCmd.Flags().String("asset", "", "hex-encoded asset id")
	approveTransferCmd.MarkFlagRequired("asset")
	approveTransferCmd.Flags().String("delegate", "", "hex-encoded account id")
	approveTransferCmd.MarkFlagRequired("delegate")
	approveTransferCmd.Flags().Uint64("amount", 0, "amount")

	cancelApprovalCmd.Flags().String("caller", "", "hex-encoded account id")
	cancelApprovalCmd.MarkFlagRequired("caller")
	cancelApprovalCmd.Flags().String("asset", "", "hex-encoded asset id")
	cancelApprovalCmd.MarkFlagRequired("asset")
	cancelApprovalCmd.Flags().String("delegate", "", "hex-encoded account id")
	cancelApprovalCmd.MarkFlagRequired("delegate")

	forceCancelApprovalCmd.Flags().String("caller", "", "hex-encoded account id")
	forceCancelApprovalCmd.MarkFlagRequired("caller")
	forceCancelApprovalCmd.Flags().String("asset", "", "hex-encoded asset id")
	forceCancelApprovalCmd.MarkFlagRequired("asset")
	forceCancelApprovalCmd.Flags().String("owner", "", "hex-encoded account id")
	forceCancelApprovalCmd.MarkFlagRequired("owner")
	forceCancelApprovalCmd.Flags().String("delegate", "", "hex-encoded account id")
	forceCancelApprovalCmd.MarkFlagRequired("delegate")
	forceCancelApprovalCmd.Flags().Bool("privileged", false, "bypass the admin check")

	transferApprovedCmd.Flags().String("caller", "", "hex-encoded account id")
	transferApprovedCmd.MarkFlagRequired("caller")
	transferApprovedCmd.Flags().String("asset", "", "hex-encoded asset id")
	transferApprovedCmd.MarkFlagRequired("asset")
	transferApprovedCmd.Flags().String("owner", "", "hex-encoded account id")
	transferApprovedCmd.MarkFlagRequired("owner")
	transferApprovedCmd.Flags().String("destination", "", "hex-encoded account id")
	transferApprovedCmd.MarkFlagRequired("destination")
	transferApprovedCmd.Flags().Uint64("amount", 0, "amount")

	rootCmd.AddCommand(approveTransferCmd, cancelApprovalCmd, forceCancelApprovalCmd, transferApprovedCmd)
}

// --- touch / refund ---

var touchCmd = &cobra.Command{
	Use:   "touch",
	Short: "Create a zero-balance account for caller backed by an explicit deposit",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.TouchCommand{Caller: caller, Asset: id})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var refundCmd = &cobra.Command{
	Use:   "refund",
	Short: "Reclaim caller's deposit-held account, optionally burning its residual balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAccountID(mustFlag(cmd, "caller"))
		if err != nil {
			return err
		}
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		allowBurn, _ := cmd.Flags().GetBool("allow-burn")
		events, err := sess.run(&assets.RefundCommand{Caller: caller, Asset: id, AllowBurn: allowBurn})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{touchCmd, refundCmd} {
		c.Flags().String("caller", "", "hex-encoded account id")
		c.MarkFlagRequired("caller")
		c.Flags().String("asset", "", "hex-encoded asset id")
		c.MarkFlagRequired("asset")
	}
	refundCmd.Flags().Bool("allow-burn", false, "burn any residual balance instead of failing")
	rootCmd.AddCommand(touchCmd, refundCmd)
}

// --- privileged metadata/status overrides ---

var forceAssetStatusCmd = &cobra.Command{
	Use:   "force-asset-status",
	Short: "Overwrite every role and tuning field on an existing asset class",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		owner, err := parseAccountID(mustFlag(cmd, "owner"))
		if err != nil {
			return err
		}
		issuer, err := parseAccountID(mustFlag(cmd, "issuer"))
		if err != nil {
			return err
		}
		admin, err := parseAccountID(mustFlag(cmd, "admin"))
		if err != nil {
			return err
		}
		freezer, err := parseAccountID(mustFlag(cmd, "freezer"))
		if err != nil {
			return err
		}
		minBalance, _ := cmd.Flags().GetUint64("min-balance")
		isSufficient, _ := cmd.Flags().GetBool("sufficient")
		isFrozen, _ := cmd.Flags().GetBool("frozen")
		events, err := sess.run(&assets.ForceAssetStatusCommand{
			Asset: id, Owner: owner, Issuer: issuer, Admin: admin, Freezer: freezer,
			MinBalance: minBalance, IsSufficient: isSufficient, IsFrozen: isFrozen,
		})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var forceSetMetadataCmd = &cobra.Command{
	Use:   "force-set-metadata",
	Short: "Overwrite every metadata field for an existing asset",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		symbol, _ := cmd.Flags().GetString("symbol")
		url, _ := cmd.Flags().GetString("url")
		dataIPFS, _ := cmd.Flags().GetString("data-ipfs")
		decimals, _ := cmd.Flags().GetUint8("decimals")
		isFrozen, _ := cmd.Flags().GetBool("frozen")
		events, err := sess.run(&assets.ForceSetMetadataCommand{
			Asset: id, Name: []byte(name), Symbol: []byte(symbol), URL: []byte(url),
			DataIPFS: []byte(dataIPFS), Decimals: decimals, IsFrozen: isFrozen,
		})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

var forceClearMetadataCmd = &cobra.Command{
	Use:   "force-clear-metadata",
	Short: "Remove an asset's metadata entry, refunding its deposit to the owner",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAssetID(mustFlag(cmd, "asset"))
		if err != nil {
			return err
		}
		events, err := sess.run(&assets.ForceClearMetadataCommand{Asset: id})
		if err != nil {
			return err
		}
		printEvents(events)
		return nil
	},
}

func init() {
	forceAssetStatusCmd.Flags().String("asset", "", "hex-encoded asset id")
	forceAssetStatusCmd.MarkFlagRequired("asset")
	forceAssetStatusCmd.Flags().String("owner", "", "hex-encoded account id")
	forceAssetStatusCmd.MarkFlagRequired("owner")
	forceAssetStatusCmd.Flags().String("issuer", "", "hex-encoded account id")
	forceAssetStatusCmd.MarkFlagRequired("issuer")
	forceAssetStatusCmd.Flags().String("admin", "", "hex-encoded account id")
	forceAssetStatusCmd.MarkFlagRequired("admin")
	forceAssetStatusCmd.Flags().String("freezer", "", "hex-encoded account id")
	forceAssetStatusCmd.MarkFlagRequired("freezer")
	forceAssetStatusCmd.Flags().Uint64("min-balance", 1, "minimum balance for an account to exist")
	forceAssetStatusCmd.Flags().Bool("sufficient", false, "whether the asset is self-sufficient")
	forceAssetStatusCmd.Flags().Bool("frozen", false, "whether the asset class is frozen")

	forceSetMetadataCmd.Flags().String("asset", "", "hex-encoded asset id")
	forceSetMetadataCmd.MarkFlagRequired("asset")
	forceSetMetadataCmd.Flags().String("name", "", "asset name")
	forceSetMetadataCmd.Flags().String("symbol", "", "asset symbol")
	forceSetMetadataCmd.Flags().String("url", "", "project url")
	forceSetMetadataCmd.Flags().String("data-ipfs", "", "project data ipfs hash")
	forceSetMetadataCmd.Flags().Uint8("decimals", 9, "display decimals")
	forceSetMetadataCmd.Flags().Bool("frozen", false, "whether the metadata is frozen")

	forceClearMetadataCmd.Flags().String("asset", "", "hex-encoded asset id")
	forceClearMetadataCmd.MarkFlagRequired("asset")

	rootCmd.AddCommand(forceAssetStatusCmd, forceSetMetadataCmd, forceClearMetadataCmd)
}

// --- inspection ---

var (
	balanceWho   string
	balanceAsset string
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print who's balance of an asset",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := parseAccountID(balanceWho)
		if err != nil {
			return err
		}
		id, err := parseAssetID(balanceAsset)
		if err != nil {
			return err
		}
		f := assets.NewFungibles(sess.engine)
		fmt.Println(f.Balance(id, who))
		return nil
	},
}

var inspectAssetCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print an asset class's total issuance and minimum balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseAssetID(balanceAsset)
		if err != nil {
			return err
		}
		f := assets.NewFungibles(sess.engine)
		if !f.AssetExists(id) {
			return fmt.Errorf("unknown asset %s", balanceAsset)
		}
		fmt.Printf("total_issuance: %d\nminimum_balance: %d\n", f.TotalIssuance(id), f.MinimumBalance(id))
		return nil
	},
}

func init() {
	balanceCmd.Flags().StringVar(&balanceWho, "who", "", "hex-encoded account id")
	balanceCmd.MarkFlagRequired("who")
	balanceCmd.Flags().StringVar(&balanceAsset, "asset", "", "hex-encoded asset id")
	balanceCmd.MarkFlagRequired("asset")
	rootCmd.AddCommand(balanceCmd)

	inspectAssetCmd.Flags().StringVar(&balanceAsset, "asset", "", "hex-encoded asset id")
	inspectAssetCmd.MarkFlagRequired("asset")
	rootCmd.AddCommand(inspectAssetCmd)
}
