// Command carbonledgerd drives the carbon-credit asset ledger engine from
// the command line: every subcommand maps to one engine command, dispatched
// against a session that is either purely in-memory or backed by a pebble
// journal on disk.
package main

import "github.com/dkuanyshbaev/carbonledger/internal/cli"

func main() {
	cli.Execute()
}
