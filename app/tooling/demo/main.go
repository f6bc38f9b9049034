// This program walks the ledger engine through its whole lifecycle in one
// process: wallets, signed transfers, mining, balances, validation, and two
// attack simulations that show the tamper detection working.
package main

import (
	"fmt"
	"os"

	"github.com/nitechain/nitechain/foundation/ledger"
	"github.com/nitechain/nitechain/foundation/ledger/wallet"
	"github.com/pterm/pterm"
)

// The demo difficulty keeps mining near-instant. Use "0000" to watch the
// nonce search actually work for its reward.
const difficulty = "00"

func main() {
	if err := run(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run() error {
	pterm.DefaultHeader.WithFullWidth().Println("Nitechain: wallets, transactions, PoW, mempool")

	// =========================================================================
	// Wallets

	pterm.DefaultSection.Println("Generating wallets")

	alice, err := wallet.New()
	if err != nil {
		return err
	}
	bob, err := wallet.New()
	if err != nil {
		return err
	}
	carol, err := wallet.New()
	if err != nil {
		return err
	}
	miner, err := wallet.New()
	if err != nil {
		return err
	}

	names := map[string]string{
		alice.Address():     "Alice",
		bob.Address():       "Bob",
		carol.Address():     "Carol",
		miner.Address():     "Miner",
		ledger.NetworkSender: "NETWORK",
	}
	for addr, name := range names {
		if name != "NETWORK" {
			pterm.Info.Printfln("%-5s : %s...", name, addr[:20])
		}
	}

	// =========================================================================
	// Ledger

	pterm.DefaultSection.Println("Initializing ledger")

	lgr, err := ledger.New(ledger.Config{
		Difficulty: difficulty,
		EvHandler: func(v string, args ...any) {
			pterm.Debug.Printfln(v, args...)
		},
	})
	if err != nil {
		return err
	}
	pterm.Success.Printfln("genesis mined  hash=%s...", lgr.LatestBlock().Hash[:16])

	// =========================================================================
	// Block 1

	pterm.DefaultSection.Println("Block 1 transactions")

	grant := ledger.NewTx(ledger.NetworkSender, alice.Address(), 100)
	report(lgr.Submit(grant), "NETWORK -> Alice (100 tokens, coinbase exempt)")

	t1 := ledger.NewTx(alice.Address(), bob.Address(), 30)
	report(t1.Sign(alice), "Alice signs her transfer")
	report(lgr.Submit(t1), "Alice -> Bob (30 tokens)")

	t2 := ledger.NewTx(bob.Address(), carol.Address(), 15)
	report(t2.Sign(bob), "Bob signs his transfer")
	report(lgr.Submit(t2), "Bob -> Carol (15 tokens)")

	if _, err := lgr.MinePending(miner.Address()); err != nil {
		return err
	}
	pterm.Success.Println("block 1 mined")

	// =========================================================================
	// Block 2

	pterm.DefaultSection.Println("Block 2 transactions")

	t3 := ledger.NewTx(carol.Address(), alice.Address(), 5)
	report(t3.Sign(carol), "Carol signs her transfer")
	report(lgr.Submit(t3), "Carol -> Alice (5 tokens)")

	t4 := ledger.NewTx(alice.Address(), carol.Address(), 10)
	report(t4.Sign(alice), "Alice signs her transfer")
	report(lgr.Submit(t4), "Alice -> Carol (10 tokens)")

	if _, err := lgr.MinePending(miner.Address()); err != nil {
		return err
	}
	pterm.Success.Println("block 2 mined")

	// =========================================================================
	// Chain

	pterm.DefaultSection.Println("Chain")

	for _, b := range lgr.Chain() {
		printBlock(b, names)
	}

	// =========================================================================
	// Balances

	pterm.DefaultSection.Println("Balances (replayed from genesis)")

	rows := pterm.TableData{{"Account", "Balance"}}
	for _, w := range []*wallet.Wallet{alice, bob, carol, miner} {
		bal, err := lgr.BalanceOf(w.Address())
		if err != nil {
			return err
		}
		rows = append(rows, []string{names[w.Address()], fmt.Sprintf("%.3f tokens", bal)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	// =========================================================================
	// Validation and attacks

	pterm.DefaultSection.Println("Validation")

	report(lgr.Validate(), "clean chain validates")

	pterm.DefaultSection.Println("Tamper attack: rewriting a mined amount")

	// Overwrite the grant amount inside block 1. The block hash no longer
	// reproduces, so validation has to fail with a hash mismatch.
	if err := lgr.Tamper(1, 0, 9_999_000); err != nil {
		return err
	}
	if err := lgr.Validate(); err != nil {
		pterm.Success.Printfln("caught: %v", err)
	} else {
		pterm.Error.Println("tampering went undetected")
	}

	pterm.DefaultSection.Println("Wrong wallet: Bob signs as Alice")

	fake := ledger.NewTx(alice.Address(), carol.Address(), 500)
	if err := fake.Sign(bob); err != nil {
		pterm.Success.Printfln("rejected at signing: %v", err)
	} else {
		pterm.Error.Println("signing went undetected")
	}

	pterm.DefaultSection.Println("Unsigned transaction: submitted directly")

	unsigned := ledger.NewTx(alice.Address(), bob.Address(), 50)
	if err := lgr.Submit(unsigned); err != nil {
		pterm.Success.Printfln("rejected at mempool: %v", err)
	} else {
		pterm.Error.Println("admission went undetected")
	}

	pterm.DefaultHeader.WithFullWidth().Println("All demos complete")

	return nil
}

// report prints a labelled success or failure line for a step whose error is
// part of the story rather than fatal.
func report(err error, label string) {
	if err != nil {
		pterm.Error.Printfln("%s: %v", label, err)
		return
	}
	pterm.Success.Println(label)
}

func printBlock(b ledger.Block, names map[string]string) {
	display := func(addr string) string {
		if name, ok := names[addr]; ok {
			return name
		}
		if len(addr) > 10 {
			return addr[:10] + "..."
		}
		return addr
	}

	var lines string
	lines += pterm.Sprintfln("hash      : %s...", b.Hash[:20])
	lines += pterm.Sprintfln("prev hash : %s...", b.PrevHash[:20])
	lines += pterm.Sprintfln("miner     : %s", display(b.Miner))
	lines += pterm.Sprintfln("nonce     : %d", b.Nonce)
	for _, tx := range b.Transactions {
		lines += pterm.Sprintfln("  %s -> %s : %g tokens", display(tx.From), display(tx.To), tx.AmountTokens())
	}

	pterm.DefaultBox.WithTitle(pterm.Sprintf("Block #%d", b.Index)).Println(lines)
}
