package main

import (
	"os"
	"path/filepath"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/solana-foundation/zk-blacklist/lib"
	"github.com/solana-foundation/zk-blacklist/lib/crypto"
	"github.com/solana-foundation/zk-blacklist/smt"
	"github.com/spf13/cobra"
)

// Blacklist is the persisted list of blacklisted identities, as base58 public keys
type Blacklist struct {
	Identities []string `json:"identities"`
}

var addCmd = &cobra.Command{
	Use:   "add <identity>",
	Short: "add an identity (base58 or 0x hex public key) to the blacklist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		identity, err := crypto.IdentityFromString(args[0])
		if err != nil {
			l.Fatal(err.Error())
		}
		blacklist := loadBlacklist()
		canonical := crypto.IdentityToString(identity)
		// insertion is idempotent by key; the file mirrors that
		for _, existing := range blacklist.Identities {
			if existing == canonical {
				l.Warnf("identity %s is already blacklisted", canonical)
				return
			}
		}
		blacklist.Identities = append(blacklist.Identities, canonical)
		if err = lib.SaveJSONToFile(blacklist, dataDir, lib.BlacklistFilePath); err != nil {
			l.Fatal(err.Error())
		}
		tree := buildTree(blacklist)
		root, err := tree.Root()
		if err != nil {
			l.Fatal(err.Error())
		}
		l.Infof("blacklisted %s; %d identities, new root %s", canonical, tree.Len(), crypto.FieldToHex(root))
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <identity>",
	Short: "check whether an identity is absent from the blacklist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		identity, err := crypto.IdentityFromString(args[0])
		if err != nil {
			l.Fatal(err.Error())
		}
		tree := buildTree(loadBlacklist())
		excluded, err := tree.IsExcluded(identity)
		if err != nil {
			l.Fatal(err.Error())
		}
		if excluded {
			l.Infof("identity %s is NOT blacklisted", crypto.IdentityToString(identity))
		} else {
			l.Warnf("identity %s is blacklisted", crypto.IdentityToString(identity))
		}
	},
}

var rootHashCmd = &cobra.Command{
	Use:   "root",
	Short: "print the current tree root (hex, decimal, and the 32 byte on-chain buffer)",
	Run: func(cmd *cobra.Command, args []string) {
		tree := buildTree(loadBlacklist())
		root, err := tree.Root()
		if err != nil {
			l.Fatal(err.Error())
		}
		printRoot(root, tree.Len())
	},
}

var emptyRootCmd = &cobra.Command{
	Use:   "empty-root",
	Short: "print the root of the all-empty tree, used to initialize on-chain state",
	Run: func(cmd *cobra.Command, args []string) {
		tree := newTree()
		printRoot(tree.EmptyRoot(), 0)
	},
}

// printRoot() prints every encoding of a root the on-chain side consumes
func printRoot(root fr.Element, leaves int) {
	l.Infof("leaves:       %d", leaves)
	l.Infof("root:         %s", crypto.FieldToHex(root))
	l.Infof("root decimal: %s", crypto.FieldToDecimal(root))
	l.Infof("root bytes:   %s", lib.HexBytes(crypto.FieldBytes(root)).String())
}

// newTree() constructs an engine with the production Poseidon capability
func newTree() *smt.SMT {
	tree, err := smt.New(crypto.NewPoseidon())
	if err != nil {
		l.Fatal(err.Error())
	}
	return tree
}

// loadBlacklist() reads the blacklist file from the data directory, treating a
// missing file as an empty blacklist
func loadBlacklist() (blacklist Blacklist) {
	if _, err := os.Stat(filepath.Join(dataDir, lib.BlacklistFilePath)); os.IsNotExist(err) {
		return
	}
	if err := lib.NewJSONFromFile(&blacklist, dataDir, lib.BlacklistFilePath); err != nil {
		l.Fatal(err.Error())
	}
	return
}

// buildTree() folds the blacklist file into a fresh tree, one insert per identity
func buildTree(blacklist Blacklist) *smt.SMT {
	tree := newTree()
	for _, encoded := range blacklist.Identities {
		identity, err := crypto.IdentityFromString(encoded)
		if err != nil {
			l.Fatal(err.Error())
		}
		if err = tree.Add(identity); err != nil {
			l.Fatal(err.Error())
		}
	}
	return tree
}
