package main

import (
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/solana-foundation/zk-blacklist/lib"
	"github.com/solana-foundation/zk-blacklist/lib/crypto"
	"github.com/solana-foundation/zk-blacklist/smt"
	"github.com/spf13/cobra"
)

// WitnessInput is the scalar input file handed to the external proving toolchain.
// Root and pubkey hash are the circuit's public inputs; siblings and leaf value
// are the private ones. All scalars cross as decimal strings except the root,
// which also carries its canonical hex form for the on-chain account
type WitnessInput struct {
	Root        string   `json:"root"`        // 0x-prefixed, 64 lowercase hex chars
	RootDecimal string   `json:"rootDecimal"` // the same root as a decimal scalar
	PubkeyHash  string   `json:"pubkeyHash"`  // the identity's leaf index, decimal
	LeafValue   string   `json:"leafValue"`   // the stored leaf value, decimal; 0 proves exclusion
	Siblings    []string `json:"siblings"`    // ordered decimal scalars, leaf to root
}

var outFile = ""

func init() {
	proveCmd.Flags().StringVar(&outFile, "out", "", "write the witness input file here instead of stdout")
}

var proveCmd = &cobra.Command{
	Use:   "prove <identity>",
	Short: "emit the witness inputs proving an identity's presence in (or absence from) the blacklist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		identity, err := crypto.IdentityFromString(args[0])
		if err != nil {
			l.Fatal(err.Error())
		}
		tree := buildTree(loadBlacklist())
		root, err := tree.Root()
		if err != nil {
			l.Fatal(err.Error())
		}
		proof, err := tree.MerkleProof(identity)
		if err != nil {
			l.Fatal(err.Error())
		}
		// sanity check the path before handing it to the prover
		ok, err := smt.VerifyProof(proof, root, crypto.NewPoseidon())
		if err != nil {
			l.Fatal(err.Error())
		}
		if !ok {
			l.Fatal("generated proof does not fold back to the current root")
		}
		witness := newWitnessInput(proof, root)
		out, err := lib.MarshalJSONIndentString(witness)
		if err != nil {
			l.Fatal(err.Error())
		}
		if outFile == "" {
			fmt.Println(out)
			return
		}
		if e := os.WriteFile(outFile, []byte(out), os.ModePerm); e != nil {
			l.Fatal(e.Error())
		}
		l.Infof("wrote witness inputs for %s to %s (leafValue=%s)",
			crypto.IdentityToString(identity), outFile, witness.LeafValue)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <witness-file>",
	Short: "re-fold a witness input file and check it reproduces its root",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		witness := new(WitnessInput)
		bz, e := os.ReadFile(args[0])
		if e != nil {
			l.Fatal(e.Error())
		}
		if err := lib.UnmarshalJSON(bz, witness); err != nil {
			l.Fatal(err.Error())
		}
		proof, root, err := witness.ToProof()
		if err != nil {
			l.Fatal(err.Error())
		}
		ok, err := smt.VerifyProof(proof, root, crypto.NewPoseidon())
		if err != nil {
			l.Fatal(err.Error())
		}
		if !ok {
			l.Fatal("witness does not fold back to its root")
		}
		l.Infof("witness folds to root %s (leafValue=%s)", witness.Root, witness.LeafValue)
	},
}

// newWitnessInput() encodes a proof and root into the prover's scalar formats
func newWitnessInput(proof *smt.Proof, root fr.Element) *WitnessInput {
	witness := &WitnessInput{
		Root:        crypto.FieldToHex(root),
		RootDecimal: crypto.FieldToDecimal(root),
		PubkeyHash:  crypto.FieldToDecimal(proof.Index),
		LeafValue:   crypto.FieldToDecimal(proof.LeafValue),
		Siblings:    make([]string, len(proof.Siblings)),
	}
	for i, sibling := range proof.Siblings {
		witness.Siblings[i] = crypto.FieldToDecimal(sibling)
	}
	return witness
}

// ToProof() decodes the witness scalars back into a proof and root
func (w *WitnessInput) ToProof() (*smt.Proof, fr.Element, lib.ErrorI) {
	root, err := crypto.FieldFromHex(w.Root)
	if err != nil {
		return nil, fr.Element{}, err
	}
	proof := &smt.Proof{Siblings: make([]fr.Element, len(w.Siblings))}
	if proof.Index, err = crypto.FieldFromDecimal(w.PubkeyHash); err != nil {
		return nil, fr.Element{}, err
	}
	if proof.LeafValue, err = crypto.FieldFromDecimal(w.LeafValue); err != nil {
		return nil, fr.Element{}, err
	}
	for i, s := range w.Siblings {
		if proof.Siblings[i], err = crypto.FieldFromDecimal(s); err != nil {
			return nil, fr.Element{}, err
		}
	}
	return proof, root, nil
}
