// Command keygen generates a fresh Ed25519 service keypair. The public key
// goes to the on-chain verifier; the seed goes to the service environment.
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

func main() {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate keypair:", err)
		os.Exit(1)
	}

	fmt.Println("=== service signing keypair ===")
	fmt.Println("public key (provision the verifier contract with this):")
	fmt.Printf("  %s\n", hex.EncodeToString(pub))
	fmt.Println("secret seed (set ADMIN_SECRET_KEY to this, keep it out of VCS):")
	fmt.Printf("  %s\n", hex.EncodeToString(priv.Seed()))
}
