// Command axiomproof searches for a shortest Boolean-algebra rewrite
// proof between two expressions.
package main

import (
	"os"

	"github.com/hashicorp/cli"

	"github.com/gitrdm/boolproof/cmd/axiomproof/command"
)

func main() {
	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Reader:      os.Stdin,
	}

	proofCommand := &command.ProofCommand{Meta: command.Meta{Ui: ui}}
	os.Exit(proofCommand.Run(os.Args[1:]))
}
