package cli

import (
	"fmt"

	"github.com/alapierre/credstore/version"
)

type VersionCmd struct {
}

func (c *VersionCmd) Run(g *Globals) error {
	handleVersion()
	return nil
}

func handleVersion() {
	fmt.Printf("credstore\n")
	fmt.Printf("Version: %s\n", version.Version)
}
