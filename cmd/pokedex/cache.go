package main

import (
	"fmt"

	"github.com/fwojciec/pokedex"
)

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	if err := deps.Cache.Purge(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Lookup cache cleared.")
	return nil
}
