package main

// Importing an implementation package registers it with the default
// registry and the catalog.
import (
	_ "github.com/termfx/findfx/algo/boyermoore"
	_ "github.com/termfx/findfx/algo/kmp"
	_ "github.com/termfx/findfx/algo/rabinkarp"
)
