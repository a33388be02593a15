// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "quarry-cli" implements the difficulty engine inspection tooling.
package main

import (
	"fmt"
	"os"

	"github.com/quarrychain/quarry/cmd/quarry-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "quarry-cli failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
