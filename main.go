/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command stratum builds layered CSS design tokens and compares them
// against other token pipelines.
package main

import (
	"os"

	"bennypowers.dev/stratum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
