// SPDX-License-Identifier: MIT

// Command lvmul bundles two console multipliers:
//
//	lvmul scalar   multiply two numbers
//	lvmul matrix   multiply a 2×3 matrix by a 3×2 matrix (shapes configurable)
//
// Both read one value per line from stdin. Blank or unparsable values become
// 0. The process exits non-zero only when stdin or stdout fails.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
