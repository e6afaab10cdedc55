// SPDX-License-Identifier: MPL-2.0

// aamvakit validates, encodes, and generates AAMVA driver's license
// barcode records.
package main

func main() {
	Execute()
}
