// SPDX-License-Identifier: MPL-2.0

package main

import cmd "run-clang-tidy/cmd/run-clang-tidy"

func main() {
	cmd.Execute()
}
