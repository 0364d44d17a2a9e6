// Package main is the entry point of encryptcheck, the offline validator and
// inspector for encrypt rule configuration files.
package main

import "os"

func main() {
	os.Exit(Execute())
}
