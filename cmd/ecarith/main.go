// Command ecarith performs group operations on short Weierstrass curves.
//
// Points are read and written in the text format "X = <x>; Y = <y>;", with
// "INF;" for the point at infinity:
//
//	ecarith --a 3 --b 1 --q 7 add "X = 2; Y = 1;" "X = 0; Y = 1;"
//	ecarith --curve secp256k1 basemul 12345
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
