// Command simplex runs programs written in the Simplex grid language.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/simplex"
	"github.com/npillmayer/simplex/simplex/cli"
)

func main() {
	var stop context.CancelFunc
	simplex.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
	simplex.Exit(0)
}
