/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package main

import (
	"os"

	"github.com/mmuldo/cctduv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
