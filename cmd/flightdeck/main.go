package main

import (
	"fmt"

	"github.com/flightdeck-io/flightdeck/cmd"
	"github.com/flightdeck-io/flightdeck/common"
	"github.com/flightdeck-io/flightdeck/pretty"
)

func exitProtection() {
	status := recover()
	if status != nil {
		common.Fatal("unhandled", fmt.Errorf("%v", status))
	}
	common.WaitLogs()
	if status != nil {
		panic(status)
	}
}

func main() {
	defer exitProtection()
	pretty.Setup()
	cmd.Execute()
}
