// Command selkit builds CSS selectors from the command line or from YAML
// selector sheets.
//
//	selkit build element=a 'attr=href$=".png"' pseudo-class=focus
//	selkit combine 'ul.menu' '>' 'li'
//	selkit render sheet.yaml [NAME...]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newApp(nil).Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
