package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/arcade/internal/app"
	"github.com/matheus3301/arcade/internal/lock"
	"go.uber.org/fx"
)

var version = "dev"

func main() {
	homeFlag := flag.String("home", "", "arcade home directory (default $ARCADE_HOME or ~/.arcade)")
	configFlag := flag.String("config", "", "config file (default <home>/config.toml)")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	a := fx.New(
		app.Module(app.Params{
			Home:       *homeFlag,
			ConfigPath: *configFlag,
			Version:    version,
		}),
	)
	if err := a.Err(); err != nil {
		exitWith(err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), a.StartTimeout())
	defer cancel()
	if err := a.Start(startCtx); err != nil {
		exitWith(err)
	}

	sig := <-a.Wait()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), a.StopTimeout())
	defer stopCancel()
	if err := a.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(sig.ExitCode)
}

func exitWith(err error) {
	var held *lock.HeldError
	if errors.As(err, &held) {
		fmt.Fprintf(os.Stderr, "error: %v\n", held)
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}
