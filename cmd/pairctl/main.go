// pairctl drives a TV's pairing API from the command line, standing in for
// the phone during development.
//
// Usage:
//
//	pairctl -addr http://192.168.1.42:8790 list
//	pairctl -addr http://192.168.1.42:8790 propose <url> [<url>...]
//	pairctl -addr http://192.168.1.42:8790 status <change-id>
//	pairctl -addr http://192.168.1.42:8790 apply <url> [<url>...]
//
// apply proposes the list and polls until the TV user decides.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"addonpair/internal/adapter"
	"addonpair/internal/logger"
	"addonpair/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const pollInterval = time.Second

func main() {
	addr := flag.String("addr", "", "base URL of the TV's pairing server")
	timeout := flag.Duration("timeout", 15*time.Second, "per-request timeout")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("pairctl")

	if *addr == "" {
		fmt.Fprintln(os.Stderr, "pairctl: -addr is required")
		flag.Usage()
		os.Exit(2)
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "pairctl: missing command (list, propose, status, apply)")
		os.Exit(2)
	}

	tv := adapter.NewHTTPPairingAdapter(adapter.HTTPClientConfig{
		BaseURL: *addr,
		Timeout: *timeout,
	})

	ctx := context.Background()
	command, args := flag.Arg(0), flag.Args()[1:]

	var err error
	switch command {
	case "list":
		err = list(ctx, tv)
	case "propose":
		err = propose(ctx, tv, args)
	case "status":
		err = status(ctx, tv, args)
	case "apply":
		err = apply(ctx, tv, args)
	default:
		fmt.Fprintf(os.Stderr, "pairctl: unknown command %q\n", command)
		os.Exit(2)
	}

	if err != nil {
		log.Err(err).Str("command", command).Msg("command failed")
		fmt.Fprintf(os.Stderr, "pairctl: %v\n", err)
		os.Exit(1)
	}
}

func list(ctx context.Context, tv adapter.PairingAdapter) error {
	addons, err := tv.Addons(ctx)
	if err != nil {
		return err
	}

	if len(addons) == 0 {
		fmt.Println("no addons installed")
		return nil
	}
	for i, ref := range addons {
		fmt.Printf("%2d. %s\n    %s\n", i+1, ref.Name, ref.URL)
	}
	return nil
}

func propose(ctx context.Context, tv adapter.PairingAdapter, urls []string) error {
	resp, err := stage(ctx, tv, urls)
	if err != nil {
		return err
	}

	fmt.Printf("change %s staged\n", resp.ChangeID)
	return nil
}

func status(ctx context.Context, tv adapter.PairingAdapter, args []string) error {
	if len(args) != 1 {
		return errors.New("status needs exactly one change id")
	}

	s, err := tv.ChangeStatus(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(s)
	return nil
}

func apply(ctx context.Context, tv adapter.PairingAdapter, urls []string) error {
	resp, err := stage(ctx, tv, urls)
	if err != nil {
		return err
	}

	fmt.Printf("change %s staged, waiting for the TV user...\n", resp.ChangeID)

	for {
		time.Sleep(pollInterval)

		s, err := tv.ChangeStatus(ctx, resp.ChangeID)
		if err != nil {
			return err
		}

		switch s {
		case string(models.ResolutionPending):
			continue
		case string(models.ResolutionConfirmed):
			fmt.Println("confirmed")
			return nil
		case string(models.ResolutionRejected):
			return errors.New("rejected on the TV")
		default:
			return fmt.Errorf("change dropped by the TV (status %q)", s)
		}
	}
}

func stage(ctx context.Context, tv adapter.PairingAdapter, urls []string) (models.ProposeResponse, error) {
	resp, err := tv.Propose(ctx, urls)
	if err != nil {
		if errors.Is(err, adapter.ErrBusy) {
			return models.ProposeResponse{}, errors.New("the TV is busy with another change, try again shortly")
		}
		return models.ProposeResponse{}, err
	}

	for _, u := range resp.Added {
		fmt.Printf("+ %s\n", u)
	}
	for _, u := range resp.Removed {
		fmt.Printf("- %s\n", u)
	}
	return resp, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
