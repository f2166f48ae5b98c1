// Command cardcheck validates a card form locally and prints the report as
// JSON. It exits with status 1 when the card is not valid.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"git.thinkinpower.net/cardkit/bdata"
	"git.thinkinpower.net/cardkit/data"
	"git.thinkinpower.net/cardkit/detect"
	"git.thinkinpower.net/cardkit/mod"
	"git.thinkinpower.net/cardkit/validate"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	cfg, err := data.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	cfg.SetupLogger()
	logger.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], cfg.DataDir, os.Stdout, os.Stderr))
}

func run(args []string, dataDir string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cardcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	number := fs.String("number", "", "card number")
	expiry := fs.String("expiry", "", "expiry date, MM/YY")
	cvv := fs.String("cvv", "", "security code")
	name := fs.String("name", "", "cardholder name")
	requireCvv := fs.Bool("require-cvv", true, "fail when the security code is missing")
	requireExpiry := fs.Bool("require-expiry", true, "fail when the expiry date is missing")
	strict := fs.Bool("strict", false, "strict mode")
	allowTestCards := fs.Bool("allow-test-cards", false, "accept well known test numbers")
	dir := fs.String("d", dataDir, "directory with extra bin data files")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	var (
		db  bdata.BinDatabase
		err error
	)
	if db, err = bdata.Open(bdata.BinDatabaseModeMemory, bdata.BinDataConfig{DataDir: *dir}); err != nil {
		fmt.Fprintf(stderr, "%+v\n", errors.Wrap(err, "cardcheck"))
		return exitUsage
	}

	v := validate.New(validate.WithEngine(detect.New(db)))
	result := v.ValidateCard(*number, *expiry, *cvv, *name, mod.ValidateOptions{
		Strict:         *strict,
		AllowTestCards: *allowTestCards,
		RequireCvv:     requireCvv,
		RequireExpiry:  requireExpiry,
	})

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(result); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if !result.IsValid {
		return exitInvalid
	}
	return exitValid
}
