package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/jask/jobpay/internal/service"
	"github.com/jask/jobpay/internal/testdata"
)

// runSeed fills the database with sample applications: jobpay seed [-n 20] [-seed N].
func runSeed(ctx context.Context, args []string, svc *service.JobApplicationService, out io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(out)
	n := fs.Int("n", 20, "number of applications to create")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 {
		return fmt.Errorf("-n must not be negative, got %d", *n)
	}

	ids, err := testdata.Seed(ctx, svc, *n, *seed)
	if _, werr := fmt.Fprintf(out, "%s %d sample applications\n", pterm.Green("created"), len(ids)); werr != nil && err == nil {
		err = werr
	}
	return err
}
