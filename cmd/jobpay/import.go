package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/jask/jobpay/internal/export"
	"github.com/jask/jobpay/internal/service"
)

// runImport restores records from the last ctrl+e export. Ids already in the
// database are skipped, so running it twice is harmless.
func runImport(ctx context.Context, svc *service.JobApplicationService, out io.Writer) error {
	recs, err := export.LoadApplications()
	if err != nil {
		return fmt.Errorf("read export: %w", err)
	}
	var restored, skipped int
	for _, r := range recs {
		created, err := svc.Restore(ctx, r.ID, r.Values())
		if err != nil {
			return fmt.Errorf("restore %s: %w", r.ID, err)
		}
		if created {
			restored++
		} else {
			skipped++
		}
	}
	_, err = fmt.Fprintf(out, "%s %d applications, %d already present\n", pterm.Green("restored"), restored, skipped)
	return err
}
