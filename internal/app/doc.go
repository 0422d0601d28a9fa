// Package app wires configuration, logging, telemetry, the scanner, the
// exporter and the dialogs into one Application and drives a pipeline run.
//
// # Pipeline
//
// Each Run walks a fixed state table:
//
//	idle -> selecting -> scanning -> export_prompt -> writing -> idle
//
// Canceling the file prompt or the save prompt returns to idle with a
// warning. Export failures are shown in an error dialog and returned so the
// CLI can exit non-zero.
//
// # Usage
//
//	application, err := app.New(cfg, dialog.NewTerminal(cfg))
//	if err != nil {
//	    return err
//	}
//	defer application.Close(ctx)
//	return application.Run(ctx, args, outPath)
package app
