// Package main is the entry point for the voltscan CLI.
//
// Build-time variables are injected via ldflags:
//
//	go build -ldflags "-X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%FT%TZ)"
package main

import (
	"voltscan/internal/cli"
	"voltscan/pkg/contracts"
)

var (
	commit = "unknown"
	date   = "unknown"
)

func main() {
	contracts.GitCommit = commit
	contracts.BuildTime = date

	cli.Execute(cli.NewRootCommand())
}
