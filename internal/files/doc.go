// Package files finds CSV inputs on disk.
//
// Discovery lists the CSV files in a directory or matching a glob pattern.
// The file selector uses it to expand a directory or pattern entry into
// individual files:
//
//	discovery := files.NewDiscovery("")
//	found, err := discovery.FindCSVFiles("measurements")
//	paths := files.Paths(found)
package files
