// Command annual-sync fetches rule bundles from a GitHub repository,
// grounded on cmd/sync/main.go's flag-based sync CLI shape (list,
// single-bundle, and default-all-bundles modes; token from flag,
// config, or environment).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tom65536go/annual/bundlesync"
	"github.com/tom65536go/annual/config"
)

func main() {
	var (
		repoOwner = flag.String("owner", "tom65536", "GitHub repository owner holding bundle files")
		repoName  = flag.String("repo", "annual", "GitHub repository name holding bundle files")
		branch    = flag.String("branch", "main", "Branch to sync from")
		dir       = flag.String("dir", "bundles", "Directory in the repository holding bundle files")
		bundle    = flag.String("bundle", "", "Fetch a single bundle path instead of listing/syncing all")
		dryRun    = flag.Bool("dry-run", false, "Show what would be synced without writing files")
		verbose   = flag.Bool("verbose", false, "Enable verbose output")
		timeout   = flag.Duration("timeout", 5*time.Minute, "Timeout for the sync operation")
		outputDir = flag.String("output", "./bundles", "Directory to save synced bundle files")
		listOnly  = flag.Bool("list", false, "Only list available bundle files")
		token     = flag.String("token", "", "GitHub Personal Access Token for authentication (optional)")
	)
	flag.Parse()

	fmt.Println("annual bundle sync tool")
	fmt.Println("========================")

	githubToken := *token
	if githubToken == "" {
		githubToken = config.LoadGitHubToken()
	}

	client := bundlesync.New(*repoOwner, *repoName, *branch)
	if githubToken != "" {
		client = client.WithToken(githubToken)
		if *verbose {
			fmt.Println("Using authenticated GitHub API access")
		}
	} else if *verbose {
		fmt.Println("Using unauthenticated GitHub API access (rate limited)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *listOnly {
		if err := listBundles(ctx, client, *dir); err != nil {
			log.Fatalf("failed to list bundles: %v", err)
		}
		return
	}

	if *bundle != "" {
		if err := syncSingleBundle(ctx, client, *bundle, *outputDir, *dryRun, *verbose); err != nil {
			log.Fatalf("failed to sync %s: %v", *bundle, err)
		}
		return
	}

	if err := syncAllBundles(ctx, client, *dir, *outputDir, *dryRun, *verbose); err != nil {
		log.Fatalf("failed to sync: %v", err)
	}
}

func listBundles(ctx context.Context, client *bundlesync.Client, dir string) error {
	fmt.Printf("Fetching bundle list from %s...\n", dir)

	paths, err := client.ListBundles(ctx, dir)
	if err != nil {
		return err
	}

	fmt.Printf("\nFound %d bundles:\n", len(paths))
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func syncSingleBundle(ctx context.Context, client *bundlesync.Client, path, outputDir string, dryRun, verbose bool) error {
	fmt.Printf("Syncing bundle: %s\n", path)

	rules, err := client.FetchBundle(ctx, path)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("  %d rules fetched\n", len(rules))
	}

	if dryRun {
		fmt.Println("DRY RUN MODE - no files written")
		return nil
	}

	return writeBundle(outputDir, path, rules)
}

func syncAllBundles(ctx context.Context, client *bundlesync.Client, dir, outputDir string, dryRun, verbose bool) error {
	paths, err := client.ListBundles(ctx, dir)
	if err != nil {
		return err
	}

	fmt.Printf("Syncing %d bundles...\n", len(paths))
	for _, p := range paths {
		if verbose {
			fmt.Printf("  fetching %s\n", p)
		}
		rules, err := client.FetchBundle(ctx, p)
		if err != nil {
			fmt.Printf("  error fetching %s: %v\n", p, err)
			continue
		}
		if dryRun {
			fmt.Printf("  would write %d rules from %s\n", len(rules), p)
			continue
		}
		if err := writeBundle(outputDir, p, rules); err != nil {
			return err
		}
	}
	return nil
}

func writeBundle(outputDir, sourcePath string, rules map[string]string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	var b strings.Builder
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	for _, name := range names {
		fmt.Fprintf(&b, "%s = %q\n", name, rules[name])
	}

	destPath := filepath.Join(outputDir, filepath.Base(sourcePath))
	if err := os.WriteFile(destPath, []byte(b.String()), 0644); err != nil {
		return err
	}

	out, err := os.Create(destPath + ".json")
	if err != nil {
		return err
	}
	defer out.Close()
	return json.NewEncoder(out).Encode(rules)
}
