// Package bundlesync fetches rule bundles from a GitHub repository's
// contents API, the same transport the teacher's updater.GitHubSyncer
// used to pull holiday definitions out of the upstream Python package.
// The HTTP plumbing, rate limiting, and base64 content decoding are
// kept as-is; only the payload changes, from Python class bodies to
// `name = "rule string"` bundle files.
package bundlesync

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Client fetches rule bundles from a GitHub repository, grounded on
// updater.GitHubSyncer's transport (rate limiter, contents API,
// base64 decoding) with FetchCountryList/FetchCountryFile replaced by
// ListBundles/FetchBundle.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	repoOwner   string
	repoName    string
	branch      string
	token       string
	rateLimiter chan struct{}
}

// New creates a Client targeting the given owner/repo/branch. GitHub
// allows 60 unauthenticated requests per hour; like the teacher, this
// client is conservative and self-throttles to one request per second.
func New(repoOwner, repoName, branch string) *Client {
	rateLimiter := make(chan struct{}, 1)
	go func() {
		for {
			rateLimiter <- struct{}{}
			time.Sleep(1 * time.Second)
		}
	}()

	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     "https://api.github.com",
		repoOwner:   repoOwner,
		repoName:    repoName,
		branch:      branch,
		rateLimiter: rateLimiter,
	}
}

// WithToken sets a GitHub token (config.LoadGitHubToken) used for
// authenticated requests, lifting the unauthenticated rate limit.
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

type contentsEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

type contentsFile struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// ListBundles lists the bundle files under dir in the configured
// repository and branch.
func (c *Client) ListBundles(ctx context.Context, dir string) ([]string, error) {
	<-c.rateLimiter

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		c.baseURL, c.repoOwner, c.repoName, dir, c.branch)

	var entries []contentsEntry
	if err := c.getJSON(ctx, url, &entries); err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.Type == "file" {
			names = append(names, e.Path)
		}
	}
	return names, nil
}

// FetchBundle retrieves and decodes a single bundle file's rule
// definitions, keyed by rule name.
func (c *Client) FetchBundle(ctx context.Context, path string) (map[string]string, error) {
	<-c.rateLimiter

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		c.baseURL, c.repoOwner, c.repoName, path, c.branch)

	var file contentsFile
	if err := c.getJSON(ctx, url, &file); err != nil {
		return nil, err
	}

	if file.Encoding != "base64" {
		return nil, fmt.Errorf("unexpected encoding %q for %s", file.Encoding, path)
	}

	decoded, err := decodeBase64Content(file.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return ParseBundle(decoded)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "annual-bundlesync/1")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GitHub API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeBase64Content decodes the base64 payload GitHub's contents API
// returns, tolerating the embedded newlines GitHub inserts every 60
// characters.
func decodeBase64Content(content string) (string, error) {
	cleaned := strings.ReplaceAll(content, "\n", "")
	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// bundleLineRe matches a `name = "rule string"` bundle entry, mirroring
// the regex-driven scanning style of python_ast_parser.go.
var bundleLineRe = regexp.MustCompile(`^\s*([A-Za-z0-9_\-]+)\s*=\s*"([^"]*)"\s*$`)

// ParseBundle extracts rule definitions from raw bundle file contents.
// Blank lines and lines starting with # are ignored.
func ParseBundle(source string) (map[string]string, error) {
	rules := make(map[string]string)
	for i, rawLine := range strings.Split(source, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := bundleLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: expected `name = \"rule\"`, got %q", i+1, rawLine)
		}
		rules[m[1]] = m[2]
	}
	return rules, nil
}
