package bundlesync

import (
	"context"
	"encoding/base64"
	"testing"
)

func TestParseBundle(t *testing.T) {
	source := "# US federal bundle\nindependence-day = \"4th of July\"\n\nveterans-day = \"11th of November\"\n"
	rules, err := ParseBundle(source)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d: %v", len(rules), rules)
	}
	if rules["independence-day"] != "4th of July" {
		t.Fatalf("unexpected rule: %q", rules["independence-day"])
	}
}

func TestParseBundleRejectsMalformedLine(t *testing.T) {
	if _, err := ParseBundle("not a valid line"); err == nil {
		t.Fatal("expected an error for a malformed bundle line")
	}
}

func TestFetchBundle(t *testing.T) {
	transport := newMockTransport()
	encoded := base64.StdEncoding.EncodeToString([]byte(`flag-day = "14th of June"` + "\n"))
	url := "https://api.github.com/repos/tom65536/annual/contents/bundles/us.bundle?ref=main"
	transport.addResponse(url, 200, `{"name":"us.bundle","path":"bundles/us.bundle","content":"`+encoded+`","encoding":"base64"}`)

	c := New("tom65536", "annual", "main")
	c.httpClient.Transport = transport

	rules, err := c.FetchBundle(context.Background(), "bundles/us.bundle")
	if err != nil {
		t.Fatal(err)
	}
	if rules["flag-day"] != "14th of June" {
		t.Fatalf("unexpected rules: %v", rules)
	}
}

func TestListBundles(t *testing.T) {
	transport := newMockTransport()
	url := "https://api.github.com/repos/tom65536/annual/contents/bundles?ref=main"
	transport.addResponse(url, 200, `[{"name":"us.bundle","path":"bundles/us.bundle","type":"file"},{"name":"sub","path":"bundles/sub","type":"dir"}]`)

	c := New("tom65536", "annual", "main")
	c.httpClient.Transport = transport

	names, err := c.ListBundles(context.Background(), "bundles")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "bundles/us.bundle" {
		t.Fatalf("unexpected bundle list: %v", names)
	}
}

func TestFetchBundleRejectsNonOKStatus(t *testing.T) {
	transport := newMockTransport()
	url := "https://api.github.com/repos/tom65536/annual/contents/bundles/missing.bundle?ref=main"
	transport.addResponse(url, 404, `{"message": "Not Found"}`)

	c := New("tom65536", "annual", "main")
	c.httpClient.Transport = transport

	if _, err := c.FetchBundle(context.Background(), "bundles/missing.bundle"); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}
