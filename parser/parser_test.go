package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

const samplePage = `<html><body>
<article class="product_pod">
  <h3><a href="../../../a-light-in-the-attic_1000/index.html" title="A Light in the Attic">A Light in ...</a></h3>
  <p class="price_color">£51.77</p>
</article>
<article class="product_pod">
  <h3><a href="catalogue/soumission_998/index.html" title="Soumission">Soumission</a></h3>
  <p class="price_color">£50.10</p>
</article>
<article class="product_pod">
  <h3><a href="https://example.com/elsewhere" title="Elsewhere">Elsewhere</a></h3>
  <p class="price_color">£9.00</p>
</article>
<ul class="pager"><li class="next"><a href="page-2.html">next</a></li></ul>
</body></html>`

func TestParsePage(t *testing.T) {
	p := NewParser("https://books.toscrape.com")

	items, hasNext, err := p.ParsePage(samplePage)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if !hasNext {
		t.Error("ParsePage() hasNext = false, want true")
	}
	if len(items) != 3 {
		t.Fatalf("ParsePage() returned %d items, want 3", len(items))
	}

	if items[0].Title != "A Light in the Attic" {
		t.Errorf("items[0].Title = %q", items[0].Title)
	}
	if want := decimal.RequireFromString("51.77"); !items[0].SourcePrice.Equal(want) {
		t.Errorf("items[0].SourcePrice = %s, want %s", items[0].SourcePrice, want)
	}
	if want := "https://books.toscrape.com/catalogue/a-light-in-the-attic_1000/index.html"; items[0].URL != want {
		t.Errorf("items[0].URL = %q, want %q", items[0].URL, want)
	}
	if want := "https://books.toscrape.com/catalogue/soumission_998/index.html"; items[1].URL != want {
		t.Errorf("items[1].URL = %q, want %q", items[1].URL, want)
	}
	if want := "https://example.com/elsewhere"; items[2].URL != want {
		t.Errorf("items[2].URL = %q, want %q", items[2].URL, want)
	}
}

func TestParsePageLastPage(t *testing.T) {
	p := NewParser("https://books.toscrape.com")

	html := `<html><body>
<article class="product_pod">
  <h3><a href="catalogue/x/index.html" title="X">X</a></h3>
  <p class="price_color">£5.00</p>
</article>
</body></html>`

	items, hasNext, err := p.ParsePage(html)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if hasNext {
		t.Error("ParsePage() hasNext = true, want false")
	}
	if len(items) != 1 {
		t.Errorf("ParsePage() returned %d items, want 1", len(items))
	}
}

func TestParsePageEmpty(t *testing.T) {
	p := NewParser("https://books.toscrape.com")

	items, hasNext, err := p.ParsePage("<html><body><p>nothing here</p></body></html>")
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if len(items) != 0 || hasNext {
		t.Errorf("ParsePage() = (%d items, %v), want (0 items, false)", len(items), hasNext)
	}
}

func TestParsePageSkipsUnusableBlocks(t *testing.T) {
	p := NewParser("https://books.toscrape.com")

	html := `<html><body>
<article class="product_pod">
  <h3><a href="catalogue/ok/index.html" title="OK">OK</a></h3>
  <p class="price_color">£5.00</p>
</article>
<article class="product_pod">
  <h3><a href="catalogue/bad/index.html" title="Bad Price">Bad Price</a></h3>
  <p class="price_color">free!</p>
</article>
<article class="product_pod">
  <p class="price_color">£7.00</p>
</article>
</body></html>`

	items, _, err := p.ParsePage(html)
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ParsePage() returned %d items, want 1", len(items))
	}
	if items[0].Title != "OK" {
		t.Errorf("items[0].Title = %q, want %q", items[0].Title, "OK")
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"pound glyph", "£51.77", "51.77", false},
		{"no glyph", "51.77", "51.77", false},
		{"other glyph", "$12.50", "12.50", false},
		{"whole number", "£12", "12", false},
		{"zero", "£0.00", "", true},
		{"no digits", "free!", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrice(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePrice(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if want := decimal.RequireFromString(tt.expected); !got.Equal(want) {
				t.Errorf("parsePrice(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	p := NewParser("https://books.toscrape.com/")

	tests := []struct {
		name     string
		href     string
		expected string
	}{
		{"ascension prefix", "../../../some-book_1/index.html", "https://books.toscrape.com/catalogue/some-book_1/index.html"},
		{"single ascension", "../some-book_1/index.html", "https://books.toscrape.com/catalogue/some-book_1/index.html"},
		{"catalogue root prefix", "catalogue/some-book_1/index.html", "https://books.toscrape.com/catalogue/some-book_1/index.html"},
		{"already absolute", "https://example.com/book", "https://example.com/book"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.resolveURL(tt.href); got != tt.expected {
				t.Errorf("resolveURL(%q) = %q, want %q", tt.href, got, tt.expected)
			}
		})
	}
}
