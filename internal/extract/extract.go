package extract

import (
    "bytes"
    "strings"

    "golang.org/x/net/html"
)

// Page is the navigable result of parsing one product page.
type Page struct {
    Title string
    // Text is the full visible document text with tags stripped, each
    // text run separated by a single space and whitespace collapsed.
    Text string
    // PriceTags holds the text of every element whose class or id
    // attribute contains "price", case-insensitive. These are the
    // structured candidates for price detection.
    PriceTags []string
}

// Parse builds a Page from raw HTML bytes. Malformed markup never fails;
// the worst case is an empty Page.
func Parse(input []byte) Page {
    node, err := html.Parse(bytes.NewReader(input))
    if err != nil || node == nil {
        return Page{}
    }
    p := Page{Title: strings.TrimSpace(findTitle(node))}
    var b strings.Builder
    collectText(&b, node)
    p.Text = b.String()
    collectPriceTags(&p.PriceTags, node)
    return p
}

func findTitle(n *html.Node) string {
    head := findFirst(n, "head")
    if head == nil {
        return ""
    }
    t := findFirst(head, "title")
    if t == nil || t.FirstChild == nil {
        return ""
    }
    return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
    var res *html.Node
    var dfs func(*html.Node)
    dfs = func(cur *html.Node) {
        if res != nil {
            return
        }
        if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
            res = cur
            return
        }
        for c := cur.FirstChild; c != nil; c = c.NextSibling {
            dfs(c)
            if res != nil {
                return
            }
        }
    }
    dfs(n)
    return res
}

// collectText appends the visible text below n, one space between runs.
// Unlike a readability extractor this keeps navigation and footer content:
// dealer pages routinely put the live price in headers and sticky bars.
func collectText(b *strings.Builder, n *html.Node) {
    if n.Type == html.ElementNode {
        switch strings.ToLower(n.Data) {
        case "script", "style", "noscript":
            return
        }
    }
    if n.Type == html.TextNode {
        if t := strings.TrimSpace(n.Data); t != "" {
            if b.Len() > 0 {
                b.WriteByte(' ')
            }
            b.WriteString(collapseSpaces(t))
        }
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        collectText(b, c)
    }
}

// collectPriceTags gathers subtree text of every price-tagged element.
// Nested price elements each contribute their own entry, which mirrors a
// per-element attribute scan and is harmless for candidate selection.
func collectPriceTags(out *[]string, n *html.Node) {
    if isPriceTagged(n) {
        var b strings.Builder
        collectText(&b, n)
        if s := b.String(); s != "" {
            *out = append(*out, s)
        }
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        collectPriceTags(out, c)
    }
}

func isPriceTagged(n *html.Node) bool {
    if n == nil || n.Type != html.ElementNode {
        return false
    }
    for _, attr := range n.Attr {
        key := strings.ToLower(attr.Key)
        if key != "id" && key != "class" {
            continue
        }
        if strings.Contains(strings.ToLower(attr.Val), "price") {
            return true
        }
    }
    return false
}

func collapseSpaces(s string) string {
    var b strings.Builder
    lastSpace := false
    for _, r := range s {
        if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
            if !lastSpace {
                b.WriteByte(' ')
                lastSpace = true
            }
            continue
        }
        b.WriteRune(r)
        lastSpace = false
    }
    return b.String()
}
