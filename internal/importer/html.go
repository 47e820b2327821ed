package importer

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ParseNetscapeHTML parses Netscape bookmark HTML (the format browsers
// export) into entries. Folder names along the path become categories;
// ADD_DATE timestamps (seconds) are honored when present.
func ParseNetscapeHTML(r io.Reader) ([]Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []Entry

	// Track current folder stack for category assignment
	var folderStack []string
	var pendingFolder string

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - becomes a category on descendants
				if name := getTextContent(n); name != "" {
					pendingFolder = name
				}
				return // Don't recurse into H3

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					// Skip anchors without URL
					return
				}

				title := getTextContent(n)

				var createdAt int64
				if addDate := getAttr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						createdAt = ts * 1000
					}
				}

				categories := make([]string, len(folderStack))
				copy(categories, folderStack)

				entries = append(entries, Entry{
					URL:        href,
					Title:      title,
					Categories: categories,
					CreatedAt:  createdAt,
				})
				return // Don't recurse into A

			case "dl":
				// Definition list - marks folder contents
				pushed := false
				if pendingFolder != "" {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = ""
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return // Children handled above
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return entries, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
