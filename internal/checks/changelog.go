package checks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/harrison/pubcop/internal/semver"
)

// CheckChangelog verifies that the changelog at packageDir/changelogPath has a
// heading whose leading text starts with version. Only standard releases are
// enforced.
//
// Matching is a plain prefix match on the first text run of each heading, so
// "## 1.1.0 (2020-01-01)" satisfies 1.1.0 while "## v1.1.0" does not.
// Headings are scanned in document order.
func CheckChangelog(version, packageDir, changelogPath string) error {
	standard, err := semver.IsStandard(version)
	if err != nil {
		return err
	}
	if !standard {
		return nil
	}

	source, err := loadChangelog(filepath.Join(packageDir, changelogPath))
	if err != nil {
		return err
	}

	if hasEntry(goldmark.New(), source, version) {
		return nil
	}

	return fmt.Errorf("%w for version %s", ErrChangelogEntryMissing, version)
}

func loadChangelog(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrChangelogNotFound, path)
		}
		return nil, fmt.Errorf("%w at %s: %v", ErrChangelogUnreadable, path, err)
	}
	return data, nil
}

// hasEntry walks the markdown AST and stops at the first heading whose
// leading text starts with version.
func hasEntry(md goldmark.Markdown, source []byte, version string) bool {
	doc := md.Parser().Parse(text.NewReader(source))

	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		if leading, ok := leadingText(heading, source); ok && strings.HasPrefix(leading, version) {
			found = true
			return ast.WalkStop, nil
		}

		// Nothing inside a heading can be another heading
		return ast.WalkSkipChildren, nil
	})

	return found
}

// leadingText returns the content of the first text node inside n, searching
// through inline containers such as emphasis and links. Code spans and image
// alt text are not heading text and are skipped. Inline HTML is returned
// verbatim, so a heading that opens with a tag never matches a version.
func leadingText(n ast.Node, source []byte) (string, bool) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.CodeSpan, *ast.Image:
			continue
		case *ast.RawHTML:
			var sb strings.Builder
			for i := 0; i < node.Segments.Len(); i++ {
				segment := node.Segments.At(i)
				sb.Write(segment.Value(source))
			}
			return sb.String(), true
		}

		if t, ok := c.(*ast.Text); ok {
			return string(t.Segment.Value(source)), true
		}
		if s, ok := c.(*ast.String); ok {
			return string(s.Value), true
		}
		if found, ok := leadingText(c, source); ok {
			return found, true
		}
	}
	return "", false
}
