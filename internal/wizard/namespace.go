package wizard

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var separatorRun = regexp.MustCompile(`[-_.]+([a-zA-Z0-9])`)

// Namespace is the PSR-4 identifier pair derived from vendor/package.
type Namespace struct {
	Vendor  string
	Package string
}

// Prefix returns the source namespace prefix, e.g. `Acme\WidgetBox\`.
func (n Namespace) Prefix() string {
	return n.Vendor + `\` + n.Package + `\`
}

// TestPrefix returns the test namespace prefix, e.g. `Acme\WidgetBox\Tests\`.
func (n Namespace) TestPrefix(suffix string) string {
	return n.Prefix() + suffix + `\`
}

// SplitPackageName derives the namespace pair from a vendor/package name.
func SplitPackageName(name string) (Namespace, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 2 {
		return Namespace{}, fmt.Errorf("package name %q must have exactly one '/'", name)
	}

	ns := Namespace{
		Vendor:  Identifier(parts[0]),
		Package: Identifier(parts[1]),
	}
	if ns.Vendor == "" || ns.Package == "" {
		return Namespace{}, fmt.Errorf("package name %q has an empty segment", name)
	}
	return ns, nil
}

// Identifier turns a package name segment into a namespace identifier:
// spaces are dropped, the first letter is capitalised, and every run of
// '-', '_' or '.' is removed with the following character capitalised.
// "widget-box" becomes "WidgetBox".
func Identifier(segment string) string {
	s := strings.ReplaceAll(segment, " ", "")
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]

	return separatorRun.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[len(m)-1:])
	})
}
