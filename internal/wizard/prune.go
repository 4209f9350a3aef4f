package wizard

import (
	"fmt"

	"github.com/easifyphp/composer-setup/internal/manifest"
)

// Prune asks about every catalogued dependency doc declares and removes the
// ones the user declines. It returns the removed names in catalogue order.
func Prune(doc *manifest.Object, in Asker, cat *Catalogue) ([]string, error) {
	var removed []string
	for _, dep := range cat.Dependencies {
		if !declares(doc, dep.Name) {
			continue
		}

		keep, err := in.Confirm(fmt.Sprintf("Do you need %s?", dep.Name), true)
		if err != nil {
			return removed, err
		}
		if keep {
			continue
		}

		dep.removeFrom(doc)
		removed = append(removed, dep.Name)
	}
	return removed, nil
}

func declares(doc *manifest.Object, name string) bool {
	_, inRequire := doc.Lookup("require", name)
	_, inRequireDev := doc.Lookup("require-dev", name)
	return inRequire || inRequireDev
}

func (d Dependency) removeFrom(doc *manifest.Object) {
	doc.DeletePath("require", d.Name)
	doc.DeletePath("require-dev", d.Name)
	for _, path := range d.Paths {
		doc.DeletePath(manifest.SplitPath(path)...)
	}
}
