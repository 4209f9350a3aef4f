package wizard

import "github.com/easifyphp/composer-setup/internal/manifest"

// createProjectHook runs once, when the template is instantiated.
const createProjectHook = "post-create-project-cmd"

// Transform merges the answers into doc in place.
//
// Most keys are merged recursively so template entries such as extra
// require constraints survive. authors and the psr-4 maps are owned by the
// wizard and replaced outright.
func Transform(doc *manifest.Object, a Answers, ns Namespace, testSuffix string) {
	frag := a.Fragment()
	authors, _ := frag.Get("authors")
	frag.Delete("authors")

	manifest.Merge(doc, frag)
	doc.Set("authors", authors)

	if a.Description == "" {
		doc.Delete("description")
	}

	setAutoload(doc, ns, testSuffix)
	doc.DeletePath("scripts", createProjectHook)
}

func setAutoload(doc *manifest.Object, ns Namespace, testSuffix string) {
	src := manifest.NewObject()
	src.Set(ns.Prefix(), "src/")
	doc.Ensure("autoload").Set("psr-4", src)

	tests := manifest.NewObject()
	tests.Set(ns.TestPrefix(testSuffix), "tests/")
	doc.Ensure("autoload-dev").Set("psr-4", tests)
}
