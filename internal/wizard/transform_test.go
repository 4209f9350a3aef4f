package wizard

import (
	"reflect"
	"testing"

	"github.com/easifyphp/composer-setup/internal/manifest"
)

const templateManifest = `{
    "name": "easifyphp/template",
    "description": "Template description",
    "type": "project",
    "license": "proprietary",
    "require": {
        "php": ">=8.0",
        "psr/log": "^3.0"
    },
    "authors": [
        {"name": "Template Author"}
    ],
    "autoload": {
        "psr-4": {"EasifyPHP\\Template\\": "src/"},
        "files": ["src/helpers.php"]
    },
    "autoload-dev": {
        "psr-4": {"EasifyPHP\\Template\\Tests\\": "tests/"}
    },
    "scripts": {
        "post-create-project-cmd": ["EasifyPHP\\Template\\Setup::setup"],
        "test": "pest"
    }
}`

func parseTemplate(t *testing.T) *manifest.Object {
	t.Helper()
	doc, err := manifest.Parse([]byte(templateManifest))
	if err != nil {
		t.Fatalf("parsing template: %v", err)
	}
	return doc
}

func fullAnswers() Answers {
	return Answers{
		Name:        "acme/widget-box",
		Description: "Widgets in boxes",
		Type:        "library",
		License:     "MIT",
		PHPVersion:  "8.2",
		Author:      Author{Name: "Jane Doe", Email: "jane@example.com"},
	}
}

func TestTransform(t *testing.T) {
	doc := parseTemplate(t)
	a := fullAnswers()
	ns, _ := SplitPackageName(a.Name)

	Transform(doc, a, ns, "Tests")

	for key, want := range map[string]string{
		"name":        "acme/widget-box",
		"description": "Widgets in boxes",
		"type":        "library",
		"license":     "MIT",
	} {
		if got, _ := doc.String(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}

	if php, _ := doc.Lookup("require", "php"); php != ">=8.2" {
		t.Errorf("require.php = %v, want >=8.2", php)
	}
	if psrLog, _ := doc.Lookup("require", "psr/log"); psrLog != "^3.0" {
		t.Errorf("require.psr/log = %v, template constraint should survive", psrLog)
	}

	authors, _ := doc.Get("authors")
	list, ok := authors.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("authors = %#v, want one entry", authors)
	}
	entry := list[0].(*manifest.Object)
	if name, _ := entry.String("name"); name != "Jane Doe" {
		t.Errorf("authors[0].name = %q", name)
	}
	if email, _ := entry.String("email"); email != "jane@example.com" {
		t.Errorf("authors[0].email = %q", email)
	}

	psr4, _ := doc.Lookup("autoload", "psr-4")
	if keys := psr4.(*manifest.Object).Keys(); !reflect.DeepEqual(keys, []string{`Acme\WidgetBox\`}) {
		t.Errorf("autoload.psr-4 keys = %v", keys)
	}
	if files, ok := doc.Lookup("autoload", "files"); !ok || len(files.([]any)) != 1 {
		t.Errorf("autoload.files should be kept, got %v", files)
	}

	devPsr4, _ := doc.Lookup("autoload-dev", "psr-4")
	dev := devPsr4.(*manifest.Object)
	if keys := dev.Keys(); !reflect.DeepEqual(keys, []string{`Acme\WidgetBox\Tests\`}) {
		t.Errorf("autoload-dev.psr-4 keys = %v", keys)
	}
	if dir, _ := dev.String(`Acme\WidgetBox\Tests\`); dir != "tests/" {
		t.Errorf("autoload-dev dir = %q", dir)
	}

	if _, ok := doc.Lookup("scripts", "post-create-project-cmd"); ok {
		t.Error("post-create-project-cmd should be removed")
	}
	if _, ok := doc.Lookup("scripts", "test"); !ok {
		t.Error("scripts.test should be kept")
	}
}

func TestTransform_OmitsEmptyOptionalFields(t *testing.T) {
	doc := parseTemplate(t)
	a := fullAnswers()
	a.Description = ""
	a.Author = Author{}
	ns, _ := SplitPackageName(a.Name)

	Transform(doc, a, ns, "Tests")

	if doc.Has("description") {
		t.Error("blank description should remove the key")
	}
	authors, _ := doc.Get("authors")
	if list, ok := authors.([]any); !ok || len(list) != 0 {
		t.Errorf("authors = %#v, want empty list", authors)
	}
}

func TestTransform_PartialAuthor(t *testing.T) {
	doc := manifest.NewObject()
	a := fullAnswers()
	a.Author = Author{Email: "jane@example.com"}
	ns, _ := SplitPackageName(a.Name)

	Transform(doc, a, ns, "Test")

	authors, _ := doc.Get("authors")
	entry := authors.([]any)[0].(*manifest.Object)
	if entry.Has("name") {
		t.Error("empty author name must be omitted")
	}
	if !entry.Has("email") {
		t.Error("author email missing")
	}

	if _, ok := doc.Lookup("autoload-dev", "psr-4", `Acme\WidgetBox\Test\`); !ok {
		t.Error("test namespace suffix not applied")
	}
}

func TestAnswersFragment(t *testing.T) {
	frag := fullAnswers().Fragment()
	want := []string{"name", "description", "type", "license", "require", "authors"}
	if got := frag.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fragment keys = %v, want %v", got, want)
	}
}
