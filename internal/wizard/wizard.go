package wizard

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/easifyphp/composer-setup/internal/manifest"
	"github.com/easifyphp/composer-setup/internal/prompt"
)

// DefaultTestNamespace is the trailing segment of the autoload-dev namespace.
const DefaultTestNamespace = "Tests"

// Asker is the question interface the wizard needs. *prompt.Prompter
// implements it.
type Asker interface {
	Ask(q prompt.Question) (string, error)
	AskUntil(q prompt.Question, check func(string) error) (string, error)
	Confirm(label string, def bool) (bool, error)
}

// Options tunes a wizard run. Zero values fall back to the defaults.
type Options struct {
	MinPHP        string
	TestNamespace string
	// Catalogue drives the pruning pass; nil skips it.
	Catalogue *Catalogue
	Logger    *log.Logger
}

func (o Options) withDefaults() Options {
	if o.MinPHP == "" {
		o.MinPHP = DefaultMinPHP
	}
	if o.TestNamespace == "" {
		o.TestNamespace = DefaultTestNamespace
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Result is the outcome of a wizard run.
type Result struct {
	Manifest  *manifest.Object
	Answers   Answers
	Namespace Namespace
	Removed   []string
}

// Run asks every question, transforms doc in place, and returns it.
func Run(doc *manifest.Object, in Asker, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	answers, ns, err := Collect(in, opts.MinPHP)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("derived namespace", "source", ns.Prefix(), "tests", ns.TestPrefix(opts.TestNamespace))

	Transform(doc, answers, ns, opts.TestNamespace)

	var removed []string
	if opts.Catalogue != nil {
		removed, err = Prune(doc, in, opts.Catalogue)
		if err != nil {
			return nil, fmt.Errorf("pruning dependencies: %w", err)
		}
		for _, name := range removed {
			opts.Logger.Info("removed dependency", "package", name)
		}
	}

	return &Result{
		Manifest:  doc,
		Answers:   answers,
		Namespace: ns,
		Removed:   removed,
	}, nil
}

// Collect asks the identity questions in order.
func Collect(in Asker, minPHP string) (Answers, Namespace, error) {
	var (
		a   Answers
		err error
	)

	if a.Name, err = in.Ask(packageNameQuestion); err != nil {
		return Answers{}, Namespace{}, err
	}
	ns, err := SplitPackageName(a.Name)
	if err != nil {
		return Answers{}, Namespace{}, err
	}

	if a.Description, err = in.Ask(descriptionQuestion); err != nil {
		return Answers{}, Namespace{}, err
	}
	if a.Type, err = in.Ask(typeQuestion); err != nil {
		return Answers{}, Namespace{}, err
	}
	if a.License, err = in.Ask(licenseQuestion); err != nil {
		return Answers{}, Namespace{}, err
	}
	if a.PHPVersion, err = in.AskUntil(phpVersionQuestion(minPHP), floorCheck(minPHP)); err != nil {
		return Answers{}, Namespace{}, err
	}
	if a.Author.Name, err = in.Ask(authorNameQuestion); err != nil {
		return Answers{}, Namespace{}, err
	}
	if a.Author.Email, err = in.Ask(authorEmailQuestion); err != nil {
		return Answers{}, Namespace{}, err
	}

	return a, ns, nil
}
