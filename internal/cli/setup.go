package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/easifyphp/composer-setup/internal/config"
	"github.com/easifyphp/composer-setup/internal/manifest"
	"github.com/easifyphp/composer-setup/internal/platform"
	"github.com/easifyphp/composer-setup/internal/prompt"
	"github.com/easifyphp/composer-setup/internal/wizard"
	"github.com/spf13/cobra"
)

type setupOptions struct {
	dryRun bool
	unlink bool
}

func runSetup(cmd *cobra.Command, s *config.Settings, opts setupOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), s.LogLevel)

	// A broken manifest is fatal before any question is asked.
	doc, err := manifest.ParseFile(s.ManifestPath)
	if err != nil {
		return fmt.Errorf("%s is not valid JSON: %w", s.ManifestPath, err)
	}

	catalogue, err := loadCatalogue(s)
	if err != nil {
		return err
	}

	// Questions go to stderr so --dry-run output on stdout stays clean.
	p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
	result, err := wizard.Run(doc, p, wizard.Options{
		MinPHP:        s.MinPHP,
		TestNamespace: s.TestNamespace,
		Catalogue:     catalogue,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("setup wizard: %w", err)
	}

	data, err := manifest.Marshal(result.Manifest)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.ManifestPath, err)
	}
	reportSchemaIssues(logger, data)

	if opts.dryRun {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if opts.unlink {
			logger.Warn("dry run: setup artifact kept")
		}
		return nil
	}

	mode := platform.FileMode(s.ManifestPath, 0644)
	if err := platform.WriteFileAtomic(s.ManifestPath, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", s.ManifestPath, err)
	}
	logger.Info("updated manifest", "path", s.ManifestPath, "package", result.Answers.Name, "namespace", result.Namespace.Prefix())

	if opts.unlink {
		removed, err := platform.RemoveSelf(s.SelfPath)
		if err != nil {
			return fmt.Errorf("removing setup artifact: %w", err)
		}
		logger.Info("removed setup artifact", "path", removed)
	}
	return nil
}

func loadCatalogue(s *config.Settings) (*wizard.Catalogue, error) {
	if !s.Prune {
		return nil, nil
	}
	if s.CataloguePath != "" {
		return wizard.LoadCatalogue(s.CataloguePath)
	}
	return wizard.DefaultCatalogue()
}

// reportSchemaIssues logs schema problems without blocking the write; the
// template itself may carry keys the wizard never touches.
func reportSchemaIssues(logger *log.Logger, data []byte) {
	result, err := manifest.Validate(data)
	if err != nil {
		logger.Warn("schema check skipped", "err", err)
		return
	}
	for _, issue := range result.Issues {
		logger.Warn("manifest schema issue", "path", issue.Path, "message", issue.Message)
	}
}
