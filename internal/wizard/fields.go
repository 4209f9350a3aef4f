package wizard

import (
	"fmt"
	"regexp"

	"github.com/easifyphp/composer-setup/internal/prompt"
	"github.com/easifyphp/composer-setup/internal/version"
)

// DefaultMinPHP is the lowest PHP version a generated package may require.
const DefaultMinPHP = "8.1"

var (
	packageNamePattern = regexp.MustCompile(`^[a-z0-9]([_.-]?[a-z0-9]+)*/[a-z0-9](([_.]|-{1,2})?[a-z0-9]+)*$`)
	typePattern        = regexp.MustCompile(`^[a-z0-9-]+$`)
	licensePattern     = regexp.MustCompile(`^[a-zA-Z0-9\-.+]+$`)
	versionPattern     = regexp.MustCompile(`^\d+\.\d+$`)
	authorNamePattern  = regexp.MustCompile(`^[a-zA-Z\s-]+$`)
	authorEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var (
	packageNameQuestion = prompt.Question{
		Label:        "Package name",
		Pattern:      packageNamePattern,
		ErrorMessage: "Package name must be in the format vendor/package",
	}
	descriptionQuestion = prompt.Question{
		Label:    "Description",
		Optional: true,
	}
	typeQuestion = prompt.Question{
		Label:        "Type",
		Pattern:      typePattern,
		ErrorMessage: "Type must be a valid composer package type",
		Default:      "library",
	}
	licenseQuestion = prompt.Question{
		Label:        "License",
		Pattern:      licensePattern,
		ErrorMessage: "License must be a valid SPDX identifier",
		Default:      "MIT",
	}
	authorNameQuestion = prompt.Question{
		Label:        "Author name",
		Pattern:      authorNamePattern,
		ErrorMessage: "Author name must contain only [a-zA-Z] letters, spaces, and dashes",
		Optional:     true,
	}
	authorEmailQuestion = prompt.Question{
		Label:        "Author email",
		Pattern:      authorEmailPattern,
		ErrorMessage: "Author email must be a valid email address",
		Optional:     true,
	}
)

func phpVersionQuestion(floor string) prompt.Question {
	return prompt.Question{
		Label:        "Minimum PHP version",
		Pattern:      versionPattern,
		ErrorMessage: "PHP version must be in the format x.y",
		Default:      floor,
	}
}

// floorCheck rejects versions below floor.
func floorCheck(floor string) func(string) error {
	return func(v string) error {
		ok, err := version.AtLeast(v, floor)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("PHP version must be %s or higher", floor)
		}
		return nil
	}
}

// ValidVersion reports whether v has the "x.y" shape the version prompt accepts.
func ValidVersion(v string) bool {
	return versionPattern.MatchString(v)
}
