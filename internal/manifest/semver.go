package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckVersion reports whether version is a valid semantic version.
// A leading "v" is tolerated.
func CheckVersion(version string) error {
	if _, err := parseSemver(version); err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}
	return nil
}

// CheckConstraint reports whether constraint is a valid version range, such as
// the caret ranges used for npm dependencies ("^0.2.2").
func CheckConstraint(constraint string) error {
	if _, err := semver.NewConstraint(constraint); err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return nil
}

// APIVersion returns the API version the CDN derives from a package version:
// the major number once it is above zero, "0" followed by the minor otherwise.
// 0.1.6 gives "01", 2.3.0 gives "2".
func APIVersion(version string) (string, error) {
	v, err := parseSemver(version)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", version, err)
	}
	if v.Major() > 0 {
		return strconv.FormatUint(v.Major(), 10), nil
	}
	return "0" + strconv.FormatUint(v.Minor(), 10), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
