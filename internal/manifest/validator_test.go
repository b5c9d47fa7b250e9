package manifest

import "testing"

func TestValidateFile_ValidManifests(t *testing.T) {
	for _, file := range []string{"valid-package.json", "valid-person-author.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
	}{
		{"invalid-missing-author.json", "required"},
		{"invalid-bad-name.json", "pattern"},
		{"invalid-bad-version.json", "semver"},
		{"invalid-bad-author.json", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, got valid", tt.file)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no %q issue in %v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidateFile_NotJSON(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-json.json")); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.json")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidationIssue_String(t *testing.T) {
	i := ValidationIssue{Path: "/name", Message: "bad"}
	if got := i.String(); got != "/name: bad" {
		t.Errorf("String() = %q", got)
	}
	i.Path = ""
	if got := i.String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}
