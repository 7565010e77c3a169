package font

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFiles(t *testing.T) {
	files, err := ValidateFiles([]string{"fonts/A.ttf", "B.otf"})
	if err != nil {
		t.Fatalf("ValidateFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}

	if files[0].Base != "A.ttf" || files[0].Stem != "A" || files[0].Type != TypeTTF {
		t.Errorf("Unexpected metadata for first file: %+v", files[0])
	}
	if files[1].Base != "B.otf" || files[1].Stem != "B" || files[1].Type != TypeOTF {
		t.Errorf("Unexpected metadata for second file: %+v", files[1])
	}
}

func TestValidateFilesCaseInsensitiveExtension(t *testing.T) {
	files, err := ValidateFiles([]string{"Loud.TTF", "quiet.Otf"})
	if err != nil {
		t.Fatalf("ValidateFiles failed: %v", err)
	}
	if files[0].Type != TypeTTF {
		t.Errorf("Loud.TTF detected as %s, want TTF", files[0].Type)
	}
	if files[1].Type != TypeOTF {
		t.Errorf("quiet.Otf detected as %s, want OTF", files[1].Type)
	}
}

func TestValidateFilesRejectsUnknownExtension(t *testing.T) {
	if _, err := ValidateFiles([]string{"bar.woff"}); err == nil {
		t.Error("bar.woff should have been rejected")
	}
	if _, err := ValidateFiles([]string{"A.ttf", "bar.woff"}); err == nil {
		t.Error("bar.woff should have been rejected regardless of other files")
	}
}

func TestValidateFilesRejectsDuplicateBasenames(t *testing.T) {
	paths := []string{
		filepath.Join("one", "Foo.ttf"),
		filepath.Join("two", "Foo.ttf"),
	}
	if _, err := ValidateFiles(paths); err == nil {
		t.Error("Duplicate basenames should have been rejected")
	}
}

func TestSniffFamilyRejectsNonFont(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fake.ttf")
	if err := os.WriteFile(path, []byte("definitely not a font"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := SniffFamily(path); err == nil {
		t.Error("SniffFamily should reject a file without sfnt magic")
	}
}

func TestSniffFamilyRejectsTruncatedFont(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "trunc.otf")
	// Correct magic, no tables
	if err := os.WriteFile(path, []byte("OTTO"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := SniffFamily(path); err == nil {
		t.Error("SniffFamily should reject a truncated font")
	}
}
