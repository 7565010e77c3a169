package cli

import (
	"bytes"
	"reflect"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	got := NormalizeArgs([]string{"-S", "A.ttf", "-s", "--source"})
	want := []string{"--source", "A.ttf", "-s", "--source"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeArgs = %v, want %v", got, want)
	}
}

func TestMutuallyExclusiveModes(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--install", "--source", "A.ttf"})

	if err := cmd.Execute(); err == nil {
		t.Error("Combining --install and --source should fail argument parsing")
	}
}

func TestRequiresFontFiles(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--install"})

	if err := cmd.Execute(); err == nil {
		t.Error("At least one font file is required")
	}
}

func TestFlagDefaults(t *testing.T) {
	cmd := NewRootCmd()

	if def := cmd.Flags().Lookup("ver").DefValue; def != "1.0-1" {
		t.Errorf("Default version spec = %q, want 1.0-1", def)
	}
	if def := cmd.Flags().Lookup("desc").DefValue; def != "Custom font" {
		t.Errorf("Default description = %q, want \"Custom font\"", def)
	}
}
