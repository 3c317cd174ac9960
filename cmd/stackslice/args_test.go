package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeArgs runs a command with args, suppressing cobra's usage output so
// test output stays clean.
func executeArgs(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs(args)
	_, err := cmd.ExecuteC()
	return err
}

// --- import flags ---

func TestImportFlagRegistration(t *testing.T) {
	cmd := newImportCmd()

	for _, name := range []string{"site", "data-dir", "batch-size", "skip-existing", "metrics-addr"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found on import", name)
		}
	}
}

func TestImportFlagDefaults(t *testing.T) {
	cmd := newImportCmd()

	cases := []struct {
		flag string
		want string
	}{
		{"batch-size", "0"},
		{"skip-existing", "false"},
		{"metrics-addr", ""},
	}
	for _, tc := range cases {
		f := cmd.Flags().Lookup(tc.flag)
		if f == nil {
			t.Errorf("--%s flag not found", tc.flag)
			continue
		}
		if f.DefValue != tc.want {
			t.Errorf("--%s default: got %q, want %q", tc.flag, f.DefValue, tc.want)
		}
	}
}

func TestImportRequiredFlags(t *testing.T) {
	cmd := newImportCmd()

	for _, name := range []string{"site", "data-dir"} {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("--%s flag not found", name)
		}
		if f.Annotations["cobra_annotation_bash_completion_one_required_flag"] == nil {
			t.Errorf("--%s is not marked required", name)
		}
	}
}

func TestImportRejectsMissingFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no flags", nil},
		{"site only", []string{"--site", "a"}},
		{"data-dir only", []string{"--data-dir", "/tmp"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := executeArgs(t, newImportCmd(), tc.args...); err == nil {
				t.Error("expected a required-flag error")
			}
		})
	}
}

func TestImportRejectsMissingDataDir(t *testing.T) {
	err := executeArgs(t, newImportCmd(),
		"--site", "a", "--data-dir", filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected an error for a nonexistent data folder")
	}
	if !strings.Contains(err.Error(), "data folder does not exist") {
		t.Errorf("error = %v, want data-folder check", err)
	}
}

// --- stats flags ---

func TestStatsSiteFlagOptional(t *testing.T) {
	cmd := newStatsCmd()

	f := cmd.Flags().Lookup("site")
	if f == nil {
		t.Fatal("--site flag not found on stats")
	}
	if f.DefValue != "" {
		t.Errorf("--site default: got %q, want empty", f.DefValue)
	}
}

// --- config file layering ---

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := "db: /var/lib/stackslice/store.db\nsite: superuser\nbatch_size: 500\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	flagConfig = path
	defer func() { flagConfig = "" }()

	file, ok := readConfigFile()
	if !ok {
		t.Fatal("readConfigFile: expected ok")
	}

	if file.DB != "/var/lib/stackslice/store.db" {
		t.Errorf("db = %q", file.DB)
	}
	if file.Site != "superuser" {
		t.Errorf("site = %q, want %q", file.Site, "superuser")
	}
	if file.BatchSize != 500 {
		t.Errorf("batch_size = %d, want 500", file.BatchSize)
	}
}

func TestReadConfigFileMissing(t *testing.T) {
	flagConfig = filepath.Join(t.TempDir(), "nope.yaml")
	defer func() { flagConfig = "" }()

	if _, ok := readConfigFile(); ok {
		t.Error("readConfigFile: expected miss for absent file")
	}
}

func TestReadConfigFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	flagConfig = path
	defer func() { flagConfig = "" }()

	if _, ok := readConfigFile(); ok {
		t.Error("readConfigFile: expected miss for malformed yaml")
	}
}
