package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/notepress/internal/testutil"
)

func testResolver(t *testing.T) (vaultDir, projectDir string, r *Resolver) {
	t.Helper()
	vaultDir, vault := testutil.TestVault(t)
	projectDir, project := testutil.TestProject(t)
	r = NewResolver(vault, project, "img", DefaultSearchDirs, testutil.Logger())
	return vaultDir, projectDir, r
}

func TestCandidates_Order(t *testing.T) {
	_, _, r := testResolver(t)
	got := r.Candidates("notes/pics/a.png")
	want := []string{
		"notes/pics/a.png",
		filepath.Join("attachments", "a.png"),
		filepath.Join("images", "a.png"),
		filepath.Join("assets", "a.png"),
	}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCopyAll_FirstCandidateWins(t *testing.T) {
	vaultDir, projectDir, r := testResolver(t)
	testutil.WriteFile(t, vaultDir, "pics/a.png", "exact")
	testutil.WriteFile(t, vaultDir, "attachments/a.png", "attachments")
	testutil.WriteFile(t, vaultDir, "images/b.png", "images")
	testutil.WriteFile(t, vaultDir, "attachments/b.png", "attachments-b")
	testutil.WriteFile(t, vaultDir, "assets/c.png", "assets")

	copied, unresolved, err := r.CopyAll("![[pics/a.png]] ![[x/b.png]] ![[c.png]] ![[a.png]]", "post")
	if err != nil {
		t.Fatalf("CopyAll: %v", err)
	}
	if len(unresolved) != 0 {
		t.Errorf("unresolved = %v", unresolved)
	}
	if len(copied) != 4 {
		t.Errorf("copied = %v, want 4 entries", copied)
	}

	// a.png is copied twice; the later plain embed resolves via attachments.
	checks := map[string]string{
		"img/post/a.png": "attachments",
		"img/post/b.png": "attachments-b",
		"img/post/c.png": "assets",
	}
	for rel, want := range checks {
		if got := testutil.ReadFile(t, projectDir, rel); got != want {
			t.Errorf("%s = %q, want %q", rel, got, want)
		}
	}
}

func TestCopyAll_SkipsDirectoryCandidate(t *testing.T) {
	vaultDir, projectDir, r := testResolver(t)
	if err := os.MkdirAll(filepath.Join(vaultDir, "d.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	testutil.WriteFile(t, vaultDir, "images/d.png", "real")

	if _, _, err := r.CopyAll("![[d.png]]", "s"); err != nil {
		t.Fatalf("CopyAll: %v", err)
	}
	if got := testutil.ReadFile(t, projectDir, "img/s/d.png"); got != "real" {
		t.Errorf("content = %q", got)
	}
}

func TestCopyAll_NoEmbedsCreatesNothing(t *testing.T) {
	_, projectDir, r := testResolver(t)
	if _, _, err := r.CopyAll("no images here", "s"); err != nil {
		t.Fatalf("CopyAll: %v", err)
	}
	if !testutil.IsEmptyDir(t, projectDir) {
		t.Error("no directory should be created without embeds")
	}
}

func TestCopyAll_TraversalIsUnresolved(t *testing.T) {
	_, projectDir, r := testResolver(t)
	_, unresolved, err := r.CopyAll("![[../../etc/passwd]]", "s")
	if err != nil {
		t.Fatalf("CopyAll: %v", err)
	}
	if len(unresolved) != 1 {
		t.Errorf("unresolved = %v", unresolved)
	}
	if testutil.Exists(projectDir, "img/s/passwd") {
		t.Error("file outside the vault must not be copied")
	}
}
