package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene is a temporary directory holding a Git repository, used as the
// working directory for the duration of a test. Global git config is
// redirected into the scene so tests never touch the user's settings.
type Scene struct {
	Dir          string
	Repo         *GitRepo
	GlobalConfig string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new scene and changes into it. Cleanup is registered with t.
// Scenes change the process working directory and environment, so tests using
// them must not run in parallel.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "repo")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Failed to create repo dir: %v", err)
	}

	globalConfig := filepath.Join(root, "gitconfig")
	if err := os.WriteFile(globalConfig, nil, 0o600); err != nil {
		t.Fatalf("Failed to create global config: %v", err)
	}
	t.Setenv("GIT_CONFIG_GLOBAL", globalConfig)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{Dir: dir, Repo: repo, GlobalConfig: globalConfig}

	t.Chdir(dir)

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
