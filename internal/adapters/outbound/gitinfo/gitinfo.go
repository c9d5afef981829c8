package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Inspector implements domain.RepoInspector using go-git. It supplies
// commit provenance for directory runs so history entries can be tied to
// the state of the data repository they validated.
type Inspector struct{}

func New() *Inspector {
	return &Inspector{}
}

func (i *Inspector) IsGitRepo(path string) bool {
	_, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

func (i *Inspector) CommitHash(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
