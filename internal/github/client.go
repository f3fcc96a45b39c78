// Package github fetches merged pull requests via the gh CLI.
package github

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/joescharf/whatsnew/internal/models"
)

// Client fetches merged pull requests for a repository.
type Client interface {
	MergedSince(repo string, since time.Time) ([]models.ChangeRequest, error)
}

// RealClient implements Client using the gh CLI.
type RealClient struct{}

// NewClient returns a new RealClient.
func NewClient() *RealClient {
	return &RealClient{}
}

func ghCmd(args ...string) (string, error) {
	out, err := exec.Command("gh", args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("gh %s: %s", strings.Join(args, " "), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("gh %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// MergedSince returns PRs merged into repo (owner/name) on or after since.
// The date filter runs in the search query; closed-without-merge PRs are
// excluded by --state merged.
func (c *RealClient) MergedSince(repo string, since time.Time) ([]models.ChangeRequest, error) {
	out, err := ghCmd("pr", "list",
		"--repo", repo,
		"--state", "merged",
		"--search", fmt.Sprintf("merged:>=%s", since.Format("2006-01-02")),
		"--limit", "200",
		"--json", "number,title,author,labels,mergedAt,url",
	)
	if err != nil {
		return nil, err
	}
	return parsePRs([]byte(out))
}

type prRaw struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Author struct {
		Login string `json:"login"`
	} `json:"author"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	MergedAt time.Time `json:"mergedAt"`
	URL      string    `json:"url"`
}

func parsePRs(data []byte) ([]models.ChangeRequest, error) {
	var raw []prRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse PRs: %w", err)
	}

	changes := make([]models.ChangeRequest, len(raw))
	for i, pr := range raw {
		labels := make([]string, len(pr.Labels))
		for j, l := range pr.Labels {
			labels[j] = l.Name
		}
		changes[i] = models.ChangeRequest{
			Number:   pr.Number,
			Title:    pr.Title,
			Labels:   labels,
			Author:   pr.Author.Login,
			URL:      pr.URL,
			MergedAt: pr.MergedAt,
		}
	}
	return changes, nil
}
