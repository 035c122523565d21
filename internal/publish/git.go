package publish

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// GitConfig locates the worktree and remote a Git publisher operates on.
type GitConfig struct {
	// Dir is the worktree root, normally the data directory itself.
	Dir    string
	Remote string
	Branch string

	// Commit identity. When unset, git falls back to its own configuration.
	AuthorName  string
	AuthorEmail string
}

// Git publishes by shelling out to the git binary: stage everything under
// the worktree, commit, push. Each step runs once, with no retries.
type Git struct {
	cfg    GitConfig
	logger *zap.Logger
}

func NewGit(cfg GitConfig, logger *zap.Logger) *Git {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Remote == "" {
		cfg.Remote = "origin"
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	return &Git{cfg: cfg, logger: logger}
}

// Publish stages all changes in the worktree, commits them with message, and
// pushes to the configured remote branch. A clean worktree publishes nothing
// and is not an error.
func (g *Git) Publish(ctx context.Context, message string) error {
	status, err := g.run(ctx, "status", "--porcelain")
	if err != nil {
		return err
	}
	if strings.TrimSpace(status) == "" {
		g.logger.Info("publish skipped, worktree clean")
		return nil
	}

	if _, err := g.run(ctx, "add", "-A"); err != nil {
		return err
	}
	if _, err := g.run(ctx, "commit", "-m", message); err != nil {
		return err
	}
	if _, err := g.run(ctx, "push", g.cfg.Remote, g.cfg.Branch); err != nil {
		return err
	}

	g.logger.Info("published",
		zap.String("message", message),
		zap.String("remote", g.cfg.Remote),
		zap.String("branch", g.cfg.Branch),
	)
	return nil
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	full := g.identityArgs()
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, "git", full...)
	cmd.Dir = g.cfg.Dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(out.String()))
	}
	return out.String(), nil
}

func (g *Git) identityArgs() []string {
	var args []string
	if g.cfg.AuthorName != "" {
		args = append(args, "-c", "user.name="+g.cfg.AuthorName)
	}
	if g.cfg.AuthorEmail != "" {
		args = append(args, "-c", "user.email="+g.cfg.AuthorEmail)
	}
	return args
}
