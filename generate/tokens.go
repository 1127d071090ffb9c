package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stylec/state"
	"stylec/theme"
)

// Tokens converts a token document into a root-scoped custom-property rule
// and optionally lints an existing CSS file for dangling var() references.
func Tokens(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("tokens")

	src, dst, err := sourceAndDestination(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read token document: %w", err)
	}
	table, err := theme.ParseTable(data)
	if err != nil {
		return fmt.Errorf("unable to parse token document '%s': %w", src, err)
	}

	th := theme.New(table)
	log.Debug("Token document loaded", zap.String("source", src), zap.Int("declared", len(th.Declared())))

	if lintPath := cmd.String("lint"); lintPath != "" {
		css, err := os.ReadFile(lintPath)
		if err != nil {
			return fmt.Errorf("unable to read CSS for linting: %w", err)
		}
		dangling := th.Lint(string(css))
		for _, name := range dangling {
			log.Warn("Dangling token reference", zap.String("token", name), zap.String("css", lintPath))
		}
		log.Info("Lint done", zap.Int("dangling", len(dangling)))
		return nil
	}

	base := artifactBase(src)
	if err := writeArtifact(filepath.Join(dst, base+".vars.css"), []byte(th.Vars()+"\n"), env, log); err != nil {
		return err
	}
	log.Info("Tokens done", zap.Int("declared", len(th.Declared())))
	return nil
}
