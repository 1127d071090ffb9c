// Package generate implements the build and tokens subcommands: reading
// style and token documents, driving the compiler and writing artifacts.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stylec/emit"
	"stylec/state"
	"stylec/style"
)

// Run compiles a style document into CSS plus a class-map artifact.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src, dst, err := sourceAndDestination(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read style document: %w", err)
	}
	sheet, err := style.ParseSheet(data)
	if err != nil {
		return fmt.Errorf("unable to parse style document '%s': %w", src, err)
	}
	log.Debug("Style document loaded", zap.String("source", src), zap.Int("blocks", sheet.Len()))

	res := compileSheet(env, sheet, cmd.Bool("strict"))
	for _, w := range res.Warnings {
		log.Warn("Strict mode finding", zap.String("block", w.Block), zap.String("problem", w.Message))
	}

	base := artifactBase(src)
	err = multierr.Append(err, writeArtifact(filepath.Join(dst, base+".css"), []byte(res.CSS+"\n"), env, log))

	goPackage := cmd.String("go-package")
	if goPackage == "" {
		goPackage = env.Cfg.Generate.GoPackage
	}

	switch {
	case env.Cfg.Generate.Template != "":
		tmplText, rerr := os.ReadFile(env.Cfg.Generate.Template)
		if rerr != nil {
			return multierr.Append(err, fmt.Errorf("unable to read output template: %w", rerr))
		}
		out, rerr := emit.Render(string(tmplText), emit.NewValues(goPackage, res.Classes, res.CSS))
		if rerr != nil {
			return multierr.Append(err, rerr)
		}
		err = multierr.Append(err, writeArtifact(filepath.Join(dst, base+".gen"), out, env, log))
	case goPackage != "":
		out, rerr := emit.GoConstants(goPackage, res.Classes)
		if rerr != nil {
			return multierr.Append(err, rerr)
		}
		err = multierr.Append(err, writeArtifact(filepath.Join(dst, base+"_classes.go"), out, env, log))
	default:
		out, rerr := emit.JSON(res.Classes)
		if rerr != nil {
			return multierr.Append(err, rerr)
		}
		err = multierr.Append(err, writeArtifact(filepath.Join(dst, base+".classes.json"), out, env, log))
	}

	if err == nil {
		log.Info("Build done", zap.Int("blocks", sheet.Len()), zap.Int("warnings", len(res.Warnings)))
	}
	return err
}

// compileSheet compiles honoring the --strict override. The flag only widens
// what the configuration selected; when it turns strict checks on, the cache
// was built without them, so that run compiles directly.
func compileSheet(env *state.LocalEnv, sheet *style.Sheet, strictFlag bool) style.Result {
	if strictFlag && !env.Cfg.Generate.Strict {
		env.Cfg.Generate.Strict = true
	} else if env.Cache != nil {
		return env.Cache.Compile(sheet)
	}
	return style.Compile(sheet, env.Cfg.Generate.CompileOptions()...)
}

// sourceAndDestination resolves the positional SOURCE and optional
// DESTINATION directory, defaulting destination to the working directory.
func sourceAndDestination(cmd *cli.Command) (src, dst string, err error) {
	src = cmd.Args().Get(0)
	if len(src) == 0 {
		return "", "", errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return "", "", err
	}

	dst = cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", "", err
	}
	return src, dst, nil
}

// artifactBase derives artifact names from the source document name.
func artifactBase(src string) string {
	base := filepath.Base(src)
	return base[:len(base)-len(filepath.Ext(base))]
}

// writeArtifact writes one output file, honoring the overwrite policy.
func writeArtifact(path string, data []byte, env *state.LocalEnv, log *zap.Logger) error {
	if !env.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", path, err)
	}
	log.Debug("Artifact written", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
