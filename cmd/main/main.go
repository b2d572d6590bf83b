package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/logze/v2"

	"github.com/maxbolgarin/gitq/internal/app"
	"github.com/maxbolgarin/gitq/internal/config"
)

var (
	Version, Branch, Commit, BuildDate string
)

var (
	configPath = kingpin.Flag("config", "path to config file").Short('c').String()
	repoPath   = kingpin.Flag("repo", "path to the repository").Short('r').Default(".").String()

	_ = kingpin.Command("status", "show the working tree status")

	logCmd    = kingpin.Command("log", "show the commit history")
	logLimit  = logCmd.Flag("limit", "maximum number of commits").Short('n').Int()
	logAuthor = logCmd.Flag("author", "only commits by this author").String()
	logGrep   = logCmd.Flag("grep", "only commits whose message matches").String()

	_ = kingpin.Command("branches", "list local and remote-tracking branches")
	_ = kingpin.Command("tags", "list tags")
	_ = kingpin.Command("stashes", "list the stash stack")
	_ = kingpin.Command("remotes", "list the configured remotes")

	diffCmd    = kingpin.Command("diff", "show changes")
	diffMode   = diffCmd.Flag("mode", "unified, name-only, name-status, stat or numstat").Default("unified").String()
	diffCached = diffCmd.Flag("cached", "show staged changes").Bool()
	diffFrom   = diffCmd.Flag("from", "compare from this revision").String()
	diffTo     = diffCmd.Flag("to", "compare to this revision").String()

	snapshotCmd   = kingpin.Command("snapshot", "show the combined repository state")
	snapshotLimit = snapshotCmd.Flag("limit", "maximum number of commits").Short('n').Int()
)

func main() {
	command := kingpin.Parse()

	var err error
	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()), contem.Exit(&err))
	defer ctx.Shutdown()

	err = run(ctx, command)
	if err != nil {
		logze.DefaultPtr().Error("cannot run", "error", err)
	}
}

func run(ctx contem.Context, command string) error {
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return erro.Wrap(err, "load config")
	}
	initLogger(cfg.Log)

	gitq, err := app.New(cfg, *repoPath, os.Stdout)
	if err != nil {
		return erro.Wrap(err, "new app")
	}
	ctx.Add(gitq.Stop)

	switch command {
	case "status":
		return gitq.Status(ctx)
	case "log":
		return gitq.Log(ctx, *logLimit, *logAuthor, *logGrep)
	case "branches":
		return gitq.Branches(ctx)
	case "tags":
		return gitq.Tags(ctx)
	case "stashes":
		return gitq.Stashes(ctx)
	case "remotes":
		return gitq.Remotes(ctx)
	case "diff":
		return gitq.Diff(ctx, *diffMode, *diffCached, *diffFrom, *diffTo)
	case "snapshot":
		return gitq.Snapshot(ctx, *snapshotLimit)
	default:
		return erro.New("unknown command", "command", command)
	}
}

func initLogger(cfg config.LogConfig) {
	level := logze.LevelInfo
	switch cfg.Level {
	case "debug":
		level = logze.LevelDebug
	case "warn":
		level = logze.LevelWarn
	case "error":
		level = logze.LevelError
	}

	logCfg := logze.C().WithLevel(level)
	if cfg.Pretty {
		logCfg = logCfg.WithConsole()
	}
	logze.Init(logCfg)
}
