package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"linktrack/internal/config"
	"linktrack/internal/handler"
	"linktrack/internal/password"
	"linktrack/internal/repository"
	"linktrack/internal/service"
)

const usage = "expected 'migrate', 'hard-delete', 'export' or 'token' subcommands"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	deleteCmd := flag.NewFlagSet("hard-delete", flag.ExitOnError)
	deleteID := deleteCmd.String("id", "", "id of the link to remove")
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokenOwner := tokenCmd.String("owner", "", "owner profile id")
	tokenTTL := tokenCmd.Duration("ttl", 24*time.Hour, "token lifetime")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config", err)
	}
	ctx := context.Background()

	switch os.Args[1] {
	case "token":
		tokenCmd.Parse(os.Args[2:])
		owner, err := uuid.Parse(*tokenOwner)
		if err != nil {
			tokenCmd.PrintDefaults()
			os.Exit(1)
		}
		token, err := handler.NewMiddleware(cfg.JWTSecret).IssueToken(owner, *tokenTTL)
		if err != nil {
			fatal("issue token", err)
		}
		fmt.Println(token)
		return
	case "migrate", "hard-delete", "export":
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	db, err := repository.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		fatal("connect to db", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "migrate":
		migrateCmd.Parse(os.Args[2:])
		if err := repository.RunMigrations(db); err != nil {
			fatal("migrate", err)
		}
	case "hard-delete":
		deleteCmd.Parse(os.Args[2:])
		id, err := uuid.Parse(*deleteID)
		if err != nil {
			deleteCmd.PrintDefaults()
			os.Exit(1)
		}
		passwords := repository.NewPasswordRepo(db)
		svc := service.NewLinkService(repository.NewLinkRepo(db), repository.NewDomainRepo(db),
			service.NewCredentials(passwords, password.NewHasher(cfg.BcryptCost)))
		if err := svc.HardDelete(ctx, id); err != nil {
			fatal("hard delete", err)
		}
	case "export":
		exportCmd.Parse(os.Args[2:])
		doExport(ctx, repository.NewLinkRepo(db))
	}
}

func doExport(ctx context.Context, repo *repository.LinkRepo) {
	links, err := repo.Dump(ctx)
	if err != nil {
		fatal("export", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(links); err != nil {
		fatal("encode", err)
	}
	slog.Info("export finished", "links", len(links))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
