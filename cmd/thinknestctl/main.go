package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dangerclosesec/thinknest/internal/auth"
	"github.com/dangerclosesec/thinknest/internal/cache"
	"github.com/dangerclosesec/thinknest/internal/config"
	"github.com/dangerclosesec/thinknest/internal/database"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	steps     int
	verbose   bool
	since     string
	outFile   string
	subject   string
	tokenTTL  time.Duration
	cfg       *config.Config
	cliLogger *slog.Logger
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	migrateUpCmd.Flags().IntVarP(&steps, "steps", "n", 0, "Number of migrations to apply (0 applies all)")
	migrateDownCmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to revert (0 reverts all)")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)

	seedCmd.AddCommand(seedJuryCmd)

	contactsExportCmd.Flags().StringVar(&since, "since", "", "Only export messages received on or after this date (YYYY-MM-DD)")
	contactsExportCmd.Flags().StringVarP(&outFile, "out", "o", "contacts.xlsx", "Output file")
	contactsCmd.AddCommand(contactsExportCmd)

	tokenCmd.Flags().StringVarP(&subject, "subject", "s", "", "Token subject, e.g. the operator's email")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	tokenCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(migrateCmd, seedCmd, contactsCmd, tokenCmd)
}

var rootCmd = &cobra.Command{
	Use:   "thinknestctl",
	Short: "thinknestctl manages a ThinkNest deployment",
	Long:  `thinknestctl runs database migrations, seeds content, exports contact messages and issues admin tokens.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		cliLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		var err error
		cfg, err = config.Load()
		return err
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	Run: func(cmd *cobra.Command, args []string) {
		runMigration(database.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert applied migrations",
	Run: func(cmd *cobra.Command, args []string) {
		runMigration(database.Down)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the applied migration version",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Failed to get database handle: %v", err)
		}
		defer sqlDB.Close()

		version, dirty, err := database.Version(sqlDB, cfg.Database.SearchPath)
		if err != nil {
			log.Fatalf("Failed to read migration version: %v", err)
		}
		if dirty {
			fmt.Printf("Version %d (dirty)\n", version)
			return
		}
		fmt.Printf("Version %d\n", version)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load content from JSON files",
}

var seedJuryCmd = &cobra.Command{
	Use:   "jury [file]",
	Short: "Create jury members from a JSON array",
	Long:  `Reads a JSON array of jury members, each with fullName, expertise and assignments, and creates them.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		var members []service.JuryCreateInput
		if err := json.Unmarshal(data, &members); err != nil {
			log.Fatalf("Failed to parse file: %v", err)
		}

		db := openDB()
		var store cache.Cache
		if cfg.Redis.Addr != "" {
			rc := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			defer rc.Close()
			store = rc
		}
		cacheService := service.NewCacheService(store, service.CacheConfig{TTL: cfg.Redis.TTL}, cliLogger)
		juryService := service.NewJuryService(repository.NewJuryRepository(db), validation.New(), cacheService, cliLogger)

		ctx := cmd.Context()
		for i, m := range members {
			detail, err := juryService.Create(ctx, m)
			if err != nil {
				log.Fatalf("Failed to create member %d (%s): %v", i, m.FullName, err)
			}
			if verbose {
				fmt.Printf("  - %s %s\n", detail.ID, detail.Name)
			}
		}
		fmt.Printf("Created %d jury members\n", len(members))
	},
}

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Work with contact form submissions",
}

var contactsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export contact messages to an xlsx workbook",
	Run: func(cmd *cobra.Command, args []string) {
		var from time.Time
		if since != "" {
			t, err := time.Parse(time.DateOnly, since)
			if err != nil {
				log.Fatalf("Invalid --since value: %v", err)
			}
			from = t
		}

		db := openDB()
		contactService := service.NewContactService(repository.NewContactRepository(db), validation.New(), nil, nil, cliLogger)

		f, err := os.Create(outFile)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", outFile, err)
		}
		defer f.Close()

		n, err := contactService.ExportWorkbook(cmd.Context(), from, f)
		if err != nil {
			log.Fatalf("Failed to export contacts: %v", err)
		}
		fmt.Printf("Exported %d messages to %s\n", n, outFile)
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin bearer token",
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.Admin.JWTSecret == "" {
			log.Fatal("ADMIN_JWT_SECRET is required")
		}

		token, err := auth.NewTokenManager(cfg.Admin.JWTSecret, tokenTTL).Generate(subject)
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}
		fmt.Println(token)
	},
}

func openDB() *gorm.DB {
	db, err := database.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func runMigration(dir database.Direction) {
	db := openDB()
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	if err := database.Migrate(sqlDB, cfg.Database.SearchPath, dir, steps, cliLogger); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
