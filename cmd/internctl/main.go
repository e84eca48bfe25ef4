// cmd/internctl/main.go
//
// internctl is the operations CLI for the InternHub database. It talks to
// Postgres directly so it stays usable when the API is down.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var databaseURL string

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "internctl",
		Short: "Operations CLI for the InternHub database",
	}
	root.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"),
		"Postgres connection string (defaults to DATABASE_URL)")

	root.AddCommand(recountApplicantsCmd())
	root.AddCommand(closeExpiredCmd())
	root.AddCommand(approveCompanyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("no database URL: pass --database-url or set DATABASE_URL")
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// recountApplicantsCmd prints the live applicant count per internship.
// Counts are always derived from the applications table, so this doubles as
// a consistency report for dashboards that cache them.
func recountApplicantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recount-applicants",
		Short: "Report applicant counts per internship",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			rows, err := pool.Query(ctx, `
				SELECT i.id, i.title, COUNT(a.id)
				FROM internships i
				LEFT JOIN applications a ON a.internship_id = i.id
				GROUP BY i.id, i.title
				ORDER BY i.title`)
			if err != nil {
				return fmt.Errorf("querying applicant counts: %w", err)
			}
			defer rows.Close()

			for rows.Next() {
				var (
					id    uuid.UUID
					title string
					count int64
				)
				if err := rows.Scan(&id, &title, &count); err != nil {
					return fmt.Errorf("scanning row: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", id, count, title)
			}
			return rows.Err()
		},
	}
}

// closeExpiredCmd closes active internships whose deadline has passed.
// Applying to them is already rejected at the service layer; this keeps
// listings tidy.
func closeExpiredCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "close-expired",
		Short: "Close active internships whose deadline has passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if dryRun {
				var count int64
				err := pool.QueryRow(ctx, `
					SELECT COUNT(*) FROM internships
					WHERE status = 'active' AND deadline < now()`).Scan(&count)
				if err != nil {
					return fmt.Errorf("counting expired internships: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "would close %d internships\n", count)
				return nil
			}

			tag, err := pool.Exec(ctx, `
				UPDATE internships
				SET status = 'closed', updated_at = now()
				WHERE status = 'active' AND deadline < now()`)
			if err != nil {
				return fmt.Errorf("closing expired internships: %w", err)
			}
			slog.Info("closed expired internships", "count", tag.RowsAffected())
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report without updating")
	return cmd
}

// approveCompanyCmd accepts a pending company registration from the shell,
// for when the SCAD reviewer is locked out of the portal.
func approveCompanyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve-company <company-id>",
		Short: "Accept a pending company registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			companyID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid company id %q: %w", args[0], err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			tag, err := pool.Exec(ctx, `
				UPDATE companies
				SET status = 'accepted', decided_at = now(), updated_at = now()
				WHERE id = $1 AND status = 'pending'`, companyID)
			if err != nil {
				return fmt.Errorf("approving company: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("company %s not found or already decided", companyID)
			}
			slog.Info("company approved", "companyID", companyID)
			return nil
		},
	}
}
