package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zenGate-Global/palmyra-timetable/platform/go/auth/devtoken"
)

func devTokenCommand() *cobra.Command {
	var (
		params   devtoken.Params
		tenantID string
	)

	cmd := &cobra.Command{
		Use:   "devtoken",
		Short: "Generate an unsigned tenant-scoped JWT for AUTH_PROVIDER=dev",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := uuid.Parse(tenantID)
			if err != nil {
				return fmt.Errorf("tenant-id must be a valid UUID: %w", err)
			}
			params.TenantID = parsed

			token, err := devtoken.Build(params, time.Now().UTC())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	// Required claims
	cmd.Flags().StringVar(&params.ProjectID, "project-id", "", "Firebase project ID (iss/aud)")
	cmd.Flags().StringVar(&tenantID, "tenant-id", "", "tenant UUID (tenantId claim)")
	cmd.Flags().StringVar(&params.UserID, "user-id", "", "user_id/sub claim")
	cmd.Flags().StringVar(&params.Email, "email", "", "email claim")

	// Optional claims
	cmd.Flags().StringVar(&params.Name, "name", "", "display name")
	cmd.Flags().DurationVar(&params.ExpiresIn, "expires-in", time.Hour, "token lifetime (e.g. 30m, 2h)")
	cmd.Flags().StringVar(&params.Audience, "audience", "", "override aud; defaults to project-id")
	cmd.Flags().StringVar(&params.Issuer, "issuer", "", "override iss; defaults to securetoken URL")

	_ = cmd.MarkFlagRequired("project-id")
	_ = cmd.MarkFlagRequired("tenant-id")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
