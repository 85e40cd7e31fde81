package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/foodgram/internal/infra/repository"
	"github.com/BruksfildServices01/foodgram/internal/logger"
	"github.com/BruksfildServices01/foodgram/internal/models"
	ucUser "github.com/BruksfildServices01/foodgram/internal/usecase/user"
)

var (
	adminEmail    string
	adminUsername string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	RunE:  runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Administrator email")
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "Administrator username")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Administrator password")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	if adminEmail == "" || adminUsername == "" || adminPassword == "" {
		return errors.New("--email, --username and --password are required")
	}

	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := cmd.Context()
	conn, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}

	register := ucUser.NewRegister(repository.NewUserGormRepository(conn), false)
	u, err := register.Execute(ctx, ucUser.RegisterInput{
		Email:    adminEmail,
		Username: adminUsername,
		Password: adminPassword,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logger.Info("admin created", zap.Uint("id", u.ID), zap.String("email", u.Email))
	return nil
}
