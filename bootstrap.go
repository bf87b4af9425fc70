package tokenauth

import (
	"context"
)

// SeedIdentity creates the optional bootstrap identity named in the
// configuration. It is a create-if-configured convenience for first boot:
// failures (typically the identity already existing) are logged and startup
// continues. The seed password is read from config and never logged.
func SeedIdentity(ctx context.Context, repo RepositoryManager, cfg Config, logger Logger) {
	if logger == nil {
		logger = defLogger{}
	}

	username := cfg.GetSeedUsername()
	password := cfg.GetSeedPassword()
	if username == "" || password == "" {
		return
	}

	handler := NewRegisterUserHandler(repo)
	_, err := handler.Execute(ctx, RegisterUserMessage{
		Username:  username,
		Email:     cfg.GetSeedEmail(),
		Password:  password,
		UseHashid: true,
	})
	if err != nil {
		logger.Error("failed to seed bootstrap identity %s: %s", username, err)
		return
	}

	logger.Info("seeded bootstrap identity %s", username)
}
