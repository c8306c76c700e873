package contextutil

import (
	"context"

	"monad-feedback/internal/middleware"
)

// GetWalletFromContext извлекает адрес кошелька из контекста
func GetWalletFromContext(ctx context.Context) (string, bool) {
	walletAddress, ok := middleware.GetWalletFromContext(ctx)
	if !ok || walletAddress == "" {
		return "", false
	}
	return walletAddress, true
}
