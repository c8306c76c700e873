package middleware

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"monad-feedback/internal/paymentgate"
	myErr "monad-feedback/internal/types/errors"
)

type WalletKey string

var walletKey WalletKey = "walletKey"

// WalletHeader - заголовок, в котором клиент передает адрес подключенного кошелька
const WalletHeader = "X-Wallet-Address"

// PaymentRequired - пропускает запрос дальше, только если адрес из заголовка
// когда-либо платил взнос. Единственная авторизация в системе - "этот адрес платил".
func PaymentRequired(gate paymentgate.Gate, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			walletAddress := r.Header.Get(WalletHeader)
			if walletAddress == "" {
				myErr.SendErrorTo(w, myErr.ErrMissingWallet, http.StatusBadRequest, logger)
				return
			}
			if !paymentgate.ValidWalletAddress(walletAddress) {
				myErr.SendErrorTo(w, myErr.ErrInvalidWallet, http.StatusBadRequest, logger)
				return
			}

			paid, err := gate.HasPaid(r.Context(), walletAddress)
			if err != nil {
				if errors.Is(err, myErr.ErrPaymentCheck) {
					myErr.SendErrorTo(w, err, http.StatusBadGateway, logger)
				} else {
					myErr.SendErrorTo(w, err, http.StatusInternalServerError, logger)
				}
				return
			}
			if !paid {
				myErr.SendErrorTo(w, myErr.ErrPaymentRequired, http.StatusPaymentRequired, logger)
				return
			}

			// Кладем кошелек в контекст и передаем дальше
			ctx := ContextWithWallet(r.Context(), walletAddress)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ContextWithWallet(ctx context.Context, walletAddress string) context.Context {
	return context.WithValue(ctx, walletKey, walletAddress)
}

func GetWalletFromContext(ctx context.Context) (string, bool) {
	walletAddress, ok := ctx.Value(walletKey).(string)
	return walletAddress, ok
}
