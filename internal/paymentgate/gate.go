package paymentgate

import (
	"context"
	"regexp"

	"go.uber.org/zap"
)

// Стоимость отправки отзыва - фиксированная, защита от спама.
const (
	FeedbackCostMON = "1.1 MON"
	FeedbackCostWei = "1100000000000000000"
)

var walletAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidWalletAddress - проверяет формат адреса кошелька
func ValidWalletAddress(address string) bool {
	return walletAddressRe.MatchString(address)
}

// Gate - платежный шлюз. Единственное, что приложение спрашивает у контракта:
// платил ли этот адрес хотя бы один раз. Сам вызов pay() выполняет кошелек
// пользователя, сервер его никогда не инициирует.
//
//go:generate mockgen -source=internal/paymentgate/gate.go -destination=internal/mocks/mock_gate.go -package=mocks
type Gate interface {
	// HasPaid - возвращает true, если адрес хотя бы раз успешно вызвал pay()
	HasPaid(ctx context.Context, walletAddress string) (bool, error)

	// Fee - отображаемая сумма платежа
	Fee() string
}

// SimulatedGate - деградация при отсутствии адреса контракта в конфигурации:
// каждый адрес считается оплатившим. Сервис продолжает работать,
// антиспам-барьер отключен.
type SimulatedGate struct {
	Logger *zap.SugaredLogger
}

func NewSimulatedGate(logger *zap.SugaredLogger) *SimulatedGate {
	logger.Warn("Payment contract address is not configured, payments are simulated")

	return &SimulatedGate{Logger: logger}
}

func (simulatedGate *SimulatedGate) HasPaid(_ context.Context, walletAddress string) (bool, error) {
	simulatedGate.Logger.Debugf("Simulated gate: treating %s as paid", walletAddress)

	return true, nil
}

func (simulatedGate *SimulatedGate) Fee() string {
	return FeedbackCostMON
}
