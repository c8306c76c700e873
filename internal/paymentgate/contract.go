package paymentgate

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	myErr "monad-feedback/internal/types/errors"
)

// ABI контракта FeedbackPayment - только то, что нужно приложению
const feedbackPaymentABI = `[
	{"type":"function","name":"hasPaid","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"pay","stateMutability":"payable","inputs":[],"outputs":[]},
	{"type":"error","name":"IncorrectAmount","inputs":[]},
	{"type":"error","name":"NotOwner","inputs":[]}
]`

// ContractCaller интерфейс для eth_call
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// ContractGate - шлюз поверх контракта FeedbackPayment в тестнете Monad.
// Чтение hasPaid(address) через eth_call, без подписи и без газа.
type ContractGate struct {
	Caller          ContractCaller
	Logger          *zap.SugaredLogger
	contractAddress common.Address
	contractABI     abi.ABI
}

func NewContractGate(rpcURL, contractAddress string, logger *zap.SugaredLogger) (*ContractGate, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		logger.Error("Failed to connect to chain RPC", zap.Error(err))

		return nil, err
	}

	return newContractGate(client, contractAddress, logger)
}

func newContractGate(caller ContractCaller, contractAddress string, logger *zap.SugaredLogger) (*ContractGate, error) {
	parsedABI, err := abi.JSON(strings.NewReader(feedbackPaymentABI))
	if err != nil {
		logger.Error("Failed to parse contract ABI", zap.Error(err))

		return nil, err
	}

	return &ContractGate{
		Caller:          caller,
		Logger:          logger,
		contractAddress: common.HexToAddress(contractAddress),
		contractABI:     parsedABI,
	}, nil
}

func (contractGate *ContractGate) HasPaid(ctx context.Context, walletAddress string) (bool, error) {
	callData, err := contractGate.contractABI.Pack("hasPaid", common.HexToAddress(walletAddress))
	if err != nil {
		contractGate.Logger.Error("Failed to pack hasPaid call", zap.Error(err))

		return false, myErr.ErrPaymentCheck
	}

	result, err := contractGate.Caller.CallContract(ctx, ethereum.CallMsg{
		To:   &contractGate.contractAddress,
		Data: callData,
	}, nil)
	if err != nil {
		contractGate.Logger.Error(
			"hasPaid call failed",
			zap.Error(err),
			zap.String("walletAddress", walletAddress),
		)

		return false, myErr.ErrPaymentCheck
	}

	outputs, err := contractGate.contractABI.Unpack("hasPaid", result)
	if err != nil {
		contractGate.Logger.Error("Failed to unpack hasPaid result", zap.Error(err))

		return false, myErr.ErrPaymentCheck
	}

	paid, ok := outputs[0].(bool)
	if !ok {
		contractGate.Logger.Error("hasPaid returned unexpected type")

		return false, myErr.ErrPaymentCheck
	}

	return paid, nil
}

func (contractGate *ContractGate) Fee() string {
	return FeedbackCostMON
}
