package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/chainsafe/navette/pkg/config"
	"github.com/chainsafe/navette/pkg/ethereum/contracts"
	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a transaction or receipt is unknown to the node.
	ErrNotFound = errors.New("not found")
	// ErrNoSubscription is returned when no websocket endpoint is configured.
	ErrNoSubscription = errors.New("log subscriptions require a websocket endpoint")
)

// Client represents a connection to one EVM chain, signing with the operator key
type Client struct {
	config     *config.ChainConfig
	client     *ethclient.Client
	wsClient   *ethclient.Client
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    *big.Int
	logger     *zap.Logger
}

// NewClient dials the chain RPC (and websocket, when configured) and loads the operator key
func NewClient(ctx context.Context, cfg *config.ChainConfig, operatorKey string, logger *zap.Logger) (*Client, error) {
	logger = logger.With(zap.String("chain", cfg.Name))

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s RPC: %w", cfg.Name, err)
	}

	var wsClient *ethclient.Client
	if cfg.WSURL != "" {
		wsClient, err = ethclient.DialContext(ctx, cfg.WSURL)
		if err != nil {
			logger.Warn("Failed to connect to websocket, falling back to polling", zap.Error(err))
			wsClient = nil
		}
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(operatorKey, "0x"))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	chainID := big.NewInt(cfg.ChainID)
	if cfg.ChainID == 0 {
		chainID, err = client.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to get chain id: %w", err)
		}
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)

	logger.Info("Connected to chain",
		zap.String("chain_id", chainID.String()),
		zap.String("rpc_url", cfg.RPCURL),
		zap.Bool("websocket", wsClient != nil),
		zap.String("token_contract", cfg.TokenContract),
		zap.String("operator_address", address.Hex()))

	return &Client{
		config:     cfg,
		client:     client,
		wsClient:   wsClient,
		privateKey: privateKey,
		address:    address,
		chainID:    chainID,
		logger:     logger,
	}, nil
}

// Close closes the chain connections
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
	if c.wsClient != nil {
		c.wsClient.Close()
	}
}

// Name returns the configured network name
func (c *Client) Name() string {
	return c.config.Name
}

// Address returns the operator address derived from the signing key
func (c *Client) Address() common.Address {
	return c.address
}

// TokenContract returns the configured token contract of this chain
func (c *Client) TokenContract() common.Address {
	return common.HexToAddress(c.config.TokenContract)
}

// GetTransaction fetches a transaction by hash and recovers its sender
func (c *Client) GetTransaction(ctx context.Context, hash common.Hash) (*Transaction, error) {
	tx, pending, err := c.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	from, err := types.Sender(types.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover sender: %w", err)
	}

	return &Transaction{
		Hash:    tx.Hash(),
		From:    from,
		To:      tx.To(),
		Value:   tx.Value(),
		Data:    tx.Data(),
		Pending: pending,
	}, nil
}

// GetReceipt fetches the receipt of a mined transaction
func (c *Client) GetReceipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	receipt, err := c.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return newReceipt(receipt), nil
}

// GetLatestBlockNumber gets the latest block number
func (c *Client) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// TokenDecimals reads decimals() of an ERC20 contract
func (c *Client) TokenDecimals(ctx context.Context, token common.Address) (uint8, error) {
	erc20, err := contracts.NewERC20Caller(token, c.client)
	if err != nil {
		return 0, fmt.Errorf("failed to bind token %s: %w", token.Hex(), err)
	}
	decimals, err := erc20.Decimals(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, fmt.Errorf("failed to read decimals of %s: %w", token.Hex(), err)
	}
	return decimals, nil
}

// TokenBalance reads balanceOf(owner) of an ERC20 contract
func (c *Client) TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	erc20, err := contracts.NewERC20Caller(token, c.client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token %s: %w", token.Hex(), err)
	}
	balance, err := erc20.BalanceOf(&bind.CallOpts{Context: ctx}, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance of %s: %w", owner.Hex(), err)
	}
	return balance, nil
}

// GetTransactor returns a transaction signer
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	nonce, err := c.client.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = c.config.GasLimit

	if c.config.MaxGasPrice != "" {
		maxGasPrice, ok := new(big.Int).SetString(c.config.MaxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid max gas price %q", c.config.MaxGasPrice)
		}

		gasPrice, err := c.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// SignTokenTransfer signs an ERC20 transfer(to, amount) without broadcasting it.
// The returned transaction hash is final, so it can be journaled before SendTransaction.
func (c *Client) SignTokenTransfer(ctx context.Context, token, to common.Address, amount *big.Int) (*types.Transaction, error) {
	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return nil, err
	}
	auth.NoSend = true

	erc20, err := contracts.NewERC20(token, c.client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token %s: %w", token.Hex(), err)
	}

	tx, err := erc20.Transfer(auth, to, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transfer: %w", err)
	}

	c.logger.Debug("Transfer signed",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("token", token.Hex()),
		zap.String("recipient", to.Hex()),
		zap.String("amount", amount.String()),
		zap.Uint64("nonce", tx.Nonce()))

	return tx, nil
}

// SendTransaction broadcasts a signed transaction
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.client.SendTransaction(ctx, tx); err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}
	c.logger.Info("Transaction submitted", zap.String("tx_hash", tx.Hash().Hex()))
	return nil
}

// WaitMined blocks until the transaction is included in a block
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", tx.Hash().Hex(), err)
	}
	return newReceipt(receipt), nil
}

// ConfirmedNonce returns the operator nonce as of the latest mined block
func (c *Client) ConfirmedNonce(ctx context.Context) (uint64, error) {
	nonce, err := c.client.NonceAt(ctx, c.address, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get confirmed nonce: %w", err)
	}
	return nonce, nil
}

// SupportsSubscriptions reports whether a websocket connection is available
func (c *Client) SupportsSubscriptions() bool {
	return c.wsClient != nil
}

// WatchTransfers subscribes to Transfer events of a token over the websocket connection
func (c *Client) WatchTransfers(ctx context.Context, token common.Address, sink chan<- *TransferEvent) (event.Subscription, error) {
	if c.wsClient == nil {
		return nil, ErrNoSubscription
	}

	filterer, err := contracts.NewERC20Filterer(token, c.wsClient)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token %s: %w", token.Hex(), err)
	}

	raw := make(chan *contracts.ERC20Transfer)
	sub, err := filterer.WatchTransfer(&bind.WatchOpts{Context: ctx}, raw, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to transfers: %w", err)
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case ev := <-raw:
				select {
				case sink <- newTransferEvent(token, ev):
				case err := <-sub.Err():
					return err
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

// FilterTransfers returns Transfer events of a token in the inclusive block range
func (c *Client) FilterTransfers(ctx context.Context, token common.Address, fromBlock, toBlock uint64) ([]*TransferEvent, error) {
	filterer, err := contracts.NewERC20Filterer(token, c.client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token %s: %w", token.Hex(), err)
	}

	iter, err := filterer.FilterTransfer(&bind.FilterOpts{
		Start:   fromBlock,
		End:     &toBlock,
		Context: ctx,
	}, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to filter transfer events: %w", err)
	}
	defer iter.Close()

	var events []*TransferEvent
	for iter.Next() {
		events = append(events, newTransferEvent(token, iter.Event))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("transfer iterator: %w", err)
	}
	return events, nil
}
