// Package main provides the evmkit command-line client for EVM chains:
// balances, nonces, gas prices, transfers, and ERC-20 queries over JSON-RPC.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/quartznode/evmkit/internal/abi"
	"github.com/quartznode/evmkit/internal/chain"
	"github.com/quartznode/evmkit/internal/client"
	"github.com/quartznode/evmkit/internal/config"
	"github.com/quartznode/evmkit/internal/types"
	"github.com/quartznode/evmkit/internal/wallet"
	"github.com/quartznode/evmkit/pkg/logging"
)

var (
	version = "0.1.0-dev"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Config file path (YAML)")
		endpoint    = flag.String("rpc", "", "JSON-RPC endpoint URL, overrides config")
		chainSymbol = flag.String("chain", "ETH", "Chain symbol (ETH, BSC, POLYGON, ...)")
		testnet     = flag.Bool("testnet", false, "Use testnet parameters")
		chainID     = flag.Uint("chain-id", 0, "Chain id override (0 = fetch from node)")
		timeout     = flag.Duration("timeout", 30*time.Second, "HTTP timeout")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		showVersion = flag.Bool("version", false, "Show version and exit")

		balanceAddr = flag.String("balance", "", "Query the balance of an address")
		nonceAddr   = flag.String("nonce", "", "Query the transaction count of an address")
		gasPrice    = flag.Bool("gas-price", false, "Query the current gas price")
		erc20Token  = flag.String("erc20", "", "ERC-20 token contract for -balance")

		sendTo    = flag.String("send", "", "Destination address for a transfer")
		amountWei = flag.String("amount", "0", "Amount to transfer in wei (decimal)")
		gasLimit  = flag.Uint("gas-limit", 21000, "Gas limit")
		receiptOf = flag.String("receipt", "", "Query the receipt of a transaction hash")
	)
	flag.Parse()

	log := logging.New(*logLevel, os.Stderr)
	logging.SetDefault(log)

	if *showVersion {
		log.Infof("evmkit %s", version)
		return
	}

	// .env supplies PRIVATE_KEY and optionally EVMKIT_RPC without putting
	// secrets on the command line.
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using OS environment")
	}

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			log.Fatal("config error", "err", err)
		}
		cfg = loaded
	}
	cfg.Chain = *chainSymbol
	if *testnet {
		cfg.Network = string(chain.Testnet)
	}
	if *endpoint != "" {
		cfg.Endpoint = *endpoint
	}
	if env := os.Getenv("EVMKIT_RPC"); env != "" && cfg.Endpoint == "" {
		cfg.Endpoint = env
	}
	if *chainID != 0 {
		cfg.ChainID = uint32(*chainID)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("config error", "err", err)
	}

	httpTimeout := *timeout
	if *configFile != "" && cfg.HTTPTimeout.Std() > 0 {
		httpTimeout = cfg.HTTPTimeout.Std()
	}

	url := cfg.ResolveEndpoint()
	transport := client.NewHTTPTransport(httpTimeout)
	c := client.NewWithChainID(url, transport, cfg.ChainID)

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		log.Fatal("unable to start chain", "url", url, "err", err)
	}
	log.Info("connected", "url", url, "chain_id", c.ID())

	switch {
	case *gasPrice:
		price, err := c.GasPrice(ctx)
		if err != nil {
			log.Fatal("gas price query failed", "err", err)
		}
		fmt.Printf("%s wei\n", price.DecimalString())

	case *balanceAddr != "" && *erc20Token != "":
		holder := mustAddress(log, *balanceAddr)
		token := mustAddress(log, *erc20Token)
		balance, err := c.ERC20Balance(ctx, holder, token)
		if err != nil {
			log.Fatal("token balance query failed", "err", err)
		}
		fmt.Println(balance.DecimalString())

	case *balanceAddr != "":
		balance, err := c.Balance(ctx, mustAddress(log, *balanceAddr))
		if err != nil {
			log.Fatal("balance query failed", "err", err)
		}
		fmt.Printf("%s wei\n", balance.DecimalString())

	case *nonceAddr != "":
		count, err := c.TransactionCount(ctx, mustAddress(log, *nonceAddr))
		if err != nil {
			log.Fatal("nonce query failed", "err", err)
		}
		fmt.Println(count.DecimalString())

	case *receiptOf != "":
		receipt, err := c.TransactionReceipt(ctx, *receiptOf)
		if err != nil {
			log.Fatal("receipt query failed", "err", err)
		}
		if receipt == nil {
			fmt.Println("not found")
			return
		}
		fmt.Printf("block %s gasUsed %s from %s to %s\n",
			receipt.BlockNumber.DecimalString(), receipt.GasUsed.DecimalString(),
			receipt.From.Checksum(), receipt.To.Checksum())

	case *sendTo != "":
		privKey := os.Getenv("PRIVATE_KEY")
		if privKey == "" {
			log.Fatal("PRIVATE_KEY not set (use a .env file or the environment)")
		}
		acct, err := wallet.NewAccount(privKey)
		if err != nil {
			log.Fatal("invalid private key", "err", err)
		}
		defer acct.Close()

		amount, err := types.ParseDecimal(*amountWei)
		if err != nil {
			log.Fatal("invalid amount", "err", err)
		}

		to := mustAddress(log, *sendTo)
		var call *abi.ContractCall
		if *erc20Token != "" {
			// Token transfer: the value moves inside the contract call.
			call = abi.NewERC20Transfer(to, amount)
			to = mustAddress(log, *erc20Token)
			amount = types.BigNumber{}
		}

		hash, err := c.Send(ctx, acct, to, amount, uint32(*gasLimit), nil, call)
		if err != nil {
			log.Fatal("send failed", "err", err)
		}
		log.Info("transaction submitted", "from", acct.Address().Checksum())
		fmt.Println(hash)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func mustAddress(log *logging.Logger, s string) types.Address {
	a, err := types.ParseAddress(s)
	if err != nil {
		log.Fatal("invalid address", "addr", s, "err", err)
	}
	return a
}
