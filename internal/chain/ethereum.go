package chain

func init() {
	// ==========================================================================
	// Ethereum
	// ==========================================================================

	Register("ETH", Mainnet, &Params{
		Symbol:      "ETH",
		Name:        "Ethereum",
		ChainID:     1,
		Decimals:    18,
		NativeToken: "ETH",
		DefaultRPC:  "https://eth.llamarpc.com",
	})

	Register("ETH", Testnet, &Params{
		Symbol:      "ETH",
		Name:        "Ethereum Sepolia",
		ChainID:     11155111,
		Decimals:    18,
		NativeToken: "ETH",
		DefaultRPC:  "https://rpc.sepolia.org",
	})

	// ==========================================================================
	// BNB Smart Chain (BSC)
	// ==========================================================================

	Register("BSC", Mainnet, &Params{
		Symbol:      "BSC",
		Name:        "BNB Smart Chain",
		ChainID:     56,
		Decimals:    18,
		NativeToken: "BNB",
		DefaultRPC:  "https://bsc-dataseed.bnbchain.org",
	})

	Register("BSC", Testnet, &Params{
		Symbol:      "BSC",
		Name:        "BNB Smart Chain Testnet",
		ChainID:     97,
		Decimals:    18,
		NativeToken: "BNB",
		DefaultRPC:  "https://data-seed-prebsc-1-s1.bnbchain.org:8545",
	})

	// ==========================================================================
	// Polygon
	// ==========================================================================

	Register("POLYGON", Mainnet, &Params{
		Symbol:      "POLYGON",
		Name:        "Polygon",
		ChainID:     137,
		Decimals:    18,
		NativeToken: "POL",
		DefaultRPC:  "https://polygon-rpc.com",
	})

	Register("POLYGON", Testnet, &Params{
		Symbol:      "POLYGON",
		Name:        "Polygon Amoy",
		ChainID:     80002,
		Decimals:    18,
		NativeToken: "POL",
		DefaultRPC:  "https://rpc-amoy.polygon.technology",
	})

	// ==========================================================================
	// Arbitrum
	// ==========================================================================

	Register("ARBITRUM", Mainnet, &Params{
		Symbol:      "ARBITRUM",
		Name:        "Arbitrum One",
		ChainID:     42161,
		Decimals:    18,
		NativeToken: "ETH",
		DefaultRPC:  "https://arb1.arbitrum.io/rpc",
	})

	Register("ARBITRUM", Testnet, &Params{
		Symbol:      "ARBITRUM",
		Name:        "Arbitrum Sepolia",
		ChainID:     421614,
		Decimals:    18,
		NativeToken: "ETH",
		DefaultRPC:  "https://sepolia-rollup.arbitrum.io/rpc",
	})

	// ==========================================================================
	// Base
	// ==========================================================================

	Register("BASE", Mainnet, &Params{
		Symbol:      "BASE",
		Name:        "Base",
		ChainID:     8453,
		Decimals:    18,
		NativeToken: "ETH",
		DefaultRPC:  "https://mainnet.base.org",
	})

	Register("BASE", Testnet, &Params{
		Symbol:      "BASE",
		Name:        "Base Sepolia",
		ChainID:     84532,
		Decimals:    18,
		NativeToken: "ETH",
		DefaultRPC:  "https://sepolia.base.org",
	})

	// ==========================================================================
	// Optimism
	// ==========================================================================

	Register("OPTIMISM", Mainnet, &Params{
		Symbol:      "OPTIMISM",
		Name:        "OP Mainnet",
		ChainID:     10,
		Decimals:    18,
		NativeToken: "ETH",
		DefaultRPC:  "https://mainnet.optimism.io",
	})
}
