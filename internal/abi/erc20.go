package abi

import "github.com/quartznode/evmkit/internal/types"

// ERC-20 call constructors for the functions the library exercises.

// NewERC20Transfer builds transfer(address,uint256).
func NewERC20Transfer(to types.Address, amount types.BigNumber) *ContractCall {
	return NewContractCall("transfer", Addr(to), UintBig(amount))
}

// NewERC20BalanceOf builds balanceOf(address).
func NewERC20BalanceOf(holder types.Address) *ContractCall {
	return NewContractCall("balanceOf", Addr(holder))
}

// NewERC20Approve builds approve(address,uint256).
func NewERC20Approve(spender types.Address, amount types.BigNumber) *ContractCall {
	return NewContractCall("approve", Addr(spender), UintBig(amount))
}

// NewERC20Allowance builds allowance(address,address).
func NewERC20Allowance(owner, spender types.Address) *ContractCall {
	return NewContractCall("allowance", Addr(owner), Addr(spender))
}
