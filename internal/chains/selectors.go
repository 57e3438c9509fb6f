package chains

import "strings"

// Chain is one row of the compiled-in chain selector table
type Chain struct {
	Name       string `json:"name"`
	Selector   string `json:"selector_name"`
	SelectorID uint64 `json:"selector_id"`
}

// selectors is the immutable lookup table of supported chains
var selectors = []Chain{
	{Name: "Ethereum Mainnet", Selector: "ethereum-mainnet", SelectorID: 5009297550715157269},
	{Name: "Ethereum Sepolia", Selector: "ethereum-testnet-sepolia", SelectorID: 16015286601757825753},
	{Name: "Arbitrum Mainnet", Selector: "ethereum-mainnet-arbitrum-1", SelectorID: 4949039107694359620},
	{Name: "Arbitrum Sepolia", Selector: "ethereum-testnet-sepolia-arbitrum-1", SelectorID: 3478487238524512106},
	{Name: "Avalanche Mainnet", Selector: "avalanche-mainnet", SelectorID: 6433500567565415381},
	{Name: "Avalanche Fuji", Selector: "avalanche-testnet-fuji", SelectorID: 14767482510784806043},
	{Name: "Base Mainnet", Selector: "ethereum-mainnet-base-1", SelectorID: 15971525489660198786},
	{Name: "Base Sepolia", Selector: "ethereum-testnet-sepolia-base-1", SelectorID: 10344971235874465080},
	{Name: "BNB Chain Mainnet", Selector: "binance_smart_chain-mainnet", SelectorID: 11344663589394136015},
	{Name: "BNB Chain Testnet", Selector: "binance_smart_chain-testnet", SelectorID: 13264668187771770619},
	{Name: "Optimism Mainnet", Selector: "ethereum-mainnet-optimism-1", SelectorID: 3734403246176062136},
	{Name: "Optimism Sepolia", Selector: "ethereum-testnet-sepolia-optimism-1", SelectorID: 5224473277236331295},
	{Name: "Polygon Mainnet", Selector: "polygon-mainnet", SelectorID: 4051577828743386545},
	{Name: "Polygon Amoy", Selector: "polygon-testnet-amoy", SelectorID: 16281711391670634445},
}

// All returns the full selector table
func All() []Chain {
	out := make([]Chain, len(selectors))
	copy(out, selectors)
	return out
}

// Lookup finds a chain by display name or selector name, case-insensitively
func Lookup(name string) (Chain, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, c := range selectors {
		if strings.ToLower(c.Name) == needle || c.Selector == needle {
			return c, true
		}
	}
	return Chain{}, false
}
