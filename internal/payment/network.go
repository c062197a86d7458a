package payment

import "fmt"

// NetworkName identifies a blockchain network the payment subsystem can
// settle on. Values match the lowercase names the yagna daemon expects
// on its command line.
type NetworkName string

const (
	NetworkMainnet NetworkName = "mainnet"
	NetworkRinkeby NetworkName = "rinkeby"
	NetworkGoerli  NetworkName = "goerli"
	NetworkMumbai  NetworkName = "mumbai"
	NetworkPolygon NetworkName = "polygon"
)

// String makes NetworkName satisfy the fmt.Stringer interface.
func (n NetworkName) String() string {
	return string(n)
}

// KnownNetworks lists every network name in a stable order, for flag
// validation and help text.
var KnownNetworks = []NetworkName{
	NetworkMainnet,
	NetworkRinkeby,
	NetworkGoerli,
	NetworkMumbai,
	NetworkPolygon,
}

// ParseNetworkName validates a user-supplied network name.
func ParseNetworkName(s string) (NetworkName, error) {
	for _, n := range KnownNetworks {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown network %q (expected one of %v)", s, KnownNetworks)
}

// NetworkGroup is a coarse classification of a network as
// production-like or test-like. It is used for display only, never for
// driver resolution.
type NetworkGroup string

const (
	GroupMainnet NetworkGroup = "mainnet"
	GroupTestnet NetworkGroup = "testnet"
)

var networkGroups = map[NetworkGroup][]NetworkName{
	GroupMainnet: {NetworkMainnet, NetworkPolygon},
	GroupTestnet: {NetworkRinkeby, NetworkMumbai, NetworkGoerli},
}

// GroupNetworks returns the ordered set of network names belonging to a
// group. The returned slice is a copy and safe to modify.
func GroupNetworks(group NetworkGroup) []NetworkName {
	names := networkGroups[group]
	out := make([]NetworkName, len(names))
	copy(out, names)
	return out
}

// GroupOf classifies a network into its group.
func GroupOf(network NetworkName) NetworkGroup {
	for group, names := range networkGroups {
		for _, n := range names {
			if n == network {
				return group
			}
		}
	}
	return GroupTestnet
}
