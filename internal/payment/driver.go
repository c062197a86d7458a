package payment

import "fmt"

// Platform is the concrete network+driver+token combination passed to
// the daemon's payment subsystem. All values are compiled-in constants,
// never user data.
type Platform struct {
	Platform string
	Driver   string
	Token    string
}

// Driver maps network names to the payment platforms a single payment
// driver supports. Driver values are immutable after construction and
// safe for unsynchronized concurrent reads.
type Driver struct {
	name      string
	platforms map[NetworkName]Platform
}

// Name returns the driver identifier (e.g. "erc20").
func (d Driver) Name() string {
	return d.name
}

// Platform resolves the payment platform for a network. Absence is
// reported with the offending network name, never silently defaulted.
func (d Driver) Platform(network NetworkName) (Platform, error) {
	p, ok := d.platforms[network]
	if !ok {
		return Platform{}, &NetworkNotFoundError{Driver: d.name, Network: network}
	}
	return p, nil
}

// Networks returns the networks this driver covers, in KnownNetworks
// order.
func (d Driver) Networks() []NetworkName {
	var out []NetworkName
	for _, n := range KnownNetworks {
		if _, ok := d.platforms[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// NetworkNotFoundError reports a network that has no entry in the
// active payment driver table.
type NetworkNotFoundError struct {
	Driver  string
	Network NetworkName
}

// Error returns a message naming the missing network.
func (e *NetworkNotFoundError) Error() string {
	return fmt.Sprintf("payment driver config for network '%s' not found", e.Network)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *NetworkNotFoundError) Is(target error) bool {
	_, ok := target.(*NetworkNotFoundError)
	return ok
}

// ZksyncDriver is the static platform table for the zksync payment
// driver.
var ZksyncDriver = Driver{
	name: "zksync",
	platforms: map[NetworkName]Platform{
		NetworkMainnet: {Platform: "zksync-mainnet-glm", Driver: "zksync", Token: "GLM"},
		NetworkRinkeby: {Platform: "zksync-rinkeby-tglm", Driver: "zksync", Token: "tGLM"},
	},
}

// Erc20Driver is the static platform table for the erc20 payment
// driver.
var Erc20Driver = Driver{
	name: "erc20",
	platforms: map[NetworkName]Platform{
		NetworkMainnet: {Platform: "erc20-mainnet-glm", Driver: "erc20", Token: "GLM"},
		NetworkRinkeby: {Platform: "erc20-rinkeby-tglm", Driver: "erc20", Token: "tGLM"},
		NetworkGoerli:  {Platform: "erc20-goerli-tglm", Driver: "erc20", Token: "tGLM"},
		NetworkMumbai:  {Platform: "erc20-mumbai-tglm", Driver: "erc20", Token: "tGLM"},
		NetworkPolygon: {Platform: "erc20-polygon-glm", Driver: "erc20", Token: "GLM"},
	},
}

// DriverByName resolves a user-supplied driver name to its table. The
// two tables are independent; callers pick one explicitly based on
// deployment context.
func DriverByName(name string) (Driver, error) {
	switch name {
	case "zksync":
		return ZksyncDriver, nil
	case "erc20":
		return Erc20Driver, nil
	default:
		return Driver{}, fmt.Errorf("unknown payment driver %q (expected zksync or erc20)", name)
	}
}
