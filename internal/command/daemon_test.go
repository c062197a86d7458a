package command

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golemstat/internal/payment"
)

// fakeDaemon installs a yagna stand-in that records its arguments to
// <script>.args and prints the given stdout.
func fakeDaemon(t *testing.T, stdout string) *ExecutableSet {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\nprintf '%s' \"$*\" > \"$0.args\"\ncat <<'EOF'\n" + stdout + "\nEOF\n"
	writeFakeBin(t, dir, DaemonBin, script)
	writeFakeBin(t, dir, ProviderBin, trueScript)
	return &ExecutableSet{baseDir: dir}
}

func recordedArgs(t *testing.T, set *ExecutableSet, bin string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(set.BaseDir(), bin+".args"))
	require.NoError(t, err)
	return string(data)
}

func TestDefaultID(t *testing.T) {
	set := fakeDaemon(t, `{"Ok":{"nodeId":"0x8d2f","alias":null,"isDefault":true,"isLocked":false}}`)

	id, err := set.Daemon().DefaultID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0x8d2f", id.NodeID)
	assert.True(t, id.IsDefault)
	assert.Nil(t, id.Alias)

	assert.Equal(t, "id show --json", recordedArgs(t, set, DaemonBin))
}

func TestDefaultIDInnerError(t *testing.T) {
	set := fakeDaemon(t, `{"Err":"no default identity configured"}`)

	_, err := set.Daemon().DefaultID(context.Background())
	require.Error(t, err)
	assert.Equal(t, "no default identity configured", err.Error())

	// The inner domain failure is not a decode failure.
	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr))
}

func TestDefaultIDEmptyUnion(t *testing.T) {
	set := fakeDaemon(t, `{}`)

	_, err := set.Daemon().DefaultID(context.Background())
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestVersion(t *testing.T) {
	set := fakeDaemon(t, `{"current":{"version":"0.12.3","name":"cannonball","seen":true,"releaseTs":"2023-03-14T10:00:00"},"pending":null}`)

	info, err := set.Daemon().Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.12.3", info.Current.Version)
	assert.Equal(t, "cannonball", info.Current.Name)
	assert.Nil(t, info.Pending)

	assert.Equal(t, "version show --json", recordedArgs(t, set, DaemonBin))
}

func TestVersionRaw(t *testing.T) {
	dir := t.TempDir()
	writeFakeBin(t, dir, DaemonBin, "#!/bin/sh\necho 'yagna 0.9.1 (abc1234 2022-05-10 build #42)'\n")
	writeFakeBin(t, dir, ProviderBin, trueScript)
	set := &ExecutableSet{baseDir: dir}

	raw, err := set.Daemon().VersionRaw(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.9.1", raw.Version)
	assert.Equal(t, "42", raw.Build)
}

func TestPaymentStatus(t *testing.T) {
	set := fakeDaemon(t, `{
		"amount": "15.75",
		"reserved": "1.5",
		"outgoing": {
			"requested": {"totalAmount": "0", "agreementsCount": 0},
			"accepted": {"totalAmount": "0", "agreementsCount": 0},
			"confirmed": {"totalAmount": "0", "agreementsCount": 0}
		},
		"incoming": {
			"requested": {"totalAmount": "10", "agreementsCount": 5},
			"accepted": {"totalAmount": "7", "agreementsCount": 3},
			"confirmed": {"totalAmount": "4", "agreementsCount": 2}
		},
		"driver": "erc20",
		"network": "mainnet",
		"token": "GLM"
	}`)

	result, err := set.Daemon().PaymentStatus(context.Background(),
		"0x8d2f", payment.NetworkMainnet, payment.Erc20Driver)
	require.NoError(t, err)
	assert.True(t, result.Amount.Equal(decimal.RequireFromString("15.75")))
	assert.Equal(t, "GLM", result.Token)

	assert.Equal(t,
		"payment status --account 0x8d2f --network mainnet --driver erc20 --json",
		recordedArgs(t, set, DaemonBin))
}

func TestPaymentStatusUnknownNetworkSpawnsNothing(t *testing.T) {
	set := fakeDaemon(t, `{}`)

	_, err := set.Daemon().PaymentStatus(context.Background(),
		"0x8d2f", payment.NetworkPolygon, payment.ZksyncDriver)
	require.Error(t, err)

	var notFound *payment.NetworkNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, payment.NetworkPolygon, notFound.Network)

	_, statErr := os.Stat(filepath.Join(set.BaseDir(), DaemonBin+".args"))
	assert.True(t, os.IsNotExist(statErr), "no child process should have run")
}

func TestInvoiceStatus(t *testing.T) {
	set := fakeDaemon(t, `{
		"requestor": {
			"issued": {"totalAmount": "0", "agreementsCount": 0},
			"received": {"totalAmount": "0", "agreementsCount": 0},
			"accepted": {"totalAmount": "0", "agreementsCount": 0},
			"rejected": {"totalAmount": "0", "agreementsCount": 0}
		},
		"provider": {
			"issued": {"totalAmount": "2", "agreementsCount": 1},
			"received": {"totalAmount": "5", "agreementsCount": 2},
			"accepted": {"totalAmount": "7", "agreementsCount": 3},
			"rejected": {"totalAmount": "0", "agreementsCount": 0}
		}
	}`)

	stats, err := set.Daemon().InvoiceStatus(context.Background())
	require.NoError(t, err)

	amount, count := stats.Provider.Unconfirmed()
	assert.True(t, amount.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, uint64(3), count)

	assert.Equal(t, "payment invoice status --json", recordedArgs(t, set, DaemonBin))
}

func TestActivityStatusOperation(t *testing.T) {
	set := fakeDaemon(t, `{
		"last1h": {"Terminated": 3, "New": 2, "Running": 5},
		"total": {"Terminated": 100},
		"lastActivityTs": "2022-05-10T08:30:00Z"
	}`)

	status, err := set.Daemon().ActivityStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), status.Last1hProcessed())
	assert.Equal(t, uint64(5), status.InProgress())
	assert.Equal(t, uint64(100), status.TotalProcessed())
	require.NotNil(t, status.LastActivityTs)

	assert.Equal(t, "activity status --json", recordedArgs(t, set, DaemonBin))
}

func TestDaemonFailurePropagatesStreams(t *testing.T) {
	dir := t.TempDir()
	writeFakeBin(t, dir, DaemonBin, "#!/bin/sh\necho 'Error: no running daemon' >&2\nexit 1\n")
	writeFakeBin(t, dir, ProviderBin, trueScript)
	set := &ExecutableSet{baseDir: dir}

	id, err := set.Daemon().DefaultID(context.Background())
	require.Error(t, err)
	assert.Nil(t, id)

	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Contains(t, string(execErr.Stderr), "no running daemon")
}
