package payment

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stat(amount int64, count uint64) StatValue {
	return StatValue{TotalAmount: decimal.NewFromInt(amount), AgreementsCount: count}
}

func TestStatusNotesSummary(t *testing.T) {
	notes := StatusNotes{
		Requested: stat(10, 5),
		Accepted:  stat(7, 3),
		Confirmed: stat(4, 2),
	}

	amount, count := notes.TotalPending()
	assert.True(t, amount.Equal(decimal.NewFromInt(3)), "pending amount = %s", amount)
	assert.Equal(t, uint64(1), count)

	amount, count = notes.Unconfirmed()
	assert.True(t, amount.Equal(decimal.NewFromInt(3)), "unconfirmed amount = %s", amount)
	assert.Equal(t, uint64(2), count)
}

func TestInvoiceStatusNotesSummary(t *testing.T) {
	notes := InvoiceStatusNotes{
		Issued:   stat(2, 1),
		Received: stat(5, 2),
		Accepted: stat(7, 3),
	}

	amount, count := notes.TotalPending()
	assert.True(t, amount.Equal(decimal.NewFromInt(7)), "pending amount = %s", amount)
	assert.Equal(t, uint64(3), count)

	amount, count = notes.Unconfirmed()
	assert.True(t, amount.Equal(decimal.NewFromInt(7)), "unconfirmed amount = %s", amount)
	assert.Equal(t, uint64(3), count)
}

func TestSummaryInterfaceSatisfied(t *testing.T) {
	var _ Summary = StatusNotes{}
	var _ Summary = InvoiceStatusNotes{}
}

func TestStatusResultDecode(t *testing.T) {
	payload := `{
		"amount": "100.5",
		"reserved": "0",
		"outgoing": {
			"requested": {"totalAmount": "10", "agreementsCount": 5},
			"accepted": {"totalAmount": "7", "agreementsCount": 3},
			"confirmed": {"totalAmount": "4", "agreementsCount": 2}
		},
		"incoming": {
			"requested": {"totalAmount": "0", "agreementsCount": 0},
			"accepted": {"totalAmount": "0", "agreementsCount": 0},
			"confirmed": {"totalAmount": "0", "agreementsCount": 0}
		},
		"driver": "erc20",
		"network": "mainnet",
		"token": "GLM"
	}`

	var result StatusResult
	require.NoError(t, json.Unmarshal([]byte(payload), &result))

	assert.True(t, result.Amount.Equal(decimal.RequireFromString("100.5")))
	assert.Equal(t, "erc20", result.Driver)
	assert.Equal(t, uint64(5), result.Outgoing.Requested.AgreementsCount)

	amount, count := result.Outgoing.TotalPending()
	assert.True(t, amount.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, uint64(1), count)
}
