package pagination

import (
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "", "c")
	assert.NotEmpty(t, token, "Token should not be empty")

	parts, err := DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "c"}, parts)
}

func TestStateToken_RoundTrip(t *testing.T) {
	state := State{
		Screen: "contracts",
		Filters: Filters{
			CustomerID:  "12",
			ProductType: "legal",
			From:        domain.DateOf(2025, 2, 1),
			To:          domain.DateOf(2025, 2, 28),
		},
		Sort: Sort{Field: "date", Dir: Desc},
		Page: PageRequest{Page: 3, PerPage: 10},
	}

	decoded, err := ParseState(state.Token())
	require.NoError(t, err)
	assert.Equal(t, state.Screen, decoded.Screen)
	assert.Equal(t, state.Filters.CustomerID, decoded.Filters.CustomerID)
	assert.True(t, state.Filters.From.Equal(decoded.Filters.From))
	assert.True(t, state.Filters.To.Equal(decoded.Filters.To))
	assert.Equal(t, state.Sort, decoded.Sort)
	assert.Equal(t, state.Page, decoded.Page)
}

func TestStateToken_DiffersWhenStateDiffers(t *testing.T) {
	a := State{Screen: "bills", Page: PageRequest{Page: 1}}
	b := State{Screen: "bills", Page: PageRequest{Page: 2}}
	assert.NotEqual(t, a.Token(), b.Token())
	assert.Equal(t, a.Token(), State{Screen: "bills", Page: PageRequest{Page: 1, PerPage: DefaultPerPage}}.Token())
}

func TestParseStateError(t *testing.T) {
	_, err := ParseState("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = ParseState(EncodeMultiFieldToken("v1", "too", "short"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	fields := []string{"v1", "s", "", "", "", "", "", "notadate", "", "", "", "1", "10"}
	_, err = ParseState(EncodeMultiFieldToken(fields...))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "from date parse")
}
