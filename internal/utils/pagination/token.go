package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

const stateTokenVersion = "v1"

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid state token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// State is the filter, sort and page a list response was computed for. The
// dashboard echoes it back as a token so a client can drop responses that no
// longer match what is on screen.
type State struct {
	Screen  string
	Filters Filters
	Sort    Sort
	Page    PageRequest
}

// Token encodes the state. Equal states always give equal tokens.
func (s State) Token() string {
	p := s.Page.Normalize()
	return EncodeMultiFieldToken(
		stateTokenVersion,
		s.Screen,
		s.Filters.Status,
		s.Filters.CustomerID,
		s.Filters.SupplierID,
		s.Filters.AccountTypeID,
		s.Filters.ProductType,
		s.Filters.From.String(),
		s.Filters.To.String(),
		s.Sort.Field,
		string(s.Sort.Dir),
		strconv.Itoa(p.Page),
		strconv.Itoa(p.PerPage),
	)
}

// ParseState decodes a token produced by State.Token.
func ParseState(token string) (State, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return State{}, err
	}
	if len(parts) != 13 || parts[0] != stateTokenVersion {
		return State{}, fmt.Errorf("invalid state token format (split)")
	}

	var s State
	s.Screen = parts[1]
	s.Filters = Filters{
		Status:        parts[2],
		CustomerID:    parts[3],
		SupplierID:    parts[4],
		AccountTypeID: parts[5],
		ProductType:   parts[6],
	}
	if parts[7] != "" {
		if s.Filters.From, err = domain.ParseDate(parts[7]); err != nil {
			return State{}, fmt.Errorf("invalid state token format (from date parse): %w", err)
		}
	}
	if parts[8] != "" {
		if s.Filters.To, err = domain.ParseDate(parts[8]); err != nil {
			return State{}, fmt.Errorf("invalid state token format (to date parse): %w", err)
		}
	}
	s.Sort = Sort{Field: parts[9], Dir: Direction(parts[10])}
	if s.Page.Page, err = strconv.Atoi(parts[11]); err != nil {
		return State{}, fmt.Errorf("invalid state token format (page parse): %w", err)
	}
	if s.Page.PerPage, err = strconv.Atoi(parts[12]); err != nil {
		return State{}, fmt.Errorf("invalid state token format (per_page parse): %w", err)
	}
	return s, nil
}
