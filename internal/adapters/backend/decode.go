package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

var errUnexpectedShape = errors.New("unexpected response shape")

// envelope is every list wrapper the backend is known to send: a bare array,
// {data: [...], pagination: {...}}, a top-level paginator with current_page
// beside data, or one of those nested once more under data.
type envelope struct {
	Data        json.RawMessage    `json:"data"`
	Pagination  *pagination.Remote `json:"pagination"`
	CurrentPage json.RawMessage    `json:"current_page"`
}

// decodeList decodes a list response. page is nil when the backend sent the
// whole collection instead of a page.
func decodeList[T any](body []byte) ([]T, *pagination.PageInfo, error) {
	return decodeListDepth[T](body, 0)
}

func decodeListDepth[T any](body []byte, depth int) ([]T, *pagination.PageInfo, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil, fmt.Errorf("%w: empty body", errUnexpectedShape)
	}

	switch body[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, nil, err
		}
		return nonNil(items), nil, nil
	case '{':
	default:
		return nil, nil, fmt.Errorf("%w: body is neither an array nor an object", errUnexpectedShape)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, err
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil, fmt.Errorf("%w: object without data", errUnexpectedShape)
	}

	if data[0] == '{' {
		if depth > 0 {
			return nil, nil, fmt.Errorf("%w: data nested too deep", errUnexpectedShape)
		}
		return decodeListDepth[T](data, depth+1)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil, err
	}
	items = nonNil(items)

	switch {
	case env.Pagination != nil:
		info := env.Pagination.Info()
		return items, &info, nil
	case len(env.CurrentPage) > 0:
		var remote pagination.Remote
		if err := json.Unmarshal(body, &remote); err != nil {
			return nil, nil, err
		}
		info := remote.Info()
		return items, &info, nil
	default:
		return items, nil, nil
	}
}

// decodeRecord decodes a single-record response, bare or under data. It
// returns nil when the backend acknowledged without echoing a record.
func decodeRecord[T any](body []byte) (*T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	if body[0] != '{' {
		return nil, fmt.Errorf("%w: record is not an object", errUnexpectedShape)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if data, ok := fields["data"]; ok {
		data = bytes.TrimSpace(data)
		switch {
		case bytes.Equal(data, []byte("null")):
			return nil, nil
		case len(data) > 0 && data[0] == '{':
			body = data
		default:
			return nil, fmt.Errorf("%w: data is not an object", errUnexpectedShape)
		}
	} else if acknowledgementOnly(fields) {
		return nil, nil
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// acknowledgementOnly reports whether an object carries nothing but status keys.
func acknowledgementOnly(fields map[string]json.RawMessage) bool {
	for k := range fields {
		switch k {
		case "message", "status", "success":
		default:
			return false
		}
	}
	return true
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
