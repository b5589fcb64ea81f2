package lookup

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/ytget/zip-lookup/internal/model"
)

// decodePostalResponse parses a postal API body. An empty body is an error.
func decodePostalResponse(body []byte) (*model.PostalResponse, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("decode postal response: %w", ErrEmptyBody)
	}

	var resp model.PostalResponse
	if err := sonic.ConfigStd.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode postal response: %w", err)
	}
	return &resp, nil
}
