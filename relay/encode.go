package relay

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// Body formats accepted by [Encode].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode serializes body in format ("" means JSON) and returns the bytes
// with their content type. Both formats emit a list when the keys of a
// level are exactly 0..n-1 and a mapping otherwise.
func Encode(body *arr.Array[any], format string) ([]byte, string, error) {
	switch format {
	case "", FormatJSON:
		b, err := body.MarshalJSON()
		if err != nil {
			return nil, "", fmt.Errorf("relay: encoding json body: %w", err)
		}
		return b, "application/json", nil
	case FormatYAML:
		b, err := yaml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("relay: encoding yaml body: %w", err)
		}
		return b, "application/yaml", nil
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
