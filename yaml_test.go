package decimal64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type yamlDoc struct {
	Amount Decimal[P2, HalfEven] `yaml:"amount"`
}

func TestYAML_MarshalUnmarshal_RoundTrip(t *testing.T) {
	doc := yamlDoc{Amount: MustParse[P2, HalfEven]("19.99")}

	b, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var got yamlDoc
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, doc.Amount, got.Amount)
}

func TestYAML_UnmarshalFloatScalar(t *testing.T) {
	var got yamlDoc
	err := yaml.Unmarshal([]byte("amount: 19.99\n"), &got)
	require.NoError(t, err)
	assert.Equal(t, "19.99", got.Amount.String())
}
