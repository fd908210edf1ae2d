package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "jamon serrano", Key("  Jamón   Serrano "))
	assert.Equal(t, Key("Limonada de Coco"), Key("limonada de coco"))
	assert.Equal(t, "pina colada", Key("Piña Colada"))
	assert.Equal(t, "", Key("   "))
}
