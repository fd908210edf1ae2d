// Package qr genera los códigos QR de las mesas con go-qrcode.
package qr

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/jhoicas/Restaurante-api/internal/application/ports"
)

const (
	minSize = 64
	maxSize = 1024
)

var _ ports.QRGenerator = (*Generator)(nil)

// Generator implementa ports.QRGenerator.
type Generator struct {
	level qrcode.RecoveryLevel
}

// NewGenerator usa nivel de corrección Medium (15%), suficiente para stickers impresos.
func NewGenerator() *Generator {
	return &Generator{level: qrcode.Medium}
}

// PNG codifica content en una imagen PNG de size×size píxeles. El tamaño se acota a [64, 1024].
func (g *Generator) PNG(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("qr: contenido vacío")
	}
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}
	png, err := qrcode.Encode(content, g.level, size)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	return png, nil
}
